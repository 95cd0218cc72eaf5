package models

import "time"

// WizardStep names the wizard's linear states.
type WizardStep string

const (
	StepSearch  WizardStep = "search"
	StepResults WizardStep = "results"
	StepDetails WizardStep = "details"
	StepReview  WizardStep = "review"
	StepSuccess WizardStep = "success"
)

// WizardSession holds the full wizard state between HTTP calls. It is
// JSON-marshalled into the session cache under its SessionID with a TTL.
type WizardSession struct {
	SessionID string         `json:"sessionId"`
	UserID    string         `json:"userId"`
	UserEmail string         `json:"userEmail,omitempty"`
	Step      WizardStep     `json:"step"`
	Query     *SearchQuery   `json:"query,omitempty"`
	Results   []Offering     `json:"results,omitempty"`
	Draft     *BookingDraft  `json:"draft,omitempty"`
	BookingID string         `json:"bookingId,omitempty"` // set once the draft is converted
	CreatedAt time.Time      `json:"createdAt"`
}

// UserContext identifies the signed-in user on whose behalf the wizard runs.
// It is passed explicitly to the wizard rather than read from ambient state.
type UserContext struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}
