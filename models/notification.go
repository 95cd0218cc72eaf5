package models

// ConfirmationPayload is the task payload queued for the confirmation
// mail worker.
type ConfirmationPayload struct {
	BookingID string `json:"bookingId"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
