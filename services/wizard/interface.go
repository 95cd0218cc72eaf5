package wizard

import (
	"context"

	"travelbook/database/repository/booking"
	"travelbook/models"
	"travelbook/services/notification"
	"travelbook/services/search"

	"go.uber.org/zap"
)

// DetailsInput carries the details-step form: traveler records plus the
// class/room-type refinements made on that form.
type DetailsInput struct {
	Travelers []models.Traveler `json:"travelers"`
	Class     string            `json:"class,omitempty"`
	RoomType  string            `json:"roomType,omitempty"`
}

// WizardService drives the linear booking state machine:
// search → results → details → review → success. Every rejected guard leaves
// the session at its current step; only the final transition has external
// side effects.
type WizardService interface {
	StartSession(ctx context.Context, user models.UserContext) (*models.WizardSession, error)
	Search(ctx context.Context, sessionID string, query models.SearchQuery) (*models.WizardSession, error)
	Select(ctx context.Context, sessionID, offeringID string) (*models.WizardSession, error)
	SubmitDetails(ctx context.Context, sessionID string, input DetailsInput) (*models.WizardSession, error)
	Confirm(ctx context.Context, sessionID string, termsAccepted bool) (*models.BookingConfirmationResponse, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Reset(ctx context.Context, sessionID string) (*models.WizardSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	SearchSvc search.SearchService
	Bookings  bookingRepo.BookingRepository
	Notifier  notification.NotificationService
	Sessions  SessionStore
	Logger    *zap.Logger
}
