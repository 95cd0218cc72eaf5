package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelbook/database/repository/booking"
	"travelbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new wizard session at the search step for the given
// user and stores it in the session cache.
func (s *DefaultWizardService) StartSession(ctx context.Context, user models.UserContext) (*models.WizardSession, error) {
	if user.UserID == "" {
		return nil, NewValidationError("user context is required")
	}

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		UserID:    user.UserID,
		UserEmail: user.Email,
		Step:      models.StepSearch,
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("wizard session started",
		zap.String("sessionID", session.SessionID),
		zap.String("userID", user.UserID))
	return session, nil
}

// Search runs the search → results transition. An invalid query is rejected
// before the listing provider is called and leaves the session, including
// any previous results, untouched. Valid queries replace prior results.
func (s *DefaultWizardService) Search(ctx context.Context, sessionID string, query models.SearchQuery) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSearch && session.Step != models.StepResults {
		return nil, NewTransitionError("search", string(session.Step))
	}

	strategy, err := strategyFor(query.Kind)
	if err != nil {
		return nil, err
	}
	if err := strategy.ValidateQuery(&query); err != nil {
		return nil, err
	}

	results, err := s.SearchSvc.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing provider unavailable: %w", err)
	}

	session.Query = &query
	session.Results = results
	session.Draft = nil
	session.Step = models.StepResults
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Select runs the results → details transition: it snapshots the chosen
// offering into a fresh draft and pre-sizes the traveler sub-forms to the
// passenger count.
func (s *DefaultWizardService) Select(ctx context.Context, sessionID, offeringID string) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepResults {
		return nil, NewTransitionError("select an offering", string(session.Step))
	}

	var chosen *models.Offering
	for i := range session.Results {
		if session.Results[i].ID == offeringID {
			chosen = &session.Results[i]
			break
		}
	}
	if chosen == nil {
		return nil, NewValidationErrorf("offering %q is not in the current results", offeringID)
	}

	passengers := ClampCount(session.Query.Passengers)
	session.Draft = &models.BookingDraft{
		Offering:   *chosen,
		Passengers: passengers,
		Rooms:      ClampCount(session.Query.Rooms),
		CheckIn:    session.Query.CheckIn,
		CheckOut:   session.Query.CheckOut,
		TravelDate: session.Query.Date,
		Travelers:  make([]models.Traveler, passengers),
	}
	session.Step = models.StepDetails
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitDetails runs the details → review transition. The guard requires a
// traveler record per passenger, required fields per transport type, and a
// well-formed contact on the primary traveler. The total price is computed
// here and a fresh idempotency key is issued for the submission attempt.
func (s *DefaultWizardService) SubmitDetails(ctx context.Context, sessionID string, input DetailsInput) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDetails {
		return nil, NewTransitionError("submit traveler details", string(session.Step))
	}

	draft := session.Draft
	strategy, err := strategyFor(draft.Offering.Kind)
	if err != nil {
		return nil, err
	}

	if len(input.Travelers) != draft.Passengers {
		return nil, NewValidationErrorf("expected %d traveler record(s), got %d", draft.Passengers, len(input.Travelers))
	}
	if err := validateTravelers(input.Travelers, strategy.RequiredTravelerFields()); err != nil {
		return nil, err
	}

	draft.Travelers = input.Travelers
	if input.Class != "" {
		draft.Class = input.Class
	}
	if input.RoomType != "" {
		draft.RoomType = input.RoomType
	}

	total, err := strategy.ComputePrice(draft)
	if err != nil {
		return nil, err
	}
	draft.TotalPrice = total
	draft.IdempotencyKey = uuid.New().String()

	session.Step = models.StepReview
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm runs the review → success transition: the only one with external
// side effects. The price is recomputed from the draft (a pure function, so
// re-entering review via Back must not change it), the booking is persisted
// exactly once per idempotency key, and the confirmation mail is queued.
// Booking success is independent of notification delivery: an enqueue
// failure is logged and the booking still succeeds. A persistence failure
// keeps the session at review with the draft intact.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID string, termsAccepted bool) (*models.BookingConfirmationResponse, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepReview {
		return nil, NewTransitionError("confirm the booking", string(session.Step))
	}
	if !termsAccepted {
		return nil, NewValidationError("terms and conditions must be accepted")
	}

	draft := session.Draft
	draft.TermsAccepted = true
	strategy, err := strategyFor(draft.Offering.Kind)
	if err != nil {
		return nil, err
	}

	total, err := strategy.ComputePrice(draft)
	if err != nil {
		return nil, err
	}
	if total != draft.TotalPrice {
		return nil, NewValidationError("price changed since review; please re-submit details")
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		UserID:         session.UserID,
		Kind:           draft.Offering.Kind,
		Travelers:      draft.Travelers,
		ContactEmail:   draft.Travelers[0].Email,
		TotalPrice:     total,
		Currency:       draft.Offering.Currency,
		Status:         models.BookingConfirmed,
		PaymentStatus:  models.PaymentPending,
		IdempotencyKey: draft.IdempotencyKey,
		CreatedAt:      time.Now(),
	}
	if err := strategy.AttachDetails(booking, draft); err != nil {
		return nil, err
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateKey) {
			// A retried confirm after a successful-but-unacknowledged attempt:
			// return the original record, no second notification.
			existing, lookupErr := s.Bookings.GetByIdempotencyKey(ctx, draft.IdempotencyKey)
			if lookupErr != nil {
				return nil, lookupErr
			}
			booking = existing
		} else {
			s.Logger.Error("booking persistence failed",
				zap.String("sessionID", sessionID), zap.Error(err))
			return nil, err
		}
	} else {
		if err := s.Notifier.EnqueueConfirmation(ctx, booking); err != nil {
			s.Logger.Warn("failed to queue confirmation mail",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	session.BookingID = booking.ID
	session.Step = models.StepSuccess
	if err := s.Sessions.Save(ctx, session); err != nil {
		s.Logger.Warn("failed to persist session after confirmation",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("kind", string(booking.Kind)),
		zap.Float64("totalPrice", booking.TotalPrice))

	return &models.BookingConfirmationResponse{
		BookingID:    booking.ID,
		Kind:         booking.Kind,
		TotalPrice:   booking.TotalPrice,
		Currency:     booking.Currency,
		Status:       booking.Status,
		Confirmation: "Booking confirmed",
		CreatedAt:    booking.CreatedAt,
	}, nil
}

// Back steps the wizard one step backwards: review → details or
// details → results. Search and success have no backward action.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepReview:
		session.Step = models.StepDetails
	case models.StepDetails:
		session.Step = models.StepResults
		session.Draft = nil
	default:
		return nil, NewTransitionError("go back", string(session.Step))
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Reset runs the explicit "book another" action from the success step:
// the draft and results are discarded and the wizard returns to search.
func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSuccess {
		return nil, NewTransitionError("book another trip", string(session.Step))
	}

	session.Query = nil
	session.Results = nil
	session.Draft = nil
	session.BookingID = ""
	session.Step = models.StepSearch
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession discards an abandoned wizard session.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
