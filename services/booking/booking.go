package booking

import (
	"context"
	"errors"

	"travelbook/database/repository/booking"
	"travelbook/models"
)

// GetByID fetches a booking, enforcing ownership.
func (s *DefaultBookingService) GetByID(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// ListByUser returns the user's bookings, newest first.
func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Cancel moves a confirmed booking to cancelled. Cancelled bookings cannot
// be cancelled again.
func (s *DefaultBookingService) Cancel(ctx context.Context, userID, bookingID, reason string) (*models.Booking, error) {
	b, err := s.GetByID(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, models.BookingCancelled, reason); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, bookingID)
}
