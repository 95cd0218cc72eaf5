package booking

import (
	"context"

	"travelbook/database/repository/booking"
	"travelbook/models"
)

// BookingService exposes post-wizard operations on persisted bookings.
type BookingService interface {
	GetByID(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Cancel(ctx context.Context, userID, bookingID, reason string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
