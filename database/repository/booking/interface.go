package bookingRepo

import (
	"context"
	"errors"

	"travelbook/models"
)

// ErrDuplicateKey is returned by Create when a booking with the same
// idempotency key already exists.
var ErrDuplicateKey = errors.New("booking already exists for idempotency key")

// ErrNotFound is returned when no booking matches the lookup.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines the persistence contract for booking records.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, reason string) error
	MarkEmailSent(ctx context.Context, bookingID string) error
}
