package notification

import (
	"context"

	"travelbook/models"
)

// NotificationService queues a confirmation message for the primary
// traveler. Delivery is decoupled from the booking transaction: the wizard
// treats an enqueue failure as non-fatal, and the queue worker retries
// failed deliveries on its own.
type NotificationService interface {
	EnqueueConfirmation(ctx context.Context, booking *models.Booking) error
}

// Mailer performs the actual delivery. The production transport is an
// external mail provider; LogMailer stands in where none is configured.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, subject, body string) error
}
