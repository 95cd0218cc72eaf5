package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"travelbook/models"

	"github.com/hibiken/asynq"
)

// TypeConfirmationSend is the task type for queued confirmation mails.
const TypeConfirmationSend = "confirmation:send"

// AsynqNotificationService implements NotificationService by enqueueing
// confirmation tasks onto the Redis-backed queue.
type AsynqNotificationService struct {
	Client *asynq.Client
}

func NewAsynqNotificationService(client *asynq.Client) *AsynqNotificationService {
	return &AsynqNotificationService{Client: client}
}

// EnqueueConfirmation renders the confirmation mail for a booking and queues
// it with retry. The task is keyed so the worker can flip the booking's
// email-sent flag after delivery.
func (s *AsynqNotificationService) EnqueueConfirmation(ctx context.Context, booking *models.Booking) error {
	subject, body := RenderConfirmation(booking)
	payload := models.ConfirmationPayload{
		BookingID: booking.ID,
		To:        booking.ContactEmail,
		Subject:   subject,
		Body:      body,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}

	task := asynq.NewTask(TypeConfirmationSend, b)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Queue("notifications")); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}

// RenderConfirmation builds the subject and body for a booking's
// confirmation mail.
func RenderConfirmation(booking *models.Booking) (subject, body string) {
	var summary string
	switch booking.Kind {
	case models.KindFlight:
		f := booking.Flight
		summary = fmt.Sprintf("%s flight from %s to %s on %s, %d passenger(s), %s cabin",
			f.Airline, f.Origin, f.Destination, f.DepartAt.Format("02 Jan 2006"), f.Passengers, f.CabinClass)
	case models.KindHotel:
		h := booking.Hotel
		summary = fmt.Sprintf("%s in %s, %s to %s (%d night(s), %d %s room(s))",
			h.HotelName, h.Location, h.CheckIn, h.CheckOut, h.Nights, h.Rooms, h.RoomType)
	case models.KindBus:
		b := booking.Bus
		summary = fmt.Sprintf("%s bus from %s to %s on %s, %d passenger(s)",
			b.Operator, b.Origin, b.Destination, b.DepartAt.Format("02 Jan 2006"), b.Passengers)
	case models.KindTrain:
		t := booking.Train
		summary = fmt.Sprintf("%s train from %s to %s on %s, %d passenger(s), %s class",
			t.Operator, t.Origin, t.Destination, t.DepartAt.Format("02 Jan 2006"), t.Passengers, t.Class)
	case models.KindGuide:
		g := booking.Guide
		summary = fmt.Sprintf("guide %s in %s from %s for %d day(s)",
			g.GuideName, g.Location, g.Date, g.Days)
	default:
		summary = string(booking.Kind)
	}

	subject = fmt.Sprintf("Booking confirmed: %s", booking.ID)
	body = fmt.Sprintf(
		"Your booking is confirmed!\n\n%s\n\nTotal: %.2f %s\nBooking reference: %s\n",
		summary, booking.TotalPrice, booking.Currency, booking.ID)
	return subject, body
}
