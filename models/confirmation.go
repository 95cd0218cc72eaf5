package models

import "time"

// BookingConfirmationResponse is returned to the client after a booking is
// confirmed at the final wizard step.
type BookingConfirmationResponse struct {
	BookingID    string        `json:"bookingId"`
	Kind         TransportKind `json:"kind"`
	TotalPrice   float64       `json:"totalPrice"`
	Currency     string        `json:"currency"`
	Status       BookingStatus `json:"status"`
	Confirmation string        `json:"confirmation"`
	CreatedAt    time.Time     `json:"createdAt"`
}
