package models

// BookingDraft is the mutable, session-scoped state accumulated by the wizard
// between selecting an offering and confirming the booking. It is discarded
// when the wizard is abandoned or reset.
type BookingDraft struct {
	Offering       Offering   `json:"offering"` // snapshot taken at selection time
	Class          string     `json:"class,omitempty"`    // cabin or seat class (flights, trains)
	RoomType       string     `json:"roomType,omitempty"` // hotels: standard, deluxe, suite
	Rooms          int        `json:"rooms,omitempty"`
	Passengers     int        `json:"passengers"`
	CheckIn        string     `json:"checkIn,omitempty"`
	CheckOut       string     `json:"checkOut,omitempty"`
	TravelDate     string     `json:"travelDate,omitempty"`
	Travelers      []Traveler `json:"travelers"`
	TotalPrice     float64    `json:"totalPrice"`
	TermsAccepted  bool       `json:"termsAccepted"`
	IdempotencyKey string     `json:"idempotencyKey,omitempty"` // fresh per review submission
}
