package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking is the persisted record created when a wizard draft is confirmed.
// Kind is the explicit discriminant; exactly one of the detail pointers is
// set. After creation the wizard never mutates a booking except EmailSent.
type Booking struct {
	ID             string         `bson:"id" json:"id"`
	UserID         string         `bson:"user_id" json:"userId"`
	Kind           TransportKind  `bson:"kind" json:"kind"`
	Flight         *FlightDetails `bson:"flight,omitempty" json:"flight,omitempty"`
	Hotel          *HotelDetails  `bson:"hotel,omitempty" json:"hotel,omitempty"`
	Bus            *BusDetails    `bson:"bus,omitempty" json:"bus,omitempty"`
	Train          *TrainDetails  `bson:"train,omitempty" json:"train,omitempty"`
	Guide          *GuideDetails  `bson:"guide,omitempty" json:"guide,omitempty"`
	Travelers      []Traveler     `bson:"travelers" json:"travelers"`
	ContactEmail   string         `bson:"contact_email" json:"contactEmail"`
	TotalPrice     float64        `bson:"total_price" json:"totalPrice"`
	Currency       string         `bson:"currency" json:"currency"`
	Status         BookingStatus  `bson:"status" json:"status"`
	PaymentStatus  PaymentStatus  `bson:"payment_status" json:"paymentStatus"`
	EmailSent      bool           `bson:"email_sent" json:"emailSent"`
	IdempotencyKey string         `bson:"idempotency_key" json:"-"`
	CreatedAt      time.Time      `bson:"created_at" json:"createdAt"`
	CancelReason   string         `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
}

// FlightDetails is the flight variant of a booking.
type FlightDetails struct {
	OfferingID  string    `bson:"offering_id" json:"offeringId"`
	Airline     string    `bson:"airline" json:"airline"`
	Origin      string    `bson:"origin" json:"origin"`
	Destination string    `bson:"destination" json:"destination"`
	DepartAt    time.Time `bson:"depart_at" json:"departAt"`
	CabinClass  string    `bson:"cabin_class" json:"cabinClass"`
	Passengers  int       `bson:"passengers" json:"passengers"`
}

// HotelDetails is the hotel-stay variant of a booking.
type HotelDetails struct {
	OfferingID string `bson:"offering_id" json:"offeringId"`
	HotelName  string `bson:"hotel_name" json:"hotelName"`
	Location   string `bson:"location" json:"location"`
	CheckIn    string `bson:"check_in" json:"checkIn"`
	CheckOut   string `bson:"check_out" json:"checkOut"`
	Nights     int    `bson:"nights" json:"nights"`
	RoomType   string `bson:"room_type" json:"roomType"`
	Rooms      int    `bson:"rooms" json:"rooms"`
}

// BusDetails is the bus-seat variant of a booking.
type BusDetails struct {
	OfferingID  string    `bson:"offering_id" json:"offeringId"`
	Operator    string    `bson:"operator" json:"operator"`
	Origin      string    `bson:"origin" json:"origin"`
	Destination string    `bson:"destination" json:"destination"`
	DepartAt    time.Time `bson:"depart_at" json:"departAt"`
	Passengers  int       `bson:"passengers" json:"passengers"`
}

// TrainDetails is the train-seat variant of a booking.
type TrainDetails struct {
	OfferingID  string    `bson:"offering_id" json:"offeringId"`
	Operator    string    `bson:"operator" json:"operator"`
	Origin      string    `bson:"origin" json:"origin"`
	Destination string    `bson:"destination" json:"destination"`
	DepartAt    time.Time `bson:"depart_at" json:"departAt"`
	Class       string    `bson:"class" json:"class"`
	Passengers  int       `bson:"passengers" json:"passengers"`
}

// GuideDetails is the tour-guide variant of a booking.
type GuideDetails struct {
	OfferingID string `bson:"offering_id" json:"offeringId"`
	GuideName  string `bson:"guide_name" json:"guideName"`
	Location   string `bson:"location" json:"location"`
	Date       string `bson:"date" json:"date"`
	Days       int    `bson:"days" json:"days"`
}
