package wizard

import (
	"travelbook/models"
)

// transportStrategy captures the per-transport-type behavior the wizard is
// parameterized over: query guards, traveler requirements, pricing, and the
// booking variant built at confirmation.
type transportStrategy interface {
	Kind() models.TransportKind
	ValidateQuery(q *models.SearchQuery) error
	RequiredTravelerFields() []string
	ComputePrice(d *models.BookingDraft) (float64, error)
	AttachDetails(b *models.Booking, d *models.BookingDraft) error
}

var strategies = map[models.TransportKind]transportStrategy{
	models.KindFlight: flightStrategy{},
	models.KindHotel:  hotelStrategy{},
	models.KindBus:    busStrategy{},
	models.KindTrain:  trainStrategy{},
	models.KindGuide:  guideStrategy{},
}

func strategyFor(kind models.TransportKind) (transportStrategy, error) {
	s, ok := strategies[kind]
	if !ok {
		return nil, NewValidationErrorf("unknown transport kind %q", kind)
	}
	return s, nil
}

type flightStrategy struct{}

func (flightStrategy) Kind() models.TransportKind { return models.KindFlight }

func (flightStrategy) ValidateQuery(q *models.SearchQuery) error {
	if q.Origin == "" {
		return NewValidationError("origin is required")
	}
	if q.Destination == "" {
		return NewValidationError("destination is required")
	}
	if q.Date == "" {
		return NewValidationError("travel date is required")
	}
	q.Passengers = ClampCount(q.Passengers)
	return nil
}

func (flightStrategy) RequiredTravelerFields() []string {
	return []string{"firstName", "lastName", "age"}
}

func (flightStrategy) ComputePrice(d *models.BookingDraft) (float64, error) {
	return FlightPrice(d.Offering.UnitPrice, d.Class, d.Passengers), nil
}

func (flightStrategy) AttachDetails(b *models.Booking, d *models.BookingDraft) error {
	cabin := d.Class
	if cabin == "" {
		cabin = ClassEconomy
	}
	b.Flight = &models.FlightDetails{
		OfferingID:  d.Offering.ID,
		Airline:     d.Offering.Operator,
		Origin:      d.Offering.Origin,
		Destination: d.Offering.Destination,
		DepartAt:    d.Offering.DepartAt,
		CabinClass:  cabin,
		Passengers:  d.Passengers,
	}
	return nil
}

type hotelStrategy struct{}

func (hotelStrategy) Kind() models.TransportKind { return models.KindHotel }

func (hotelStrategy) ValidateQuery(q *models.SearchQuery) error {
	if q.Destination == "" {
		return NewValidationError("destination is required")
	}
	if q.CheckIn == "" || q.CheckOut == "" {
		return NewValidationError("check-in and check-out dates are required")
	}
	if _, err := HotelNights(q.CheckIn, q.CheckOut); err != nil {
		return err
	}
	q.Passengers = ClampCount(q.Passengers)
	q.Rooms = ClampCount(q.Rooms)
	return nil
}

func (hotelStrategy) RequiredTravelerFields() []string {
	return []string{"firstName", "lastName"}
}

func (hotelStrategy) ComputePrice(d *models.BookingDraft) (float64, error) {
	nights, err := HotelNights(d.CheckIn, d.CheckOut)
	if err != nil {
		return 0, err
	}
	return HotelPrice(d.Offering.UnitPrice, nights, d.Rooms, d.RoomType), nil
}

func (hotelStrategy) AttachDetails(b *models.Booking, d *models.BookingDraft) error {
	nights, err := HotelNights(d.CheckIn, d.CheckOut)
	if err != nil {
		return err
	}
	roomType := d.RoomType
	if roomType == "" {
		roomType = RoomStandard
	}
	b.Hotel = &models.HotelDetails{
		OfferingID: d.Offering.ID,
		HotelName:  d.Offering.Operator,
		Location:   d.Offering.Destination,
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
		Nights:     nights,
		RoomType:   roomType,
		Rooms:      ClampCount(d.Rooms),
	}
	return nil
}

type busStrategy struct{}

func (busStrategy) Kind() models.TransportKind { return models.KindBus }

func (busStrategy) ValidateQuery(q *models.SearchQuery) error {
	if q.Origin == "" {
		return NewValidationError("origin is required")
	}
	if q.Destination == "" {
		return NewValidationError("destination is required")
	}
	if q.Date == "" {
		return NewValidationError("travel date is required")
	}
	q.Passengers = ClampCount(q.Passengers)
	return nil
}

func (busStrategy) RequiredTravelerFields() []string {
	return []string{"firstName", "lastName"}
}

func (busStrategy) ComputePrice(d *models.BookingDraft) (float64, error) {
	return BusPrice(d.Offering.UnitPrice, d.Passengers), nil
}

func (busStrategy) AttachDetails(b *models.Booking, d *models.BookingDraft) error {
	b.Bus = &models.BusDetails{
		OfferingID:  d.Offering.ID,
		Operator:    d.Offering.Operator,
		Origin:      d.Offering.Origin,
		Destination: d.Offering.Destination,
		DepartAt:    d.Offering.DepartAt,
		Passengers:  d.Passengers,
	}
	return nil
}

type trainStrategy struct{}

func (trainStrategy) Kind() models.TransportKind { return models.KindTrain }

func (trainStrategy) ValidateQuery(q *models.SearchQuery) error {
	if q.Origin == "" {
		return NewValidationError("origin is required")
	}
	if q.Destination == "" {
		return NewValidationError("destination is required")
	}
	if q.Date == "" {
		return NewValidationError("travel date is required")
	}
	q.Passengers = ClampCount(q.Passengers)
	return nil
}

func (trainStrategy) RequiredTravelerFields() []string {
	return []string{"firstName", "lastName", "age"}
}

func (trainStrategy) ComputePrice(d *models.BookingDraft) (float64, error) {
	return TrainPrice(d.Offering.UnitPrice, d.Class, d.Passengers), nil
}

func (trainStrategy) AttachDetails(b *models.Booking, d *models.BookingDraft) error {
	class := d.Class
	if class == "" {
		class = ClassEconomy
	}
	b.Train = &models.TrainDetails{
		OfferingID:  d.Offering.ID,
		Operator:    d.Offering.Operator,
		Origin:      d.Offering.Origin,
		Destination: d.Offering.Destination,
		DepartAt:    d.Offering.DepartAt,
		Class:       class,
		Passengers:  d.Passengers,
	}
	return nil
}

type guideStrategy struct{}

func (guideStrategy) Kind() models.TransportKind { return models.KindGuide }

func (guideStrategy) ValidateQuery(q *models.SearchQuery) error {
	if q.Destination == "" {
		return NewValidationError("location is required")
	}
	if q.Date == "" && q.CheckIn == "" {
		return NewValidationError("hire date is required")
	}
	q.Passengers = ClampCount(q.Passengers)
	return nil
}

func (guideStrategy) RequiredTravelerFields() []string {
	return []string{"firstName", "lastName"}
}

func (guideStrategy) ComputePrice(d *models.BookingDraft) (float64, error) {
	return GuidePrice(d.Offering.UnitPrice, guideHireDays(d)), nil
}

func (guideStrategy) AttachDetails(b *models.Booking, d *models.BookingDraft) error {
	date := d.TravelDate
	if date == "" {
		date = d.CheckIn
	}
	b.Guide = &models.GuideDetails{
		OfferingID: d.Offering.ID,
		GuideName:  d.Offering.Operator,
		Location:   d.Offering.Destination,
		Date:       date,
		Days:       guideHireDays(d),
	}
	return nil
}

// guideHireDays derives the hire length from the draft's date window.
// Single-date hires count as one day.
func guideHireDays(d *models.BookingDraft) int {
	if d.CheckIn != "" && d.CheckOut != "" {
		if days, err := HotelNights(d.CheckIn, d.CheckOut); err == nil {
			return days
		}
	}
	return 1
}
