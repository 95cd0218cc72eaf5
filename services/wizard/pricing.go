package wizard

import (
	"math"
	"time"
)

// Cabin, seat-class and room-type names accepted by the pricing rules.
const (
	ClassEconomy  = "economy"
	ClassBusiness = "business"
	ClassFirst    = "first"

	RoomStandard = "standard"
	RoomDeluxe   = "deluxe"
	RoomSuite    = "suite"
)

const dateLayout = "2006-01-02"

// ClampCount normalizes passenger/room counts: missing or non-positive
// input counts as one unit.
func ClampCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// FlightPrice computes base × cabin multiplier × passengers. Business cabin
// carries a 1.5 multiplier; every other cabin books at base fare.
func FlightPrice(base float64, cabinClass string, passengers int) float64 {
	mult := 1.0
	if cabinClass == ClassBusiness {
		mult = 1.5
	}
	return base * mult * float64(ClampCount(passengers))
}

// HotelNights computes ceil((checkOut − checkIn) / 1 day). Check-out must be
// strictly after check-in.
func HotelNights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, NewValidationError("check-in date must be YYYY-MM-DD")
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, NewValidationError("check-out date must be YYYY-MM-DD")
	}
	if !out.After(in) {
		return 0, NewValidationError("check-out date must be after check-in date")
	}
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

// RoomTypeMultiplier maps room categories to their price multipliers.
// Unknown room types book at the standard rate.
func RoomTypeMultiplier(roomType string) float64 {
	switch roomType {
	case RoomDeluxe:
		return 1.3
	case RoomSuite:
		return 1.6
	default:
		return 1.0
	}
}

// HotelPrice computes nightly × nights × rooms × room-type multiplier.
func HotelPrice(nightly float64, nights, rooms int, roomType string) float64 {
	return nightly * float64(nights) * float64(ClampCount(rooms)) * RoomTypeMultiplier(roomType)
}

// TrainClassMultiplier maps seat classes to fare multipliers.
func TrainClassMultiplier(class string) float64 {
	switch class {
	case ClassBusiness:
		return 1.5
	case ClassFirst:
		return 2.5
	default:
		return 1.0
	}
}

// TrainPrice computes base × class multiplier × passengers.
func TrainPrice(base float64, class string, passengers int) float64 {
	return base * TrainClassMultiplier(class) * float64(ClampCount(passengers))
}

// BusPrice computes base × passengers. Buses have no class multiplier.
func BusPrice(base float64, passengers int) float64 {
	return base * float64(ClampCount(passengers))
}

// GuidePrice computes day rate × hire days.
func GuidePrice(dayRate float64, days int) float64 {
	if days < 1 {
		days = 1
	}
	return dayRate * float64(days)
}
