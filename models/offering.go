package models

import "time"

// TransportKind discriminates the bookable product families.
type TransportKind string

const (
	KindFlight TransportKind = "flight"
	KindHotel  TransportKind = "hotel"
	KindBus    TransportKind = "bus"
	KindTrain  TransportKind = "train"
	KindGuide  TransportKind = "guide"
)

// Valid reports whether k is one of the known transport kinds.
func (k TransportKind) Valid() bool {
	switch k {
	case KindFlight, KindHotel, KindBus, KindTrain, KindGuide:
		return true
	}
	return false
}

// Offering represents a single bookable unit returned by search: a flight,
// a hotel room category, a bus or train departure, or a guide slot.
// Offerings are immutable once fetched; they are owned by the search catalogue.
type Offering struct {
	ID          string        `bson:"id" json:"id"`
	Kind        TransportKind `bson:"kind" json:"kind"`
	Operator    string        `bson:"operator" json:"operator"`                       // airline, hotel name, bus operator, railway, guide name
	Origin      string        `bson:"origin,omitempty" json:"origin,omitempty"`       // empty for hotels and guides
	Destination string        `bson:"destination" json:"destination"`                 // doubles as location for hotels and guides
	DepartAt    time.Time     `bson:"depart_at,omitempty" json:"departAt,omitempty"`  // slot window start
	ArriveAt    time.Time     `bson:"arrive_at,omitempty" json:"arriveAt,omitempty"`  // slot window end
	UnitPrice   float64       `bson:"unit_price" json:"unitPrice"`                    // base/nightly/day rate per unit
	Currency    string        `bson:"currency" json:"currency"`                       // ISO code, e.g. "INR"
	Capacity    int           `bson:"capacity" json:"capacity"`                       // seats / rooms / party size remaining
	Classes     []string      `bson:"classes,omitempty" json:"classes,omitempty"`     // bookable classes or room types
}
