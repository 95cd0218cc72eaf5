package models

// SearchQuery holds the wizard's search-form input. Dates use "YYYY-MM-DD".
type SearchQuery struct {
	Kind        TransportKind `json:"kind"`
	Origin      string        `json:"origin,omitempty"`
	Destination string        `json:"destination"`
	Date        string        `json:"date,omitempty"`     // travel date for flights, buses, trains and guides
	CheckIn     string        `json:"checkIn,omitempty"`  // hotels and multi-day guide hires
	CheckOut    string        `json:"checkOut,omitempty"`
	Passengers  int           `json:"passengers"`
	Rooms       int           `json:"rooms,omitempty"`
}
