package models

// Traveler is one passenger or guest record collected at the details step.
// The first traveler is the primary contact and must carry email and phone.
type Traveler struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Age       int    `bson:"age,omitempty" json:"age,omitempty"`
}
