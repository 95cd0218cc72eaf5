package wizard

import (
	"regexp"
	"strings"

	"travelbook/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateTravelers checks the details-step guard: every traveler carries the
// fields the transport type requires, and the primary traveler carries a
// well-formed contact email.
func validateTravelers(travelers []models.Traveler, required []string) error {
	if len(travelers) == 0 {
		return NewValidationError("at least one traveler is required")
	}

	for i, t := range travelers {
		for _, field := range required {
			switch field {
			case "firstName":
				if strings.TrimSpace(t.FirstName) == "" {
					return NewValidationErrorf("traveler %d: first name is required", i+1)
				}
			case "lastName":
				if strings.TrimSpace(t.LastName) == "" {
					return NewValidationErrorf("traveler %d: last name is required", i+1)
				}
			case "age":
				if t.Age <= 0 {
					return NewValidationErrorf("traveler %d: age is required", i+1)
				}
			}
		}
	}

	primary := travelers[0]
	if strings.TrimSpace(primary.Email) == "" {
		return NewValidationError("primary traveler: email is required")
	}
	if !emailPattern.MatchString(primary.Email) {
		return NewValidationError("primary traveler: email is not valid")
	}
	if strings.TrimSpace(primary.Phone) == "" {
		return NewValidationError("primary traveler: phone is required")
	}
	return nil
}
