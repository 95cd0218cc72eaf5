package wizard

import (
	"testing"

	"travelbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedTraveler() models.Traveler {
	return models.Traveler{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Age:       34,
	}
}

func TestValidateTravelersHonorsRequiredList(t *testing.T) {
	noLastName := namedTraveler()
	noLastName.LastName = ""

	// Not in the required list, so its absence must not reject.
	require.NoError(t, validateTravelers([]models.Traveler{noLastName}, []string{"firstName"}))

	err := validateTravelers([]models.Traveler{noLastName}, []string{"firstName", "lastName"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestValidateTravelersAgeOnlyWhenRequired(t *testing.T) {
	ageless := namedTraveler()
	ageless.Age = 0

	require.NoError(t, validateTravelers([]models.Traveler{ageless}, []string{"firstName", "lastName"}))

	err := validateTravelers([]models.Traveler{ageless}, []string{"firstName", "lastName", "age"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age is required")
}

func TestValidateTravelersPrimaryContact(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *models.Traveler)
	}{
		{"missing email", func(tr *models.Traveler) { tr.Email = "" }},
		{"malformed email", func(tr *models.Traveler) { tr.Email = "asha@nowhere" }},
		{"missing phone", func(tr *models.Traveler) { tr.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := namedTraveler()
			tt.mutate(&primary)
			err := validateTravelers([]models.Traveler{primary}, []string{"firstName", "lastName"})
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestValidateTravelersSecondaryContactOptional(t *testing.T) {
	secondary := namedTraveler()
	secondary.Email = ""
	secondary.Phone = ""

	err := validateTravelers([]models.Traveler{namedTraveler(), secondary}, []string{"firstName", "lastName"})
	assert.NoError(t, err)
}

func TestValidateTravelersEmptySlice(t *testing.T) {
	err := validateTravelers(nil, []string{"firstName"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
