package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickIconMatchesKeywords(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Expect thunderstorms in the afternoon.", "storm"},
		{"Light snow flurries through the morning.", "snow"},
		{"Scattered showers, bring a jacket.", "rain"},
		{"Gusty conditions, not ideal for badminton.", "wind"},
		{"Overcast all day with little change.", "cloud"},
		{"Clear skies, perfect for the outdoor courts.", "sun"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PickIcon(tc.text), "text: %s", tc.text)
	}
}

func TestPickIconSpecificConditionWins(t *testing.T) {
	// Storm outranks rain even when both appear.
	assert.Equal(t, "storm", PickIcon("Heavy rain with thunder expected."))
	// Rain outranks sun.
	assert.Equal(t, "rain", PickIcon("Sunny start, rain later."))
}

func TestPickIconDefaultsToPartlyCloudy(t *testing.T) {
	assert.Equal(t, "partly-cloudy", PickIcon("Conditions look unremarkable today."))
	assert.Equal(t, "partly-cloudy", PickIcon(""))
}

func TestPickIconIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "storm", PickIcon("THUNDER approaching"))
}
