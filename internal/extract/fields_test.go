package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBedrooms(t *testing.T) {
	tests := []struct {
		text string
		want *int
	}{
		{"2 bed flat", intp(2)},
		{"Spacious 3 Bedroom house", intp(3)},
		{"lovely home", nil},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Bedrooms(tt.text), "Bedrooms(%q)", tt.text)
	}
}

func TestBathrooms(t *testing.T) {
	got := Bathrooms("4 bed 2 bath maisonette")
	require.NotNil(t, got)
	assert.Equal(t, 2, *got)

	assert.Nil(t, Bathrooms("studio flat"))
}

func TestGardenTriState(t *testing.T) {
	tests := []struct {
		text string
		want *bool
	}{
		{"private garden included", boolp(true)},
		{"large patio to the rear", boolp(true)},
		{"no garden", boolp(false)},
		{"without garden unfortunately", boolp(false)},
		{"no outdoor space", boolp(false)},
		{"modern kitchen", nil},
		{"", nil},
		// positive check precedes negative
		{"no garden but has a terrace", boolp(true)},
		{"no garden, small courtyard to rear", boolp(true)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Garden(tt.text), "Garden(%q)", tt.text)
	}
}

func TestBalconyTriState(t *testing.T) {
	tests := []struct {
		text string
		want *bool
	}{
		{"Juliet balcony off the lounge", boolp(true)},
		{"two balconies", boolp(true)},
		{"no balcony", boolp(false)},
		{"without balcony", boolp(false)},
		{"no balcony but a large roof terrace", boolp(true)},
		{"ground floor flat", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Balcony(tt.text), "Balcony(%q)", tt.text)
	}
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsStudentAccommodation("purpose built student accommodation"))
	assert.True(t, IsStudentAccommodation("Hall of Residence near campus"))
	assert.False(t, IsStudentAccommodation("family home"))
	assert.False(t, IsStudentAccommodation(""))

	assert.True(t, IsHouseShare("double room in friendly house share"))
	assert.True(t, IsHouseShare("Room to rent in zone 2"))
	assert.False(t, IsHouseShare("whole flat to let"))
	assert.False(t, IsHouseShare(""))

	assert.True(t, IsRetirement("retirement village with warden"))
	assert.True(t, IsRetirement("over 55 only"))
	assert.False(t, IsRetirement("young professional area"))
	assert.False(t, IsRetirement(""))
}

func TestPostcode(t *testing.T) {
	tests := []struct {
		text string
		want *string
	}{
		{"Flat 3, Whitehall, London SW1A 1AA", strp("SW1A 1AA")},
		{"close to m1 1ae tram stop", strp("M1 1AE")},
		{"London", nil},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Postcode(tt.text), "Postcode(%q)", tt.text)
	}
}

func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
func strp(v string) *string { return &v }
