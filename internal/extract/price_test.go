package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"£1,200 pcm", 1200},
		{"£950 per month", 950},
		{"£300 pw", 1300}, // 300 * 52 / 12
		{"£250 per week", 1083.3333333333333},
		{"£1500", 1500},
		{"Stunning flat £2,100 pcm available now", 2100},
	}

	for _, tt := range tests {
		got := Price(tt.text)
		require.NotNil(t, got, "Price(%q)", tt.text)
		assert.InDelta(t, tt.want, *got, 0.0001, "Price(%q)", tt.text)
	}
}

func TestPriceNoMatch(t *testing.T) {
	tests := []string{
		"",
		"lovely home with garden",
		"£50",         // below plausible floor
		"£99,999,999", // above plausible ceiling
		"1200 pcm",    // no currency marker
	}

	for _, text := range tests {
		assert.Nil(t, Price(text), "Price(%q)", text)
	}
}

func TestPricePatternPriority(t *testing.T) {
	// The monthly-qualified amount wins even when a bare amount appears
	// earlier in the text.
	got := Price("Deposit £2,000. Rent £900 pcm.")
	require.NotNil(t, got)
	assert.Equal(t, 900.0, *got)
}

func TestPriceSkipsImplausibleAndKeepsScanning(t *testing.T) {
	// The first bare amount is concatenated-digit noise; scanning continues
	// to the next candidate within the same pattern.
	got := Price("£99999999 £1,250")
	require.NotNil(t, got)
	assert.Equal(t, 1250.0, *got)
}
