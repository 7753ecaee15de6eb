package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

func intp(v int) *int         { return &v }
func f64p(v float64) *float64 { return &v }
func boolp(v bool) *bool      { return &v }
func strp(v string) *string   { return &v }

func TestPriceScore(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		min   *float64
		max   *float64
		want  float64
	}{
		{"midpoint of range scores full marks", f64p(1500), f64p(1000), f64p(2000), 30},
		{"edge of range scores half", f64p(1000), f64p(1000), f64p(2000), 15},
		{"far outside range scores zero", f64p(4000), f64p(1000), f64p(2000), 0},
		{"degenerate range, exact match", f64p(1200), f64p(1200), f64p(1200), 30},
		{"degenerate range, miss", f64p(1300), f64p(1200), f64p(1200), 0},
		{"only min, above", f64p(900), f64p(500), nil, 30},
		{"only min, below", f64p(400), f64p(500), nil, 0},
		{"only max, below", f64p(900), nil, f64p(1000), 30},
		{"only max, above", f64p(1100), nil, f64p(1000), 0},
		{"no bounds, flat 15", f64p(750), nil, nil, 15},
		{"no price data, 5", nil, f64p(1000), f64p(2000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Property{Price: tt.price}
			q := domain.Query{MinPrice: tt.min, MaxPrice: tt.max}
			assert.InDelta(t, tt.want, priceScore(p, q), 1e-9)
		})
	}
}

func TestRoomScore(t *testing.T) {
	tests := []struct {
		name  string
		value *int
		min   *int
		max   *int
		want  float64
	}{
		{"no bound, data present", intp(2), nil, nil, 10},
		{"no bound, no data", nil, nil, nil, 0},
		{"bound, no data", nil, intp(2), intp(3), 2},
		{"below min", intp(1), intp(2), intp(3), 5},
		{"above max", intp(5), intp(2), intp(3), 5},
		{"in range, not midpoint", intp(2), intp(2), intp(3), 15},
		{"exact midpoint", intp(3), intp(2), intp(4), 20},
		{"min only, equals min", intp(2), intp(2), nil, 20},
		{"min only, above min", intp(4), intp(2), nil, 15},
		{"max only, within", intp(1), nil, intp(3), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, roomScore(tt.value, tt.min, tt.max), 1e-9)
		})
	}
}

func TestFeatureScore(t *testing.T) {
	tests := []struct {
		name string
		have *bool
		want *bool
		out  float64
	}{
		{"required and present", boolp(true), boolp(true), 10},
		{"required and absent", boolp(false), boolp(true), 0},
		{"required, no evidence", nil, boolp(true), 3},
		{"not required but present", boolp(true), boolp(false), 3},
		{"not required, absent", boolp(false), boolp(false), 0},
		{"not required, no evidence", nil, boolp(false), 0},
		{"no opinion", boolp(true), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.out, featureScore(tt.have, tt.want), 1e-9)
		})
	}
}

// Mirrors the full worked example: price at the midpoint (30), bedrooms at
// the range minimum (15), bathrooms data-presence bonus (10), garden
// required and present (10), balcony not asked about (0), all five
// completeness fields set (10) = 75.
func TestScoreEndToEnd(t *testing.T) {
	p := domain.Property{
		Price:      f64p(1500),
		Bedrooms:   intp(2),
		Bathrooms:  intp(1),
		HasGarden:  boolp(true),
		HasBalcony: boolp(false),
		Postcode:   strp("SW1A 1AA"),
		ImageURL:   strp("https://img.example.com/1.jpg"),
	}
	q := domain.Query{
		MinPrice:    f64p(1000),
		MaxPrice:    f64p(2000),
		MinBedrooms: intp(2),
		MaxBedrooms: intp(3),
		HasGarden:   boolp(true),
	}

	assert.InDelta(t, 75, MatchScorer{}.Score(p, q), 1e-9)
}

func TestScoreClampedToRange(t *testing.T) {
	got := MatchScorer{}.Score(domain.Property{}, domain.Query{})
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}
