package rank

import (
	"math"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

// MatchScorer computes the additive suitability score: price up to 30,
// bedrooms and bathrooms up to 20 each, garden and balcony up to 10 each,
// plus a data-completeness bonus of up to 10. Each term is clamped
// internally so the sum cannot leave [0,100], but the total is clamped
// anyway as an invariant.
type MatchScorer struct{}

func (MatchScorer) Score(p domain.Property, q domain.Query) float64 {
	score := priceScore(p, q)
	score += roomScore(p.Bedrooms, q.MinBedrooms, q.MaxBedrooms)
	score += roomScore(p.Bathrooms, q.MinBathrooms, q.MaxBathrooms)
	score += featureScore(p.HasGarden, q.HasGarden)
	score += featureScore(p.HasBalcony, q.HasBalcony)
	score += completenessBonus(p)

	return math.Min(100, math.Max(0, score))
}

func priceScore(p domain.Property, q domain.Query) float64 {
	if p.Price == nil {
		return 5 // missing data, not a hard fail
	}
	price := *p.Price

	switch {
	case q.MinPrice != nil && q.MaxPrice != nil:
		min, max := *q.MinPrice, *q.MaxPrice
		if max == min {
			if price == min {
				return 30
			}
			return 0
		}
		ideal := (min + max) / 2
		return math.Max(0, 30*(1-math.Abs(price-ideal)/(max-min)))
	case q.MinPrice != nil:
		if price >= *q.MinPrice {
			return 30
		}
		return 0
	case q.MaxPrice != nil:
		if price <= *q.MaxPrice {
			return 30
		}
		return 0
	default:
		return 15
	}
}

// roomScore is the shared bedrooms/bathrooms rule. With no bound in the
// query, having data at all is worth a flat 10. With a bound, a missing
// value scores 2, an out-of-range value 5, an in-range value 15, and 20
// when it lands exactly on the midpoint of the range (or on the minimum
// when no maximum is given).
func roomScore(value, min, max *int) float64 {
	if min == nil && max == nil {
		if value != nil {
			return 10
		}
		return 0
	}
	if value == nil {
		return 2
	}

	lo := 0
	if min != nil {
		lo = *min
	}
	v := *value
	if v < lo || (max != nil && v > *max) {
		return 5
	}

	ideal := float64(lo)
	if max != nil {
		ideal = (float64(lo) + float64(*max)) / 2
	}
	if float64(v) == ideal {
		return 20
	}
	return 15
}

func featureScore(have, want *bool) float64 {
	switch {
	case want == nil:
		return 0
	case *want:
		switch {
		case have == nil:
			return 3 // no evidence either way: benefit of the doubt
		case *have:
			return 10
		default:
			return 0
		}
	default:
		// not required, but having it is still a small bonus
		if have != nil && *have {
			return 3
		}
		return 0
	}
}

func completenessBonus(p domain.Property) float64 {
	bonus := 0.0
	if p.Price != nil {
		bonus += 2
	}
	if p.Bedrooms != nil {
		bonus += 2
	}
	if p.Bathrooms != nil {
		bonus += 2
	}
	if p.ImageURL != nil && *p.ImageURL != "" {
		bonus += 2
	}
	if p.Postcode != nil && *p.Postcode != "" {
		bonus += 2
	}
	return bonus
}
