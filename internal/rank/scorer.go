package rank

import "github.com/jgirolamo/house-trawler/internal/domain"

// Scorer rates how well a property matches a query, 0 to 100.
type Scorer interface {
	Score(p domain.Property, q domain.Query) float64
}
