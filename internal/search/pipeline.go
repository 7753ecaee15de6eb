// Package search filters a collection of properties against a query and
// ranks the survivors by match score.
package search

import (
	"sort"

	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/rank"
)

// FilterAndRank drops every property that fails a gate, scores the
// survivors, and returns them ordered by descending score. Ties keep
// their original relative order. Input records are never mutated: scores
// are set on copies. A malformed query is rejected up front with
// domain.ErrInvalidQuery.
func FilterAndRank(properties []domain.Property, q domain.Query) ([]domain.Property, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	scorer := rank.MatchScorer{}

	kept := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if keep, _ := ShouldKeep(q, p); !keep {
			continue
		}
		score := scorer.Score(p, q)
		p.MatchScore = &score
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return *kept[i].MatchScore > *kept[j].MatchScore
	})

	return kept, nil
}
