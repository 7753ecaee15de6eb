package httpapi

import (
	"database/sql"
	"net/http"

	"github.com/jgirolamo/house-trawler/internal/store"
)

type StatsHandler struct {
	DB *sql.DB
}

type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
	Avg *float64 `json:"avg"`
}

type Stats struct {
	Total       int            `json:"total"`
	BySource    map[string]int `json:"by_source"`
	ByType      map[string]int `json:"by_type"`
	WithGarden  int            `json:"with_garden"`
	WithBalcony int            `json:"with_balcony"`
	PriceRange  PriceRange     `json:"price_range"`
}

func (h StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	props, err := store.ListProperties(r.Context(), h.DB, store.ListOpts{})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	st := Stats{
		Total:    len(props),
		BySource: map[string]int{},
		ByType:   map[string]int{},
	}

	var sum float64
	var n int
	for _, p := range props {
		st.BySource[p.Source]++
		st.ByType[p.Category]++
		if p.HasGarden != nil && *p.HasGarden {
			st.WithGarden++
		}
		if p.HasBalcony != nil && *p.HasBalcony {
			st.WithBalcony++
		}
		if p.Price == nil {
			continue
		}
		v := *p.Price
		sum += v
		n++
		if st.PriceRange.Min == nil || v < *st.PriceRange.Min {
			st.PriceRange.Min = &v
		}
		if st.PriceRange.Max == nil || v > *st.PriceRange.Max {
			st.PriceRange.Max = &v
		}
	}
	if n > 0 {
		avg := sum / float64(n)
		st.PriceRange.Avg = &avg
	}

	writeJSON(w, st)
}
