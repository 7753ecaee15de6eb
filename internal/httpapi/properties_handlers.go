package httpapi

import (
	"database/sql"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/search"
	"github.com/jgirolamo/house-trawler/internal/store"
)

type PropertiesHandler struct {
	DB *sql.DB
}

// List returns stored records filtered and ranked by the query parameters.
// With no parameters every record comes back ranked on data completeness.
func (h PropertiesHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q, err := queryFromParams(params)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_query", err.Error())
		return
	}

	limit, _ := strconv.Atoi(params.Get("limit"))

	props, err := store.ListProperties(r.Context(), h.DB, store.ListOpts{
		Source: params.Get("source"),
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	ranked, err := search.FilterAndRank(props, q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			WriteError(w, r, http.StatusBadRequest, "invalid_query", err.Error())
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "search_error", err.Error())
		return
	}

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []domain.Property{}
	}
	writeJSON(w, ranked)
}

// Export streams every stored record as JSON or CSV.
func (h PropertiesHandler) Export(w http.ResponseWriter, r *http.Request) {
	props, err := store.ListProperties(r.Context(), h.DB, store.ListOpts{})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="properties.csv"`)
		_ = store.WriteCSV(w, props)
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		_ = store.WriteJSON(w, props)
	default:
		WriteError(w, r, http.StatusBadRequest, "bad_format", "format must be json or csv")
	}
}

func queryFromParams(params url.Values) (domain.Query, error) {
	var q domain.Query
	var err error

	if q.MinPrice, err = floatParam(params, "min_price"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = floatParam(params, "max_price"); err != nil {
		return q, err
	}
	if q.MinBedrooms, err = intParam(params, "min_bedrooms"); err != nil {
		return q, err
	}
	if q.MaxBedrooms, err = intParam(params, "max_bedrooms"); err != nil {
		return q, err
	}
	if q.MinBathrooms, err = intParam(params, "min_bathrooms"); err != nil {
		return q, err
	}
	if q.MaxBathrooms, err = intParam(params, "max_bathrooms"); err != nil {
		return q, err
	}
	if q.HasGarden, err = boolParam(params, "has_garden"); err != nil {
		return q, err
	}
	if q.HasBalcony, err = boolParam(params, "has_balcony"); err != nil {
		return q, err
	}

	q.ExcludeStudentAccommodation = params.Get("exclude_student_accommodation") == "true"
	q.ExcludeHouseShares = params.Get("exclude_house_shares") == "true"
	q.ExcludeRetirement = params.Get("exclude_retirement") == "true"
	q.Keywords = params.Get("keywords")

	return q, nil
}

func floatParam(params url.Values, key string) (*float64, error) {
	s := params.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, badParam(key, s)
	}
	return &v, nil
}

func intParam(params url.Values, key string) (*int, error) {
	s := params.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, badParam(key, s)
	}
	return &v, nil
}

func boolParam(params url.Values, key string) (*bool, error) {
	s := params.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, badParam(key, s)
	}
	return &v, nil
}

func badParam(key, val string) error {
	return errors.New("parameter " + key + ": cannot parse " + strconv.Quote(val))
}
