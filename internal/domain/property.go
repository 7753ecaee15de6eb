package domain

// Category values for a listing.
const (
	CategoryHouse = "house"
	CategoryFlat  = "flat"
)

// Property is one normalized rental listing. Optional fields are pointers so
// that absent values serialize as explicit JSON nulls; the JSON/CSV consumers
// index by fixed field name and rely on every key being present.
type Property struct {
	Title       string   `json:"title"`
	Price       *float64 `json:"price"`
	Address     string   `json:"address"`
	Category    string   `json:"property_type"` // house | flat
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	Area        *float64 `json:"area_sqft"`
	Description string   `json:"description"` // truncated to 500 runes
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	ListedDate  *string  `json:"listed_date"`
	Location    string   `json:"location"`
	Postcode    *string  `json:"postcode"`
	HasGarden   *bool    `json:"has_garden"`  // tri-state: nil means no evidence
	HasBalcony  *bool    `json:"has_balcony"` // tri-state
	ImageURL    *string  `json:"image_url"`
	MatchScore  *float64 `json:"match_score"` // set only by search.FilterAndRank
}
