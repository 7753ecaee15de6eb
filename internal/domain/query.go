package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery marks a query whose bounds are out of domain.
var ErrInvalidQuery = errors.New("invalid query")

// Query holds a caller's search preferences. Nil pointer fields mean
// "no opinion"; the exclude flags default to false (do not exclude).
type Query struct {
	MinPrice     *float64 `json:"min_price" yaml:"min_price"`
	MaxPrice     *float64 `json:"max_price" yaml:"max_price"`
	MinBedrooms  *int     `json:"min_bedrooms" yaml:"min_bedrooms"`
	MaxBedrooms  *int     `json:"max_bedrooms" yaml:"max_bedrooms"`
	MinBathrooms *int     `json:"min_bathrooms" yaml:"min_bathrooms"`
	MaxBathrooms *int     `json:"max_bathrooms" yaml:"max_bathrooms"`
	HasGarden    *bool    `json:"has_garden" yaml:"has_garden"`
	HasBalcony   *bool    `json:"has_balcony" yaml:"has_balcony"`

	ExcludeStudentAccommodation bool `json:"exclude_student_accommodation" yaml:"exclude_student_accommodation"`
	ExcludeHouseShares          bool `json:"exclude_house_shares" yaml:"exclude_house_shares"`
	ExcludeRetirement           bool `json:"exclude_retirement" yaml:"exclude_retirement"`

	Keywords string `json:"keywords" yaml:"keywords"`
}

// Validate rejects out-of-domain bounds eagerly. Source text is tolerated
// however malformed it is, query shapes are not.
func (q Query) Validate() error {
	if q.MinPrice != nil && *q.MinPrice < 0 {
		return fmt.Errorf("%w: min_price %v is negative", ErrInvalidQuery, *q.MinPrice)
	}
	if q.MaxPrice != nil && *q.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price %v is negative", ErrInvalidQuery, *q.MaxPrice)
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return fmt.Errorf("%w: min_price %v exceeds max_price %v", ErrInvalidQuery, *q.MinPrice, *q.MaxPrice)
	}
	if err := validateIntRange("bedrooms", q.MinBedrooms, q.MaxBedrooms); err != nil {
		return err
	}
	return validateIntRange("bathrooms", q.MinBathrooms, q.MaxBathrooms)
}

func validateIntRange(field string, min, max *int) error {
	if min != nil && *min < 0 {
		return fmt.Errorf("%w: min_%s %d is negative", ErrInvalidQuery, field, *min)
	}
	if max != nil && *max < 0 {
		return fmt.Errorf("%w: max_%s %d is negative", ErrInvalidQuery, field, *max)
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: min_%s %d exceeds max_%s %d", ErrInvalidQuery, field, *min, field, *max)
	}
	return nil
}
