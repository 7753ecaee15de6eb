package search

import (
	"regexp"
	"strings"

	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/extract"
)

var keywordSplitRe = regexp.MustCompile(`[,\s]+`)

// ShouldKeep runs the gate chain for one property: category exclusions,
// hard numeric ranges, feature equality, then the keyword gate. A property
// failing any gate is dropped without a score; reason names the gate.
func ShouldKeep(q domain.Query, p domain.Property) (keep bool, reason string) {
	combined := strings.ToLower(p.Title + " " + p.Description)

	if q.ExcludeStudentAccommodation && extract.IsStudentAccommodation(combined) {
		return false, "student_accommodation"
	}
	if q.ExcludeHouseShares && extract.IsHouseShare(combined) {
		return false, "house_share"
	}
	if q.ExcludeRetirement && extract.IsRetirement(combined) {
		return false, "retirement"
	}

	// Minimum gates treat unknown as failing; maximum gates let unknown
	// through. A record without data can't prove it meets a floor.
	if q.MinBedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms < *q.MinBedrooms) {
		return false, "min_bedrooms"
	}
	if q.MaxBedrooms != nil && p.Bedrooms != nil && *p.Bedrooms > *q.MaxBedrooms {
		return false, "max_bedrooms"
	}
	if q.MinBathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms < *q.MinBathrooms) {
		return false, "min_bathrooms"
	}
	if q.MaxBathrooms != nil && p.Bathrooms != nil && *p.Bathrooms > *q.MaxBathrooms {
		return false, "max_bathrooms"
	}
	if q.MinPrice != nil && (p.Price == nil || *p.Price < *q.MinPrice) {
		return false, "min_price"
	}
	if q.MaxPrice != nil && p.Price != nil && *p.Price > *q.MaxPrice {
		return false, "max_price"
	}

	// Hard equality on features: an unset record value equals neither
	// boolean and is dropped.
	if q.HasGarden != nil && (p.HasGarden == nil || *p.HasGarden != *q.HasGarden) {
		return false, "has_garden"
	}
	if q.HasBalcony != nil && (p.HasBalcony == nil || *p.HasBalcony != *q.HasBalcony) {
		return false, "has_balcony"
	}

	if !passesKeywords(q.Keywords, p) {
		return false, "keywords"
	}

	return true, ""
}

func passesKeywords(raw string, p domain.Property) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return true
	}

	keywords := splitKeywords(raw)
	if len(keywords) == 0 {
		return true
	}

	searchable := strings.ToLower(p.Title + " " + p.Address + " " + p.Description)

	matched := 0
	for _, kw := range keywords {
		// Substring-or-fuzzy, deliberately: at the gate a short keyword
		// may match inside a longer word ("it" in "kitchen"), while
		// KeywordMatch alone holds short keywords to standalone words.
		if strings.Contains(searchable, kw) || extract.KeywordMatch(kw, searchable) {
			matched++
		}
	}

	return matched >= requiredKeywordCount(len(keywords))
}

func splitKeywords(raw string) []string {
	var out []string
	for _, kw := range keywordSplitRe.Split(raw, -1) {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// requiredKeywordCount is how many keywords must match: one when there are
// at most two, otherwise half, rounding the half-count up when the keyword
// count is odd.
func requiredKeywordCount(n int) int {
	if n <= 2 {
		return 1
	}
	required := n / 2
	if n%2 == 1 {
		required++
	}
	return required
}
