package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsed prices outside this range are treated as noise: cluttered markup
// concatenates digits and produces absurd values.
const (
	minPlausiblePrice = 100
	maxPlausiblePrice = 10_000_000
)

var pricePatterns = []struct {
	re     *regexp.Regexp
	weekly bool
}{
	{regexp.MustCompile(`(?i)£\s*([\d,]+)\s*(?:pcm|per month|pm)`), false},
	{regexp.MustCompile(`(?i)£\s*([\d,]+)\s*(?:pw|per week)`), true},
	{regexp.MustCompile(`£\s*([\d,]+)`), false},
}

// Price extracts a monthly rent from free text. Patterns are tried in
// priority order (monthly, weekly, bare amount), not document order; a
// weekly amount is converted to its monthly equivalent. Returns nil when
// nothing plausible is found.
func Price(text string) *float64 {
	if text == "" {
		return nil
	}

	for _, p := range pricePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			raw := strings.ReplaceAll(m[1], ",", "")
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			if p.weekly {
				v = v * 52 / 12
			}
			if v < minPlausiblePrice || v > maxPlausiblePrice {
				continue
			}
			return &v
		}
	}
	return nil
}
