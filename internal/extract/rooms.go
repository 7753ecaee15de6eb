package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bedroomsRe  = regexp.MustCompile(`(\d+)\s*(?:bed|bedroom)`)
	bathroomsRe = regexp.MustCompile(`(\d+)\s*(?:bath|bathroom)`)
)

// Bedrooms returns the first "<n> bed"/"<n> bedroom" count in the text,
// or nil when none is present. Extraction is best-effort: unset over wrong.
func Bedrooms(text string) *int {
	return firstCount(bedroomsRe, text)
}

// Bathrooms returns the first "<n> bath"/"<n> bathroom" count in the text.
func Bathrooms(text string) *int {
	return firstCount(bathroomsRe, text)
}

func firstCount(re *regexp.Regexp, text string) *int {
	if text == "" {
		return nil
	}
	m := re.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
