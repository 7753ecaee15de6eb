package extract

import (
	"regexp"
	"strings"
)

// UK postcode grammar: one or two letters, one or two digits, an optional
// letter, optional space, one digit, two letters (e.g. SW1A 1AA).
var postcodeRe = regexp.MustCompile(`[A-Z]{1,2}\d{1,2}[A-Z]?\s?\d[A-Z]{2}`)

// Postcode returns the first UK postcode in the text, or nil.
func Postcode(text string) *string {
	if text == "" {
		return nil
	}
	m := postcodeRe.FindString(strings.ToUpper(text))
	if m == "" {
		return nil
	}
	return &m
}
