package extract

import (
	"regexp"
	"strings"
)

// Feature detection is table-driven: each feature carries a positive and a
// negative indicator list consumed by one generic any-match routine, so the
// phrase lists stay the single source of truth.

var gardenPositive = compileAll(
	`\bgarden\b`,
	`\boutdoor space\b`,
	`\bpatio\b`,
	`\bterrace\b`,
	`\byard\b`,
	`\bcourtyard\b`,
)

var gardenNegative = compileAll(
	`no garden`,
	`without garden`,
	`no outdoor space`,
)

var balconyPositive = compileAll(
	`\bbalcony\b`,
	`\bbalconies\b`,
	`\bterrace\b`,
)

var balconyNegative = compileAll(
	`no balcony`,
	`without balcony`,
)

// Garden reports whether the text mentions a garden. The positive list is
// checked before the negative one, so "no garden but has a terrace" is
// still true. Nil means no evidence either way; never assume false.
func Garden(text string) *bool {
	return triState(text, gardenPositive, gardenNegative)
}

// Balcony reports whether the text mentions a balcony, with the same
// tri-state semantics as Garden.
func Balcony(text string) *bool {
	return triState(text, balconyPositive, balconyNegative)
}

func triState(text string, positive, negative []*regexp.Regexp) *bool {
	if text == "" {
		return nil
	}
	text = strings.ToLower(text)

	// Positive evidence wins, but the feature word inside a negated phrase
	// ("no garden") is not positive evidence. Strip the negated spans, scan
	// what remains for positives, then fall back to the negatives on the
	// full text.
	remainder := text
	for _, re := range negative {
		remainder = re.ReplaceAllString(remainder, " ")
	}
	if anyMatch(remainder, positive) {
		v := true
		return &v
	}
	if anyMatch(text, negative) {
		v := false
		return &v
	}
	return nil
}
