package extract

import (
	"regexp"
	"strings"
)

// Category exclusion classifiers. Unlike the tri-state feature detectors
// these return plain booleans: they gate exclusions, and absence of
// evidence means "do not exclude".

var studentIndicators = compileAll(
	`\bstudent\b`,
	`\bstudent accommodation\b`,
	`\bstudent housing\b`,
	`\bstudent flat\b`,
	`\bstudent room\b`,
	`\buniversity accommodation\b`,
	`\bhall of residence\b`,
	`\bstudent halls\b`,
	`\bstudent let\b`,
	`\bstudent property\b`,
	`\bfor students\b`,
	`\bstudent only\b`,
)

var houseShareIndicators = compileAll(
	`\bhouse share\b`,
	`\bhouse sharing\b`,
	`\bshared house\b`,
	`\bshare house\b`,
	`\broom in shared house\b`,
	`\bshared accommodation\b`,
	`\broom to rent\b`,
	`\bsingle room\b`,
	`\bdouble room\b`,
	`\broom available\b`,
	`\broom for rent\b`,
	`\bshare of\b`,
	`\bsharing with\b`,
)

var retirementIndicators = compileAll(
	`\bretirement\b`,
	`\bretirement property\b`,
	`\bretirement flat\b`,
	`\bretirement home\b`,
	`\bretirement housing\b`,
	`\bover 55\b`,
	`\bover 60\b`,
	`\bover 65\b`,
	`\bage restricted\b`,
	`\bsenior living\b`,
	`\bsheltered accommodation\b`,
	`\bretirement village\b`,
	`\bretirement community\b`,
)

// IsStudentAccommodation reports whether the text reads like a student let.
func IsStudentAccommodation(text string) bool {
	return anyMatch(strings.ToLower(text), studentIndicators)
}

// IsHouseShare reports whether the text reads like a room in a shared house
// rather than a whole property.
func IsHouseShare(text string) bool {
	return anyMatch(strings.ToLower(text), houseShareIndicators)
}

// IsRetirement reports whether the text reads like age-restricted housing.
func IsRetirement(text string) bool {
	return anyMatch(strings.ToLower(text), retirementIndicators)
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func anyMatch(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
