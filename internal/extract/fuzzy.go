package extract

import "strings"

// KeywordMatch decides whether keyword is present in body under typo
// tolerance. Short keywords (3 runes or fewer) match only as standalone
// words: near-matching on short strings produces too many accidents.
// Longer keywords match any body word by containment either way, or by an
// LCS similarity ratio of at least 0.75 (keywords up to 6 runes) or 0.70
// (7 runes and longer words tolerate proportionally more edits).
func KeywordMatch(keyword, body string) bool {
	if keyword == "" || body == "" {
		return false
	}

	words := strings.Fields(body)

	if len([]rune(keyword)) <= 3 {
		for _, w := range words {
			if w == keyword {
				return true
			}
		}
		return false
	}

	threshold := 0.75
	if len([]rune(keyword)) >= 7 {
		threshold = 0.70
	}

	for _, w := range words {
		if len([]rune(w)) < 3 {
			continue
		}
		if strings.Contains(w, keyword) || strings.Contains(keyword, w) {
			return true
		}
		if similarity(keyword, w) >= threshold {
			return true
		}
	}
	return false
}

// similarity is a normalized ratio in [0,1] based on the longest common
// subsequence of the two strings: 2*LCS / (len(a)+len(b)).
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	lcs := prev[len(rb)]

	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}
