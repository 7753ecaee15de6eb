package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMatchTypoTolerance(t *testing.T) {
	tests := []struct {
		keyword string
		body    string
		want    bool
	}{
		// one typo in a 6-char word: similarity 10/12 >= 0.75
		{"garden", "lovely graden flat", true},
		{"garden", "garden flat", true},
		{"garden", "modern kitchen", false},
		// containment either way short-circuits the ratio
		{"balcony", "balconies on both sides", true},
		{"furnished", "part furn flat", true}, // body word contained in keyword
		// 7+ chars tolerate two edits (threshold 0.70)
		{"spacious", "spaciois rooms", true},
		{"spacious", "cramped rooms", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KeywordMatch(tt.keyword, tt.body),
			"KeywordMatch(%q, %q)", tt.keyword, tt.body)
	}
}

func TestKeywordMatchShortKeywords(t *testing.T) {
	// Keywords of three runes or fewer only match standalone words.
	assert.False(t, KeywordMatch("it", "kit"))
	assert.True(t, KeywordMatch("it", "love it here"))
	assert.False(t, KeywordMatch("gym", "gymnasium"))
	assert.True(t, KeywordMatch("gym", "on-site gym included"))
}

func TestKeywordMatchEmpty(t *testing.T) {
	assert.False(t, KeywordMatch("", "anything"))
	assert.False(t, KeywordMatch("garden", ""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, similarity("garden", "garden"), 1e-9)
	assert.InDelta(t, 10.0/12.0, similarity("garden", "graden"), 1e-9)
	assert.InDelta(t, 0.0, similarity("abc", "xyz"), 1e-9)
}
