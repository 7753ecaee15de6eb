package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

func TestBuild(t *testing.T) {
	p := Build(Fragments{
		Source:      "OpenRent",
		Location:    "London",
		URL:         "https://www.openrent.co.uk/properties/123",
		ImageURL:    "https://img.example.com/1.jpg",
		Title:       "2 bed flat with balcony",
		Description: "Bright two bedroom flat, private garden, close to the tube.",
		AllText:     "2 bed flat with balcony £1,400 pcm 1 bath private garden",
		Address:     "14 Example Road, London SW1A 1AA",
	})

	assert.Equal(t, "OpenRent", p.Source)
	assert.Equal(t, "London", p.Location)
	assert.Equal(t, domain.CategoryFlat, p.Category)

	require.NotNil(t, p.Price)
	assert.Equal(t, 1400.0, *p.Price)
	require.NotNil(t, p.Bedrooms)
	assert.Equal(t, 2, *p.Bedrooms)
	require.NotNil(t, p.Bathrooms)
	assert.Equal(t, 1, *p.Bathrooms)

	require.NotNil(t, p.HasGarden)
	assert.True(t, *p.HasGarden)
	require.NotNil(t, p.HasBalcony)
	assert.True(t, *p.HasBalcony)

	require.NotNil(t, p.Postcode)
	assert.Equal(t, "SW1A 1AA", *p.Postcode)
	require.NotNil(t, p.ImageURL)

	assert.Nil(t, p.MatchScore, "score belongs to the search pipeline")
	assert.Nil(t, p.ListedDate)
}

func TestBuildFallsBackToTitle(t *testing.T) {
	// No all-text and no description: numeric and feature extraction fall
	// back to the title, and the title doubles as the description.
	p := Build(Fragments{
		Source:   "Gumtree",
		Location: "Leeds",
		Title:    "3 bedroom house with garden £995 pcm",
	})

	require.NotNil(t, p.Bedrooms)
	assert.Equal(t, 3, *p.Bedrooms)
	require.NotNil(t, p.Price)
	assert.Equal(t, 995.0, *p.Price)
	require.NotNil(t, p.HasGarden)
	assert.True(t, *p.HasGarden)
	assert.Equal(t, domain.CategoryHouse, p.Category)
	assert.Equal(t, p.Title, p.Description)
}

func TestBuildEmptyFragments(t *testing.T) {
	p := Build(Fragments{Source: "Spareroom", Location: "York"})

	assert.Nil(t, p.Price)
	assert.Nil(t, p.Bedrooms)
	assert.Nil(t, p.Bathrooms)
	assert.Nil(t, p.HasGarden)
	assert.Nil(t, p.HasBalcony)
	assert.Nil(t, p.Postcode)
	assert.Nil(t, p.ImageURL)
	assert.Equal(t, domain.CategoryHouse, p.Category)
}

func TestBuildTruncatesDescription(t *testing.T) {
	long := strings.Repeat("very spacious ", 100) // 1400 chars
	p := Build(Fragments{Title: "flat", Description: long})

	assert.Len(t, []rune(p.Description), 500)
}
