package sites

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

const spareroomResultsHTML = `
<html><body>
  <article class="listing-card">
    <a class="listing-card__link" href="/flatshare/flatshare_detail.pl?flatshare_id=123"
       title="2 bed garden flat in Hackney">text</a>
    <span class="listing-card__price">&pound;1,800 pcm</span>
    <span class="listing-card__location">Hackney, London E8 2AA</span>
    <p class="listing-card__description">Bright 2 bedroom flat, 1 bathroom, private garden.</p>
    <img src="/photos/123.jpg">
  </article>
  <article class="listing-card">
    <a class="listing-card__link" href="/flatshare/flatshare_detail.pl?flatshare_id=456"
       title="Studio near station">text</a>
    <span class="listing-card__price">&pound;950 pcm</span>
  </article>
  <article class="listing-card">
    <a href="/flatshare/flatshare_detail.pl?flatshare_id=789">ok</a>
  </article>
</body></html>`

func TestSpareroomParse(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(spareroomResultsHTML))
	require.NoError(t, err)

	s := NewSpareroom(Options{})
	got := s.parse(doc, "London")

	// third card has no usable title
	require.Len(t, got, 2)

	p := got[0]
	assert.Equal(t, "2 bed garden flat in Hackney", p.Title)
	assert.Equal(t, "Spareroom", p.Source)
	assert.Equal(t, "London", p.Location)
	assert.Equal(t, "Hackney, London E8 2AA", p.Address)
	assert.Contains(t, p.URL, "spareroom.co.uk/flatshare/flatshare_detail.pl")
	require.NotNil(t, p.Price)
	assert.Equal(t, 1800.0, *p.Price)
	require.NotNil(t, p.Bedrooms)
	assert.Equal(t, 2, *p.Bedrooms)
	require.NotNil(t, p.HasGarden)
	assert.True(t, *p.HasGarden)
	require.NotNil(t, p.Postcode)
	assert.Equal(t, "E8 2AA", *p.Postcode)
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "https://www.spareroom.co.uk/photos/123.jpg", *p.ImageURL)

	assert.Equal(t, "Studio near station", got[1].Title)
	require.NotNil(t, got[1].Price)
	assert.Equal(t, 950.0, *got[1].Price)
}

func TestParseRespectsMaxListings(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(spareroomResultsHTML))
	require.NoError(t, err)

	s := NewSpareroom(Options{MaxListings: 1})
	got := s.parse(doc, "London")
	require.Len(t, got, 1)
	assert.Equal(t, "2 bed garden flat in Hackney", got[0].Title)
}

func TestSearchURLsCarryFilters(t *testing.T) {
	minPrice, maxPrice := 800.0, 2000.0
	beds := 2
	q := domain.Query{MinPrice: &minPrice, MaxPrice: &maxPrice, MinBedrooms: &beds}

	sr := spareroomSearchURLs("North London", q)
	require.NotEmpty(t, sr)
	assert.Contains(t, sr[0], "search=North+London")
	assert.Contains(t, sr[0], "min_rent=800")
	assert.Contains(t, sr[0], "max_rent=2000")
	assert.Contains(t, sr[0], "bedrooms=2")
	assert.Contains(t, sr[0], "flatshare_type=whole_property")

	or := openrentSearchURLs("Leeds", q)
	require.Len(t, or, 1)
	assert.Contains(t, or[0], "term=Leeds")
	assert.Contains(t, or[0], "minPrice=800")
	assert.Contains(t, or[0], "maxPrice=2000")

	gt := gumtreeSearchURLs("Leeds", q)
	assert.Contains(t, gt[0], "q=2+bedroom+property+rent+Leeds")
	assert.Contains(t, gt[0], "category=property-for-rent")

	otm := onTheMarketSearchURLs("Bristol", q)
	assert.Contains(t, otm[0], "locationIdentifier=Bristol")
	assert.Contains(t, otm[0], "minPrice=800")
}

func TestAllReturnsEverySite(t *testing.T) {
	scrapers := All(Options{})
	require.Len(t, scrapers, 5)

	names := make(map[string]bool, len(scrapers))
	for _, s := range scrapers {
		names[s.Name()] = true
	}
	for _, want := range []string{"Spareroom", "OpenRent", "Gumtree", "OnTheMarket", "PrimeLocation"} {
		assert.True(t, names[want], want)
	}
}
