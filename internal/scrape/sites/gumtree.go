package sites

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

var gumtreeDetailRe = regexp.MustCompile(`(?i)/property-for-rent/`)

func NewGumtree(opts Options) *Scraper {
	return newScraper(Spec{
		Name:       "Gumtree",
		BaseURL:    "https://www.gumtree.com",
		DetailPath: gumtreeDetailRe,
		ListingSelectors: []string{
			`article[class*="listing-tile"]`,
			`article[class*="listing"]`,
			`article[class*="result"]`,
			`div[class*="listing"]`,
			`div[class*="result"]`,
		},
		PriceSelectors: []string{
			`span[class*="price"]`,
			`div[class*="price"]`,
		},
		AddressSelectors: []string{
			`span[class*="location"]`,
			`div[class*="location"]`,
			`p[class*="address"]`,
		},
		DescSelectors: []string{
			`p[class*="description"]`,
			`p[class*="summary"]`,
		},
		SearchURLs: gumtreeSearchURLs,
	}, opts)
}

// Gumtree has no structured location field, so the location and the
// bedrooms bound both go into the free-text query.
func gumtreeSearchURLs(location string, q domain.Query) []string {
	const base = "https://www.gumtree.com"

	query := "property rent " + location
	if q.MinBedrooms != nil {
		query = fmt.Sprintf("%d bedroom %s", *q.MinBedrooms, query)
	}

	filtered := fmt.Sprintf("%s/search?q=%s&category=property-for-rent", base, url.QueryEscape(query))
	if q.MinPrice != nil {
		filtered += fmt.Sprintf("&min_price=%d", int(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		filtered += fmt.Sprintf("&max_price=%d", int(*q.MaxPrice))
	}

	return []string{
		filtered,
		fmt.Sprintf("%s/search?q=%s&category=property-for-rent", base, url.QueryEscape("property rent "+location)),
		fmt.Sprintf("%s/property-for-rent/%s", base, url.PathEscape(location)),
	}
}
