package sites

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

var openrentDetailRe = regexp.MustCompile(`(?i)/properties?/`)

func NewOpenRent(opts Options) *Scraper {
	return newScraper(Spec{
		Name:       "OpenRent",
		BaseURL:    "https://www.openrent.co.uk",
		DetailPath: openrentDetailRe,
		ListingSelectors: []string{
			`div[class*="property"]`,
			`div[class*="listing"]`,
			`div[class*="result"]`,
			"article",
			"div[data-property-id]",
		},
		PriceSelectors: []string{
			`span[class*="price"]`,
			`div[class*="price"]`,
		},
		AddressSelectors: []string{
			`span[class*="location"]`,
			`span[class*="address"]`,
			`div[class*="location"]`,
			`p[class*="address"]`,
		},
		DescSelectors: []string{
			`p[class*="description"]`,
			`p[class*="summary"]`,
		},
		SearchURLs: openrentSearchURLs,
	}, opts)
}

func openrentSearchURLs(location string, q domain.Query) []string {
	u := fmt.Sprintf("https://www.openrent.co.uk/properties-to-rent?term=%s", url.QueryEscape(location))
	if q.MinPrice != nil {
		u += fmt.Sprintf("&minPrice=%d", int(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		u += fmt.Sprintf("&maxPrice=%d", int(*q.MaxPrice))
	}
	if q.MinBedrooms != nil {
		u += fmt.Sprintf("&bedrooms=%d", *q.MinBedrooms)
	}
	return []string{u}
}
