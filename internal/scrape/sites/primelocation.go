package sites

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

var primeLocationDetailRe = regexp.MustCompile(`(?i)/property/|/to-rent/details/`)

// PrimeLocation aggressively blocks scrapers, so the URL list leans on
// several path variants rather than query filters.
func NewPrimeLocation(opts Options) *Scraper {
	return newScraper(Spec{
		Name:       "PrimeLocation",
		BaseURL:    "https://www.primelocation.com",
		DetailPath: primeLocationDetailRe,
		ListingSelectors: []string{
			`article[class*="property"]`,
			`article[class*="result"]`,
			`div[class*="property"]`,
			`div[class*="result"]`,
			`li[class*="listing"]`,
		},
		PriceSelectors: []string{
			`span[class*="price"]`,
			`div[class*="price"]`,
		},
		AddressSelectors: []string{
			`span[class*="address"]`,
			`div[class*="address"]`,
			`p[class*="address"]`,
		},
		DescSelectors: []string{
			`p[class*="description"]`,
			`p[class*="summary"]`,
		},
		SearchURLs: primeLocationSearchURLs,
	}, opts)
}

func primeLocationSearchURLs(location string, _ domain.Query) []string {
	const base = "https://www.primelocation.com"
	return []string{
		fmt.Sprintf("%s/to-rent/?q=%s", base, url.QueryEscape(location)),
		fmt.Sprintf("%s/to-rent/property/%s/", base, url.PathEscape(strings.ToLower(location))),
		fmt.Sprintf("%s/to-rent/%s/", base, url.PathEscape(strings.ToLower(location))),
	}
}
