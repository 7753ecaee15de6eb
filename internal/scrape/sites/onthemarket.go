package sites

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

var onTheMarketDetailRe = regexp.MustCompile(`(?i)/details/|/property/`)

func NewOnTheMarket(opts Options) *Scraper {
	return newScraper(Spec{
		Name:       "OnTheMarket",
		BaseURL:    "https://www.onthemarket.com",
		DetailPath: onTheMarketDetailRe,
		ListingSelectors: []string{
			`article[class*="property"]`,
			`article[class*="result"]`,
			`div[class*="property"]`,
			`div[class*="result"]`,
			`li[class*="property"]`,
		},
		PriceSelectors: []string{
			`span[class*="price"]`,
			`div[class*="price"]`,
		},
		AddressSelectors: []string{
			`span[class*="address"]`,
			`span[class*="location"]`,
			`div[class*="address"]`,
			`p[class*="address"]`,
		},
		DescSelectors: []string{
			`p[class*="description"]`,
			`p[class*="summary"]`,
		},
		SearchURLs: onTheMarketSearchURLs,
	}, opts)
}

func onTheMarketSearchURLs(location string, q domain.Query) []string {
	const base = "https://www.onthemarket.com"

	filtered := fmt.Sprintf("%s/to-rent/?locationIdentifier=%s", base, url.QueryEscape(location))
	if q.MinPrice != nil {
		filtered += fmt.Sprintf("&minPrice=%d", int(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		filtered += fmt.Sprintf("&maxPrice=%d", int(*q.MaxPrice))
	}
	if q.MinBedrooms != nil {
		filtered += fmt.Sprintf("&bedrooms=%d", *q.MinBedrooms)
	}

	return []string{
		filtered,
		fmt.Sprintf("%s/to-rent/property/%s/", base, url.PathEscape(strings.ToLower(location))),
		fmt.Sprintf("%s/to-rent/?q=%s", base, url.QueryEscape(location)),
	}
}
