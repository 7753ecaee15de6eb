package sites

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/jgirolamo/house-trawler/internal/domain"
)

var spareroomDetailRe = regexp.MustCompile(`(?i)/flatshare/`)

// NewSpareroom searches whole properties only; Spareroom is primarily a
// flatshare site and its room-only listings get filtered downstream anyway.
func NewSpareroom(opts Options) *Scraper {
	return newScraper(Spec{
		Name:       "Spareroom",
		BaseURL:    "https://www.spareroom.co.uk",
		DetailPath: spareroomDetailRe,
		ListingSelectors: []string{
			`article[class*="listing-card"]`,
			"article.listing-result",
			"li.listing-result",
			"div.listing-result",
			"div[data-listing-id]",
			"article",
		},
		PriceSelectors: []string{
			`span[class*="price"]`,
			`span[class*="rent"]`,
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
		SearchURLs: spareroomSearchURLs,
	}, opts)
}

func spareroomSearchURLs(location string, q domain.Query) []string {
	const base = "https://www.spareroom.co.uk"
	loc := url.QueryEscape(location)

	filtered := fmt.Sprintf("%s/flatshare/?search=%s&flatshare_type=whole_property", base, loc)
	if q.MinPrice != nil {
		filtered += fmt.Sprintf("&min_rent=%d", int(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		filtered += fmt.Sprintf("&max_rent=%d", int(*q.MaxPrice))
	}
	if q.MinBedrooms != nil {
		filtered += fmt.Sprintf("&bedrooms=%d", *q.MinBedrooms)
	}

	return []string{
		filtered,
		fmt.Sprintf("%s/flatshare/?search=%s&flatshare_type=whole_property", base, loc),
		fmt.Sprintf("%s/flatshare/?search=%s", base, loc),
	}
}
