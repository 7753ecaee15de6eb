// Package sites holds one scraper per supported listing website. Site
// structure is brittle and changes independently of everything else, so
// each site is described by a Spec (search URL builders plus selector
// fallback chains) consumed by one shared engine; the extraction and
// scoring core never sees any of this.
package sites

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jgirolamo/house-trawler/internal/assemble"
	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/scrape/types"
	"github.com/jgirolamo/house-trawler/internal/scrape/util"
)

var _ types.Site = (*Scraper)(nil)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Responses smaller than this are interstitials or block pages, not
// search results.
const minUsefulBody = 5000

// Options configures every site scraper in one place.
type Options struct {
	Limiter     *util.HostLimiter
	MaxListings int          // cap per search page, 0 means default
	Query       domain.Query // price/bedroom bounds forwarded as URL filters
}

// Spec describes one listing website.
type Spec struct {
	Name             string
	BaseURL          string
	DetailPath       *regexp.Regexp // href pattern of a listing detail link
	ListingSelectors []string       // fallback chain for listing elements
	PriceSelectors   []string
	AddressSelectors []string
	DescSelectors    []string
	SearchURLs       func(location string, q domain.Query) []string
}

// Scraper drives a Spec against the live site.
type Scraper struct {
	spec Spec
	opts Options
	hc   *http.Client
}

func newScraper(spec Spec, opts Options) *Scraper {
	if opts.MaxListings <= 0 {
		opts.MaxListings = 500
	}
	return &Scraper{
		spec: spec,
		opts: opts,
		hc:   &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *Scraper) Name() string { return s.spec.Name }

// Fetch runs the search and parses whatever listing elements it can find.
// Search URL variants are tried in order until one returns a usable page.
func (s *Scraper) Fetch(ctx context.Context, location string) ([]domain.Property, error) {
	doc, err := s.firstUsableDoc(ctx, s.spec.SearchURLs(location, s.opts.Query))
	if err != nil {
		return nil, err
	}
	return s.parse(doc, location), nil
}

func (s *Scraper) firstUsableDoc(ctx context.Context, urls []string) (*goquery.Document, error) {
	var lastErr error
	for _, u := range urls {
		if s.opts.Limiter != nil {
			if err := s.opts.Limiter.WaitURL(ctx, u); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			lastErr = err
			continue
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		req.Header.Set("Accept-Language", "en-GB,en;q=0.9")

		res, err := s.hc.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(io.LimitReader(res.Body, 10<<20))
		res.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if res.StatusCode != http.StatusOK || len(body) < minUsefulBody {
			lastErr = fmt.Errorf("%s: status %d, %d bytes", u, res.StatusCode, len(body))
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			lastErr = err
			continue
		}
		return doc, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%s: no search url configured", s.spec.Name)
	}
	return nil, fmt.Errorf("%s search: %w", s.spec.Name, lastErr)
}

// parse turns listing elements into normalized records. Everything here is
// best-effort: an element without a usable title is skipped, every other
// missing field just stays unset on the record.
func (s *Scraper) parse(doc *goquery.Document, location string) []domain.Property {
	var out []domain.Property

	util.FindListings(doc, s.spec.ListingSelectors...).
		EachWithBreak(func(i int, el *goquery.Selection) bool {
			if i >= s.opts.MaxListings {
				return false
			}

			allText := util.CleanText(el.Text())
			if len(allText) < 5 {
				return true
			}

			title := util.ListingTitle(el)
			if len(title) < 5 {
				return true
			}

			address := util.FirstText(el, s.spec.AddressSelectors...)
			if address == "" {
				address = location
			}
			desc := util.FirstText(el, s.spec.DescSelectors...)

			// some sites keep the price out of the card body
			priceText := util.FirstText(el, s.spec.PriceSelectors...)
			if priceText != "" {
				allText = allText + " " + priceText
			}

			out = append(out, assemble.Build(assemble.Fragments{
				Source:      s.spec.Name,
				Location:    location,
				URL:         util.CanonicalURL(util.ListingURL(el, s.spec.BaseURL, s.spec.DetailPath)),
				ImageURL:    util.ListingImageURL(el, s.spec.BaseURL),
				Title:       title,
				Description: desc,
				AllText:     allText,
				Address:     address,
			}))
			return true
		})

	return out
}

// All returns every registered site scraper sharing the same options.
func All(opts Options) []*Scraper {
	return []*Scraper{
		NewSpareroom(opts),
		NewOpenRent(opts),
		NewGumtree(opts),
		NewOnTheMarket(opts),
		NewPrimeLocation(opts),
	}
}
