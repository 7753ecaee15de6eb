package util

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Listing sites restyle constantly, so every locator is a fallback chain:
// try the selector that matched last month, then progressively looser ones.

// FindListings returns the first selector's matches that yield anything.
func FindListings(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if s := doc.Find(sel); s.Length() > 0 {
			return s
		}
	}
	return doc.Find(selectors[len(selectors)-1])
}

// FirstText returns the cleaned text of the first candidate selector that
// has any, or "".
func FirstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if t := CleanText(s.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// ListingTitle pulls a usable title out of a listing element: headings
// first, then link text or its title/aria-label attributes. Titles shorter
// than five characters are junk (prices, "View", arrows).
func ListingTitle(s *goquery.Selection) string {
	for _, sel := range []string{"h1", "h2", "h3", "h4"} {
		if t := CleanText(s.Find(sel).First().Text()); len(t) >= 5 {
			return t
		}
	}

	link := s.Find("a[href]").First()
	if link.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"title", "aria-label"} {
		if v, ok := link.Attr(attr); ok {
			if t := CleanText(v); len(t) >= 5 {
				return t
			}
		}
	}
	if t := CleanText(link.Text()); len(t) >= 5 {
		return t
	}
	return ""
}

// ListingURL finds the listing's detail link, preferring hrefs that match
// the site's property path pattern, and resolves it against base.
func ListingURL(s *goquery.Selection, base string, pathPattern *regexp.Regexp) string {
	var href string
	s.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		h, _ := a.Attr("href")
		if pathPattern != nil && pathPattern.MatchString(h) {
			href = h
			return false
		}
		if href == "" {
			href = h
		}
		return true
	})
	return AbsoluteURL(base, href)
}

var bgImageRe = regexp.MustCompile(`url\(["']?([^"')]+)["']?\)`)

// ListingImageURL finds the first image in a listing element, checking the
// usual lazy-load attributes and background-image styles.
func ListingImageURL(s *goquery.Selection, base string) string {
	img := s.Find("img").First()
	if img.Length() > 0 {
		for _, attr := range []string{"src", "data-src", "data-lazy", "data-original"} {
			if v, ok := img.Attr(attr); ok && strings.TrimSpace(v) != "" {
				return AbsoluteURL(base, v)
			}
		}
	}

	var out string
	s.Find("[style]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		style, _ := el.Attr("style")
		if !strings.Contains(strings.ToLower(style), "background") {
			return true
		}
		if m := bgImageRe.FindStringSubmatch(style); m != nil {
			out = AbsoluteURL(base, m[1])
			return false
		}
		return true
	})
	return out
}
