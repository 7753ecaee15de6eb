// Package assemble turns the loose text fragments a site parser pulls out
// of a listing element into one normalized domain.Property. It owns no
// network or DOM logic; the fragile HTML traversal lives with the caller.
package assemble

import (
	"strings"

	"github.com/jgirolamo/house-trawler/internal/domain"
	"github.com/jgirolamo/house-trawler/internal/extract"
)

// Stored descriptions are capped; the full text is only used transiently
// during extraction.
const maxDescriptionRunes = 500

// Fragments is the raw material for one listing: whatever text the per-site
// parser managed to locate, any of it possibly empty.
type Fragments struct {
	Source      string // originating site name
	Location    string // query location, echoed back on the record
	URL         string
	ImageURL    string
	Title       string
	Description string
	AllText     string // all visible text of the listing element
	Address     string
}

// Build assembles a Property from fragments. Price, bedrooms and bathrooms
// come from the richest text available (all visible text, falling back to
// the title); garden and balcony evidence from all text, then description,
// then title; the postcode from the address. Extraction is best-effort:
// whatever fails stays unset and the record is still built.
func Build(f Fragments) domain.Property {
	numericText := firstNonEmpty(f.AllText, f.Title)
	featureText := firstNonEmpty(f.AllText, f.Description, f.Title)

	desc := f.Description
	if desc == "" {
		desc = f.Title
	}

	return domain.Property{
		Title:       f.Title,
		Price:       extract.Price(numericText),
		Address:     f.Address,
		Category:    categoryOf(f.Title, desc),
		Bedrooms:    extract.Bedrooms(numericText),
		Bathrooms:   extract.Bathrooms(numericText),
		Description: truncate(desc, maxDescriptionRunes),
		URL:         f.URL,
		Source:      f.Source,
		Location:    f.Location,
		Postcode:    extract.Postcode(f.Address),
		HasGarden:   extract.Garden(featureText),
		HasBalcony:  extract.Balcony(featureText),
		ImageURL:    optional(f.ImageURL),
	}
}

// categoryOf guesses flat vs house from the combined title and description.
func categoryOf(title, description string) string {
	combined := strings.ToLower(title + " " + description)
	if strings.Contains(combined, "flat") || strings.Contains(combined, "apartment") {
		return domain.CategoryFlat
	}
	return domain.CategoryHouse
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
