package util

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  two   bed\n flat ", "two bed flat"},
		{"a b", "a b"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in))
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{
			"HTTPS://WWW.Example.com/property/1?utm_source=x&b=2&a=1#photos",
			"https://www.example.com/property/1?a=1&b=2",
		},
		{"https://x.com/p?gclid=abc", "https://x.com/p"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalURL(tt.in))
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://www.example.com/search"
	assert.Equal(t, "https://www.example.com/p/1", AbsoluteURL(base, "/p/1"))
	assert.Equal(t, "https://cdn.example.com/i.jpg", AbsoluteURL(base, "//cdn.example.com/i.jpg"))
	assert.Equal(t, "https://other.com/x", AbsoluteURL(base, "https://other.com/x"))
	assert.Equal(t, "", AbsoluteURL(base, ""))
}

const sampleListing = `
<article class="listing-card">
  <a class="listing-card__link" href="/flatshare/flatshare_detail.pl?flatshare_id=99" title="Two bedroom flat in Camden"></a>
  <h3>Two bedroom garden flat</h3>
  <span class="listingPrice">£1,400 pcm</span>
  <img data-src="/images/99.jpg"/>
</article>`

func listingSelection(t *testing.T) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sampleListing))
	require.NoError(t, err)
	return doc.Find("article").First()
}

func TestListingTitlePrefersHeading(t *testing.T) {
	assert.Equal(t, "Two bedroom garden flat", ListingTitle(listingSelection(t)))
}

func TestListingImageURL(t *testing.T) {
	got := ListingImageURL(listingSelection(t), "https://www.spareroom.co.uk/")
	assert.Equal(t, "https://www.spareroom.co.uk/images/99.jpg", got)
}

func TestFirstText(t *testing.T) {
	s := listingSelection(t)
	assert.Equal(t, "£1,400 pcm", FirstText(s, ".price", ".listingPrice"))
	assert.Equal(t, "", FirstText(s, ".nope"))
}
