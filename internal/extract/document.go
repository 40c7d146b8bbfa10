// Package extract turns fetched senat.gov.pl pages into typed records. Every
// extractor is a pure function of a Document; required parts of a page that
// cannot be found produce a *scrapeerr.ExtractionError naming the field, the
// pattern and the page URL, optional parts come back empty.
package extract

import (
	"net/url"
	"strings"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// Document is one fetched page.
type Document struct {
	URL  string
	Body string
}

// Resolve turns a link found on the page into an absolute URL.
func (d Document) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	base, err := url.Parse(d.URL)
	if err != nil || base.Host == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}

// fail attaches the document URL to err.
func (d Document) fail(err error, field string) error {
	return scrapeerr.WithURL(err, field, d.URL)
}

// Contains reports whether the page body contains marker.
func (d Document) Contains(marker string) bool {
	return strings.Contains(d.Body, marker)
}
