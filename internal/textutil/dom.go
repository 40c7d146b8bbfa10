package textutil

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// ParseHTML builds a goquery document from page text.
func ParseHTML(body string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "parse html")
	}
	return doc, nil
}

// Text is the whitespace-collapsed plain text of sel.
func Text(sel *goquery.Selection) string {
	return CollapseWhitespace(strings.ReplaceAll(sel.Text(), "\u00a0", " "))
}

// ExactlyOne finds selector under sel and fails unless it matches exactly
// one element.
func ExactlyOne(sel *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := sel.Find(selector)
	switch found.Length() {
	case 0:
		return nil, scrapeerr.NewExtraction(selector, "", "missing element")
	case 1:
		return found, nil
	default:
		return nil, scrapeerr.NewExtraction(selector, "", fmt.Sprintf("expected one element, got %d", found.Length()))
	}
}

// AtLeast finds selector under sel and fails when fewer than n elements
// match.
func AtLeast(sel *goquery.Selection, selector string, n int) (*goquery.Selection, error) {
	found := sel.Find(selector)
	if found.Length() == 0 {
		return nil, scrapeerr.NewExtraction(selector, "", "missing element")
	}
	if found.Length() < n {
		return nil, scrapeerr.NewExtraction(selector, "", fmt.Sprintf("expected at least %d elements, got %d", n, found.Length()))
	}
	return found, nil
}

// Nth returns the i-th element matching selector under sel, or nil.
func Nth(sel *goquery.Selection, selector string, i int) *goquery.Selection {
	if sel == nil {
		return nil
	}
	found := sel.Find(selector)
	if i >= found.Length() {
		return nil
	}
	return found.Eq(i)
}

// Attr returns a trimmed attribute of sel, "" when sel is nil or the
// attribute is missing.
func Attr(sel *goquery.Selection, name string) string {
	if sel == nil {
		return ""
	}
	v, _ := sel.Attr(name)
	return strings.TrimSpace(v)
}
