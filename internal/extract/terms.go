package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/normalize"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

var anySpaceRe = regexp.MustCompile(`\s+`)

// TermsOfOffice extracts the archived terms, e.g.
// "VII kadencja (5.11.2007 r. - 7.11.2011 r.)". Every list entry must parse.
func TermsOfOffice(doc Document) ([]model.TermOfOffice, error) {
	dom, err := textutil.ParseHTML(doc.Body)
	if err != nil {
		return nil, doc.fail(scrapeerr.NewExtraction("terms", "", err.Error()), "terms")
	}
	items, err := textutil.AtLeast(dom.Selection, ".aktualnosci-margines li", 1)
	if err != nil {
		return nil, doc.fail(err, "terms")
	}

	var (
		out     []model.TermOfOffice
		itemErr error
	)
	items.EachWithBreak(func(_ int, li *goquery.Selection) bool {
		term, err := termOfOffice(li.Text())
		if err != nil {
			itemErr = err
			return false
		}
		term.Source = doc.URL
		out = append(out, term)
		return true
	})
	if itemErr != nil {
		return nil, doc.fail(itemErr, "term")
	}
	return out, nil
}

func termOfOffice(text string) (model.TermOfOffice, error) {
	text = anySpaceRe.ReplaceAllString(strings.ReplaceAll(text, "\u00a0", " "), "")
	m := termPattern.Regexp().FindStringSubmatch(text)
	if m == nil {
		return model.TermOfOffice{}, scrapeerr.NewExtraction("term", termPattern.ID(), "unrecognized entry "+text)
	}

	start, err := normalize.DottedDate(m[2])
	if err != nil {
		return model.TermOfOffice{}, err
	}
	end, err := normalize.DottedDate(m[3])
	if err != nil {
		return model.TermOfOffice{}, err
	}
	return model.TermOfOffice{ID: m[1], StartDate: start, EndDate: end}, nil
}
