package extract

import (
	"regexp"
	"strconv"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/normalize"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

var nonDigitsRe = regexp.MustCompile(`\D+`)

// SittingsPage extracts the sittings listed on one page of the sittings
// archive.
func SittingsPage(doc Document) ([]model.Sitting, error) {
	var out []model.Sitting
	for _, row := range sittingPattern.Rows(doc.Body) {
		s := model.Sitting{
			ID:           row[3],
			Name:         textutil.Trim(row[5]),
			TopicsURL:    doc.Resolve(row[1]),
			StenogramURL: doc.Resolve(row[7]),
		}

		num, err := sittingNumberPattern.Select(s.Name, 1)
		if err != nil {
			return nil, doc.fail(err, "sitting.number")
		}
		if s.Number, err = strconv.Atoi(num); err != nil {
			return nil, doc.fail(scrapeerr.NewNormalization("sitting.number", num), "sitting.number")
		}

		if s.Dates, err = SittingDates(textutil.Trim(row[6])); err != nil {
			return nil, doc.fail(err, "sitting.dates")
		}
		out = append(out, s)
	}
	return out, nil
}

// SittingDates parses the dates column, e.g. "7, 8 i 9 listopada 2011 r.",
// into ISO dates.
func SittingDates(text string) ([]string, error) {
	m := sittingDatesPattern.Regexp().FindStringSubmatch(text)
	if m == nil {
		return nil, scrapeerr.NewExtraction("sitting.dates", sittingDatesPattern.ID(), "unparsable dates: "+text)
	}

	month, err := normalize.Month(m[2])
	if err != nil {
		return nil, err
	}

	var dates []string
	for _, day := range nonDigitsRe.Split(m[1], -1) {
		if day == "" {
			continue
		}
		d, err := normalize.ISODate(day, month, m[3])
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return nil, scrapeerr.NewExtraction("sitting.dates", sittingDatesPattern.ID(), "no days in: "+text)
	}
	return dates, nil
}

// HasNextSittingsPage reports whether the archive continues past body.
func HasNextSittingsPage(body string) bool {
	return Document{Body: body}.Contains(nextSittingsPageMarker)
}

// HasNextDay reports whether a stenogram or votings page links to a
// following sitting day.
func HasNextDay(body string) bool {
	return Document{Body: body}.Contains(nextDayMarker)
}
