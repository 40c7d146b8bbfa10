package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

// HasNoVotings reports a sitting day on which no votes were taken. Such a
// page has no table but still links to the next day.
func HasNoVotings(body string) bool {
	return strings.Contains(body, noVotingsMarker)
}

// VotingsPage extracts the votings table of one sitting day. Header rows
// are skipped. A row without motion text is only accepted for a procedural
// motion.
func VotingsPage(doc Document, sittingID string, day int) ([]model.VotingEvent, error) {
	if HasNoVotings(doc.Body) {
		return nil, nil
	}

	dom, err := textutil.ParseHTML(doc.Body)
	if err != nil {
		return nil, doc.fail(scrapeerr.NewExtraction("votings", "", err.Error()), "votings")
	}
	rows, err := textutil.AtLeast(dom.Selection, "table.glosowania tr", 2)
	if err != nil {
		return nil, doc.fail(err, "votings")
	}

	var out []model.VotingEvent
	var rowErr error
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if row.Find("th").Length() > 0 {
			return true
		}
		ev, err := votingRow(doc, row)
		if err != nil {
			rowErr = err
			return false
		}
		ev.SittingID = sittingID
		ev.Day = day
		out = append(out, ev)
		return true
	})
	if rowErr != nil {
		return nil, doc.fail(rowErr, "voting")
	}
	return out, nil
}

func votingRow(doc Document, row *goquery.Selection) (model.VotingEvent, error) {
	cells := row.Find("td")
	cell := func(i int) *goquery.Selection {
		if i >= cells.Length() {
			return nil
		}
		return cells.Eq(i)
	}

	ev := model.VotingEvent{Source: doc.URL}
	if c := cell(0); c != nil {
		ev.No = textutil.Text(c)
	}
	ev.ResultsPeopleURL = doc.Resolve(textutil.Attr(textutil.Nth(cell(2), "a", 1), "href"))
	ev.ResultsClubsURL = doc.Resolve(textutil.Attr(textutil.Nth(cell(3), "a", 0), "href"))

	for _, req := range []struct{ field, value string }{
		{"no", ev.No},
		{"results_people_url", ev.ResultsPeopleURL},
		{"results_clubs_url", ev.ResultsClubsURL},
	} {
		if req.value == "" {
			return ev, scrapeerr.NewExtraction("voting."+req.field, "", "missing in row "+strconv.Quote(textutil.Text(row)))
		}
	}

	if action := textutil.Nth(cell(1), "p.podpis", 0); action != nil {
		ev.Action = textutil.Text(action)
	}
	if motion := textutil.Nth(cell(1), "div", 0); motion != nil {
		ev.Motion = textutil.Text(motion)
	}
	if ev.Motion == "" && ev.Action != proceduralMotion {
		return ev, scrapeerr.NewExtraction("voting.motion", "", "no motion and unrecognized action "+strconv.Quote(ev.Action))
	}
	return ev, nil
}
