package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

// PeopleVotes extracts the tally and the per-senator votes of one voting.
// A cancelled voting yields empty results flagged Cancelled.
func PeopleVotes(doc Document) (*model.VoteResults, error) {
	res := &model.VoteResults{
		Source:  doc.URL,
		Grouped: map[model.VoteOutcome]int{},
		Votes:   []model.PersonVote{},
	}

	dom, err := textutil.ParseHTML(doc.Body)
	if err != nil {
		return nil, doc.fail(scrapeerr.NewExtraction("vote_results", "", err.Error()), "vote_results")
	}

	if sub := textutil.Nth(dom.Selection, "h4.podtytul", 0); sub != nil && textutil.Text(sub) == cancelledVoting {
		res.Cancelled = true
		return res, nil
	}

	if err := tally(res, dom.Selection); err != nil {
		return nil, doc.fail(err, "vote_results.summary")
	}

	senators, err := textutil.AtLeast(dom.Selection, ".glosy-senatorow .senator", 1)
	if err != nil {
		return nil, doc.fail(err, "vote_results.senators")
	}
	var rowErr error
	senators.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		pv, err := personVote(s)
		if err != nil {
			rowErr = err
			return false
		}
		res.Votes = append(res.Votes, pv)
		return true
	})
	if rowErr != nil {
		return nil, doc.fail(rowErr, "vote_results.senator")
	}
	return res, nil
}

func tally(res *model.VoteResults, root *goquery.Selection) error {
	groups, err := textutil.AtLeast(root, "div.ogolne-wyniki span", 1)
	if err != nil {
		return err
	}

	present, voted := -1, -1
	for i := range groups.Length() {
		text := textutil.Text(groups.Eq(i))
		m := tallyPattern.Regexp().FindStringSubmatch(text)
		if m == nil {
			return scrapeerr.NewExtraction("vote_results.summary", tallyPattern.ID(), "unparsable tally "+strconv.Quote(text))
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return scrapeerr.NewNormalization("vote_results.count", m[2])
		}

		switch labelKey(m[1]) {
		case headcountPresent:
			present = n
		case headcountVoted:
			voted = n
		default:
			outcome, err := SummaryVocabulary.Outcome(m[1])
			if err != nil {
				return err
			}
			res.Grouped[outcome] = n
		}
	}

	switch {
	case present >= 0:
		res.Present = present
	case voted >= 0:
		res.Present = voted
	}
	return nil
}

func personVote(s *goquery.Selection) (model.PersonVote, error) {
	dane, err := textutil.ExactlyOne(s, ".dane")
	if err != nil {
		return model.PersonVote{}, err
	}
	glos, err := textutil.ExactlyOne(s, ".glos")
	if err != nil {
		return model.PersonVote{}, err
	}

	outcome, err := DetailVocabulary.Outcome(textutil.Text(glos))
	if err != nil {
		return model.PersonVote{}, err
	}

	name := textutil.Text(dane)
	words := strings.Fields(name)
	if len(words) != 2 {
		return model.PersonVote{}, scrapeerr.NewExtraction("vote_results.name", "", "expected initials and family name in "+strconv.Quote(name))
	}

	initials := []string{}
	for _, part := range strings.Split(words[0], ".") {
		if part != "" {
			initials = append(initials, part)
		}
	}
	return model.PersonVote{
		FamilyName: words[1],
		Initials:   initials,
		Vote:       outcome,
	}, nil
}
