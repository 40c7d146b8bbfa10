package senat

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/epforgpl/senat-cli/internal/checksum"
	"github.com/epforgpl/senat-cli/internal/collector"
	"github.com/epforgpl/senat-cli/internal/extract"
	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// Sittings walks the paginated sittings list. A sitting listed on more
// than one page keeps its first position and its last content.
func (c *Client) Sittings(ctx context.Context) ([]model.Sitting, error) {
	pager := collector.Pager[model.Sitting]{
		Name: "sittings",
		Fetch: func(ctx context.Context, page int) (string, error) {
			return c.fetch.Get(ctx, c.urls.SittingsPage(page), nil)
		},
		Extract: func(page int, body string) ([]model.Sitting, error) {
			return extract.SittingsPage(extract.Document{URL: c.urls.SittingsPage(page), Body: body})
		},
		HasNext:  extract.HasNextSittingsPage,
		Key:      func(s model.Sitting) string { return s.ID },
		MaxPages: c.opts.MaxPages,
		OnPage:   func(int, int) { c.observePage("sittings") },
	}
	sittings, err := pager.Collect(ctx)
	return sittings, eris.Wrap(err, "senat: sittings")
}

// SittingVotings returns every voting of a sitting, walking its days.
// Days without votings are skipped but still lead to the next day.
func (c *Client) SittingVotings(ctx context.Context, sittingID string) ([]model.VotingEvent, error) {
	id := sittingPart(sittingID)
	pager := collector.Pager[model.VotingEvent]{
		Name: "votings",
		Fetch: func(ctx context.Context, day int) (string, error) {
			return c.fetch.Get(ctx, c.urls.SittingVotings(id, day), nil)
		},
		Extract: func(day int, body string) ([]model.VotingEvent, error) {
			if extract.HasNoVotings(body) {
				return nil, nil
			}
			events, err := extract.VotingsPage(extract.Document{URL: c.urls.SittingVotings(id, day), Body: body}, id, day)
			if err != nil {
				return nil, err
			}
			for i := range events {
				if err := checksum.Stamp(&events[i], func(v *model.VotingEvent) *string { return &v.Checksum }); err != nil {
					return nil, err
				}
			}
			return events, nil
		},
		HasNext:  extract.HasNextDay,
		Key:      func(v model.VotingEvent) string { return v.SittingID + "," + v.No },
		MaxPages: c.opts.MaxPages,
		OnPage:   func(int, int) { c.observePage("votings") },
	}
	events, err := pager.Collect(ctx)
	return events, eris.Wrapf(err, "senat: sitting %s votings", sittingID)
}

// VoteResults returns the per-person results behind a voting's
// results_people_url.
func (c *Client) VoteResults(ctx context.Context, resultsURL string) (*model.VoteResults, error) {
	doc, err := c.page(ctx, resultsURL)
	if err != nil {
		return nil, eris.Wrap(err, "senat: vote results")
	}
	res, err := extract.PeopleVotes(doc)
	return res, eris.Wrap(err, "senat: vote results")
}

// Stenogram joins the transcript of every day of a sitting.
func (c *Client) Stenogram(ctx context.Context, sittingID string) (*model.Stenogram, error) {
	id := sittingPart(sittingID)
	var sources []string
	pager := collector.Pager[string]{
		Name: "stenogram",
		Fetch: func(ctx context.Context, day int) (string, error) {
			return c.fetch.Get(ctx, c.urls.StenogramDay(id, day), nil)
		},
		Extract: func(day int, body string) ([]string, error) {
			u := c.urls.StenogramDay(id, day)
			sources = append(sources, u)
			return []string{extract.StenogramPage(extract.Document{URL: u, Body: body})}, nil
		},
		HasNext:  extract.HasNextDay,
		MaxPages: c.opts.MaxPages,
		OnPage:   func(int, int) { c.observePage("stenogram") },
	}
	days, err := pager.Collect(ctx)
	if err != nil {
		return nil, eris.Wrapf(err, "senat: sitting %s stenogram", sittingID)
	}
	return &model.Stenogram{
		SittingID: id,
		Source:    sources,
		Text:      extract.JoinStenogram(days),
	}, nil
}

// Speech cuts one speech out of a sitting's stenogram. With dropPresiding
// the presiding officer's closing words are removed.
func (c *Client) Speech(ctx context.Context, sittingID, speechRef string, dropPresiding bool) (string, error) {
	st, err := c.Stenogram(ctx, sittingID)
	if err != nil {
		return "", err
	}
	speech, ok := extract.SliceSpeech(st.Text, speechRef, dropPresiding)
	if !ok {
		return "", eris.Wrapf(&scrapeerr.ExtractionError{
			Field:  "speech",
			URL:    c.urls.StenogramDay(sittingID, 1),
			Detail: "no speech anchor " + speechRef,
		}, "senat: sitting %s speech %s", sittingID, speechRef)
	}
	return speech, nil
}

// TermsOfOffice returns the archived terms of the Senate.
func (c *Client) TermsOfOffice(ctx context.Context) ([]model.TermOfOffice, error) {
	doc, err := c.page(ctx, c.urls.TermsOfOffice())
	if err != nil {
		return nil, eris.Wrap(err, "senat: terms of office")
	}
	terms, err := extract.TermsOfOffice(doc)
	return terms, eris.Wrap(err, "senat: terms of office")
}
