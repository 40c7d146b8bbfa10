package senat

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/epforgpl/senat-cli/internal/checksum"
	"github.com/epforgpl/senat-cli/internal/extract"
	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/normalize"
)

// SenatorsList returns the current senators with genders resolved from the
// name dictionary. Names missing from the dictionary are guessed and
// returned in the Guesses set; with StrictGender any guess fails the call
// with a *scrapeerr.GuessError.
func (c *Client) SenatorsList(ctx context.Context) ([]model.SenatorListing, normalize.Guesses, error) {
	doc, err := c.page(ctx, c.urls.SenatorsList())
	if err != nil {
		return nil, nil, eris.Wrap(err, "senat: senators list")
	}
	list, err := extract.SenatorList(doc)
	if err != nil {
		return nil, nil, eris.Wrap(err, "senat: senators list")
	}

	guesses := normalize.Guesses{}
	for i := range list {
		res := c.genders.Resolve(list[i].GivenName)
		list[i].Gender = res.Gender
		guesses.Record(res)
	}

	if len(guesses) > 0 {
		if c.opts.StrictGender {
			return nil, guesses, eris.Wrap(guesses.Err(), "senat: senators list")
		}
		zap.L().Warn("gender guessed for names missing from the dictionary",
			zap.Strings("names", guesses.Names()),
		)
	}
	return list, guesses, nil
}

// Senator returns the detail record of one senator, including the speech
// activity page, with its checksum computed.
func (c *Client) Senator(ctx context.Context, id string) (*model.Senator, error) {
	doc, err := c.page(ctx, c.urls.Senator(id))
	if err != nil {
		return nil, eris.Wrapf(err, "senat: senator %s", id)
	}
	info, err := extract.SenatorDetail(doc)
	if err != nil {
		return nil, eris.Wrapf(err, "senat: senator %s", id)
	}

	speeches, err := c.page(ctx, c.urls.SenatorSpeeches(id))
	if err != nil {
		return nil, eris.Wrapf(err, "senat: senator %s speeches", id)
	}

	info.ID = id
	info.AssetStatementsURL = c.urls.AssetStatements(id)
	info.SenatorStatementsURL = c.urls.SenatorStatements(id)
	info.Activity = extract.SpeechActivity(speeches)

	if err := checksum.Stamp(info, func(s *model.Senator) *string { return &s.Checksum }); err != nil {
		return nil, eris.Wrapf(err, "senat: senator %s", id)
	}
	return info, nil
}

// SenatorsAll returns the senators list with every senator's detail
// attached. Details are fetched concurrently. In continue-on-error mode a
// senator whose detail fails keeps a nil Info and is listed in the
// returned failures. The genders guessed for the list are returned as well.
func (c *Client) SenatorsAll(ctx context.Context) ([]model.SenatorRecord, normalize.Guesses, []Failure, error) {
	list, guesses, err := c.SenatorsList(ctx)
	if err != nil {
		return nil, guesses, nil, err
	}

	records := make([]model.SenatorRecord, len(list))
	fails := &failures{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, entry := range list {
		records[i].SenatorListing = entry
		g.Go(func() error {
			info, err := c.Senator(gctx, entry.ID)
			if err != nil {
				return c.drop(fails, "senator", entry.ID, err)
			}
			records[i].Info = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	zap.L().Info("senators scraped",
		zap.Int("senators", len(records)),
		zap.Int("failed", len(fails.all())),
		zap.Int("guessed", len(guesses)),
	)
	return records, guesses, fails.all(), nil
}

// SenatorVotesAtSitting returns how a senator voted in each voting of one
// sitting.
func (c *Client) SenatorVotesAtSitting(ctx context.Context, senatorID, sittingID string) ([]model.SenatorVote, error) {
	doc, err := c.page(ctx, c.urls.SenatorVotesAtSitting(senatorID, sittingID))
	if err != nil {
		return nil, eris.Wrapf(err, "senat: senator %s votes at sitting %s", senatorID, sittingID)
	}
	votes, err := extract.SenatorVotes(doc)
	if err != nil {
		return nil, eris.Wrapf(err, "senat: senator %s votes at sitting %s", senatorID, sittingID)
	}
	return votes, nil
}

// SenatorVotingActivity returns a senator's votes grouped by sitting, in
// the order the sittings are listed on the activity page.
func (c *Client) SenatorVotingActivity(ctx context.Context, senatorID string) ([]model.SittingVotes, []Failure, error) {
	doc, err := c.page(ctx, c.urls.SenatorVotingActivity(senatorID))
	if err != nil {
		return nil, nil, eris.Wrapf(err, "senat: senator %s voting activity", senatorID)
	}
	sittings := extract.VotingActivitySittings(doc)

	out := make([]model.SittingVotes, len(sittings))
	fails := &failures{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, sittingID := range sittings {
		out[i].SittingID = sittingID
		g.Go(func() error {
			votes, err := c.SenatorVotesAtSitting(gctx, senatorID, sittingID)
			if err != nil {
				return c.drop(fails, "sitting_votes", senatorID+","+sittingID, err)
			}
			out[i].Votes = votes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return out, fails.all(), nil
}
