// Package senat scrapes the Polish Senate website into typed records. A
// Client composes a fetcher with the extractors, the pagination driver and
// the normalizers; every operation either returns complete records or an
// error, never a partial result.
package senat

import (
	"context"
	"errors"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/epforgpl/senat-cli/internal/extract"
	"github.com/epforgpl/senat-cli/internal/fetcher"
	"github.com/epforgpl/senat-cli/internal/normalize"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// Observer is told about collected pages and dropped entities.
// metrics.Recorder implements it.
type Observer interface {
	ObservePage(resource string)
	ObserveFailure(err error)
}

// Options configures a Client.
type Options struct {
	BaseURL string

	// Concurrency bounds the entities fetched in parallel.
	Concurrency int

	// MaxPages caps every paginated collection; 0 means no cap.
	MaxPages int

	// StrictGender fails the senators list when a gender had to be guessed.
	StrictGender bool

	// ContinueOnError drops failed entities from bulk operations instead
	// of failing the whole run. Dropped entities are reported as Failures.
	ContinueOnError bool

	Dictionary normalize.Dictionary
	Observer   Observer
}

// Client runs scrape operations against the Senate website.
type Client struct {
	fetch   fetcher.Fetcher
	opts    Options
	urls    URLs
	genders *normalize.GenderResolver
}

// New creates a Client reading pages through f.
func New(f fetcher.Fetcher, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Dictionary == nil {
		opts.Dictionary = normalize.DefaultDictionary()
	}
	return &Client{
		fetch:   f,
		opts:    opts,
		urls:    URLs{Base: opts.BaseURL},
		genders: normalize.NewGenderResolver(opts.Dictionary),
	}
}

// URLs returns the page addresses the client uses.
func (c *Client) URLs() URLs {
	return c.urls
}

// Failure describes an entity dropped in continue-on-error mode.
type Failure struct {
	Entity string         `json:"entity"`
	ID     string         `json:"id"`
	Kind   scrapeerr.Kind `json:"kind"`
	Error  string         `json:"error"`
}

// failures collects Failures from concurrent workers.
type failures struct {
	mu   sync.Mutex
	list []Failure
}

func (f *failures) add(entity, id string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, Failure{Entity: entity, ID: id, Kind: scrapeerr.KindOf(err), Error: err.Error()})
}

func (f *failures) all() []Failure {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list
}

// page fetches url and wraps it as a Document.
func (c *Client) page(ctx context.Context, url string) (extract.Document, error) {
	body, err := c.fetch.Get(ctx, url, nil)
	if err != nil {
		return extract.Document{}, err
	}
	return extract.Document{URL: url, Body: body}, nil
}

func (c *Client) observePage(resource string) {
	if c.opts.Observer != nil {
		c.opts.Observer.ObservePage(resource)
	}
}

// drop records err against an entity when running in continue-on-error
// mode. It returns err untouched otherwise, for the caller to fail with.
func (c *Client) drop(fails *failures, entity, id string, err error) error {
	if !c.opts.ContinueOnError || ctxDone(err) {
		return eris.Wrapf(err, "senat: %s %s", entity, id)
	}
	zap.L().Error("entity failed, continuing",
		zap.String("entity", entity),
		zap.String("id", id),
		zap.String("kind", string(scrapeerr.KindOf(err))),
		zap.Error(err),
	)
	if c.opts.Observer != nil {
		c.opts.Observer.ObserveFailure(err)
	}
	fails.add(entity, id, err)
	return nil
}

func ctxDone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
