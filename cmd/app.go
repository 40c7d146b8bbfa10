package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/epforgpl/senat-cli/internal/config"
	"github.com/epforgpl/senat-cli/internal/fetcher"
	"github.com/epforgpl/senat-cli/internal/metrics"
	"github.com/epforgpl/senat-cli/internal/normalize"
	"github.com/epforgpl/senat-cli/internal/senat"
	"github.com/epforgpl/senat-cli/internal/store"
)

// app holds what one command run needs: the cache, the scrape client and
// the run metrics.
type app struct {
	runID    string
	store    store.Store
	client   *senat.Client
	metrics  *metrics.Recorder
	textfile string
}

func initStore(ctx context.Context, c *config.Config) (store.Store, error) {
	return store.Open(ctx, store.Options{
		Driver: c.Store.Driver,
		DSN:    c.Store.DatabaseURL,
		TTL:    c.Store.TTL(),
		Pool: &store.PoolConfig{
			MaxConns: c.Store.Pool.MaxConns,
			MinConns: c.Store.Pool.MinConns,
		},
	})
}

func loadDictionary(c *config.Config) (normalize.Dictionary, error) {
	dict := normalize.DefaultDictionary()
	if c.Names.DictionaryFile == "" {
		return dict, nil
	}
	extra, err := normalize.LoadDictionaryFile(c.Names.DictionaryFile)
	if err != nil {
		return nil, err
	}
	return dict.Merge(extra), nil
}

// newApp wires the cache, the HTTP fetcher and the scrape client from c.
func newApp(ctx context.Context, c *config.Config) (*app, error) {
	dict, err := loadDictionary(c)
	if err != nil {
		return nil, err
	}

	st, err := initStore(ctx, c)
	if err != nil {
		return nil, eris.Wrap(err, "open page cache")
	}

	rec := metrics.New()
	httpFetcher := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  c.Fetch.UserAgent,
		Timeout:    time.Duration(c.Fetch.TimeoutSecs) * time.Second,
		RatePerSec: c.Fetch.RatePerSec,
		Burst:      c.Fetch.Burst,
		Observer:   rec,
	})

	a := &app{
		runID: uuid.NewString(),
		store: st,
		client: senat.New(fetcher.NewCachingFetcher(httpFetcher, st, rec), senat.Options{
			BaseURL:         c.Fetch.BaseURL,
			Concurrency:     c.Scrape.Concurrency,
			MaxPages:        c.Scrape.MaxPages,
			StrictGender:    c.Scrape.StrictGender,
			ContinueOnError: c.Scrape.ContinueOnError,
			Dictionary:      dict,
			Observer:        rec,
		}),
		metrics:  rec,
		textfile: c.Metrics.Textfile,
	}
	zap.L().Debug("run started",
		zap.String("run_id", a.runID),
		zap.String("store", c.Store.Driver),
		zap.String("base_url", c.Fetch.BaseURL),
	)
	return a, nil
}

// close flushes the run metrics and closes the cache. runErr is the
// command's outcome; only a successful run moves the last-success gauge.
func (a *app) close(runErr error) {
	if runErr == nil {
		a.metrics.MarkSuccess(time.Now())
	}
	if err := a.metrics.WriteTextfile(a.textfile); err != nil {
		zap.L().Warn("metrics textfile not written", zap.Error(err))
	}
	if err := a.store.Close(); err != nil {
		zap.L().Warn("close page cache", zap.Error(err))
	}
}

// withApp runs fn with a freshly wired app and closes it afterwards.
func withApp(ctx context.Context, fn func(*app) error) (err error) {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { a.close(err) }()
	return fn(a)
}
