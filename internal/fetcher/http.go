package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// DefaultUserAgent identifies the scraper to the site operators.
const DefaultUserAgent = "Mozilla/5.0 (SenatParser; Fundacja Media 3.0) Gecko/20100101 Firefox/31.0"

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent  string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
	Observer   Observer
}

// AdaptiveLimiter wraps a rate.Limiter with adaptive rate adjustment.
// On 429 it halves the rate (down to initial/4 minimum); each success
// raises it by 20% until the configured rate is reached again.
type AdaptiveLimiter struct {
	mu          sync.Mutex
	limiter     *rate.Limiter
	maxRate     rate.Limit
	minRate     rate.Limit
	currentRate rate.Limit
}

// NewAdaptiveLimiter creates an adaptive rate limiter that auto-tunes.
func NewAdaptiveLimiter(initialRate rate.Limit, burst int) *AdaptiveLimiter {
	return &AdaptiveLimiter{
		limiter:     rate.NewLimiter(initialRate, burst),
		maxRate:     initialRate,
		minRate:     initialRate / 4,
		currentRate: initialRate,
	}
}

// Wait blocks until the limiter allows an event.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

// OnSuccess increases the rate by 20%, up to the configured rate.
func (a *AdaptiveLimiter) OnSuccess() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentRate >= a.maxRate {
		return
	}
	newRate := a.currentRate * 1.2
	if newRate > a.maxRate {
		newRate = a.maxRate
	}
	a.currentRate = newRate
	a.limiter.SetLimit(newRate)
}

// OnRateLimit halves the rate on 429 responses.
func (a *AdaptiveLimiter) OnRateLimit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	newRate := a.currentRate * 0.5
	if newRate < a.minRate {
		newRate = a.minRate
	}
	a.currentRate = newRate
	a.limiter.SetLimit(newRate)
	zap.L().Warn("adaptive rate limit: reducing rate after 429",
		zap.Float64("new_rate", float64(newRate)),
	)
}

// Limit returns the current rate limit.
func (a *AdaptiveLimiter) Limit() rate.Limit {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentRate
}

// HTTPFetcher implements Fetcher using net/http with per-host rate
// limiting. Requests are never retried: a failed fetch fails the entity
// that needed it.
type HTTPFetcher struct {
	client *http.Client
	opts   HTTPOptions

	mu       sync.Mutex
	limiters map[string]*AdaptiveLimiter
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = 4
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts:     opts,
		limiters: make(map[string]*AdaptiveLimiter),
	}
}

func (f *HTTPFetcher) limiterFor(host string) *AdaptiveLimiter {
	f.mu.Lock()
	defer f.mu.Unlock()
	lim, ok := f.limiters[host]
	if !ok {
		lim = NewAdaptiveLimiter(rate.Limit(f.opts.RatePerSec), f.opts.Burst)
		f.limiters[host] = lim
	}
	return lim
}

// Get fetches rawURL with params appended to the query string.
func (f *HTTPFetcher) Get(ctx context.Context, rawURL string, params url.Values) (string, error) {
	target := requestURL(rawURL, params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &scrapeerr.TransportError{Method: http.MethodGet, URL: target, Err: eris.Wrap(err, "create request")}
	}
	return f.do(ctx, req)
}

// Post submits form to rawURL as application/x-www-form-urlencoded.
func (f *HTTPFetcher) Post(ctx context.Context, rawURL string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &scrapeerr.TransportError{Method: http.MethodPost, URL: rawURL, Err: eris.Wrap(err, "create request")}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(ctx, req)
}

func (f *HTTPFetcher) do(ctx context.Context, req *http.Request) (text string, err error) {
	start := time.Now()
	if f.opts.Observer != nil {
		defer func() {
			f.opts.Observer.ObserveFetch(req.Method, req.URL.Host, err, time.Since(start))
		}()
	}
	fail := func(status int, cause error) error {
		return &scrapeerr.TransportError{Method: req.Method, URL: req.URL.String(), Status: status, Err: cause}
	}

	lim := f.limiterFor(req.URL.Host)
	if err := lim.Wait(ctx); err != nil {
		return "", fail(0, eris.Wrap(err, "rate limiter wait"))
	}

	req.Header.Set("User-Agent", f.opts.UserAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fail(0, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusTooManyRequests {
		lim.OnRateLimit()
		return "", fail(resp.StatusCode, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fail(resp.StatusCode, nil)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fail(resp.StatusCode, eris.Wrap(err, "read body"))
	}
	if len(raw) == 0 {
		return "", fail(resp.StatusCode, eris.New("empty body"))
	}
	text, err = decodeBody(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fail(resp.StatusCode, err)
	}
	lim.OnSuccess()

	zap.L().Debug("fetched page",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("bytes", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}
