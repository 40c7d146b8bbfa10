package fetcher

import (
	"context"
	"crypto/sha1" //nolint:gosec // fingerprint, not a security boundary
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Fingerprint returns the cache key of a request: the hex SHA-1 of the
// canonical JSON of method, URL and parameters. url.Values encodes with
// sorted keys, so parameter order never changes the key.
func Fingerprint(method, rawURL string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	// Marshaling strings and url.Values cannot fail.
	b, _ := json.Marshal(struct {
		Method string     `json:"method"`
		URL    string     `json:"url"`
		Params url.Values `json:"params"`
	}{method, rawURL, params})
	sum := sha1.Sum(b) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// CachingFetcher is a read-through cache in front of another Fetcher. Cache
// failures are logged and treated as misses; fetch failures are returned.
type CachingFetcher struct {
	next     Fetcher
	cache    Cache
	observer Observer
}

// NewCachingFetcher wraps next with cache. observer may be nil.
func NewCachingFetcher(next Fetcher, cache Cache, observer Observer) *CachingFetcher {
	return &CachingFetcher{next: next, cache: cache, observer: observer}
}

// Get returns the cached page for the request or fetches and stores it.
func (c *CachingFetcher) Get(ctx context.Context, rawURL string, params url.Values) (string, error) {
	return c.through(ctx, http.MethodGet, rawURL, params, c.next.Get)
}

// Post returns the cached response for the form submission or submits and
// stores it.
func (c *CachingFetcher) Post(ctx context.Context, rawURL string, form url.Values) (string, error) {
	return c.through(ctx, http.MethodPost, rawURL, form, c.next.Post)
}

type fetchFunc func(ctx context.Context, rawURL string, params url.Values) (string, error)

func (c *CachingFetcher) through(ctx context.Context, method, rawURL string, params url.Values, fetch fetchFunc) (string, error) {
	key := Fingerprint(method, rawURL, params)
	log := zap.L().With(zap.String("url", rawURL), zap.String("key", key))

	if text, ok := c.lookup(ctx, key, log); ok {
		log.Debug("cache hit")
		c.observe(true)
		return text, nil
	}
	c.observe(false)

	text, err := fetch(ctx, rawURL, params)
	if err != nil {
		return "", err
	}
	if err := c.cache.Put(ctx, key, text); err != nil {
		log.Warn("cache write failed", zap.Error(err))
	}
	return text, nil
}

// lookup checks expiry before reading so a stale entry counts as a miss.
func (c *CachingFetcher) lookup(ctx context.Context, key string, log *zap.Logger) (string, bool) {
	expired, err := c.cache.IsExpired(ctx, key)
	if err != nil {
		log.Warn("cache expiry check failed", zap.Error(err))
		return "", false
	}
	if expired {
		return "", false
	}
	text, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Warn("cache read failed", zap.Error(err))
		return "", false
	}
	return text, ok
}

func (c *CachingFetcher) observe(hit bool) {
	if c.observer != nil {
		c.observer.ObserveCache(hit)
	}
}
