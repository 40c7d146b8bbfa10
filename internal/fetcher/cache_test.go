package fetcher

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

type stubFetcher struct {
	mu    sync.Mutex
	calls []string
	pages map[string]string
	err   error
}

func (s *stubFetcher) Get(_ context.Context, rawURL string, params url.Values) (string, error) {
	return s.serve("GET " + requestURL(rawURL, params))
}

func (s *stubFetcher) Post(_ context.Context, rawURL string, form url.Values) (string, error) {
	return s.serve("POST " + rawURL + " " + form.Encode())
}

func (s *stubFetcher) serve(req string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if s.err != nil {
		return "", s.err
	}
	return s.pages[req], nil
}

type mapCache struct {
	mu      sync.Mutex
	entries map[string]string
	expired map[string]bool
	getErr  error
	putErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]string{}, expired: map[string]bool{}}
}

func (c *mapCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", false, c.getErr
	}
	text, ok := c.entries[key]
	return text, ok, nil
}

func (c *mapCache) Put(_ context.Context, key, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.putErr != nil {
		return c.putErr
	}
	c.entries[key] = text
	return nil
}

func (c *mapCache) IsExpired(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return !ok || c.expired[key], nil
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("GET", "http://senat.gov.pl/x", url.Values{"b": {"2"}, "a": {"1"}})
	b := Fingerprint("GET", "http://senat.gov.pl/x", url.Values{"a": {"1"}, "b": {"2"}})
	assert.Equal(t, a, b)
	assert.Len(t, a, 40)

	assert.NotEqual(t, a, Fingerprint("POST", "http://senat.gov.pl/x", url.Values{"a": {"1"}, "b": {"2"}}))
	assert.NotEqual(t, a, Fingerprint("GET", "http://senat.gov.pl/y", url.Values{"a": {"1"}, "b": {"2"}}))
	assert.Equal(t, Fingerprint("GET", "http://senat.gov.pl/x", nil), Fingerprint("GET", "http://senat.gov.pl/x", url.Values{}))
}

func TestCachingFetcher_HitSkipsNetwork(t *testing.T) {
	next := &stubFetcher{pages: map[string]string{"GET http://senat.gov.pl/a": "page a"}}
	cache := newMapCache()
	obs := &recordingObserver{}
	f := NewCachingFetcher(next, cache, obs)
	ctx := context.Background()

	text, err := f.Get(ctx, "http://senat.gov.pl/a", nil)
	require.NoError(t, err)
	assert.Equal(t, "page a", text)
	assert.Equal(t, "page a", cache.entries[Fingerprint("GET", "http://senat.gov.pl/a", nil)])

	text, err = f.Get(ctx, "http://senat.gov.pl/a", nil)
	require.NoError(t, err)
	assert.Equal(t, "page a", text)

	assert.Len(t, next.calls, 1)
	assert.Equal(t, []bool{false, true}, obs.hits)
}

func TestCachingFetcher_ExpiredEntryRefetches(t *testing.T) {
	next := &stubFetcher{pages: map[string]string{"GET http://senat.gov.pl/a": "fresh"}}
	cache := newMapCache()
	key := Fingerprint("GET", "http://senat.gov.pl/a", nil)
	cache.entries[key] = "stale"
	cache.expired[key] = true

	text, err := NewCachingFetcher(next, cache, nil).Get(context.Background(), "http://senat.gov.pl/a", nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh", text)
	assert.Equal(t, "fresh", cache.entries[key])
}

func TestCachingFetcher_CacheFailuresAreMisses(t *testing.T) {
	next := &stubFetcher{pages: map[string]string{"GET http://senat.gov.pl/a": "page a"}}
	cache := newMapCache()
	cache.entries[Fingerprint("GET", "http://senat.gov.pl/a", nil)] = "cached"
	cache.getErr = errors.New("disk on fire")
	cache.putErr = errors.New("disk on fire")

	text, err := NewCachingFetcher(next, cache, nil).Get(context.Background(), "http://senat.gov.pl/a", nil)
	require.NoError(t, err)
	assert.Equal(t, "page a", text)
	assert.Len(t, next.calls, 1)
}

func TestCachingFetcher_TransportFailureIsReturned(t *testing.T) {
	te := &scrapeerr.TransportError{Method: "GET", URL: "http://senat.gov.pl/a", Status: 500}
	next := &stubFetcher{err: te}
	cache := newMapCache()

	_, err := NewCachingFetcher(next, cache, nil).Get(context.Background(), "http://senat.gov.pl/a", nil)
	assert.ErrorIs(t, err, te)
	assert.Empty(t, cache.entries)
}

func TestCachingFetcher_PostKeyedByForm(t *testing.T) {
	next := &stubFetcher{pages: map[string]string{
		"POST http://senat.gov.pl/s q=a": "A",
		"POST http://senat.gov.pl/s q=b": "B",
	}}
	f := NewCachingFetcher(next, newMapCache(), nil)
	ctx := context.Background()

	a, err := f.Post(ctx, "http://senat.gov.pl/s", url.Values{"q": {"a"}})
	require.NoError(t, err)
	b, err := f.Post(ctx, "http://senat.gov.pl/s", url.Values{"q": {"b"}})
	require.NoError(t, err)
	again, err := f.Post(ctx, "http://senat.gov.pl/s", url.Values{"q": {"a"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "A"}, []string{a, b, again})
	assert.Len(t, next.calls, 2)
}
