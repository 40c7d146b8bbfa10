package senat

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

const base = DefaultBaseURL

// fakeSite serves fixed pages by URL and answers 404 for anything else.
type fakeSite struct {
	mu    sync.Mutex
	pages map[string]string
	errs  map[string]error
	calls []string
}

func newFakeSite() *fakeSite {
	return &fakeSite{pages: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeSite) Get(_ context.Context, rawURL string, _ url.Values) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, rawURL)
	if err, ok := f.errs[rawURL]; ok {
		return "", err
	}
	body, ok := f.pages[rawURL]
	if !ok {
		return "", &scrapeerr.TransportError{Method: http.MethodGet, URL: rawURL, Status: http.StatusNotFound}
	}
	return body, nil
}

func (f *fakeSite) Post(ctx context.Context, rawURL string, _ url.Values) (string, error) {
	return f.Get(ctx, rawURL, nil)
}

func (f *fakeSite) serve(t *testing.T, rawURL, fixture string) {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("..", "extract", "testdata", fixture))
	require.NoError(t, err)
	f.pages[rawURL] = string(body)
}

func (f *fakeSite) fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type countingObserver struct {
	mu       sync.Mutex
	pages    map[string]int
	failures int
}

func (o *countingObserver) ObservePage(resource string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pages == nil {
		o.pages = map[string]int{}
	}
	o.pages[resource]++
}

func (o *countingObserver) ObserveFailure(error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures++
}
