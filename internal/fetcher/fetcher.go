// Package fetcher retrieves pages from the Senate website. HTTPFetcher talks
// to the site; CachingFetcher puts a read-through Cache in front of any
// Fetcher so repeated runs do not hit the site again.
package fetcher

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Fetcher defines the interface for retrieving the decoded text of a page.
type Fetcher interface {
	// Get fetches rawURL with params appended to its query string.
	Get(ctx context.Context, rawURL string, params url.Values) (string, error)

	// Post submits form to rawURL.
	Post(ctx context.Context, rawURL string, form url.Values) (string, error)
}

// Cache stores fetched pages under a request fingerprint. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get returns the text stored under key and whether it was found.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores text under key, replacing any previous entry.
	Put(ctx context.Context, key, text string) error

	// IsExpired reports whether key is missing or past its lifetime.
	IsExpired(ctx context.Context, key string) (bool, error)
}

// Observer is notified of fetch and cache outcomes. A nil Observer is
// allowed wherever one is accepted.
type Observer interface {
	ObserveFetch(method, host string, err error, elapsed time.Duration)
	ObserveCache(hit bool)
}

// requestURL appends the encoded params to rawURL, keeping any query
// string rawURL already has.
func requestURL(rawURL string, params url.Values) string {
	if len(params) == 0 {
		return rawURL
	}
	sep := "?"
	switch {
	case strings.HasSuffix(rawURL, "?"), strings.HasSuffix(rawURL, "&"):
		sep = ""
	case strings.Contains(rawURL, "?"):
		sep = "&"
	}
	return rawURL + sep + params.Encode()
}
