// Package collector drives paginated collections: fetch page 1, 2, 3...
// until the page says there is no next one, accumulating extracted records.
package collector

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrPageLimit is returned when a collection runs past Pager.MaxPages.
var ErrPageLimit = eris.New("collector: page limit reached")

// Pager describes one paginated resource. Pages are numbered from 1.
type Pager[T any] struct {
	// Name labels log lines and errors, e.g. "sittings".
	Name string

	// Fetch returns the text of page n.
	Fetch func(ctx context.Context, page int) (string, error)

	// Extract turns one page into records. It may return none.
	Extract func(page int, doc string) ([]T, error)

	// HasNext reports whether another page follows doc.
	HasNext func(doc string) bool

	// Key, when set, merges records by key: a later record with an already
	// seen key replaces the earlier one in place.
	Key func(T) string

	// MaxPages caps the number of fetched pages; 0 means no cap.
	MaxPages int

	// OnPage is called after each page is fetched and extracted.
	OnPage func(page int, records int)
}

// Collect runs the pager to completion. On any failure, including context
// cancellation, the partial accumulator is discarded and only the error is
// returned.
func (p Pager[T]) Collect(ctx context.Context) ([]T, error) {
	if p.Fetch == nil || p.Extract == nil || p.HasNext == nil {
		return nil, eris.Errorf("collector: %s: pager is missing a callback", p.Name)
	}

	var (
		out   []T
		index map[string]int
	)
	if p.Key != nil {
		index = make(map[string]int)
	}

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrapf(err, "collector: %s: page %d", p.Name, page)
		}
		if p.MaxPages > 0 && page > p.MaxPages {
			return nil, eris.Wrapf(ErrPageLimit, "collector: %s: more than %d pages", p.Name, p.MaxPages)
		}

		doc, err := p.Fetch(ctx, page)
		if err != nil {
			return nil, eris.Wrapf(err, "collector: %s: fetch page %d", p.Name, page)
		}

		records, err := p.Extract(page, doc)
		if err != nil {
			return nil, eris.Wrapf(err, "collector: %s: extract page %d", p.Name, page)
		}

		for _, rec := range records {
			if index == nil {
				out = append(out, rec)
				continue
			}
			k := p.Key(rec)
			if i, seen := index[k]; seen {
				out[i] = rec
				continue
			}
			index[k] = len(out)
			out = append(out, rec)
		}

		zap.L().Debug("collector: page done",
			zap.String("resource", p.Name),
			zap.Int("page", page),
			zap.Int("records", len(records)),
			zap.Int("total", len(out)),
		)
		if p.OnPage != nil {
			p.OnPage(page, len(records))
		}

		if !p.HasNext(doc) {
			return out, nil
		}
	}
}
