package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Page int
}

// pages returns a pager over n synthetic pages; page i holds ids i*10 and
// i*10+1 and every page but the last carries the "more" marker.
func pages(n int, fetches *int) Pager[item] {
	return Pager[item]{
		Name: "test",
		Fetch: func(_ context.Context, page int) (string, error) {
			*fetches++
			doc := fmt.Sprintf("%d,%d", page*10, page*10+1)
			if page < n {
				doc += ";more"
			}
			return doc, nil
		},
		Extract: func(page int, doc string) ([]item, error) {
			body, _, _ := strings.Cut(doc, ";")
			var out []item
			for _, id := range strings.Split(body, ",") {
				out = append(out, item{ID: id, Page: page})
			}
			return out, nil
		},
		HasNext: func(doc string) bool { return strings.HasSuffix(doc, ";more") },
	}
}

func TestCollect_FetchesExactlyNPages(t *testing.T) {
	for n := 1; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			fetches := 0
			out, err := pages(n, &fetches).Collect(context.Background())
			require.NoError(t, err)
			assert.Equal(t, n, fetches)
			assert.Len(t, out, 2*n)
			assert.Equal(t, n, out[len(out)-1].Page)
		})
	}
}

func TestCollect_MergeByKeyReplacesInPlace(t *testing.T) {
	docs := map[int]string{
		1: "a,b;more",
		2: "b,c",
	}
	p := Pager[item]{
		Name:  "merge",
		Fetch: func(_ context.Context, page int) (string, error) { return docs[page], nil },
		Extract: func(page int, doc string) ([]item, error) {
			body, _, _ := strings.Cut(doc, ";")
			var out []item
			for _, id := range strings.Split(body, ",") {
				out = append(out, item{ID: id, Page: page})
			}
			return out, nil
		},
		HasNext: func(doc string) bool { return strings.HasSuffix(doc, ";more") },
		Key:     func(it item) string { return it.ID },
	}

	out, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []item{{"a", 1}, {"b", 2}, {"c", 2}}, out)
}

func TestCollect_PageFailureDiscardsState(t *testing.T) {
	boom := errors.New("boom")
	fetches := 0
	p := pages(5, &fetches)
	inner := p.Fetch
	p.Fetch = func(ctx context.Context, page int) (string, error) {
		if page == 3 {
			return "", boom
		}
		return inner(ctx, page)
	}

	out, err := p.Collect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "page 3")
}

func TestCollect_ExtractFailureDiscardsState(t *testing.T) {
	fetches := 0
	p := pages(3, &fetches)
	p.Extract = func(page int, _ string) ([]item, error) {
		if page == 2 {
			return nil, errors.New("layout changed")
		}
		return []item{{ID: "x", Page: page}}, nil
	}

	out, err := p.Collect(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, 2, fetches)
}

func TestCollect_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetches := 0
	p := pages(10, &fetches)
	inner := p.Fetch
	p.Fetch = func(ctx context.Context, page int) (string, error) {
		if page == 2 {
			cancel()
		}
		return inner(ctx, page)
	}

	out, err := p.Collect(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
	assert.Equal(t, 2, fetches)
}

func TestCollect_MaxPages(t *testing.T) {
	fetches := 0
	p := pages(10, &fetches)
	p.MaxPages = 4

	out, err := p.Collect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPageLimit)
	assert.Nil(t, out)
	assert.Equal(t, 4, fetches)

	fetches = 0
	p = pages(4, &fetches)
	p.MaxPages = 4
	out, err = p.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 8)
}

func TestCollect_OnPage(t *testing.T) {
	fetches := 0
	p := pages(3, &fetches)
	var seen []int
	p.OnPage = func(page, records int) {
		assert.Equal(t, 2, records)
		seen = append(seen, page)
	}
	_, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestCollect_MissingCallback(t *testing.T) {
	_, err := Pager[item]{Name: "broken"}.Collect(context.Background())
	assert.Error(t, err)
}
