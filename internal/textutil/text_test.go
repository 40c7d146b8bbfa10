package textutil

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"one    two", "one two"},
		{"\t one\ttwo \r\n", "one two"},
		{"a \t b", "a b"},
		{"line\r\n  next", "line\r\n next"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CollapseWhitespace(tt.in), "input %q", tt.in)
	}
}

func TestCollapseWhitespace_Idempotent(t *testing.T) {
	alphabet := []string{" ", "  ", "\t", "\r", "\n", "a", "ź", "<p>", "."}
	rng := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		var b strings.Builder
		for range rng.IntN(30) {
			b.WriteString(alphabet[rng.IntN(len(alphabet))])
		}
		s := b.String()
		once := CollapseWhitespace(s)
		assert.Equal(t, once, CollapseWhitespace(once), "input %q", s)
	}
}

func TestStripTags(t *testing.T) {
	in := `<p>Urodził się <b>12</b>&nbsp;stycznia<!-- x --> 1960 r. &amp; żył</p>`
	assert.Equal(t, "Urodził się 12 stycznia 1960 r. & żył", StripTags(in))
}

func TestBetween(t *testing.T) {
	s := `<div class="kluby"><p>club</p></div><div>other</div>`

	got, ok := Between(s, Marker(`<div class="kluby">`), Marker("</div>"))
	require.True(t, ok)
	assert.Equal(t, "<p>club</p>", got)

	got, ok = Between(s, Open, Marker("<p>"))
	require.True(t, ok)
	assert.Equal(t, `<div class="kluby">`, got)

	got, ok = Between(s, Marker("<div>"), Open)
	require.True(t, ok)
	assert.Equal(t, "other</div>", got)

	_, ok = Between(s, Marker("<table>"), Open)
	assert.False(t, ok)

	_, ok = Between(s, Open, Marker("<table>"))
	assert.False(t, ok)
}

func TestBetween_IndexCountsRunes(t *testing.T) {
	got, ok := Between("źdźbło", Index(1), Index(3))
	require.True(t, ok)
	assert.Equal(t, "dźb", got)

	got, ok = Between("abc", Index(10), Open)
	require.True(t, ok)
	assert.Equal(t, "", got)

	got, ok = Between("abc", Open, Index(-1))
	require.True(t, ok)
	assert.Equal(t, "", got)
}

func TestAfterBefore(t *testing.T) {
	assert.Equal(t, "2,8.html", After("senator,2,8.html", ","))
	assert.Equal(t, "", After("senator", ","))
	assert.Equal(t, "senator", Before("senator,2,8.html", ","))
	assert.Equal(t, "senator", Before("senator", ","))
}
