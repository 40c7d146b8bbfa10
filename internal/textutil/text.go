// Package textutil provides the string, regex and DOM primitives the
// extractors are built from.
package textutil

import (
	"html"
	"regexp"
	"strings"
)

const trimChars = " \t\r\n"

var (
	blankRunRe = regexp.MustCompile(`[ \t]+`)
	tagRe      = regexp.MustCompile(`(?s)<!--.*?-->|<[^>]*>`)
)

// Trim strips spaces, tabs and line breaks from both ends of s.
func Trim(s string) string {
	return strings.Trim(s, trimChars)
}

// CollapseWhitespace trims s and folds every run of spaces and tabs into a
// single space. Line breaks inside s are kept.
func CollapseWhitespace(s string) string {
	return blankRunRe.ReplaceAllString(Trim(s), " ")
}

// StripTags removes markup and comments from s and decodes HTML entities.
// Non-breaking spaces become plain spaces.
func StripTags(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// Bound is one end of a Between slice: a marker string, a rune offset, or
// open.
type Bound struct {
	marker string
	index  int
	kind   int
}

const (
	boundOpen = iota
	boundMarker
	boundIndex
)

// Open leaves the corresponding end of the slice unbounded.
var Open = Bound{}

// Marker bounds a slice at the first occurrence of m (exclusive).
func Marker(m string) Bound {
	return Bound{marker: m, kind: boundMarker}
}

// Index bounds a slice by a rune count: as a start it skips i runes, as an
// end it keeps i runes.
func Index(i int) Bound {
	return Bound{index: i, kind: boundIndex}
}

// Between returns the part of s after from and before to. The end bound is
// applied to what remains after the start bound. ok is false when a marker
// is not found.
func Between(s string, from, to Bound) (string, bool) {
	switch from.kind {
	case boundMarker:
		i := strings.Index(s, from.marker)
		if i < 0 {
			return "", false
		}
		s = s[i+len(from.marker):]
	case boundIndex:
		r := []rune(s)
		s = string(r[clamp(from.index, len(r)):])
	}

	switch to.kind {
	case boundMarker:
		i := strings.Index(s, to.marker)
		if i < 0 {
			return "", false
		}
		s = s[:i]
	case boundIndex:
		r := []rune(s)
		s = string(r[:clamp(to.index, len(r))])
	}
	return s, true
}

// After returns the part of s after the first occurrence of marker, or ""
// when marker is missing.
func After(s, marker string) string {
	out, _ := Between(s, Marker(marker), Open)
	return out
}

// Before returns the part of s before the first occurrence of marker, or s
// itself when marker is missing.
func Before(s, marker string) string {
	if out, ok := Between(s, Open, Marker(marker)); ok {
		return out
	}
	return s
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
