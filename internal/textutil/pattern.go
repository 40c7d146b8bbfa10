package textutil

import (
	"fmt"
	"regexp"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// Pattern is a named, versioned regular expression describing one piece of
// a page's markup. The version is bumped whenever the expression is changed
// to follow a site layout change, so failures can be traced to the exact
// rule that stopped matching.
type Pattern struct {
	Name    string
	Version int
	re      *regexp.Regexp
}

// MustPattern compiles expr or panics.
func MustPattern(name string, version int, expr string) *Pattern {
	return &Pattern{Name: name, Version: version, re: regexp.MustCompile(expr)}
}

// ID identifies the pattern in error messages, e.g. "senator.okw@1".
func (p *Pattern) ID() string {
	return fmt.Sprintf("%s@%d", p.Name, p.Version)
}

// Regexp exposes the compiled expression.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

// Select returns capture group of the first match, failing when there is
// none.
func (p *Pattern) Select(doc string, group int) (string, error) {
	if v, ok := p.Find(doc, group); ok {
		return v, nil
	}
	return "", scrapeerr.NewExtraction(p.Name, p.ID(), fmt.Sprintf("no match for group %d", group))
}

// Find returns capture group of the first match.
func (p *Pattern) Find(doc string, group int) (string, bool) {
	m := p.re.FindStringSubmatch(doc)
	if m == nil || group >= len(m) {
		return "", false
	}
	return m[group], true
}

// Lookup is Find returning "" on a miss.
func (p *Pattern) Lookup(doc string, group int) string {
	v, _ := p.Find(doc, group)
	return v
}

// All returns capture group of every match, in match order.
func (p *Pattern) All(doc string, group int) []string {
	cols := p.Columns(doc)
	if group >= len(cols) {
		return nil
	}
	return cols[group]
}

// Columns returns every match grouped by capture group: Columns(doc)[g][i]
// is group g of match i. Group 0 is the whole match. Groups that did not
// participate in a match are "".
func (p *Pattern) Columns(doc string) [][]string {
	matches := p.re.FindAllStringSubmatch(doc, -1)
	cols := make([][]string, p.re.NumSubexp()+1)
	for g := range cols {
		cols[g] = make([]string, len(matches))
		for i, m := range matches {
			cols[g][i] = m[g]
		}
	}
	return cols
}

// Rows returns one record per match, each holding all of that match's
// capture groups.
func (p *Pattern) Rows(doc string) [][]string {
	return Transpose(p.Columns(doc))
}

// Transpose turns group-major columns into row-major records:
// Transpose(c)[i][g] == c[g][i]. Match order is preserved. Columns of
// unequal length leave "" in the missing cells.
func Transpose(columns [][]string) [][]string {
	n := 0
	for _, c := range columns {
		if len(c) > n {
			n = len(c)
		}
	}
	if n == 0 {
		return nil
	}

	rows := make([][]string, n)
	for i := range rows {
		rows[i] = make([]string, len(columns))
	}
	for g, c := range columns {
		for i, v := range c {
			rows[i][g] = v
		}
	}
	return rows
}
