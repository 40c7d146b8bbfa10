// Package normalize turns raw site text into canonical values: ISO dates,
// split names and genders.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// genitiveMonths maps Polish month names in the genitive case, as used in
// dates ("5 listopada 2007"), to two-digit month numbers. "paździenika" is
// a misspelling that appears on the site.
var genitiveMonths = map[string]string{
	"stycznia":     "01",
	"lutego":       "02",
	"marca":        "03",
	"kwietnia":     "04",
	"maja":         "05",
	"czerwca":      "06",
	"lipca":        "07",
	"sierpnia":     "08",
	"września":     "09",
	"października": "10",
	"paździenika":  "10",
	"listopada":    "11",
	"grudnia":      "12",
}

// Month maps a genitive month name to its two-digit number.
func Month(name string) (string, error) {
	if m, ok := genitiveMonths[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return "", scrapeerr.NewNormalization("month", name)
}

// MonthNames lists every recognised month name.
func MonthNames() []string {
	names := make([]string, 0, len(genitiveMonths))
	for n := range genitiveMonths {
		names = append(names, n)
	}
	return names
}

// ISODate assembles YYYY-MM-DD from numeric day, month and year strings.
func ISODate(day, month, year string) (string, error) {
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil || d < 1 || d > 31 {
		return "", scrapeerr.NewNormalization("day", day)
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return "", scrapeerr.NewNormalization("month", month)
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 1000 || y > 9999 {
		return "", scrapeerr.NewNormalization("year", year)
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), nil
}

// DottedDate converts "d.m.yyyy" (e.g. "5.11.2007") to ISO form.
func DottedDate(s string) (string, error) {
	parts := strings.Split(strings.Trim(strings.Join(strings.Fields(s), ""), "."), ".")
	if len(parts) != 3 {
		return "", scrapeerr.NewNormalization("date", s)
	}
	return ISODate(parts[0], parts[1], parts[2])
}

var dottedDateRe = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`)

// FindDottedDate converts the first "d.m.yyyy" date found in text.
func FindDottedDate(text string) (string, error) {
	m := dottedDateRe.FindString(text)
	if m == "" {
		return "", scrapeerr.NewNormalization("date", text)
	}
	return DottedDate(m)
}

var wordDateRe = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)\s+(\d{4})`)

// WordDate converts "12 stycznia 1960" to ISO form.
func WordDate(s string) (string, error) {
	m := wordDateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", scrapeerr.NewNormalization("date", s)
	}
	month, err := Month(m[2])
	if err != nil {
		return "", err
	}
	return ISODate(m[1], month, m[3])
}
