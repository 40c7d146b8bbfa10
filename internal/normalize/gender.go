package normalize

import (
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/rotisserie/eris"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// Dictionary maps given names to gender. It is read-only once a run starts.
type Dictionary map[string]model.Gender

// DefaultDictionary returns a copy of the built-in Polish table.
func DefaultDictionary() Dictionary {
	d := make(Dictionary, len(polishGivenNames))
	for name, g := range polishGivenNames {
		d[nameKey(name)] = g
	}
	return d
}

// LoadDictionaryFile reads a YAML mapping of given name to "male" or
// "female".
func LoadDictionaryFile(path string) (Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "names: read %s", path)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, eris.Wrapf(err, "names: parse %s", path)
	}

	d := make(Dictionary, len(entries))
	for name, g := range entries {
		gender := model.Gender(strings.ToLower(strings.TrimSpace(g)))
		if gender != model.GenderMale && gender != model.GenderFemale {
			return nil, eris.Wrapf(scrapeerr.NewNormalization("gender", g), "names: %s entry %q", path, name)
		}
		d[nameKey(name)] = gender
	}
	return d, nil
}

// Merge returns a new dictionary with other's entries laid over d's.
func (d Dictionary) Merge(other Dictionary) Dictionary {
	out := make(Dictionary, len(d)+len(other))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range other {
		out[nameKey(k)] = v
	}
	return out
}

// Lookup returns the gender of givenName, if known.
func (d Dictionary) Lookup(givenName string) (model.Gender, bool) {
	g, ok := d[nameKey(givenName)]
	return g, ok
}

func nameKey(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Resolution is the outcome of resolving one given name.
type Resolution struct {
	Name    string
	Gender  model.Gender
	Guessed bool
}

// GenderResolver resolves genders from a dictionary, guessing when the name
// is missing.
type GenderResolver struct {
	dict Dictionary
}

// NewGenderResolver creates a resolver over dict.
func NewGenderResolver(dict Dictionary) *GenderResolver {
	return &GenderResolver{dict: dict}
}

// Resolve looks givenName up and falls back to GuessGender. It has no side
// effects; callers collect guessed resolutions into a Guesses set.
func (r *GenderResolver) Resolve(givenName string) Resolution {
	name := nameKey(givenName)
	if g, ok := r.dict.Lookup(name); ok {
		return Resolution{Name: name, Gender: g}
	}
	return Resolution{Name: name, Gender: GuessGender(name), Guessed: true}
}

// GuessGender guesses from the last letter: Polish female given names end
// in a vowel.
func GuessGender(givenName string) model.Gender {
	r := []rune(strings.TrimSpace(givenName))
	if len(r) == 0 {
		return model.GenderMale
	}
	switch unicode.ToLower(r[len(r)-1]) {
	case 'a', 'e', 'o', 'u', 'i':
		return model.GenderFemale
	}
	return model.GenderMale
}

// Guesses accumulates names whose gender was guessed during a run.
type Guesses map[string]model.Gender

// Record adds res when it was a guess.
func (g Guesses) Record(res Resolution) {
	if res.Guessed {
		g[res.Name] = res.Gender
	}
}

// Names returns the guessed names, sorted.
func (g Guesses) Names() []string {
	names := make([]string, 0, len(g))
	for n := range g {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Err returns a GuessError listing every guess, or nil when there were
// none.
func (g Guesses) Err() error {
	if len(g) == 0 {
		return nil
	}
	names := make(map[string]string, len(g))
	for n, gender := range g {
		names[n] = string(gender)
	}
	return &scrapeerr.GuessError{Names: names}
}
