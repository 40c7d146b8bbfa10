package extract

import (
	"strings"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

// Vocabulary maps the labels one page uses for vote outcomes onto the
// closed outcome set.
type Vocabulary struct {
	Name   string
	labels map[string]model.VoteOutcome
}

// Outcome classifies label. Labels are compared lowercased with whitespace
// collapsed; anything not in the vocabulary is a NormalizationError naming
// the label.
func (v Vocabulary) Outcome(label string) (model.VoteOutcome, error) {
	key := labelKey(label)
	if o, ok := v.labels[key]; ok {
		return o, nil
	}
	return "", scrapeerr.NewNormalization(v.Name, label)
}

// Labels returns a copy of the label table.
func (v Vocabulary) Labels() map[string]model.VoteOutcome {
	out := make(map[string]model.VoteOutcome, len(v.labels))
	for k, o := range v.labels {
		out[k] = o
	}
	return out
}

func labelKey(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(textutil.Trim(label)), " "))
}

var (
	// SummaryVocabulary covers the tally line above a voting's results.
	SummaryVocabulary = Vocabulary{Name: "vote_summary", labels: map[string]model.VoteOutcome{
		"za":             model.VoteYes,
		"przeciw":        model.VoteNo,
		"wstrzymało się": model.VoteAbstain,
		"nie głosowało":  model.VoteNotVoting,
		"nieobecnych":    model.VoteAbsent,
	}}

	// DetailVocabulary covers the abbreviated per-senator labels of a
	// voting's results.
	DetailVocabulary = Vocabulary{Name: "vote_detail", labels: map[string]model.VoteOutcome{
		"za":      model.VoteYes,
		"przec.":  model.VoteNo,
		"wstrz.":  model.VoteAbstain,
		"nie gł.": model.VoteNotVoting,
		"nieob.":  model.VoteAbsent,
	}}

	// ActivityVocabulary covers a senator's own voting history pages, which
	// use gendered verb forms.
	ActivityVocabulary = Vocabulary{Name: "vote_activity", labels: map[string]model.VoteOutcome{
		"za":             model.VoteYes,
		"przeciw":        model.VoteNo,
		"wstrzymał się":  model.VoteAbstain,
		"wstrzymała się": model.VoteAbstain,
		"nie głosował":   model.VoteNotVoting,
		"nie głosowała":  model.VoteNotVoting,
		"nieobecny":      model.VoteAbsent,
		"nieobecna":      model.VoteAbsent,
	}}
)

// Headcount labels in the summary tally. They set VoteResults.Present and
// are not outcomes; "obecnych" wins over "głosowało" when both appear.
const (
	headcountPresent = "obecnych"
	headcountVoted   = "głosowało"
)
