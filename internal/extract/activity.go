package extract

import (
	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

// SpeechActivity extracts a senator's speeches grouped by agenda item. A
// page without rows yields an empty list.
func SpeechActivity(doc Document) []model.AgendaActivity {
	out := []model.AgendaActivity{}
	for _, row := range agendaRowPattern.Rows(doc.Body) {
		item := model.AgendaActivity{
			SittingNumber: row[1],
			When:          textutil.Trim(row[2]),
			AgendaItem:    textutil.Trim(row[3]),
			Activities:    []model.Activity{},
		}
		for _, a := range activityPattern.Rows(row[4]) {
			item.Activities = append(item.Activities, model.Activity{
				Title:       textutil.Trim(a[4]),
				SittingID:   a[1],
				SpeechRef:   a[3],
				InStenogram: a[2] == "",
			})
		}
		out = append(out, item)
	}
	return out
}

// VotingActivitySittings lists the sitting ids linked from a senator's
// voting activity page, in page order without repeats.
func VotingActivitySittings(doc Document) []string {
	var ids []string
	seen := map[string]bool{}
	for _, id := range votingSittingPattern.All(doc.Body, 2) {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// SenatorVotes extracts how a senator voted in each voting of one sitting.
// Every label must belong to ActivityVocabulary.
func SenatorVotes(doc Document) ([]model.SenatorVote, error) {
	out := []model.SenatorVote{}
	index := map[string]int{}
	for _, row := range senatorVotePattern.Rows(doc.Body) {
		outcome, err := ActivityVocabulary.Outcome(row[4])
		if err != nil {
			return nil, doc.fail(err, "vote")
		}
		v := model.SenatorVote{
			VotingID:  row[2] + "," + row[3],
			SittingID: row[2],
			VotingNo:  row[3],
			Vote:      outcome,
		}
		if i, seen := index[v.VotingID]; seen {
			out[i] = v
			continue
		}
		index[v.VotingID] = len(out)
		out = append(out, v)
	}
	return out, nil
}
