package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/normalize"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

// SenatorList extracts the entries of the senators list page. Gender is left
// empty; it is resolved by the caller against the name dictionary. Entries
// keep page order; a repeated id replaces the earlier entry.
func SenatorList(doc Document) ([]model.SenatorListing, error) {
	rows := senatorListPattern.Rows(doc.Body)
	if len(rows) == 0 {
		return nil, doc.fail(scrapeerr.NewExtraction("senators", senatorListPattern.ID(), "no senator entries"), "senators")
	}

	out := make([]model.SenatorListing, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		ref := row[2]
		id, _, _ := strings.Cut(ref, ",")
		if id == "" {
			return nil, doc.fail(scrapeerr.NewExtraction("senator.id", senatorListPattern.ID(), "empty id in "+ref), "senator.id")
		}

		name := textutil.CollapseWhitespace(textutil.StripTags(row[3]))
		parts, multiPart, err := normalize.SplitName(name)
		if err != nil {
			return nil, doc.fail(err, "senator.name")
		}
		if multiPart {
			zap.L().Warn("extract: multi-part name", zap.String("name", name), zap.String("id", id))
		}

		entry := model.SenatorListing{
			NameParts: parts,
			ID:        id,
			Photo:     doc.Resolve(row[1]),
			URL:       doc.Resolve("/sklad/senatorowie/senator," + ref),
		}

		if note := textutil.CollapseWhitespace(row[5]); note != "" {
			end, err := normalize.FindDottedDate(note)
			if err != nil {
				return nil, doc.fail(err, "senator.end_date")
			}
			entry.EndDate = end
		}

		if i, seen := index[id]; seen {
			out[i] = entry
			continue
		}
		index[id] = len(out)
		out = append(out, entry)
	}
	return out, nil
}
