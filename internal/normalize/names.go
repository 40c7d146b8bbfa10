package normalize

import (
	"strings"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

// SplitName splits a full name on whitespace: the first token is the given
// name, the last the family name and the first middle token (if any) the
// additional name. multiPart reports names with more than three tokens,
// whose further middle tokens are dropped.
func SplitName(full string) (parts model.NameParts, multiPart bool, err error) {
	tokens := strings.Fields(full)
	if len(tokens) < 2 {
		return model.NameParts{}, false, scrapeerr.NewNormalization("name", full)
	}

	parts = model.NameParts{
		Name:       full,
		GivenName:  tokens[0],
		FamilyName: tokens[len(tokens)-1],
	}
	if len(tokens) > 2 {
		parts.AdditionalName = tokens[1]
	}
	return parts, len(tokens) > 3, nil
}
