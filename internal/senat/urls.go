package senat

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the Senate website.
const DefaultBaseURL = "http://senat.gov.pl"

// currentTerm is the term of office the per-senator pages are scoped to.
const currentTerm = 8

// URLs builds the addresses of the pages the client reads.
type URLs struct {
	Base string
}

func (u URLs) SenatorsList() string {
	return u.Base + "/sklad/senatorowie/"
}

func (u URLs) Senator(id string) string {
	return fmt.Sprintf("%s/sklad/senatorowie/senator,%s.html", u.Base, id)
}

func (u URLs) SenatorSpeeches(id string) string {
	return fmt.Sprintf("%s/sklad/senatorowie/aktywnosc,%s,%d.html", u.Base, id, currentTerm)
}

func (u URLs) SenatorVotingActivity(id string) string {
	return fmt.Sprintf("%s/sklad/senatorowie/aktywnosc-glosowania,%s,%d.html", u.Base, id, currentTerm)
}

func (u URLs) SenatorVotesAtSitting(id, sittingID string) string {
	return fmt.Sprintf("%s/sklad/senatorowie/aktywnosc-glosowania,%s,%d,szczegoly,%s.html", u.Base, id, currentTerm, sittingID)
}

func (u URLs) AssetStatements(id string) string {
	return fmt.Sprintf("%s/sklad/senatorowie/oswiadczenia,%s,%d.html", u.Base, id, currentTerm)
}

func (u URLs) SenatorStatements(id string) string {
	return fmt.Sprintf("%s/sklad/senatorowie/oswiadczenia-senatorskie,%s,%d.html", u.Base, id, currentTerm)
}

func (u URLs) SittingsPage(page int) string {
	return fmt.Sprintf("%s/prace/senat/posiedzenia/page,%d.html", u.Base, page)
}

// SittingTopics takes a sitting id, optionally with a ",day" suffix.
func (u URLs) SittingTopics(id string) string {
	return fmt.Sprintf("%s/prace/senat/posiedzenia/tematy,%s.html", u.Base, id)
}

// SittingVotings addresses the votings of one day. Only the sitting part of
// a "sitting,day" id is used.
func (u URLs) SittingVotings(id string, day int) string {
	return fmt.Sprintf("%s/prace/senat/posiedzenia/przebieg,%s,%d,glosowania.html", u.Base, sittingPart(id), day)
}

func (u URLs) StenogramDay(id string, day int) string {
	return fmt.Sprintf("%s/prace/senat/posiedzenia/przebieg,%s,%d.html", u.Base, sittingPart(id), day)
}

func (u URLs) TermsOfOffice() string {
	return u.Base + "/poprzednie-kadencje/"
}

func sittingPart(id string) string {
	head, _, _ := strings.Cut(id, ",")
	return head
}
