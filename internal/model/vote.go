package model

// VoteOutcome is the closed set of ways a senator can take part in a vote.
type VoteOutcome string

const (
	VoteYes       VoteOutcome = "yes"
	VoteNo        VoteOutcome = "no"
	VoteAbstain   VoteOutcome = "abstain"
	VoteNotVoting VoteOutcome = "not_voting"
	VoteAbsent    VoteOutcome = "absent"
)

// AllVoteOutcomes returns every outcome in a fixed order.
func AllVoteOutcomes() []VoteOutcome {
	return []VoteOutcome{VoteYes, VoteNo, VoteAbstain, VoteNotVoting, VoteAbsent}
}

// Valid reports whether o is one of the known outcomes.
func (o VoteOutcome) Valid() bool {
	switch o {
	case VoteYes, VoteNo, VoteAbstain, VoteNotVoting, VoteAbsent:
		return true
	}
	return false
}

// VotingEvent is one recorded vote taken during a sitting. Motion is empty
// only for procedural motions.
type VotingEvent struct {
	SittingID        string `json:"sitting_id"`
	No               string `json:"no"`
	Day              int    `json:"day"`
	Motion           string `json:"motion,omitempty"`
	Action           string `json:"action,omitempty"`
	ResultsPeopleURL string `json:"results_people_url"`
	ResultsClubsURL  string `json:"results_clubs_url"`
	Source           string `json:"source"`
	Checksum         string `json:"checksum"`
}

// SenatorVote is how one senator voted in one voting. VotingID is the
// site's "sitting,voting" pair.
type SenatorVote struct {
	VotingID  string      `json:"voting_id"`
	SittingID string      `json:"sitting_id"`
	VotingNo  string      `json:"voting_no"`
	Vote      VoteOutcome `json:"vote"`
}

// SittingVotes holds a senator's votes at one sitting.
type SittingVotes struct {
	SittingID string        `json:"sitting_id"`
	Votes     []SenatorVote `json:"votes"`
}

// PersonVote is one row of a voting's per-person results.
type PersonVote struct {
	FamilyName string      `json:"family_name"`
	Initials   []string    `json:"initials"`
	Vote       VoteOutcome `json:"vote"`
}

// VoteResults is the tally and per-person list of a single voting.
type VoteResults struct {
	Source    string              `json:"source"`
	Cancelled bool                `json:"cancelled"`
	Present   int                 `json:"present"`
	Grouped   map[VoteOutcome]int `json:"grouped"`
	Votes     []PersonVote        `json:"votes"`
}
