package model

// Sitting is one numbered plenary session, possibly spanning several days.
type Sitting struct {
	ID           string   `json:"id"`
	Number       int      `json:"number"`
	Name         string   `json:"name"`
	Dates        []string `json:"dates"`
	TopicsURL    string   `json:"topics_url"`
	StenogramURL string   `json:"stenogram_url"`
}

// Stenogram is the transcript of a sitting. Text keeps one
// `<h3 class="speech-rel" id=".." rel=".."></h3>` anchor per speech so a
// single speech can be sliced out by reference later.
type Stenogram struct {
	SittingID string   `json:"sitting_id"`
	Source    []string `json:"source"`
	Text      string   `json:"text"`
}

// TermOfOffice is a cadence of the Senate.
type TermOfOffice struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Source    string `json:"source"`
}
