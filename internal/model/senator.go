package model

// Gender of a senator, resolved from the given name.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// NameParts is a full name split into its components.
type NameParts struct {
	Name           string `json:"name"`
	GivenName      string `json:"given_name"`
	FamilyName     string `json:"family_name"`
	AdditionalName string `json:"additional_name,omitempty"`
}

// SenatorListing is one entry of the senators list page.
type SenatorListing struct {
	NameParts
	ID      string `json:"id"`
	Gender  Gender `json:"gender"`
	Photo   string `json:"photo"`
	URL     string `json:"url"`
	EndDate string `json:"end_date,omitempty"`
}

// Club is a senators' club (parliamentary group) membership.
type Club struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Employee is an office employee or cooperator of a senator.
type Employee struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Membership is a seat in a committee or an assembly.
type Membership struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Notes     string `json:"notes"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Activity is one speech or statement of a senator at an agenda item.
type Activity struct {
	Title       string `json:"title"`
	SittingID   string `json:"meeting_id"`
	SpeechRef   string `json:"speech_ref"`
	InStenogram bool   `json:"is_in_stenogram"`
}

// AgendaActivity groups a senator's activities at one agenda item.
type AgendaActivity struct {
	SittingNumber string     `json:"no_of_meeting"`
	When          string     `json:"when"`
	AgendaItem    string     `json:"title_of_agenda_item"`
	Activities    []Activity `json:"activity"`
}

// Senator is the detailed record assembled from a senator's page and the
// pages linked from it. Checksum is computed over every other field.
type Senator struct {
	ID                      string                `json:"id"`
	OKW                     string                `json:"okw"`
	MandateEndDate          string                `json:"mandate_end_date,omitempty"`
	Cadencies               []string              `json:"cadencies"`
	Email                   string                `json:"email"`
	WWW                     string                `json:"www"`
	Clubs                   map[string]Club       `json:"clubs"`
	BioNote                 string                `json:"bio_note"`
	BirthDate               string                `json:"birth_date,omitempty"`
	AssetStatementsURL      string                `json:"statements_of_assets_and_record_of_benefits"`
	SenatorStatementsURL    string                `json:"senator_statements"`
	Employees               []Employee            `json:"employees_cooperates"`
	Committees              map[string]Membership `json:"committees"`
	ParliamentaryAssemblies map[string]Membership `json:"parliamentary_assemblies"`
	SenateAssemblies        map[string]Membership `json:"senat_assemblies"`
	Activity                []AgendaActivity      `json:"activity_senat_meetings"`
	Source                  string                `json:"source"`
	Checksum                string                `json:"checksum"`
}

// SenatorRecord is a list entry with its detail attached.
type SenatorRecord struct {
	SenatorListing
	Info *Senator `json:"info,omitempty"`
}
