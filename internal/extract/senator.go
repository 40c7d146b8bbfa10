package extract

import (
	"strings"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/normalize"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
	"github.com/epforgpl/senat-cli/internal/textutil"
)

// SenatorDetail extracts what the senator's own page holds. ID, statement
// URLs, speech activity and the checksum come from elsewhere and are set by
// the caller; Source is the page URL.
func SenatorDetail(doc Document) (*model.Senator, error) {
	s := &model.Senator{
		OKW:       okwPattern.Lookup(doc.Body, 1),
		WWW:       wwwPattern.Lookup(doc.Body, 1),
		Cadencies: Cadencies(doc.Body),
		Email:     Email(doc.Body),
		Clubs:     Clubs(doc),
		Employees: Employees(doc),
		Source:    doc.URL,
	}

	var err error
	if s.MandateEndDate, err = MandateEndDate(doc.Body); err != nil {
		return nil, doc.fail(err, "mandate_end_date")
	}

	raw, err := bioNotePattern.Select(doc.Body, 1)
	if err != nil {
		return nil, doc.fail(err, "bio_note")
	}
	s.BioNote = textutil.CollapseWhitespace(textutil.StripTags(raw))
	if s.BirthDate, err = BirthDate(s.BioNote); err != nil {
		return nil, doc.fail(err, "birth_date")
	}

	if s.Committees, err = Memberships(doc, committeesFrom, teamsTo); err != nil {
		return nil, err
	}
	if s.ParliamentaryAssemblies, err = Memberships(doc, parlAssemblies, teamsTo); err != nil {
		return nil, err
	}
	if s.SenateAssemblies, err = Memberships(doc, senateAssemblies, teamsTo); err != nil {
		return nil, err
	}
	return s, nil
}

// Cadencies lists the terms the senator served, e.g. ["VII", "VIII"].
func Cadencies(body string) []string {
	raw := textutil.Trim(cadenciesPattern.Lookup(body, 2))
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ", ")
}

// Email reassembles the address the page hides behind a SendTo script.
func Email(body string) string {
	m := emailPattern.Regexp().FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1] + "@" + m[2]
}

// Clubs extracts club memberships keyed by club id.
func Clubs(doc Document) map[string]model.Club {
	clubs := map[string]model.Club{}
	section, ok := textutil.Between(doc.Body, textutil.Marker(clubsFrom), textutil.Marker(clubsTo))
	if !ok {
		return clubs
	}
	for _, row := range clubPattern.Rows(section) {
		clubs[row[3]] = model.Club{
			ID:   row[3],
			Name: row[4],
			URL:  doc.Resolve(row[1]),
		}
	}
	return clubs
}

// Employees extracts the senator's office staff.
func Employees(doc Document) []model.Employee {
	out := []model.Employee{}
	section, ok := textutil.Between(doc.Body, textutil.Marker(employeesFrom), textutil.Marker(employeesTo))
	if !ok {
		return out
	}
	for _, row := range employeePattern.Rows(section) {
		out = append(out, model.Employee{
			Name: textutil.CollapseWhitespace(row[2]),
			URL:  doc.Resolve(row[1]),
		})
	}
	return out
}

// Memberships extracts the committee or assembly list found between the
// from and to markers, keyed by id. A missing section yields an empty map;
// date text in neither "Od: d.m.yyyy r." nor "Do: d.m.yyyy r." form is an
// error.
func Memberships(doc Document, from, to string) (map[string]model.Membership, error) {
	teams := map[string]model.Membership{}
	section, ok := textutil.Between(doc.Body, textutil.Marker(from), textutil.Marker(to))
	if !ok {
		return teams, nil
	}

	for _, row := range teamPattern.Rows(section) {
		m := model.Membership{
			ID:    row[2],
			Name:  textutil.CollapseWhitespace(row[3]),
			URL:   doc.Resolve(row[1]),
			Notes: textutil.CollapseWhitespace(textutil.StripTags(row[4])),
		}
		if err := membershipDates(&m, textutil.CollapseWhitespace(textutil.StripTags(row[5]))); err != nil {
			return nil, doc.fail(err, "membership_dates")
		}
		teams[m.ID] = m
	}
	return teams, nil
}

func membershipDates(m *model.Membership, text string) error {
	if text == "" {
		return nil
	}

	hit := false
	if v, ok := teamStartPattern.Find(text, 1); ok {
		d, err := normalize.DottedDate(v)
		if err != nil {
			return err
		}
		m.StartDate, hit = d, true
	}
	if v, ok := teamEndPattern.Find(text, 1); ok {
		d, err := normalize.DottedDate(v)
		if err != nil {
			return err
		}
		m.EndDate, hit = d, true
	}
	if !hit {
		return scrapeerr.NewExtraction("membership_dates", teamStartPattern.ID(), "unrecognized date format: "+text)
	}
	return nil
}

// MandateEndDate reads the date from a "Mandat ..." or "Zmarł ..." line of
// the info list; "Mandat" takes precedence. It returns "" when neither is
// present.
func MandateEndDate(body string) (string, error) {
	line := mandatePattern.Lookup(body, 1)
	if line == "" {
		line = deceasedPattern.Lookup(body, 1)
	}
	line = textutil.CollapseWhitespace(line)
	if line == "" {
		return "", nil
	}
	return normalize.FindDottedDate(line)
}

// BirthDate reads "Urodził(a) się 12 stycznia 1960" from a bio note. An
// empty note has no birth date; a non-empty one without the sentence is an
// error.
func BirthDate(bio string) (string, error) {
	if bio == "" {
		return "", nil
	}
	m := birthDatePattern.Regexp().FindStringSubmatch(bio)
	if m == nil {
		return "", scrapeerr.NewExtraction("birth_date", birthDatePattern.ID(), "no birth date in bio note")
	}
	month, err := normalize.Month(m[3])
	if err != nil {
		return "", err
	}
	return normalize.ISODate(m[2], month, m[4])
}
