package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

const base = "http://senat.gov.pl"

func fixture(t *testing.T, name, path string) Document {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return Document{URL: base + path, Body: string(body)}
}

func TestSenatorList(t *testing.T) {
	doc := fixture(t, "senators_list.html", "/sklad/senatorowie/")

	got, err := SenatorList(doc)
	require.NoError(t, err)

	want := []model.SenatorListing{
		{
			NameParts: model.NameParts{Name: "Jan Kowalski", GivenName: "Jan", FamilyName: "Kowalski"},
			ID:        "12",
			Photo:     base + "/upload/senatorowie/12.jpg",
			URL:       base + "/sklad/senatorowie/senator,12,8,jan-kowalski.html",
		},
		{
			NameParts: model.NameParts{Name: "Anna Maria Nowak", GivenName: "Anna", FamilyName: "Nowak", AdditionalName: "Maria"},
			ID:        "33",
			Photo:     base + "/upload/senatorowie/33.jpg",
			URL:       base + "/sklad/senatorowie/senator,33,8,anna-maria-nowak.html",
			EndDate:   "2014-03-12",
		},
		{
			NameParts: model.NameParts{Name: "Bożydar Wiśniewski", GivenName: "Bożydar", FamilyName: "Wiśniewski"},
			ID:        "47",
			Photo:     base + "/upload/senatorowie/47.jpg",
			URL:       base + "/sklad/senatorowie/senator,47,8,bozydar-wisniewski.html",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SenatorList mismatch (-want +got):\n%s", diff)
	}
}

func TestSenatorList_EmptyPageFails(t *testing.T) {
	_, err := SenatorList(Document{URL: base + "/sklad/senatorowie/", Body: "<html></html>"})
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "senators.entry@1", ee.Pattern)
	assert.Equal(t, base+"/sklad/senatorowie/", ee.URL)
}

func TestSenatorList_BadAnnotation(t *testing.T) {
	body := `<div class="senator-kontener"><div class="zdjecie"><img src="/x.jpg"/></div>` +
		`<a href="/sklad/senatorowie/senator,5,8,x.html">Jan Nowak</a><p class="adnotacja">Mandat wygasł</p>`
	_, err := SenatorList(Document{URL: base + "/sklad/senatorowie/", Body: body})
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "senator.end_date", ee.Field)
	assert.Equal(t, scrapeerr.KindExtraction, scrapeerr.KindOf(err))
}

func TestSenatorDetail(t *testing.T) {
	doc := fixture(t, "senator.html", "/sklad/senatorowie/senator,12.html")

	got, err := SenatorDetail(doc)
	require.NoError(t, err)

	want := &model.Senator{
		OKW:       "Okręg 42 Warszawa",
		Cadencies: []string{"VII", "VIII"},
		Email:     "jan.kowalski@senat.gov.pl",
		WWW:       "http://www.jankowalski.pl",
		Clubs: map[string]model.Club{
			"5": {ID: "5", Name: "Klub Parlamentarny Testowy", URL: base + "/sklad/kluby-i-kola/#klub-5"},
			"9": {ID: "9", Name: "Koło Senatorów Niezależnych", URL: base + "/sklad/kluby-i-kola/#klub-9"},
		},
		BioNote:   "Urodził się 12 stycznia 1960 r. w Warszawie.\n Absolwent Wydziału Prawa.",
		BirthDate: "1960-01-12",
		Employees: []model.Employee{
			{Name: "Anna Zielińska", URL: base + "/sklad/pracownicy/anna-zielinska"},
			{Name: "Piotr Maj", URL: base + "/sklad/pracownicy/piotr-maj"},
		},
		Committees: map[string]model.Membership{
			"7": {
				ID: "7", Name: "Komisja Budżetu i Finansów Publicznych",
				URL:   base + "/prace/komisje-senackie/komisja,7,komisja-budzetu.html",
				Notes: "przewodniczący", StartDate: "2011-11-08",
			},
			"12": {
				ID: "12", Name: "Komisja Zdrowia",
				URL:       base + "/prace/komisje-senackie/komisja,12,komisja-zdrowia.html",
				StartDate: "2011-11-08", EndDate: "2013-03-03",
			},
		},
		ParliamentaryAssemblies: map[string]model.Membership{
			"31": {ID: "31", Name: "Parlamentarny Zespół ds. Testów", URL: base + "/prace/zespoly-parlamentarne/zespol,31,zespol-testow.html"},
		},
		SenateAssemblies: map[string]model.Membership{
			"4": {ID: "4", Name: "Senacki Zespół Testowy", URL: base + "/prace/zespoly-senackie/zespol,4,zespol-senacki.html", EndDate: "2014-02-01"},
		},
		Source: doc.URL,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SenatorDetail mismatch (-want +got):\n%s", diff)
	}
}

func TestSenatorDetail_DistrictOnly(t *testing.T) {
	doc := Document{
		URL: base + "/sklad/senatorowie/senator,1.html",
		Body: `<div class="informacje"><ul><li>Okręg 42 Warszawa</li></ul></div>` +
			`<div class="sekcja-2"></div><div class="sekcja-2"></div>`,
	}
	got, err := SenatorDetail(doc)
	require.NoError(t, err)
	assert.Equal(t, "Okręg 42 Warszawa", got.OKW)
	assert.Empty(t, got.BioNote)
	assert.Empty(t, got.BirthDate)
	assert.Empty(t, got.Email)
	assert.Equal(t, []string{}, got.Cadencies)
	assert.Empty(t, got.Clubs)
	assert.Empty(t, got.Committees)
}

func TestSenatorDetail_FormerSenator(t *testing.T) {
	doc := fixture(t, "senator_former.html", "/sklad/senatorowie/senator,7.html")

	got, err := SenatorDetail(doc)
	require.NoError(t, err)
	assert.Equal(t, "Okręg 7 Lublin", got.OKW)
	assert.Equal(t, "2007-11-05", got.MandateEndDate)
	assert.Equal(t, "1948-10-03", got.BirthDate)
}

func TestSenatorDetail_MissingBioNote(t *testing.T) {
	doc := Document{
		URL:  base + "/sklad/senatorowie/senator,100.html",
		Body: `<div class="informacje"><ul><li>Okręg 1 Legnica</li></ul></div>`,
	}
	_, err := SenatorDetail(doc)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "senator.bio_note", ee.Field)
	assert.Equal(t, "senator.bio_note@1", ee.Pattern)
	assert.Equal(t, doc.URL, ee.URL)
}

func TestSenatorDetail_BioWithoutBirthDate(t *testing.T) {
	doc := Document{
		URL:  base + "/sklad/senatorowie/senator,2.html",
		Body: `<div class="sekcja-2"><p>Prawnik.</p></div><div class="sekcja-2"></div>`,
	}
	_, err := SenatorDetail(doc)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "birth_date", ee.Field)
	assert.Equal(t, doc.URL, ee.URL)
}

func TestBirthDate(t *testing.T) {
	d, err := BirthDate("Urodziła się 3 października 1948 r.")
	require.NoError(t, err)
	assert.Equal(t, "1948-10-03", d)

	d, err = BirthDate("")
	require.NoError(t, err)
	assert.Empty(t, d)

	_, err = BirthDate("Urodził się 3 brumaire 1948 r.")
	var ne *scrapeerr.NormalizationError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "brumaire", ne.Value)
}

func TestMandateEndDate(t *testing.T) {
	info := func(lines ...string) string {
		body := `<div class="informacje"><ul>`
		for _, l := range lines {
			body += "<li>" + l + "</li>"
		}
		return body + "</ul></div>"
	}

	d, err := MandateEndDate(info("Okręg 3 Wrocław"))
	require.NoError(t, err)
	assert.Empty(t, d)

	d, err = MandateEndDate(info("Zmarł 10.04.2010 r."))
	require.NoError(t, err)
	assert.Equal(t, "2010-04-10", d)

	// Mandat wins over Zmarł.
	d, err = MandateEndDate(info("Mandat wygasł 1.2.2010 r.", "Zmarł 10.04.2010 r."))
	require.NoError(t, err)
	assert.Equal(t, "2010-02-01", d)

	_, err = MandateEndDate(info("Mandat wygasł w kwietniu"))
	assert.Error(t, err)
}

func TestMemberships_UnknownDateFormat(t *testing.T) {
	doc := Document{
		URL: base + "/sklad/senatorowie/senator,3.html",
		Body: `<div class="js-content komisje"><ul><li>` +
			`<a href="/prace/komisje/komisja,7,x.html">Komisja</a><p>od wczoraj</p></li></ul>`,
	}
	_, err := Memberships(doc, committeesFrom, teamsTo)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "membership_dates", ee.Field)
	assert.Equal(t, doc.URL, ee.URL)
	assert.Contains(t, ee.Error(), "od wczoraj")
}

func TestMemberships_MissingSection(t *testing.T) {
	got, err := Memberships(Document{Body: "<p>nic</p>"}, senateAssemblies, teamsTo)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestDocument_Resolve(t *testing.T) {
	d := Document{URL: "http://senat.gov.pl/sklad/senatorowie/"}
	assert.Equal(t, "http://senat.gov.pl/a,1.html", d.Resolve("/a,1.html"))
	assert.Equal(t, "http://example.org/x", d.Resolve("http://example.org/x"))
	assert.Equal(t, "", d.Resolve("  "))
	assert.Equal(t, "/a", Document{}.Resolve("/a"))
}
