package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epforgpl/senat-cli/internal/model"
	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

func TestSittingsPage(t *testing.T) {
	page1 := fixture(t, "sittings_page1.html", "/prace/senat/posiedzenia/page,1.html")
	page2 := fixture(t, "sittings_page2.html", "/prace/senat/posiedzenia/page,2.html")

	got, err := SittingsPage(page1)
	require.NoError(t, err)
	want := []model.Sitting{
		{
			ID: "222", Number: 32, Name: "32. posiedzenie Senatu",
			Dates:        []string{"2012-04-04", "2012-04-05"},
			TopicsURL:    base + "/prace/senat/posiedzenia/tematy,222,1.html",
			StenogramURL: base + "/prace/senat/posiedzenia/przebieg,222,1.html",
		},
		{
			ID: "221", Number: 31, Name: "31. posiedzenie Senatu",
			Dates:        []string{"2012-03-21", "2012-03-22"},
			TopicsURL:    base + "/prace/senat/posiedzenia/tematy,221,1.html",
			StenogramURL: base + "/prace/senat/posiedzenia/przebieg,221,1.html",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SittingsPage mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, HasNextSittingsPage(page1.Body))

	got, err = SittingsPage(page2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"2012-03-07", "2012-03-08", "2012-03-09"}, got[0].Dates)
	assert.False(t, HasNextSittingsPage(page2.Body))
}

func TestSittingDates(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"5 listopada 2007 r.", []string{"2007-11-05"}},
		{"28, 29 i 30 paździenika 2009", []string{"2009-10-28", "2009-10-29", "2009-10-30"}},
		{"1 i 2 grudnia 2010 r", []string{"2010-12-01", "2010-12-02"}},
	}
	for _, tt := range tests {
		got, err := SittingDates(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := SittingDates("30 września - 1 października 2015 r.")
	assert.Error(t, err)

	_, err = SittingDates("5 brumaire 2007")
	var ne *scrapeerr.NormalizationError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "brumaire", ne.Value)
}

func TestSittingsPage_UnnumberedName(t *testing.T) {
	doc := Document{
		URL: base + "/prace/senat/posiedzenia/page,1.html",
		Body: `<tr class="w"><td class="pierwsza"><a href="/p/tematy,1,1.html">Posiedzenie nadzwyczajne</a></td>` +
			`<td>5 listopada 2007 r.</td><td class="ostatnia"><a class="stenogram-link" href="/p/przebieg,1,1.html">s</a></td></tr>`,
	}
	_, err := SittingsPage(doc)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "sittings.number", ee.Field)
	assert.Equal(t, doc.URL, ee.URL)
}

func TestVotingsPage(t *testing.T) {
	doc := fixture(t, "votings_day1.html", "/prace/senat/posiedzenia/przebieg,220,1,glosowania.html")

	got, err := VotingsPage(doc, "220", 1)
	require.NoError(t, err)
	want := []model.VotingEvent{
		{
			SittingID: "220", No: "1", Day: 1,
			Motion:           "Ustawa o zmianie ustawy o testach",
			Action:           "Głosowanie nad całością",
			ResultsPeopleURL: base + "/prace/senat/posiedzenia/glosowanie-drukuj,368.html",
			ResultsClubsURL:  base + "/prace/senat/posiedzenia/glosowanie-kluby,368.html",
			Source:           doc.URL,
		},
		{
			SittingID: "220", No: "2", Day: 1,
			Action:           "Wniosek formalny",
			ResultsPeopleURL: base + "/prace/senat/posiedzenia/glosowanie-drukuj,369.html",
			ResultsClubsURL:  base + "/prace/senat/posiedzenia/glosowanie-kluby,369.html",
			Source:           doc.URL,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("VotingsPage mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, HasNextDay(doc.Body))
}

func TestVotingsPage_NoVotingsDay(t *testing.T) {
	doc := fixture(t, "votings_none.html", "/prace/senat/posiedzenia/przebieg,220,2,glosowania.html")
	assert.True(t, HasNoVotings(doc.Body))

	got, err := VotingsPage(doc, "220", 2)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.True(t, HasNextDay(doc.Body))
}

func TestVotingsPage_MotionRequired(t *testing.T) {
	doc := Document{
		URL: base + "/prace/senat/posiedzenia/przebieg,304,2,glosowania.html",
		Body: `<table class="glosowania"><tr><th>Nr</th></tr><tr><td>11</td>` +
			`<td><div></div><p class="podpis">Poprawka</p></td>` +
			`<td><a href="/a">w</a><a href="/b">i</a></td><td><a href="/c">k</a></td></tr></table>`,
	}
	_, err := VotingsPage(doc, "304", 2)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "voting.motion", ee.Field)
	assert.Contains(t, ee.Error(), "Poprawka")
	assert.Equal(t, doc.URL, ee.URL)
}

func TestVotingsPage_MissingLinks(t *testing.T) {
	doc := Document{
		URL: base + "/prace/senat/posiedzenia/przebieg,304,1,glosowania.html",
		Body: `<table class="glosowania"><tr><th>Nr</th></tr><tr><td>1</td>` +
			`<td><div>Ustawa</div></td><td><a href="/a">w</a></td><td></td></tr></table>`,
	}
	_, err := VotingsPage(doc, "304", 1)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "voting.results_people_url", ee.Field)
}

func TestVotingsPage_MissingTable(t *testing.T) {
	_, err := VotingsPage(Document{Body: "<p>przerwa techniczna</p>"}, "1", 1)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "table.glosowania tr", ee.Field)
}

func TestPeopleVotes(t *testing.T) {
	doc := fixture(t, "people_votes.html", "/prace/senat/posiedzenia/glosowanie-drukuj,368.html")

	got, err := PeopleVotes(doc)
	require.NoError(t, err)
	want := &model.VoteResults{
		Source:  doc.URL,
		Present: 4,
		Grouped: map[model.VoteOutcome]int{
			model.VoteYes:       2,
			model.VoteNo:        1,
			model.VoteAbstain:   0,
			model.VoteNotVoting: 0,
		},
		Votes: []model.PersonVote{
			{FamilyName: "Kowalski", Initials: []string{"J"}, Vote: model.VoteYes},
			{FamilyName: "Nowak", Initials: []string{"A", "M"}, Vote: model.VoteNo},
			{FamilyName: "Wiśniewski", Initials: []string{"B"}, Vote: model.VoteYes},
			{FamilyName: "Maj", Initials: []string{"K"}, Vote: model.VoteAbsent},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PeopleVotes mismatch (-want +got):\n%s", diff)
	}
}

func TestPeopleVotes_Cancelled(t *testing.T) {
	doc := fixture(t, "people_votes_cancelled.html", "/prace/senat/posiedzenia/glosowanie-drukuj,370.html")

	got, err := PeopleVotes(doc)
	require.NoError(t, err)
	assert.True(t, got.Cancelled)
	assert.Empty(t, got.Grouped)
	assert.Empty(t, got.Votes)
}

func TestPeopleVotes_UnknownLabelIsNamed(t *testing.T) {
	doc := Document{
		URL: base + "/prace/senat/posiedzenia/glosowanie-drukuj,1.html",
		Body: `<div class="ogolne-wyniki"><span>Za: 1</span></div>` +
			`<div class="glosy-senatorow"><div class="senator"><span class="dane">J. Kowalski</span><span class="glos">chyba</span></div></div>`,
	}
	_, err := PeopleVotes(doc)
	var ne *scrapeerr.NormalizationError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "chyba", ne.Value)
	assert.Equal(t, "vote_detail", ne.Field)

	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, doc.URL, ee.URL)
}

func TestPeopleVotes_UnknownTally(t *testing.T) {
	doc := Document{
		Body: `<div class="ogolne-wyniki"><span>Spóźnionych: 2</span></div>` +
			`<div class="glosy-senatorow"><div class="senator"><span class="dane">J. Kowalski</span><span class="glos">za</span></div></div>`,
	}
	_, err := PeopleVotes(doc)
	var ne *scrapeerr.NormalizationError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "Spóźnionych", ne.Value)
}

func TestPeopleVotes_NameMustBeTwoWords(t *testing.T) {
	doc := Document{
		Body: `<div class="ogolne-wyniki"><span>Za: 1</span></div>` +
			`<div class="glosy-senatorow"><div class="senator"><span class="dane">Jan Maria Kowalski</span><span class="glos">za</span></div></div>`,
	}
	_, err := PeopleVotes(doc)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "vote_results.name", ee.Field)
}

func TestPeopleVotes_VotedHeadcountFallback(t *testing.T) {
	doc := Document{
		Body: `<div class="ogolne-wyniki"><span>Głosowało: 3</span><span>Za: 3</span></div>` +
			`<div class="glosy-senatorow"><div class="senator"><span class="dane">J. Kowalski</span><span class="glos">za</span></div></div>`,
	}
	got, err := PeopleVotes(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Present)
	assert.Equal(t, map[model.VoteOutcome]int{model.VoteYes: 3}, got.Grouped)
}

func TestTermsOfOffice(t *testing.T) {
	doc := fixture(t, "terms.html", "/poprzednie-kadencje/")

	got, err := TermsOfOffice(doc)
	require.NoError(t, err)
	assert.Equal(t, []model.TermOfOffice{
		{ID: "VII", StartDate: "2007-11-05", EndDate: "2011-11-07", Source: doc.URL},
		{ID: "VI", StartDate: "2005-10-19", EndDate: "2007-11-04", Source: doc.URL},
	}, got)
}

func TestTermsOfOffice_Unparsable(t *testing.T) {
	doc := Document{
		URL:  base + "/poprzednie-kadencje/",
		Body: `<div class="aktualnosci-margines"><ul><li>Archiwum</li></ul></div>`,
	}
	_, err := TermsOfOffice(doc)
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "terms.entry@1", ee.Pattern)
	assert.Equal(t, doc.URL, ee.URL)
}
