package extract

import "github.com/epforgpl/senat-cli/internal/textutil"

// Page markers.
const (
	nextSittingsPageMarker = `<div class="pager-nastepne">`
	nextDayMarker          = ` class="link-stenogram-nastepny-dzien"`
	noVotingsMarker        = `W tym dniu nie odbyły się żadne głosowania`
	cancelledVoting        = `Głosowanie anulowane`
	proceduralMotion       = `Wniosek formalny`

	clubsFrom        = `<div class="kluby">`
	clubsTo          = `</div>`
	employeesFrom    = `<h3>Pracownicy i współpracownicy</h3>`
	employeesTo      = `<div class="js-content komisje">`
	committeesFrom   = `<div class="js-content komisje">`
	parlAssemblies   = `<p class="etykieta">Zespoły parlamentarne</p>`
	senateAssemblies = `<p class="etykieta">Zespoły senackie</p>`
	teamsTo          = `</ul>`

	speechAnchorPrefix = `<h3 class="speech-rel"`
)

// Senators list.
var senatorListPattern = textutil.MustPattern("senators.entry", 1,
	`<div class="senator-kontener"[^<]*<div class="zdjecie">[^<]*?<img src="([^"]*?)"[^<]*?</div>[\s\S]*?<a href="/sklad/senatorowie/senator,([^"]*)">([^<]*)</a>[\s\S]*?(<p class="adnotacja">([^<]*)</p>| )`)

// Senator detail page.
var (
	okwPattern = textutil.MustPattern("senator.okw", 1,
		`<div class="informacje">[\s\S]*?<li>(Okręg ([^<]*))</li>`)
	deceasedPattern = textutil.MustPattern("senator.deceased", 1,
		`(?i)<div class="informacje">[\s\S]*?<li>["\s\S]*(Zmarł([^<]*))</li>`)
	mandatePattern = textutil.MustPattern("senator.mandate", 1,
		`(?i)<div class="informacje">[\s\S]*?<li>["\s\S]*(Mandat ([^<]*))</li>`)
	wwwPattern = textutil.MustPattern("senator.www", 1,
		`<div class="informacje">[\s\S]*?<li>[\s\S]*?WWW:[^"]*?"([^"]*)"[\s\S]*?</li>`)
	cadenciesPattern = textutil.MustPattern("senator.cadencies", 1,
		`<div class="informacje">[\s\S]*?<li>(Kadencje:([^<]*))</li>`)
	emailPattern = textutil.MustPattern("senator.email", 1,
		`<div class="informacje">[\s\S]*?<li>[\s\S]*?E-mail:[^<]*?<script type="text/javascript">[^S]*SendTo\('[^']*?', '[^']*?', '([^']*)', '([^']*)', [\s\S]*?</script>[\s\S]*?</li>`)
	clubPattern = textutil.MustPattern("senator.club", 1,
		`<p><a href="(([^#]*)#klub-([\d]*))" title="([^"]*)"[^<]*?</a></p>`)
	bioNotePattern = textutil.MustPattern("senator.bio_note", 1,
		`<div class="sekcja-2">[^<]*?([\s\S]*)</div>[^<]*?<div class="sekcja-2">`)
	birthDatePattern = textutil.MustPattern("senator.birth_date", 1,
		`(?i)Urodził(a)? się (\d+)\s+(\p{L}+)\s+(\d{4})`)
	employeePattern = textutil.MustPattern("senator.employee", 1,
		`<div>[\s\S]*?<a href="([^"]*)">([^<]*)</a>[^<]*?</div>`)
	teamPattern = textutil.MustPattern("senator.team", 1,
		`<li>[^<]*?<a href="([^,]*,([\d]*),[^"]*)">([^<]*)</a>([\s\S]*?)<p>([^<]*?)</p>[\s\S]*?</li>`)
	teamStartPattern = textutil.MustPattern("senator.team.start", 1,
		`(?i)Od:\s*(\d{1,2}\.\d{1,2}\.\d{4})\s+r\.`)
	teamEndPattern = textutil.MustPattern("senator.team.end", 1,
		`(?i)Do:\s*(\d{1,2}\.\d{1,2}\.\d{4})\s+r\.`)
)

// Senator activity pages.
var (
	agendaRowPattern = textutil.MustPattern("activity.agenda_item", 1,
		`<tr>[^<]*?<td class="numer-posiedzenia">([\d]*?)</td>[\s\S]*?<td class="data-aktywnosci nowrap">([^<]*?)</td>[^<]*?<td class="punkt">([^<]*?)</td>[^<]*?<td class="etapy">([\s\S]*?)</td>[^<]*?</tr>`)
	activityPattern = textutil.MustPattern("activity.speech", 1,
		`<p>[^<]*?<a[\s\S]*?href="/prace/senat/posiedzenia/przebieg,([^,]*),[\d]*([^.]*?)\.html#([^"]*)"[^>]*?>([^<]*)</a>[^<]*?</p>`)
	votingSittingPattern = textutil.MustPattern("activity.voting_sitting", 1,
		`<td class="nowrap">[^<]*?<a href="(/sklad/senatorowie/aktywnosc-glosowania,[\d]*,8,szczegoly,([^.]*)\.html)">[^<]*?</a>[^<]*?</td>`)
	senatorVotePattern = textutil.MustPattern("activity.vote", 1,
		`<td>[^<]*?<a href="(/sklad/senatorowie/szczegoly-glosowania,([^,]*),([^,]*),8.html)">[^<]*?</a>[^<]*?</td>[^<]*?<td>[^<]*?</td>[^<]*?<td>([^<]*)</td>`)
)

// Sittings.
var (
	sittingPattern = textutil.MustPattern("sittings.row", 1,
		`<tr [^<]*?>[^<]*?<td class="pierwsza">[\s\S]*?<a href="(([^,]*),([\d]*?),([^"]*))"[^>]*?>([^<]*)</a>[\s\S]*?</td>[\s\S]*?<td>([^<]*)</td>[\s\S]*?<td class="ostatnia">[\s\S]*?<a class="stenogram-link".*?href="([^"]*)"[^>]*?>[\s\S]*?</tr>`)
	sittingNumberPattern = textutil.MustPattern("sittings.number", 1,
		`^(\d+)`)
	sittingDatesPattern = textutil.MustPattern("sittings.dates", 1,
		`^([\d\si,]+)(\p{L}+)\s+(\d{4})[\sr\.]*$`)
)

// Votes.
var tallyPattern = textutil.MustPattern("votes.tally", 1,
	`([\p{L}\s]+):\s*(\d+)`)

// Stenogram.
var (
	stenogramPattern = textutil.MustPattern("stenogram.content", 1,
		`<div id="jq-stenogram-tresc">([\s\S]*?)<script type="text/javascript" src="/szablony/senat/scripts/jquery.colorbox-min.js"></script>`)
	speechHeadingPattern = textutil.MustPattern("stenogram.speech_heading", 1,
		`<h3 rel="([^"]*?)"[^>]*?>`)
	speechPlaceholderPattern = textutil.MustPattern("stenogram.speech_placeholder", 1,
		`\[SPEECH_REL="([^"]*?)"\]`)
)

// Terms of office.
var termPattern = textutil.MustPattern("terms.entry", 1,
	`([VIXMC]+)[^\(]+\(([\d\.]+)[^-]+\-([\d\.]+)`)
