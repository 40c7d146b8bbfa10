package extract

import (
	"fmt"
	"strings"

	"github.com/epforgpl/senat-cli/internal/textutil"
)

// StenogramPage returns the cleaned transcript text of one sitting day, or
// "" when the page has none. Markup is dropped except for one
// `<h3 class="speech-rel" id=".." rel=".."></h3>` anchor per speech.
// Paragraph ends become CRLF line breaks.
func StenogramPage(doc Document) string {
	raw := stenogramPattern.Lookup(doc.Body, 1)
	if raw == "" {
		return ""
	}
	raw = strings.ReplaceAll(raw, "</p>", "\r\n")
	raw = speechHeadingPattern.Regexp().ReplaceAllString(raw, `[SPEECH_REL="$1"]`)
	raw = textutil.StripTags(raw)
	raw = speechPlaceholderPattern.Regexp().ReplaceAllString(raw, `<h3 class="speech-rel" id="$1" rel="$1"></h3>`)
	return textutil.CollapseWhitespace(raw)
}

// JoinStenogram concatenates the texts of consecutive sitting days.
func JoinStenogram(days []string) string {
	return textutil.Trim("\r\n" + strings.Join(days, ""))
}

// SpeechAnchor is the marker StenogramPage leaves at the start of speech
// ref.
func SpeechAnchor(ref string) string {
	return fmt.Sprintf(`<h3 class="speech-rel" id="%s" rel="%s"></h3>`, ref, ref)
}

// Presiding officer hand-over lines that close a speech in the transcript.
var presidingCuts = []string{
	".\r\nMarszałek ",
	".\r\nWicemarszałek ",
	".\r\n(Przewodnictwo ",
}

// SliceSpeech cuts the speech ref out of a joined stenogram: the text after
// its anchor up to the next anchor. With dropPresiding the presiding
// officer's closing remarks are cut off too. ok is false when the anchor is
// missing.
func SliceSpeech(text, ref string, dropPresiding bool) (speech string, ok bool) {
	speech, ok = textutil.Between(text, textutil.Marker(SpeechAnchor(ref)), textutil.Open)
	if !ok {
		return "", false
	}
	speech = textutil.Before(speech, speechAnchorPrefix)

	if dropPresiding {
		for _, cut := range presidingCuts {
			if i := strings.Index(speech, cut); i >= 0 {
				speech = speech[:i] + "."
			}
		}
	}
	return textutil.Trim(speech), true
}
