package fetcher

import (
	"mime"
	"regexp"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

var metaCharsetRe = regexp.MustCompile(`(?i)<meta[^>]+charset\s*=\s*["']?([a-z0-9_:.-]+)`)

// sniffLen bounds how far into a page the meta charset is looked for.
const sniffLen = 1024

// decodeBody converts a response body to UTF-8. The charset comes from the
// Content-Type header, else from a <meta> tag near the top of the page;
// bodies declaring neither are taken as UTF-8.
func decodeBody(raw []byte, contentType string) (string, error) {
	name := ""
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		name = params["charset"]
	}
	if name == "" {
		head := raw
		if len(head) > sniffLen {
			head = head[:sniffLen]
		}
		if m := metaCharsetRe.FindSubmatch(head); m != nil {
			name = string(m[1])
		}
	}
	if name == "" {
		return string(raw), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: unsupported charset %q", name)
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" && utf8.Valid(raw) {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: decode %s", name)
	}
	return string(out), nil
}
