// Package scrapeerr holds the error taxonomy of the scraper. Transport
// failures are fatal to a single fetch; extraction and normalization
// failures are fatal to the entity being built. Every error carries enough
// context (field, pattern, URL) for an operator to locate the markup change
// that caused it.
package scrapeerr

import (
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"syscall"
)

// Kind classifies an error chain.
type Kind string

const (
	KindNone          Kind = ""
	KindTransport     Kind = "transport"
	KindExtraction    Kind = "extraction"
	KindNormalization Kind = "normalization"
	KindGuess         Kind = "gender_guess"
	KindOther         Kind = "other"
)

// TransportError is returned when a request fails or yields no payload.
type TransportError struct {
	Method string
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("transport: %s %s", e.Method, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(": status %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Transient reports whether the failure looks like a network hiccup
// (timeout, reset, 5xx) rather than a permanent answer from the site.
// Nothing retries on it; it only labels logs and metrics.
func (e *TransportError) Transient() bool {
	switch e.Status {
	case 408, 429, 500, 502, 503, 504:
		return true
	}
	if e.Err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(e.Err, syscall.ECONNRESET) ||
		errors.Is(e.Err, syscall.ECONNREFUSED) ||
		errors.Is(e.Err, syscall.ECONNABORTED) {
		return true
	}

	msg := strings.ToLower(e.Err.Error())
	for _, p := range []string{
		"connection reset by peer",
		"broken pipe",
		"temporary failure in name resolution",
		"tls handshake timeout",
		"i/o timeout",
		"server closed idle connection",
	} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// ExtractionError reports a structural mismatch between the expected and
// actual shape of a document.
type ExtractionError struct {
	Field   string
	Pattern string
	URL     string
	Detail  string
	Err     error
}

func (e *ExtractionError) Error() string {
	var b strings.Builder
	b.WriteString("extract")
	if e.Field != "" {
		b.WriteString(" " + e.Field)
	}
	if e.Pattern != "" {
		b.WriteString(" [pattern " + e.Pattern + "]")
	}
	if e.URL != "" {
		b.WriteString(" on " + e.URL)
	}
	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtraction builds an ExtractionError for a field.
func NewExtraction(field, pattern, detail string) *ExtractionError {
	return &ExtractionError{Field: field, Pattern: pattern, Detail: detail}
}

// NormalizationError reports a value outside a fixed vocabulary or format.
type NormalizationError struct {
	Field string
	Value string
	Err   error
}

func (e *NormalizationError) Error() string {
	msg := fmt.Sprintf("normalize %s: unrecognized %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// NewNormalization builds a NormalizationError for a field and raw value.
func NewNormalization(field, value string) *NormalizationError {
	return &NormalizationError{Field: field, Value: value}
}

// GuessError signals that the name dictionary did not cover every given
// name seen during a run; the listed genders were guessed.
type GuessError struct {
	Names map[string]string
}

func (e *GuessError) Error() string {
	names := make([]string, 0, len(e.Names))
	for n := range e.Names {
		names = append(names, n)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, n+"="+e.Names[n])
	}
	return "gender guessed for names missing from the dictionary: " + strings.Join(parts, ", ")
}

// KindOf classifies the first taxonomy error found in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var te *TransportError
	if errors.As(err, &te) {
		return KindTransport
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return KindExtraction
	}
	var ne *NormalizationError
	if errors.As(err, &ne) {
		return KindNormalization
	}
	var ge *GuessError
	if errors.As(err, &ge) {
		return KindGuess
	}
	return KindOther
}

// WithURL records url on every extraction error in err's chain that does
// not have one yet, and turns a bare normalization error into an extraction
// error for field so the source document is named. err is returned as is
// when it carries neither.
func WithURL(err error, field, url string) error {
	if err == nil {
		return nil
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		if ee.URL == "" {
			ee.URL = url
		}
		return err
	}
	var ne *NormalizationError
	if errors.As(err, &ne) {
		return &ExtractionError{Field: field, URL: url, Err: err}
	}
	return err
}
