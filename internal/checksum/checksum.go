// Package checksum computes change-detection hashes of assembled records.
package checksum

import (
	"bytes"
	"crypto/md5" //nolint:gosec // change detection, not security
	"encoding/hex"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Of returns the hex MD5 of v's canonical JSON form. v is first encoded,
// decoded into a generic tree and re-encoded, which sorts every object's
// keys; two values that differ only in map iteration or construction order
// hash the same.
func Of(v any) (string, error) {
	canon, err := Canonical(v)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(canon) //nolint:gosec
	return hex.EncodeToString(sum[:]), nil
}

// Canonical returns the canonical JSON encoding of v.
func Canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "checksum: marshal")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, eris.Wrap(err, "checksum: decode")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree); err != nil {
		return nil, eris.Wrap(err, "checksum: encode")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Stamp computes rec's checksum with the field returned by slot blanked and
// stores the result in that field.
func Stamp[T any](rec *T, slot func(*T) *string) error {
	field := slot(rec)
	*field = ""
	sum, err := Of(rec)
	if err != nil {
		return err
	}
	*field = sum
	return nil
}
