// Package textenc turns header dumps written in legacy or UTF-16 encodings
// into UTF-8 before they are tokenized.
package textenc

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Lookup returns the encoding registered under name in the WHATWG encoding
// index, e.g. "utf-8", "windows-1252" or "utf-16le". An empty name is UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown encoding %q", name)
	}
	return enc, nil
}

// NewReader returns a reader producing the UTF-8 text of r, which is encoded
// in the named encoding. A UTF-8 or UTF-16 byte order mark at the start of r
// overrides name and is dropped.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}
