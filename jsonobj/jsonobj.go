// Package jsonobj writes the JSON files enumtab produces. Key order comes from
// the ordered maps being written; this package only fixes the layout.
package jsonobj

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Indent is the indentation used for every file enumtab writes.
const Indent = "    "

// Write encodes v and writes it to w indented with Indent. No newline follows
// the closing brace.
func Write(w io.Writer, v json.Marshaler) error {
	raw, err := v.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "cannot encode JSON")
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", Indent); err != nil {
		return errors.Wrap(err, "cannot indent JSON")
	}
	_, err = out.WriteTo(w)
	return errors.Wrap(err, "cannot write JSON")
}
