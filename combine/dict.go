package combine

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/TuneLab/enumtab/jsonobj"
)

// Dict is a JSON object whose values are kept undecoded. Keys keep the
// position they were first set at; setting an existing key replaces its value
// in place.
type Dict struct {
	m *orderedmap.OrderedMap[string, json.RawMessage]
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{m: orderedmap.New[string, json.RawMessage]()}
}

// Set stores raw under key.
func (d *Dict) Set(key string, raw json.RawMessage) {
	d.m.Set(key, raw)
}

// Get returns the raw value stored under key.
func (d *Dict) Get(key string) (json.RawMessage, bool) {
	return d.m.Get(key)
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.m.Len())
	for pair := d.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (d *Dict) Len() int {
	return d.m.Len()
}

// Update copies every key of o into d, overwriting keys d already has.
func (d *Dict) Update(o *Dict) {
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		d.m.Set(pair.Key, pair.Value)
	}
}

// MarshalJSON encodes the Dict with its keys in insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	return d.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the order of its keys. Keys
// already in d keep their position.
func (d *Dict) UnmarshalJSON(b []byte) error {
	if !json.Valid(b) {
		return errors.New("invalid JSON")
	}
	if t := bytes.TrimSpace(b); len(t) == 0 || t[0] != '{' {
		return errors.Errorf("expected a JSON object, found %.20s", t)
	}
	if d.m == nil {
		d.m = orderedmap.New[string, json.RawMessage]()
	}
	return errors.Wrap(d.m.UnmarshalJSON(b), "cannot read JSON object")
}

// Decode reads exactly one JSON object from r.
func Decode(r io.Reader) (*Dict, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read JSON")
	}
	d := NewDict()
	if err := d.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return d, nil
}

// Write writes d to w indented by jsonobj.Indent.
func Write(w io.Writer, d *Dict) error {
	return errors.Wrap(jsonobj.Write(w, d), "cannot write combined dictionary")
}
