package enumdef

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/TuneLab/enumtab/enumdef/enumparse"
)

// Forward maps member names to values. Keys keep the order they were first
// set in; setting an existing key replaces its value in place.
type Forward struct {
	m *orderedmap.OrderedMap[string, enumparse.Value]
}

func newForward() *Forward {
	return &Forward{m: orderedmap.New[string, enumparse.Value]()}
}

func (f *Forward) set(name string, v enumparse.Value) {
	f.m.Set(name, v)
}

// Get returns the value of the member called name.
func (f *Forward) Get(name string) (enumparse.Value, bool) {
	return f.m.Get(name)
}

// Keys returns the member names in insertion order.
func (f *Forward) Keys() []string {
	keys := make([]string, 0, f.m.Len())
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (f *Forward) Len() int {
	return f.m.Len()
}

// MarshalJSON encodes the table as {"NAME": value, ...}.
func (f *Forward) MarshalJSON() ([]byte, error) {
	return f.m.MarshalJSON()
}

// Reverse maps values to member names. When two members share a value the
// one set last wins; the value keeps its first position. Values are keyed by
// their base 10 text, which is also how they appear as JSON object keys.
type Reverse struct {
	m *orderedmap.OrderedMap[string, string]
}

func newReverse() *Reverse {
	return &Reverse{m: orderedmap.New[string, string]()}
}

func (r *Reverse) set(v enumparse.Value, name string) {
	r.m.Set(string(v), name)
}

// Get returns the name of the member with value v.
func (r *Reverse) Get(v enumparse.Value) (string, bool) {
	return r.m.Get(string(v))
}

// Keys returns the values in insertion order.
func (r *Reverse) Keys() []enumparse.Value {
	keys := make([]enumparse.Value, 0, r.m.Len())
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, enumparse.Value(pair.Key))
	}
	return keys
}

func (r *Reverse) Len() int {
	return r.m.Len()
}

// MarshalJSON encodes the table as {"value": "NAME", ...}.
func (r *Reverse) MarshalJSON() ([]byte, error) {
	return r.m.MarshalJSON()
}
