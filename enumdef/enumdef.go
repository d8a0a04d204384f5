// Package enumdef builds the name→value and value→name tables of every enum
// found in a C++ header and serializes them as JSON.
package enumdef

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/TuneLab/enumtab/enumdef/enumparse"
	"github.com/TuneLab/enumtab/jsonobj"
)

// Enumdef holds the tables of every enum in a header, keyed by qualified
// enum name in the order the names were first seen.
type Enumdef struct {
	forward *orderedmap.OrderedMap[string, *Forward]
	reverse *orderedmap.OrderedMap[string, *Reverse]
}

// New reads a header from r and builds its Enumdef.
func New(r io.Reader, opts ...enumparse.Option) (*Enumdef, error) {
	toks, err := enumparse.Tokenize(r)
	if err != nil {
		return nil, err
	}
	log.WithField("tokens", len(toks)).Debug("tokenized input")

	blocks, err := enumparse.Parse(toks, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse enums")
	}
	return Build(blocks), nil
}

// Build turns parsed blocks into tables. A later block with the same
// qualified name replaces the tables of an earlier one.
func Build(blocks []*enumparse.Block) *Enumdef {
	ed := &Enumdef{
		forward: orderedmap.New[string, *Forward](),
		reverse: orderedmap.New[string, *Reverse](),
	}
	for _, b := range blocks {
		fwd, rev := newForward(), newReverse()
		for _, m := range b.Members {
			fwd.set(m.Name, m.Value)
			rev.set(m.Value, m.Name)
		}

		name := b.QualifiedName()
		if _, present := ed.forward.Set(name, fwd); present {
			log.WithField("enum", name).Debug("enum declared twice, keeping the later one")
		}
		ed.reverse.Set(name, rev)
	}
	return ed
}

// Names returns the qualified enum names in the order they were first seen.
func (ed *Enumdef) Names() []string {
	names := make([]string, 0, ed.forward.Len())
	for pair := ed.forward.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of enums.
func (ed *Enumdef) Len() int {
	return ed.forward.Len()
}

// Forward returns the name→value table of the named enum, or nil.
func (ed *Enumdef) Forward(name string) *Forward {
	fwd, _ := ed.forward.Get(name)
	return fwd
}

// Reverse returns the value→name table of the named enum, or nil.
func (ed *Enumdef) Reverse(name string) *Reverse {
	rev, _ := ed.reverse.Get(name)
	return rev
}

// WriteReverse writes {"Scope.Enum": {"value": "NAME"}} to w. This is the
// enums.json artifact.
func (ed *Enumdef) WriteReverse(w io.Writer) error {
	return errors.Wrap(jsonobj.Write(w, ed.reverse), "cannot write enum tables")
}

// WriteForward writes {"Scope.Enum": {"NAME": value}} to w.
func (ed *Enumdef) WriteForward(w io.Writer) error {
	return errors.Wrap(jsonobj.Write(w, ed.forward), "cannot write enum tables")
}
