package enumdef

import (
	"strings"

	"github.com/TuneLab/enumtab/enumdef/enumparse"
)

// NewFromString creates an Enumdef from the text of a header. Very useful in
// tests.
func NewFromString(def string, opts ...enumparse.Option) (*Enumdef, error) {
	return New(strings.NewReader(def), opts...)
}
