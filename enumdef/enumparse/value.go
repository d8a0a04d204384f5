package enumparse

import (
	"math/big"

	"github.com/pkg/errors"
)

// Value is an enumerator value as canonical base 10 text. Enums backed by
// uint64_t go past the range of int64, so values are not kept in a machine
// integer.
type Value string

// ParseValue parses s as a signed base 10 integer of any size. A leading `+`
// and leading zeros are accepted and dropped from the result.
func ParseValue(s string) (Value, error) {
	var n big.Int
	if _, ok := n.SetString(s, 10); !ok {
		return "", errors.Errorf("%q is not a base 10 integer", s)
	}
	return Value(n.String()), nil
}

func (v Value) String() string {
	return string(v)
}

// MarshalJSON writes v as a bare JSON number.
func (v Value) MarshalJSON() ([]byte, error) {
	if v == "" {
		return nil, errors.New("empty enum value")
	}
	return []byte(v), nil
}
