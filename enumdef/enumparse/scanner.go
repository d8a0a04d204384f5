package enumparse

import (
	"io"
	"unicode"

	"github.com/pkg/errors"
)

// Token is a single whitespace delimited unit of the input along with the
// line it started on.
type Token struct {
	Value string
	Line  int
}

func (t Token) String() string {
	return t.Value
}

// Tokenize reads all of r and splits it into tokens.
func Tokenize(r io.Reader) ([]Token, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read declarations")
	}
	return TokenizeString(string(b)), nil
}

// TokenizeString splits s on unicode whitespace. There is no quoting, escaping
// or comment handling; every non-empty run of non-space runes is one token.
func TokenizeString(s string) []Token {
	var toks []Token
	lineNo := 1
	start, startLine := -1, 0
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, Token{Value: s[start:i], Line: startLine})
				start = -1
			}
			if r == '\n' {
				lineNo++
			}
			continue
		}
		if start < 0 {
			start, startLine = i, lineNo
		}
	}
	if start >= 0 {
		toks = append(toks, Token{Value: s[start:], Line: startLine})
	}
	return toks
}
