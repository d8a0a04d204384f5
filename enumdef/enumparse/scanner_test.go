package enumparse

import (
	"strings"
	"testing"
)

func TestTokenizeString(t *testing.T) {
	toks := TokenizeString("namespace Foo {\n\tenum class Bar {\r\n  A = 0,\n};}")

	want := []Token{
		{"namespace", 1},
		{"Foo", 1},
		{"{", 1},
		{"enum", 2},
		{"class", 2},
		{"Bar", 2},
		{"{", 2},
		{"A", 3},
		{"=", 3},
		{"0,", 3},
		{"};}", 4},
	}
	if len(toks) != len(want) {
		t.Fatalf("TokenizeString returned %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("token %v = %#v, want %#v", i, toks[i], w)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, in := range []string{"", " ", "\n\n\t \r\n"} {
		if toks := TokenizeString(in); len(toks) != 0 {
			t.Errorf("TokenizeString(%q) = %v, want no tokens", in, toks)
		}
	}
}

func TestTokenizeMatchesFields(t *testing.T) {
	in := "  a b \x00c d  e\n"
	toks, err := Tokenize(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	fields := strings.Fields(in)
	if len(toks) != len(fields) {
		t.Fatalf("Tokenize returned %v, strings.Fields returned %q", toks, fields)
	}
	for i := range fields {
		if toks[i].Value != fields[i] {
			t.Errorf("token %v = %q, want %q", i, toks[i].Value, fields[i])
		}
	}
}
