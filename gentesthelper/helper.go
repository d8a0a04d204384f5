// Package gentesthelper holds helpers for comparing generated output in
// tests.
package gentesthelper

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffStrings returns the line differences of two strings. Useful for
// examining how generated output differs from expected output.
func DiffStrings(a, b string) string {
	t := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "A",
		ToFile:   "B",
		Context:  5,
	}
	text, _ := difflib.GetUnifiedDiffString(t)
	return text
}

// DiffJSON returns normalized versions of inA and inB, re-indented so that
// whitespace differences are ignored while key order is kept. A diff of the
// two is also returned. Input that is not valid JSON is returned trimmed.
func DiffJSON(inA, inB string) (outA, outB, diff string) {
	normalize := func(in string) string {
		out := strings.TrimSpace(in)
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(out), "", "  "); err != nil {
			return "FAILED TO INDENT\n" + out
		}
		return buf.String()
	}
	outA = normalize(inA)
	outB = normalize(inB)
	diff = DiffStrings(outA, outB)
	return
}
