// Package enumparse, which stands for "enum parser", finds the enumerations
// declared in a C++ header and the explicitly assigned values of their
// members. It does not understand C++. It splits the input on whitespace and
// walks the tokens looking for three things: `namespace` keywords, `enum`
// headers and `NAME = VALUE` pairs inside an enum body.
//
// NOTE
//
// Only members with an explicit `=` are recorded; there is no implicit
// "previous value plus one". Members must be written as three whitespace
// separated tokens, e.g. `FOO = 3,`.
//
// By default the scope of an enum is the text after the most recent
// `namespace` keyword, and that scope is forgotten once the enum closes, which
// suits headers where every enum sits in a namespace block of its own. A
// further enum before the next `namespace` gets an empty scope and is keyed
// ".Name". ScopeNested tracks namespace blocks as a stack instead.
package enumparse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ParserError is returned for input the parser cannot make sense of. It is
// always fatal; Parse returns no blocks alongside it.
type ParserError struct {
	Expected string
	Line     int
	Found    string
}

func (pe *ParserError) Error() string {
	return fmt.Sprintf("parser expected %v in line '%v', instead found '%v'", pe.Expected, pe.Line, pe.Found)
}

const endOfInput = "end of input"

// ScopeMode selects how namespace keywords build the scope of an enum.
type ScopeMode int

const (
	// ScopeFlat keeps a single scope slot. Every `namespace` overwrites it
	// and committing an enum clears it.
	ScopeFlat ScopeMode = iota
	// ScopeNested pushes a frame for every namespace and pops it when the
	// namespace's braces close.
	ScopeNested
)

func (m ScopeMode) String() string {
	switch m {
	case ScopeFlat:
		return "flat"
	case ScopeNested:
		return "nested"
	}
	return fmt.Sprintf("ScopeMode(%d)", int(m))
}

// ParseScopeMode returns the ScopeMode named by s.
func ParseScopeMode(s string) (ScopeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat":
		return ScopeFlat, nil
	case "nested":
		return ScopeNested, nil
	}
	return ScopeFlat, errors.Errorf("unknown scope mode %q, want flat or nested", s)
}

// Member is one explicitly assigned enumerator.
type Member struct {
	Name  string
	Value Value
}

// Block is one committed enum.
type Block struct {
	// Scope is the namespace text the enum was declared in, with `::`
	// separators left as written.
	Scope   string
	Name    string
	Members []Member
	// Line is the line of the `enum` keyword.
	Line int
}

// QualifiedName returns the key the enum is stored under, e.g. "A.B.C" for
// enum C in namespace A::B.
func (b *Block) QualifiedName() string {
	return QualifiedName(b.Scope, b.Name)
}

// QualifiedName joins a scope and an enum name with `.`, rewriting the `::`
// separators inside scope.
func QualifiedName(scope, name string) string {
	return strings.Replace(scope, "::", ".", -1) + "." + name
}

// Option configures Parse.
type Option func(*parserState)

// WithScopeMode sets how namespaces are tracked. The default is ScopeFlat.
func WithScopeMode(m ScopeMode) Option {
	return func(p *parserState) {
		p.mode = m
	}
}

// WithLogger sets the entry trigger tracing is logged to at debug level.
func WithLogger(l *log.Entry) Option {
	return func(p *parserState) {
		if l != nil {
			p.log = l
		}
	}
}

type scopeFrame struct {
	name string
	// depth is the brace level at the `namespace` keyword.
	depth  int
	opened bool
}

type pendingBlock struct {
	Block
	// depth is the brace level at the `enum` keyword; the body is closed
	// once the level returns to it.
	depth  int
	opened bool
}

// parserState is everything Parse mutates while walking the tokens. It lives
// for a single call.
type parserState struct {
	cur  *Cursor
	mode ScopeMode
	log  *log.Entry

	scopes []scopeFrame
	// sawNamespace is set by the first `namespace` keyword of the input.
	sawNamespace bool
	block        *pendingBlock
	blocks []*Block
}

// Parse walks toks and returns every enum block in the order the blocks
// closed.
func Parse(toks []Token, opts ...Option) ([]*Block, error) {
	p := &parserState{
		cur: NewCursor(toks),
		log: log.NewEntry(log.StandardLogger()),
	}
	for _, o := range opts {
		o(p)
	}

	for !p.cur.AtEnd() {
		tok, _ := p.cur.Peek(0)

		var err error
		switch {
		case tok.Value == "namespace":
			err = p.parseNamespace()
		case tok.Value == "enum":
			err = p.parseEnumHeader()
		case p.atMember():
			err = p.parseMember()
		default:
			p.advance()
		}
		if err != nil {
			return nil, err
		}
	}

	if p.block != nil && p.block.opened {
		p.log.WithField("enum", p.block.Name).Debug("input ended inside an enum body, dropping it")
	}
	return p.blocks, nil
}

// advance consumes one token and then reacts to any change in brace level:
// opening or closing the pending enum body and, in nested mode, namespace
// bodies.
func (p *parserState) advance() Token {
	tok := p.cur.Advance()
	depth, peak := p.cur.Depth(), p.cur.Peak()

	if b := p.block; b != nil {
		if !b.opened {
			if peak > b.depth {
				b.opened = true
			} else if strings.Contains(tok.Value, ";") {
				// Forward declaration such as `enum class X : int;`
				p.log.WithField("enum", b.Name).Debug("enum has no body")
				p.block = nil
			}
		}
		if p.block != nil && b.opened && depth <= b.depth {
			p.commit()
		}
	}

	if p.mode == ScopeNested {
		p.popScopes(tok, depth, peak)
	}
	return tok
}

func (p *parserState) popScopes(tok Token, depth, peak int) {
	for len(p.scopes) > 0 {
		top := &p.scopes[len(p.scopes)-1]
		if !top.opened {
			if peak > top.depth {
				top.opened = true
			} else if strings.Contains(tok.Value, ";") {
				// `namespace a = b;` or `using namespace b;`
				p.scopes = p.scopes[:len(p.scopes)-1]
				continue
			} else {
				return
			}
		}
		if depth > top.depth {
			return
		}
		p.log.WithField("namespace", top.name).Debug("namespace closed")
		p.scopes = p.scopes[:len(p.scopes)-1]
	}
}

// scope returns the current scope text, frames joined with `::`.
func (p *parserState) scope() string {
	var names []string
	for _, f := range p.scopes {
		if f.name != "" {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "::")
}

func (p *parserState) parseNamespace() error {
	depth := p.cur.Depth()
	p.advance()
	p.sawNamespace = true

	tok, ok := p.cur.Peek(0)
	if !ok {
		return &ParserError{
			Expected: "a namespace name",
			Line:     p.cur.Line(),
			Found:    endOfInput,
		}
	}

	// An anonymous namespace trims down to "".
	name := strings.TrimRight(tok.Value, "{;")

	switch p.mode {
	case ScopeNested:
		p.scopes = append(p.scopes, scopeFrame{name: name, depth: depth})
	default:
		p.scopes = []scopeFrame{{name: name, depth: depth}}
	}
	p.log.WithFields(log.Fields{
		"namespace": name,
		"line":      tok.Line,
	}).Debug("entered namespace")

	p.advance()
	return nil
}

func (p *parserState) parseEnumHeader() error {
	kw, _ := p.cur.Peek(0)
	depth := p.cur.Depth()
	p.advance()

	if tok, ok := p.cur.Peek(0); ok && (tok.Value == "class" || tok.Value == "struct") {
		p.advance()
	}

	tok, ok := p.cur.Peek(0)
	if !ok {
		return &ParserError{
			Expected: "an enum name",
			Line:     p.cur.Line(),
			Found:    endOfInput,
		}
	}
	name := strings.TrimRight(tok.Value, "{:;")

	// An enum is only an error before any namespace. Once one has been
	// seen, an empty scope (cleared by a commit in flat mode, or left by an
	// anonymous namespace) is kept and the enum is stored as ".Name".
	scope := p.scope()
	if scope == "" {
		if !p.sawNamespace {
			return &ParserError{
				Expected: "a namespace enclosing enum",
				Line:     tok.Line,
				Found:    name,
			}
		}
		p.log.WithFields(log.Fields{
			"enum": name,
			"line": tok.Line,
		}).Debug("enum has an empty scope")
	}

	if p.block != nil {
		p.log.WithField("enum", p.block.Name).Debug("enum header replaces unfinished enum")
	}
	p.block = &pendingBlock{
		Block: Block{
			Scope: scope,
			Name:  name,
			Line:  kw.Line,
		},
		depth: depth,
	}
	p.advance()
	return nil
}

// atMember reports whether the cursor is on `NAME =` inside an open enum body.
func (p *parserState) atMember() bool {
	if p.block == nil || !p.block.opened {
		return false
	}
	next, ok := p.cur.Peek(1)
	return ok && next.Value == "="
}

func (p *parserState) parseMember() error {
	name := p.advance()
	p.advance()

	tok, ok := p.cur.Peek(0)
	if !ok {
		return &ParserError{
			Expected: "an integer value for " + name.Value,
			Line:     p.cur.Line(),
			Found:    endOfInput,
		}
	}
	v, err := ParseValue(strings.TrimSuffix(tok.Value, ","))
	if err != nil {
		return &ParserError{
			Expected: "an integer value for " + name.Value,
			Line:     tok.Line,
			Found:    tok.Value,
		}
	}

	// The value token is consumed before the member is recorded; it may
	// itself close the body.
	b := p.block
	b.Members = append(b.Members, Member{Name: name.Value, Value: v})
	p.advance()
	return nil
}

// commit moves the pending block to the results and resets the per block
// state.
func (p *parserState) commit() {
	b := p.block.Block
	p.log.WithFields(log.Fields{
		"enum":    b.QualifiedName(),
		"members": len(b.Members),
	}).Debug("committed enum")

	p.blocks = append(p.blocks, &b)
	p.block = nil
	if p.mode == ScopeFlat {
		p.scopes = nil
	}
}
