package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

// Parser is a single-pass, byte-indexed recursive-descent parser. It never
// allocates copies of the input: every returned string is a slice of
// source. Ambiguity points (Vue directive vs. native attribute, Svelte
// `{#if` vs. a plain `{expr}`) are resolved by speculative parsing: save
// pos, attempt a production, and restore pos on failure (save/restore
// below), following spec.md §4.1/§9.
type Parser struct {
	source  string
	dialect ast.Dialect
	pos     int
	spans   map[ast.Node]ast.Span
}

func New(source string, dialect ast.Dialect) *Parser {
	return &Parser{source: source, dialect: dialect}
}

func (p *Parser) eof() bool { return p.pos >= len(p.source) }

func (p *Parser) byteAt(offset int) (byte, bool) {
	i := p.pos + offset
	if i < 0 || i >= len(p.source) {
		return 0, false
	}
	return p.source[i], true
}

func (p *Parser) peek() (byte, bool) { return p.byteAt(0) }

func (p *Parser) advance() {
	if !p.eof() {
		p.pos++
	}
}

// nextIf consumes and returns the current byte if it satisfies pred.
func (p *Parser) nextIf(pred func(byte) bool) (byte, bool) {
	c, ok := p.peek()
	if !ok || !pred(c) {
		return 0, false
	}
	p.advance()
	return c, true
}

// nextIfByte consumes the current byte if it equals b.
func (p *Parser) nextIfByte(b byte) bool {
	c, ok := p.peek()
	if !ok || c != b {
		return false
	}
	p.advance()
	return true
}

// hasPrefixAt reports whether s occurs at the current position (without
// consuming), honoring ASCII case-insensitivity when fold is true.
func (p *Parser) hasPrefixAt(s string, fold bool) bool {
	if p.pos+len(s) > len(p.source) {
		return false
	}
	chunk := p.source[p.pos : p.pos+len(s)]
	if fold {
		return asciiEqualFold(chunk, s)
	}
	return chunk == s
}

// consumePrefix consumes s if it matches at the current position.
func (p *Parser) consumePrefix(s string, fold bool) bool {
	if !p.hasPrefixAt(s, fold) {
		return false
	}
	p.pos += len(s)
	return true
}

func isASCIIWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func (p *Parser) skipWS() {
	for {
		c, ok := p.peek()
		if !ok || !isASCIIWhitespace(c) {
			return
		}
		p.advance()
	}
}

// save/restore implement the try_parse cursor snapshot pattern: callers do
//
//	mark := p.save()
//	v, err := p.parseSomething()
//	if err != nil { p.restore(mark); ... }
func (p *Parser) save() int      { return p.pos }
func (p *Parser) restore(m int)  { p.pos = m }

func (p *Parser) errAt(kind SyntaxErrorKind, pos int) error { return newErr(kind, pos, p.source) }
