package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

// parseAstroExpr parses `{...}`, which mixes raw script text with nested
// markup: whenever `<` is followed by a tag-name character, the parser
// recurses into parseNode for a Template child, otherwise bytes accumulate
// as Script text, per spec.md §4.1's Astro description.
func (p *Parser) parseAstroExpr() (*ast.AstroExpr, error) {
	if !p.nextIfByte('{') {
		return nil, p.errAt(ExpectElement, p.pos)
	}

	var children []ast.AstroExprChild
	depth := 0
	scriptStart := p.pos
	flushScript := func() {
		if p.pos > scriptStart {
			s := p.source[scriptStart:p.pos]
			children = append(children, ast.AstroExprChild{Script: &s})
		}
	}

	for {
		if p.eof() {
			flushScript()
			return &ast.AstroExpr{Children: children}, nil
		}
		c, _ := p.peek()
		switch {
		case c == '<' && looksLikeTagOpen(p):
			flushScript()
			node, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			children = append(children, ast.AstroExprChild{Template: []ast.Node{node}})
			scriptStart = p.pos
		case c == '{':
			depth++
			p.advance()
		case c == '}':
			if depth == 0 {
				flushScript()
				p.advance()
				return &ast.AstroExpr{Children: children}, nil
			}
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
}

// looksLikeTagOpen disambiguates a markup tag start from a JS less-than
// comparison (`a < b`): a tag start is `<` immediately followed by an
// ASCII letter, per spec.md §9's noted heuristic (Astro expressions are
// not re-parsed as JS, so this is a lexical approximation, not a full
// grammar decision).
func looksLikeTagOpen(p *Parser) bool {
	nc, ok := p.byteAt(1)
	if !ok {
		return false
	}
	return (nc >= 'a' && nc <= 'z') || (nc >= 'A' && nc <= 'Z')
}

func (p *Parser) parseAstroExprUntilBrace() (string, error) {
	start := p.pos
	depth := 0
	for {
		c, ok := p.peek()
		if !ok {
			return p.source[start:p.pos], nil
		}
		switch c {
		case '{':
			depth++
			p.advance()
		case '}':
			if depth == 0 {
				expr := p.source[start:p.pos]
				p.advance()
				return expr, nil
			}
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
}

// parseAstroAttribute handles both `name={expr}` and the `{name}`
// shorthand (Name == nil), per ast.AstroAttribute's doc comment.
func (p *Parser) parseAstroAttribute() (*ast.AstroAttribute, error) {
	mark := p.save()
	if name, err := p.parseAttrName(); err == nil {
		p.skipWS()
		if p.nextIfByte('=') {
			p.skipWS()
			if p.nextIfByte('{') {
				expr, err := p.parseAstroExprUntilBrace()
				if err == nil {
					return &ast.AstroAttribute{Name: &name, Expr: expr}, nil
				}
			}
		}
	}
	p.restore(mark)

	if !p.nextIfByte('{') {
		return nil, p.errAt(ExpectElement, p.pos)
	}
	expr, err := p.parseAstroExprUntilBrace()
	if err != nil {
		return nil, err
	}
	return &ast.AstroAttribute{Name: nil, Expr: expr}, nil
}
