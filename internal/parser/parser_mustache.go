package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

// parseMustacheInterpolation handles both escaped `{{ expr }}` and
// unescaped `{{{ expr }}}` interpolation.
func (p *Parser) parseMustacheInterpolation() (*ast.MustacheInterpolation, error) {
	if p.consumePrefix("{{{", false) {
		start := p.pos
		for {
			if p.eof() {
				return &ast.MustacheInterpolation{Expr: p.source[start:p.pos], Escaped: false}, nil
			}
			if p.hasPrefixAt("}}}", false) {
				expr := p.source[start:p.pos]
				p.pos += 3
				return &ast.MustacheInterpolation{Expr: expr, Escaped: false}, nil
			}
			p.advance()
		}
	}

	if !p.consumePrefix("{{", false) {
		return nil, p.errAt(ExpectVueInterpolation, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return &ast.MustacheInterpolation{Expr: p.source[start:p.pos], Escaped: true}, nil
		}
		if p.hasPrefixAt("}}", false) {
			expr := p.source[start:p.pos]
			p.pos += 2
			return &ast.MustacheInterpolation{Expr: expr, Escaped: true}, nil
		}
		p.advance()
	}
}
