package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

func (p *Parser) parseVueInterpolation() (*ast.VueInterpolation, error) {
	if !p.consumePrefix("{{", false) {
		return nil, p.errAt(ExpectVueInterpolation, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return &ast.VueInterpolation{Expr: p.source[start:p.pos]}, nil
		}
		if p.hasPrefixAt("}}", false) {
			expr := p.source[start:p.pos]
			p.pos += 2
			return &ast.VueInterpolation{Expr: expr}, nil
		}
		p.advance()
	}
}

// parseVueDirective handles `v-name`, and the `:`/`@`/`#` shorthands, per
// spec.md §4.3 ("Vue directive: shorthand markers `:`, `@`, `#`").
func (p *Parser) parseVueDirective() (*ast.VueDirective, error) {
	var name string
	switch c, _ := p.peek(); c {
	case ':':
		p.advance()
		name = ":"
	case '@':
		p.advance()
		name = "@"
	case '#':
		p.advance()
		name = "#"
	case 'v':
		mark := p.save()
		p.advance()
		if !p.nextIfByte('-') {
			p.restore(mark)
			return nil, p.errAt(ExpectVueDirective, p.pos)
		}
		id, err := p.parseIdentifier()
		if err != nil {
			p.restore(mark)
			return nil, err
		}
		name = id
	default:
		return nil, p.errAt(ExpectVueDirective, p.pos)
	}

	isShorthand := name == ":" || name == "@" || name == "#"
	var argAndModifiers *string
	if isShorthand || p.nextIfByte(':') {
		s, err := p.parseAttrName()
		if err != nil {
			return nil, err
		}
		argAndModifiers = &s
	}

	p.skipWS()
	var value *string
	if p.nextIfByte('=') {
		p.skipWS()
		v, err := p.parseAttrValue()
		if err != nil {
			return nil, err
		}
		value = &v
	}

	return &ast.VueDirective{Name: name, ArgAndModifiers: argAndModifiers, Value: value}, nil
}
