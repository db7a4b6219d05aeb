package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

func (p *Parser) parseAngularInterpolation() (*ast.AngularInterpolation, error) {
	if !p.consumePrefix("{{", false) {
		return nil, p.errAt(ExpectVueInterpolation, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return &ast.AngularInterpolation{Expr: p.source[start:p.pos]}, nil
		}
		if p.hasPrefixAt("}}", false) {
			expr := p.source[start:p.pos]
			p.pos += 2
			return &ast.AngularInterpolation{Expr: expr}, nil
		}
		p.advance()
	}
}

// parseAngularIf parses `@if (expr; as ref) { ... } @else if (expr) { ... }
// @else { ... }`, per spec.md §4.4's Header→Body→{MidMarker→Body}*→End
// block-pairing shape, generalized from Svelte's `{#if}` to Angular's `@`
// control-flow syntax.
func (p *Parser) parseAngularIf() (*ast.AngularIf, error) {
	if !p.consumePrefix("@if", false) {
		return nil, p.errAt(ExpectAngularIf, p.pos)
	}
	expr, ref, err := p.parseAngularIfHeader()
	if err != nil {
		return nil, err
	}
	children, err := p.parseAngularBlockBody()
	if err != nil {
		return nil, err
	}

	block := &ast.AngularIf{Expr: expr, Reference: ref, Children: children}
	for {
		p.skipWS()
		if p.consumePrefix("@else if", false) {
			eiExpr, eiRef, err := p.parseAngularIfHeader()
			if err != nil {
				return nil, err
			}
			eiChildren, err := p.parseAngularBlockBody()
			if err != nil {
				return nil, err
			}
			block.ElseIfBlocks = append(block.ElseIfBlocks, ast.AngularElseIf{Expr: eiExpr, Reference: eiRef, Children: eiChildren})
			continue
		}
		if p.consumePrefix("@else", false) {
			p.skipWS()
			elseChildren, err := p.parseAngularBlockBody()
			if err != nil {
				return nil, err
			}
			block.ElseChildren = elseChildren
			return block, nil
		}
		return block, nil
	}
}

// parseAngularIfHeader parses `(expr; as ref)` following `@if`/`@else if`.
func (p *Parser) parseAngularIfHeader() (expr string, ref *string, err error) {
	p.skipWS()
	if !p.nextIfByte('(') {
		return "", nil, p.errAt(ExpectAngularIf, p.pos)
	}
	start := p.pos
	depth := 0
	for {
		c, ok := p.peek()
		if !ok {
			return "", nil, p.errAt(ExpectAngularIf, p.pos)
		}
		if c == '(' {
			depth++
			p.advance()
			continue
		}
		if c == ')' {
			if depth == 0 {
				break
			}
			depth--
			p.advance()
			continue
		}
		p.advance()
	}
	header := p.source[start:p.pos]
	p.nextIfByte(')')

	if i := indexOfWord(header, " as "); i >= 0 {
		expr = trimSpace(header[:i])
		expr = trimSuffixByte(expr, ';')
		r := trimSpace(header[i+4:])
		ref = &r
	} else {
		expr = trimSpace(header)
	}
	return expr, ref, nil
}

func trimSuffixByte(s string, b byte) string {
	if len(s) > 0 && s[len(s)-1] == b {
		return s[:len(s)-1]
	}
	return s
}

func (p *Parser) parseAngularBlockBody() ([]ast.Node, error) {
	p.skipWS()
	if !p.nextIfByte('{') {
		return nil, p.errAt(ExpectBlockEnd, p.pos)
	}
	var children []ast.Node
	for {
		if p.eof() {
			return nil, p.errAt(ExpectBlockEnd, p.pos)
		}
		if c, _ := p.peek(); c == '}' {
			p.advance()
			return children, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
}
