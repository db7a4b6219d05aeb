package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

func (p *Parser) parseSvelteNode() (ast.Node, error) {
	if p.hasPrefixAt("{#", false) {
		mark := p.save()
		n, err := p.parseSvelteBlock()
		if err != nil {
			p.restore(mark)
			return nil, p.errAt(UnknownSvelteBlock, p.pos)
		}
		return n, nil
	}
	if p.hasPrefixAt("{@", false) {
		return p.parseSvelteAtTag()
	}
	return p.parseSvelteInterpolation()
}

func (p *Parser) parseSvelteInterpolation() (*ast.SvelteInterpolation, error) {
	if !p.nextIfByte('{') {
		return nil, p.errAt(ExpectSvelteInterpolation, p.pos)
	}
	expr, err := p.parseSvelteExprUntilBrace()
	if err != nil {
		return nil, err
	}
	return &ast.SvelteInterpolation{Expr: expr}, nil
}

// parseSvelteExprUntilBrace consumes the current position onward up to (and
// including) the matching `}`, tracking nested `{`/`}` depth. It does not
// track quotes or comments inside the expression (spec.md §9: a literal
// `}` in a string inside an expression terminates the expression — a known
// limitation inherited intentionally, not fixed here).
func (p *Parser) parseSvelteExprUntilBrace() (string, error) {
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

func (p *Parser) parseSvelteAttr() (*ast.SvelteAttribute, error) {
	if p.nextIfByte('{') {
		expr, err := p.parseSvelteExprUntilBrace()
		if err != nil {
			return nil, err
		}
		return &ast.SvelteAttribute{Name: nil, Expr: expr}, nil
	}
	name, err := p.parseAttrName()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if !p.nextIfByte('=') {
		return nil, p.errAt(ExpectSvelteAttr, p.pos)
	}
	if !p.nextIfByte('{') {
		return nil, p.errAt(ExpectSvelteAttr, p.pos)
	}
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok {
			break
		}
		if c == '}' {
			break
		}
		p.advance()
	}
	expr := p.source[start:p.pos]
	p.nextIfByte('}')
	return &ast.SvelteAttribute{Name: &name, Expr: expr}, nil
}

func (p *Parser) parseSvelteAtTag() (*ast.SvelteAtTag, error) {
	if !p.consumePrefix("{@", false) {
		return nil, p.errAt(ExpectElement, p.pos)
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	expr, err := p.parseSvelteExprUntilBrace()
	if err != nil {
		return nil, err
	}
	return &ast.SvelteAtTag{Name: name, Expr: expr}, nil
}

// parseSvelteBlockChildren parses nodes until the cursor sits on a
// mid-marker (`{:...}`) or end-marker (`{/...}`), per spec.md §4.4
// ("Body → {MidMarker → Body}* → End").
func (p *Parser) parseSvelteBlockChildren() ([]ast.Node, error) {
	var children []ast.Node
	for {
		if p.eof() {
			return nil, p.errAt(ExpectSvelteBlockEnd, p.pos)
		}
		if c, _ := p.peek(); c == '{' {
			if nc, ok := p.byteAt(1); ok && (nc == '/' || nc == ':') {
				return children, nil
			}
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
}

func (p *Parser) parseSvelteBlock() (ast.Node, error) {
	if !p.consumePrefix("{#", false) {
		return nil, p.errAt(UnknownSvelteBlock, p.pos)
	}
	kw, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	switch kw {
	case "if":
		return p.parseSvelteIfBlockBody()
	case "each":
		return p.parseSvelteEachBlockBody()
	case "await":
		return p.parseSvelteAwaitBlockBody()
	case "key":
		return p.parseSvelteKeyBlockBody()
	default:
		return nil, p.errAt(UnknownSvelteBlock, p.pos)
	}
}

func (p *Parser) parseSvelteIfBlockBody() (*ast.SvelteIfBlock, error) {
	p.skipWS()
	expr, err := p.parseSvelteExprUntilBrace()
	if err != nil {
		return nil, err
	}
	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return nil, err
	}

	block := &ast.SvelteIfBlock{Expr: expr, Children: children}
	for {
		if p.consumePrefix("{:else if", false) {
			p.skipWS()
			eiExpr, err := p.parseSvelteExprUntilBrace()
			if err != nil {
				return nil, err
			}
			eiChildren, err := p.parseSvelteBlockChildren()
			if err != nil {
				return nil, err
			}
			block.ElseIfBlocks = append(block.ElseIfBlocks, ast.SvelteElseIfBlock{Expr: eiExpr, Children: eiChildren})
			continue
		}
		if p.consumePrefix("{:else}", false) {
			elseChildren, err := p.parseSvelteBlockChildren()
			if err != nil {
				return nil, err
			}
			block.ElseChildren = elseChildren
			if !p.consumePrefix("{/if}", false) {
				return nil, p.errAt(ExpectSvelteBlockEnd, p.pos)
			}
			return block, nil
		}
		if p.consumePrefix("{/if}", false) {
			return block, nil
		}
		return nil, p.errAt(ExpectSvelteBlockEnd, p.pos)
	}
}

func (p *Parser) parseSvelteEachBlockBody() (*ast.SvelteEachBlock, error) {
	p.skipWS()
	// expr is everything up to " as ", binding/index/key follow, all inside
	// the same balanced-brace header.
	header, err := p.parseSvelteExprUntilBrace()
	if err != nil {
		return nil, err
	}
	expr, binding, index, key := splitSvelteEachHeader(header)

	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return nil, err
	}
	block := &ast.SvelteEachBlock{Expr: expr, Binding: binding, Index: index, Key: key, Children: children}

	if p.consumePrefix("{:else}", false) {
		elseChildren, err := p.parseSvelteBlockChildren()
		if err != nil {
			return nil, err
		}
		block.ElseChildren = elseChildren
	}
	if !p.consumePrefix("{/each}", false) {
		return nil, p.errAt(ExpectSvelteBlockEnd, p.pos)
	}
	return block, nil
}

// splitSvelteEachHeader splits `items as item, i (key)` into its parts.
// This is string surgery, not re-parsing JS, matching spec.md §4.1's
// "strings inside expressions are not re-parsed" stance: the `as`/`(`/`,`
// separators are Svelte template syntax, not JS, so splitting on them is
// part of the markup grammar, not an exception to that rule.
func splitSvelteEachHeader(header string) (expr, binding string, index, key *string) {
	asIdx := indexOfWord(header, " as ")
	if asIdx < 0 {
		return trimSpace(header), "", nil, nil
	}
	expr = trimSpace(header[:asIdx])
	rest := trimSpace(header[asIdx+4:])

	if i := lastIndexByte(rest, '('); i >= 0 && rest[len(rest)-1] == ')' {
		k := trimSpace(rest[i+1 : len(rest)-1])
		key = &k
		rest = trimSpace(rest[:i])
	}
	if i := lastIndexByte(rest, ','); i >= 0 {
		idx := trimSpace(rest[i+1:])
		index = &idx
		rest = trimSpace(rest[:i])
	}
	binding = rest
	return expr, binding, index, key
}

func indexOfWord(s, word string) int {
	for i := 0; i+len(word) <= len(s); i++ {
		if s[i:i+len(word)] == word {
			return i
		}
	}
	return -1
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIIWhitespace(s[start]) {
		start++
	}
	for end > start && isASCIIWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func (p *Parser) parseSvelteAwaitBlockBody() (*ast.SvelteAwaitBlock, error) {
	p.skipWS()
	header, err := p.parseSvelteExprUntilBrace()
	if err != nil {
		return nil, err
	}
	expr, thenBinding := splitSvelteAwaitHeader(header)

	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return nil, err
	}
	block := &ast.SvelteAwaitBlock{Expr: expr, ThenBinding: thenBinding, Children: children}

	if p.consumePrefix("{:then", false) {
		p.skipWS()
		binding, err := p.parseSvelteThenOrCatchBinding()
		if err != nil {
			return nil, err
		}
		thenChildren, err := p.parseSvelteBlockChildren()
		if err != nil {
			return nil, err
		}
		block.ThenBlock = &ast.SvelteThenBlock{Binding: binding, Children: thenChildren}
	}
	if p.consumePrefix("{:catch", false) {
		p.skipWS()
		binding, err := p.parseSvelteThenOrCatchBinding()
		if err != nil {
			return nil, err
		}
		catchChildren, err := p.parseSvelteBlockChildren()
		if err != nil {
			return nil, err
		}
		block.CatchBlock = &ast.SvelteCatchBlock{Binding: binding, Children: catchChildren}
	}
	if !p.consumePrefix("{/await}", false) {
		return nil, p.errAt(ExpectSvelteBlockEnd, p.pos)
	}
	return block, nil
}

func (p *Parser) parseSvelteThenOrCatchBinding() (*string, error) {
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || c == '}' {
			break
		}
		p.advance()
	}
	binding := trimSpace(p.source[start:p.pos])
	p.nextIfByte('}')
	if binding == "" {
		return nil, nil
	}
	return &binding, nil
}

func splitSvelteAwaitHeader(header string) (expr string, thenBinding *string) {
	if i := indexOfWord(header, " then "); i >= 0 {
		b := trimSpace(header[i+6:])
		if b != "" {
			thenBinding = &b
		}
		return trimSpace(header[:i]), thenBinding
	}
	return trimSpace(header), nil
}

func (p *Parser) parseSvelteKeyBlockBody() (*ast.SvelteKeyBlock, error) {
	p.skipWS()
	expr, err := p.parseSvelteExprUntilBrace()
	if err != nil {
		return nil, err
	}
	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return nil, err
	}
	if !p.consumePrefix("{/key}", false) {
		return nil, p.errAt(ExpectSvelteBlockEnd, p.pos)
	}
	return &ast.SvelteKeyBlock{Expr: expr, Children: children}, nil
}
