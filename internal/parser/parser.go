package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

// Parse runs the parser over source for the given dialect. On success it
// returns the root of the borrowed AST; on failure, no partial tree is
// returned (spec.md §7: "Parser stops at first occurrence. No partial AST
// is returned.").
func Parse(source string, dialect ast.Dialect) (*ast.Root, error) {
	p := New(source, dialect)
	return p.ParseRoot()
}

func (p *Parser) ParseRoot() (*ast.Root, error) {
	var children []ast.Node
	if p.dialect == ast.Astro {
		if fm, ok, err := p.tryParseFrontMatter(); err != nil {
			return nil, err
		} else if ok {
			children = append(children, fm)
		}
	}
	for !p.eof() {
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return &ast.Root{Children: children, Spans: p.spans}, nil
}

func (p *Parser) tryParseFrontMatter() (*ast.FrontMatter, bool, error) {
	mark := p.save()
	if !p.consumePrefix("---", false) {
		return nil, false, nil
	}
	// Frontmatter fence must be alone on its line.
	for {
		c, ok := p.peek()
		if !ok {
			break
		}
		if c == '\n' {
			p.advance()
			break
		}
		if !isASCIIWhitespace(c) {
			p.restore(mark)
			return nil, false, nil
		}
		p.advance()
	}
	start := p.pos
	for {
		if p.eof() {
			p.restore(mark)
			return nil, false, nil
		}
		if p.peekLineIsFence() {
			end := p.pos
			p.consumeLine() // consume the closing "---" line
			raw := p.source[start:end]
			return &ast.FrontMatter{Raw: raw}, true, nil
		}
		p.advanceLine()
	}
}

func (p *Parser) peekLineIsFence() bool {
	return p.hasPrefixAt("---", false) && p.lineIsFenceAt(p.pos)
}

func (p *Parser) lineIsFenceAt(pos int) bool {
	i := pos + 3
	for i < len(p.source) {
		c := p.source[i]
		if c == '\n' {
			return true
		}
		if !isASCIIWhitespace(c) {
			return false
		}
		i++
	}
	return true
}

func (p *Parser) advanceLine() {
	for {
		c, ok := p.peek()
		if !ok {
			return
		}
		p.advance()
		if c == '\n' {
			return
		}
	}
}

func (p *Parser) consumeLine() { p.advanceLine() }

// parseNode dispatches on the current byte per spec.md §4.1's
// dialect-conditional branching table. It is the single choke point every
// child-list loop in this package calls through, so it also records each
// returned node's source span here once, rather than at every call site.
func (p *Parser) parseNode() (ast.Node, error) {
	start := p.pos
	n, err := p.parseNodeKind()
	if err != nil {
		return nil, err
	}
	p.recordSpan(n, start, p.pos)
	return n, nil
}

// recordSpan stores n's [start, end) byte range, keyed by n's own pointer
// identity (every ast.Node implementation here has a pointer receiver, so
// interface equality is address equality). Used by the printer to emit a
// node verbatim when an ignore-comment directive precedes it.
func (p *Parser) recordSpan(n ast.Node, start, end int) {
	if p.spans == nil {
		p.spans = make(map[ast.Node]ast.Span)
	}
	p.spans[n] = ast.Span{Start: start, End: end}
}

func (p *Parser) parseNodeKind() (ast.Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errAt(ExpectElement, p.pos)
	}

	switch c {
	case '<':
		if p.hasPrefixAt("<!--", false) {
			return p.parseComment()
		}
		if p.hasPrefixAt("<!", false) && p.dialect != ast.Xml {
			return p.parseDoctype()
		}
		return p.parseElement()
	case '{':
		return p.parseBraceNode()
	case '@':
		if p.dialect == ast.Angular && p.hasPrefixAt("@if", false) {
			return p.parseAngularIf()
		}
		return p.parseTextNode()
	default:
		return p.parseTextNode()
	}
}

func (p *Parser) parseBraceNode() (ast.Node, error) {
	switch p.dialect {
	case ast.Vue:
		if p.hasPrefixAt("{{", false) {
			n, err := p.parseVueInterpolation()
			return n, err
		}
		return p.parseTextNode()
	case ast.Angular:
		if p.hasPrefixAt("{{", false) {
			return p.parseAngularInterpolation()
		}
		return p.parseTextNode()
	case ast.Svelte:
		return p.parseSvelteNode()
	case ast.Astro:
		return p.parseAstroExpr()
	case ast.Jinja:
		return p.parseJinjaNode()
	case ast.Vento:
		return p.parseVentoNode()
	case ast.Mustache:
		return p.parseMustacheInterpolation()
	default:
		return p.parseTextNode()
	}
}

// --- shared lexical productions -------------------------------------------------

func isAttrNameChar(c byte) bool {
	switch c {
	case ' ', '"', '\'', '>', '/', '=':
		return false
	default:
		return !isASCIIWhitespace(c)
	}
}

func (p *Parser) parseAttrName() (string, error) {
	start := p.pos
	if _, ok := p.nextIf(isAttrNameChar); !ok {
		return "", p.errAt(ExpectAttrName, p.pos)
	}
	for {
		if _, ok := p.nextIf(isAttrNameChar); !ok {
			break
		}
	}
	return p.source[start:p.pos], nil
}

func isUnquotedAttrValueChar(c byte) bool {
	if isASCIIWhitespace(c) {
		return false
	}
	switch c {
	case '"', '\'', '=', '<', '>', '`':
		return false
	default:
		return true
	}
}

func (p *Parser) parseAttrValue() (string, error) {
	if c, ok := p.peek(); ok && (c == '"' || c == '\'') {
		quote := c
		p.advance()
		start := p.pos
		for {
			cc, ok := p.peek()
			if !ok {
				break
			}
			if cc == quote {
				break
			}
			p.advance()
		}
		end := p.pos
		p.nextIfByte(quote)
		return p.source[start:end], nil
	}

	start := p.pos
	if _, ok := p.nextIf(isUnquotedAttrValueChar); !ok {
		return "", p.errAt(ExpectAttrValue, p.pos)
	}
	for {
		if _, ok := p.nextIf(isUnquotedAttrValueChar); !ok {
			break
		}
	}
	return p.source[start:p.pos], nil
}

func isTagNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == ':', c == '\\':
		return true
	case c >= 0x80:
		return true
	default:
		return false
	}
}

func (p *Parser) parseTagName() (string, error) {
	start := p.pos
	if _, ok := p.nextIf(isTagNameChar); !ok {
		return "", p.errAt(ExpectTagName, p.pos)
	}
	for {
		if _, ok := p.nextIf(isTagNameChar); !ok {
			break
		}
	}
	return p.source[start:p.pos], nil
}

func isIdentifierChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '\\':
		return true
	case c >= 0x80:
		return true
	default:
		return false
	}
}

func (p *Parser) parseIdentifier() (string, error) {
	start := p.pos
	if _, ok := p.nextIf(isIdentifierChar); !ok {
		return "", p.errAt(ExpectIdentifier, p.pos)
	}
	for {
		if _, ok := p.nextIf(isIdentifierChar); !ok {
			break
		}
	}
	return p.source[start:p.pos], nil
}

func (p *Parser) parseComment() (*ast.Comment, error) {
	if !p.consumePrefix("<!--", false) {
		return nil, p.errAt(ExpectComment, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return &ast.Comment{Raw: p.source[start:p.pos]}, nil
		}
		if p.consumePrefix("-->", false) {
			return &ast.Comment{Raw: p.source[start : p.pos-3]}, nil
		}
		p.advance()
	}
}

func (p *Parser) parseDoctype() (*ast.Doctype, error) {
	if !p.consumePrefix("<!", false) {
		return nil, p.errAt(ExpectElement, p.pos)
	}
	p.skipWS()
	kwStart := p.pos
	for {
		c, ok := p.peek()
		if !ok || isASCIIWhitespace(c) || c == '>' {
			break
		}
		p.advance()
	}
	keyword := p.source[kwStart:p.pos]
	p.skipWS()
	valStart := p.pos
	for {
		c, ok := p.peek()
		if !ok || c == '>' {
			break
		}
		p.advance()
	}
	value := p.source[valStart:p.pos]
	p.nextIfByte('>')
	return &ast.Doctype{Keyword: keyword, Value: value}, nil
}

func (p *Parser) parseNativeAttr() (*ast.NativeAttribute, error) {
	name, err := p.parseAttrName()
	if err != nil {
		return nil, err
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
	return &ast.NativeAttribute{Name: name, Value: value}, nil
}

// parseAttr dispatches to the dialect-specific attribute grammar, falling
// back to a native attribute when the speculative parse fails, mirroring
// parser.rs's `try_parse(...).or_else(parse_native_attr)`.
func (p *Parser) parseAttr() (ast.Attribute, error) {
	switch p.dialect {
	case ast.Vue:
		mark := p.save()
		if v, err := p.parseVueDirective(); err == nil {
			return v, nil
		}
		p.restore(mark)
		return p.parseNativeAttr()
	case ast.Svelte:
		mark := p.save()
		if v, err := p.parseSvelteAttr(); err == nil {
			return v, nil
		}
		p.restore(mark)
		return p.parseNativeAttr()
	case ast.Astro:
		mark := p.save()
		if v, err := p.parseAstroAttribute(); err == nil {
			return v, nil
		}
		p.restore(mark)
		return p.parseNativeAttr()
	default:
		return p.parseNativeAttr()
	}
}

func (p *Parser) parseElement() (*ast.Element, error) {
	if !p.nextIfByte('<') {
		return nil, p.errAt(ExpectElement, p.pos)
	}
	tagName, err := p.parseTagName()
	if err != nil {
		return nil, err
	}

	var attrs []ast.Attribute
	firstAttrSameLine := true
	first := true
	for {
		beforeWS := p.pos
		p.skipWS()
		c, ok := p.peek()
		if !ok {
			return nil, p.errAt(ExpectCloseTag, p.pos)
		}
		if c == '/' {
			p.advance()
			if !p.nextIfByte('>') {
				return nil, p.errAt(ExpectSelfCloseTag, p.pos)
			}
			return &ast.Element{
				TagName:           tagName,
				Attrs:             attrs,
				FirstAttrSameLine: firstAttrSameLine,
				Children:          nil,
				SelfClosing:       true,
				VoidElement:       isVoidElement(tagName, p.dialect),
			}, nil
		}
		if c == '>' {
			p.advance()
			break
		}
		if first {
			firstAttrSameLine = countNewlines(p.source[beforeWS:p.pos]) == 0
			first = false
		}
		attr, err := p.parseAttr()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}

	void := isVoidElement(tagName, p.dialect)
	if void {
		return &ast.Element{
			TagName:           tagName,
			Attrs:             attrs,
			FirstAttrSameLine: firstAttrSameLine,
			Children:          nil,
			SelfClosing:       false,
			VoidElement:       true,
		}, nil
	}

	var children []ast.Node
	rawText := isRawTextTag(tagName, p.dialect)
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errAt(ExpectCloseTag, p.pos)
		}
		if c == '<' && p.hasPrefixAt("</", false) {
			mark := p.save()
			p.pos += 2
			closeName, err := p.parseTagName()
			if err != nil || !tagNameEqual(closeName, tagName, p.dialect) {
				p.restore(mark)
				return nil, p.errAt(ExpectCloseTag, p.pos)
			}
			p.skipWS()
			if !p.nextIfByte('>') {
				return nil, p.errAt(ExpectCloseTag, p.pos)
			}
			break
		}
		var child ast.Node
		var err error
		if rawText {
			child, err = p.parseRawTextNode(tagName)
		} else {
			child, err = p.parseNode()
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return &ast.Element{
		TagName:           tagName,
		Attrs:             attrs,
		FirstAttrSameLine: firstAttrSameLine,
		Children:          children,
		SelfClosing:       false,
		VoidElement:       false,
	}, nil
}

// parseRawTextNode scans raw text up to the matching `</tagName`, not just
// any `</`: a `</` occurring inside a JS string or comment in <script> (or
// a `<` comparison-like sequence in <style>) must not end the text run
// early.
func (p *Parser) parseRawTextNode(tagName string) (*ast.TextNode, error) {
	start := p.pos
	for {
		if p.eof() {
			return &ast.TextNode{Raw: p.source[start:p.pos], LineBreaks: countNewlines(p.source[start:p.pos])}, nil
		}
		if p.atRawTextClose(tagName) {
			raw := p.source[start:p.pos]
			return &ast.TextNode{Raw: raw, LineBreaks: countNewlines(raw)}, nil
		}
		p.advance()
	}
}

// atRawTextClose reports whether the cursor sits on `</tagName` followed
// by a tag-terminating byte (whitespace or `>`).
func (p *Parser) atRawTextClose(tagName string) bool {
	if !p.hasPrefixAt("</", false) {
		return false
	}
	if !p.hasPrefixAt("</"+tagName, isHTMLFamily(p.dialect)) {
		return false
	}
	n, ok := p.byteAt(2 + len(tagName))
	if !ok {
		return true
	}
	return isASCIIWhitespace(n) || n == '>'
}

func countNewlines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// parseTextNode scans plain text up to the next node-starting delimiter
// for the active dialect (always '<'; additionally doubled '{{' for Vue,
// Vento and Mustache, single '{' for Svelte/Astro, '{{'/'{%'/'{#' for
// Jinja, and '{{', '@if' or '}' for Angular).
func (p *Parser) parseTextNode() (*ast.TextNode, error) {
	start := p.pos
	if p.eof() {
		return nil, p.errAt(ExpectTextNode, p.pos)
	}
	if c, _ := p.peek(); c == '<' {
		return nil, p.errAt(ExpectTextNode, p.pos)
	}
	if p.atTemplateDelimiter() {
		return nil, p.errAt(ExpectTextNode, p.pos)
	}
	p.advance()

	for {
		if p.eof() {
			break
		}
		if c, _ := p.peek(); c == '<' {
			break
		}
		if p.atTemplateDelimiter() {
			break
		}
		p.advance()
	}
	raw := p.source[start:p.pos]
	return &ast.TextNode{Raw: raw, LineBreaks: countNewlines(raw)}, nil
}

// atTemplateDelimiter reports whether the cursor sits on a dialect-specific
// interpolation/tag opener that should terminate a text run.
func (p *Parser) atTemplateDelimiter() bool {
	c, ok := p.peek()
	if !ok {
		return false
	}
	if p.dialect == ast.Angular {
		if c == '@' {
			return p.hasPrefixAt("@if", false)
		}
		if c == '}' {
			return true
		}
	}
	if c != '{' {
		return false
	}
	switch p.dialect {
	case ast.Vue, ast.Angular:
		return p.hasPrefixAt("{{", false)
	case ast.Svelte, ast.Astro:
		return true
	case ast.Jinja:
		return p.hasPrefixAt("{{", false) || p.hasPrefixAt("{%", false) || p.hasPrefixAt("{#", false)
	case ast.Vento:
		return p.hasPrefixAt("{{", false)
	case ast.Mustache:
		return p.hasPrefixAt("{{", false)
	default:
		return false
	}
}
