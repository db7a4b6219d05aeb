package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

// ventoBlockOpeners maps a Vento tag keyword to its matching end keyword,
// per the same Header/Body/End shape as Jinja's blocks.
var ventoBlockOpeners = map[string]string{
	"if": "/if", "for": "/for", "async": "/async",
	"function": "/function", "export": "/export", "layout": "/layout",
}

func isVentoMarkerKeyword(keyword string) bool {
	switch keyword {
	case "else",
		"/if", "/for", "/async", "/function", "/export", "/layout":
		return true
	default:
		return false
	}
}

func (p *Parser) parseVentoNode() (ast.Node, error) {
	switch {
	case p.hasPrefixAt("{{#", false):
		return p.parseVentoCommentNode()
	case p.hasPrefixAt("{{", false):
		return p.parseVentoBraceNode()
	default:
		return nil, p.errAt(ExpectVentoTag, p.pos)
	}
}

func (p *Parser) parseVentoCommentNode() (*ast.VentoComment, error) {
	if !p.consumePrefix("{{#", false) {
		return nil, p.errAt(ExpectVentoTag, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return &ast.VentoComment{Raw: p.source[start:p.pos]}, nil
		}
		if p.consumePrefix("#}}", false) {
			return &ast.VentoComment{Raw: p.source[start : p.pos-3]}, nil
		}
		p.advance()
	}
}

// parseVentoRaw consumes `{{ ... }}`, returning the trimmed content and
// the leading keyword split off by the first run of whitespace, per
// helpers.rs's parse_vento_tag.
func (p *Parser) parseVentoRaw() (content, keyword string, err error) {
	if !p.consumePrefix("{{", false) {
		return "", "", p.errAt(ExpectVentoTag, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return "", "", p.errAt(ExpectVentoTag, p.pos)
		}
		if p.hasPrefixAt("}}", false) {
			content = trimSpace(p.source[start:p.pos])
			p.pos += 2
			return content, firstWord(content), nil
		}
		p.advance()
	}
}

func (p *Parser) parseVentoBraceNode() (ast.Node, error) {
	mark := p.save()
	content, keyword, err := p.parseVentoRaw()
	if err != nil {
		return nil, err
	}

	if keyword == ">" || (len(content) > 0 && content[0] == '>') {
		return &ast.VentoTag{Tag: content}, nil
	}
	if _, isOpener := ventoBlockOpeners[keyword]; isOpener {
		p.restore(mark)
		return p.parseVentoBlock()
	}
	if isEvalKeyword(keyword) {
		return &ast.VentoEval{Raw: content}, nil
	}
	return &ast.VentoInterpolation{Expr: content}, nil
}

// isEvalKeyword reports whether a `{{ ... }}` tag is a non-interpolating
// evaluation such as `set`/`const`/`let` assignments, per ast.go's
// distinction between VentoEval and VentoInterpolation.
func isEvalKeyword(keyword string) bool {
	switch keyword {
	case "set", "const", "let", "var", "include":
		return true
	default:
		return false
	}
}

func (p *Parser) parseVentoBlock() (*ast.VentoBlock, error) {
	content, keyword, err := p.parseVentoRaw()
	if err != nil {
		return nil, err
	}
	endKeyword, isOpener := ventoBlockOpeners[keyword]
	if !isOpener {
		return nil, p.errAt(ExpectVentoTag, p.pos)
	}

	body := []ast.VentoTagOrChildren{{Tag: &ast.VentoTag{Tag: content}}}
	for {
		children, markerKeyword, markerContent, err := p.parseVentoBlockChildren()
		if err != nil {
			return nil, err
		}
		if len(children) > 0 {
			body = append(body, ast.VentoTagOrChildren{Children: children})
		}
		body = append(body, ast.VentoTagOrChildren{Tag: &ast.VentoTag{Tag: markerContent}})
		if markerKeyword == endKeyword {
			return &ast.VentoBlock{Body: body}, nil
		}
	}
}

func (p *Parser) parseVentoBlockChildren() (children []ast.Node, markerKeyword, markerContent string, err error) {
	for {
		if p.eof() {
			return nil, "", "", p.errAt(ExpectBlockEnd, p.pos)
		}
		if p.hasPrefixAt("{{", false) && !p.hasPrefixAt("{{#", false) {
			mark := p.save()
			content, keyword, e := p.parseVentoRaw()
			if e != nil {
				return nil, "", "", e
			}
			if isVentoMarkerKeyword(keyword) {
				return children, keyword, content, nil
			}
			p.restore(mark)
		}
		n, e := p.parseNode()
		if e != nil {
			return nil, "", "", e
		}
		children = append(children, n)
	}
}
