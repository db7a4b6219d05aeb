package parser

import "github.com/g-plane/markupfmt-go/internal/ast"

func (p *Parser) parseJinjaNode() (ast.Node, error) {
	switch {
	case p.hasPrefixAt("{{", false):
		return p.parseJinjaInterpolation()
	case p.hasPrefixAt("{#", false):
		return p.parseJinjaCommentNode()
	case p.hasPrefixAt("{%", false):
		return p.parseJinjaTagOrBlock()
	default:
		return nil, p.errAt(ExpectJinjaTag, p.pos)
	}
}

func (p *Parser) parseJinjaInterpolation() (*ast.JinjaInterpolation, error) {
	if !p.consumePrefix("{{", false) {
		return nil, p.errAt(ExpectJinjaTag, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return &ast.JinjaInterpolation{Expr: p.source[start:p.pos]}, nil
		}
		if p.hasPrefixAt("}}", false) {
			expr := p.source[start:p.pos]
			p.pos += 2
			return &ast.JinjaInterpolation{Expr: expr}, nil
		}
		p.advance()
	}
}

func (p *Parser) parseJinjaCommentNode() (*ast.JinjaComment, error) {
	if !p.consumePrefix("{#", false) {
		return nil, p.errAt(ExpectJinjaTag, p.pos)
	}
	start := p.pos
	for {
		if p.eof() {
			return &ast.JinjaComment{Raw: p.source[start:p.pos]}, nil
		}
		if p.consumePrefix("#}", false) {
			return &ast.JinjaComment{Raw: p.source[start : p.pos-2]}, nil
		}
		p.advance()
	}
}

// parseJinjaTagRaw consumes `{%[-] ... [-]%}`, returning the trimmed
// content and its leading keyword (e.g. "if", "endfor"), grounded on
// helpers.rs's parse_vento_tag split-on-first-whitespace approach.
func (p *Parser) parseJinjaTagRaw() (content string, keyword string, err error) {
	if !p.consumePrefix("{%", false) {
		return "", "", p.errAt(ExpectJinjaTag, p.pos)
	}
	p.nextIfByte('-')
	start := p.pos
	for {
		if p.eof() {
			return "", "", p.errAt(ExpectJinjaTag, p.pos)
		}
		if p.hasPrefixAt("-%}", false) {
			content = trimSpace(p.source[start:p.pos])
			p.pos += 3
			return content, firstWord(content), nil
		}
		if p.hasPrefixAt("%}", false) {
			content = trimSpace(p.source[start:p.pos])
			p.pos += 2
			return content, firstWord(content), nil
		}
		p.advance()
	}
}

func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if isASCIIWhitespace(s[i]) {
			return s[:i]
		}
	}
	return s
}

// jinjaBlockOpener reports the end keyword for block-form tags. `set` is a
// block opener only in its block form (`{% set x %}...{% endset %}`), not
// its inline assignment form (`{% set x = 1 %}`).
func jinjaBlockOpener(keyword, content string) (string, bool) {
	switch keyword {
	case "if":
		return "endif", true
	case "for":
		return "endfor", true
	case "block":
		return "endblock", true
	case "filter":
		return "endfilter", true
	case "macro":
		return "endmacro", true
	case "call":
		return "endcall", true
	case "autoescape":
		return "endautoescape", true
	case "with":
		return "endwith", true
	case "raw":
		return "endraw", true
	case "set":
		if !containsByte(content, '=') {
			return "endset", true
		}
		return "", false
	default:
		return "", false
	}
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func isJinjaMarkerKeyword(keyword string) bool {
	switch keyword {
	case "elif", "else",
		"endif", "endfor", "endblock", "endfilter", "endmacro", "endcall",
		"endautoescape", "endwith", "endraw", "endset":
		return true
	default:
		return false
	}
}

// parseJinjaTagOrBlock parses a single `{% ... %}` tag; if its keyword
// opens a block, it keeps consuming Header/Body segments until the
// matching end tag, per spec.md §4.4's block-pairing shape, flattened
// into ast.JinjaBlock's alternating Tag/Children list.
func (p *Parser) parseJinjaTagOrBlock() (ast.Node, error) {
	content, keyword, err := p.parseJinjaTagRaw()
	if err != nil {
		return nil, err
	}
	endKeyword, isOpener := jinjaBlockOpener(keyword, content)
	if !isOpener {
		return &ast.JinjaTag{Content: content}, nil
	}

	body := []ast.JinjaTagOrChildren{{Tag: &ast.JinjaTag{Content: content}}}
	for {
		children, markerKeyword, markerContent, err := p.parseJinjaBlockChildren()
		if err != nil {
			return nil, err
		}
		if len(children) > 0 {
			body = append(body, ast.JinjaTagOrChildren{Children: children})
		}
		body = append(body, ast.JinjaTagOrChildren{Tag: &ast.JinjaTag{Content: markerContent}})
		if markerKeyword == endKeyword {
			return &ast.JinjaBlock{Body: body}, nil
		}
	}
}

// parseJinjaBlockChildren parses nodes until it reaches a `{% %}` tag
// whose keyword is a mid- or end-marker, which it peeks at (restoring the
// cursor on non-match) rather than consuming speculatively.
func (p *Parser) parseJinjaBlockChildren() (children []ast.Node, markerKeyword, markerContent string, err error) {
	for {
		if p.eof() {
			return nil, "", "", p.errAt(ExpectBlockEnd, p.pos)
		}
		if p.hasPrefixAt("{%", false) {
			mark := p.save()
			content, keyword, e := p.parseJinjaTagRaw()
			if e != nil {
				return nil, "", "", e
			}
			if isJinjaMarkerKeyword(keyword) {
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
