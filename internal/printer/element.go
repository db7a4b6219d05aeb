package printer

import (
	"strings"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/config"
	"github.com/g-plane/markupfmt-go/internal/doc"
)

// rawTextTags get their single text child handed to the external formatter
// instead of being printed as ordinary whitespace-sensitive content.
var rawTextTags = map[string]bool{"script": true, "style": true}

func genElement(e *ast.Element, ctx *Ctx) doc.Doc {
	tagName := e.TagName
	if ctx.Dialect == ast.Vue && isComponent(tagName) {
		tagName = vueComponentName(tagName, ctx.Options.Language.VueComponentCase)
	}

	attrDocs := make([]doc.Doc, 0, len(e.Attrs))
	for _, a := range e.Attrs {
		attrDocs = append(attrDocs, genAttr(a, ctx))
	}

	selfClose := resolveSelfClosing(tagName, e.VoidElement, &ctx.Options.Language)

	if e.VoidElement || (selfClose && len(e.Children) == 0) {
		tag := genOpenTagAttrs(attrDocs, &ctx.Options.Language, ctx.indentWidth(), e.FirstAttrSameLine, selfClose)
		return doc.Concat(doc.Text("<"+tagName), tag)
	}

	openAttrs := genOpenTagAttrs(attrDocs, &ctx.Options.Language, ctx.indentWidth(), e.FirstAttrSameLine, false)
	openTag := doc.Concat(doc.Text("<"+tagName), openAttrs)
	closeTag := doc.Text("</" + tagName + ">")

	if rawTextTags[strings.ToLower(tagName)] {
		return genRawTextElement(tagName, e, ctx, openTag, closeTag)
	}

	if len(e.Children) == 0 {
		return doc.Concat(openTag, closeTag)
	}

	prevTag := ctx.CurrentTagName
	ctx.CurrentTagName = tagName
	defer func() { ctx.CurrentTagName = prevTag }()

	sensitive := isWhitespaceSensitiveTag(tagName, ctx.Dialect, effectiveWhitespaceSensitivity(tagName, &ctx.Options.Language))
	if sensitive {
		return doc.Concat(openTag, genChildrenVerbatim(e.Children, ctx), closeTag)
	}

	body := genChildrenBlock(e.Children, ctx)
	if body.IsNil() {
		return doc.Concat(openTag, closeTag)
	}
	inner := doc.Concat(
		doc.Concat(doc.LineOrNil(), body).Nest(ctx.indentWidth()),
		doc.LineOrNil(),
	).Group()
	return doc.Concat(openTag, inner, closeTag)
}

func effectiveWhitespaceSensitivity(tagName string, opts *config.LanguageOptions) config.WhitespaceSensitivity {
	if isComponent(tagName) && opts.ComponentWhitespaceSensitivity != nil {
		return *opts.ComponentWhitespaceSensitivity
	}
	return opts.WhitespaceSensitivity
}

// genOpenTagAttrs lays out an element's attribute list together with its
// closing bracket. SingleAttrSameLine keeps a lone attribute on the tag
// line; when the attribute count exceeds a non-zero MaxAttrsPerLine, every
// attribute goes on a line of its own (attributes are not grouped N per
// line); ClosingBracketSameLine drops the line break before ">".
// PreferAttrsSingleLine is not read: the attribute Group already tries the
// single-line layout first. selfClose picks the "/>" tail (preceded by a space when
// flat, a bare newline when broken) instead of plain ">" (preceded by
// nothing when flat, a newline when broken) — mirroring printer.rs's
// `Doc::line_or_space().append(Doc::text("/>"))` for self-closing tags,
// so the same Group decision that wraps the attributes also decides
// whether the closing bracket gets a line of its own.
func genOpenTagAttrs(attrs []doc.Doc, opts *config.LanguageOptions, indentWidth int, firstAttrSameLine, selfClose bool) doc.Doc {
	closeBracket := ">"
	if selfClose {
		closeBracket = "/>"
	}

	if len(attrs) == 0 {
		if selfClose {
			return doc.Text(" />")
		}
		return doc.Text(">")
	}
	if len(attrs) == 1 && opts.SingleAttrSameLine {
		tail := closeBracket
		if selfClose {
			tail = " " + closeBracket
		}
		return doc.Concat(doc.Text(" "), attrs[0], doc.Text(tail))
	}

	sep := doc.LineOrSpace()
	if opts.MaxAttrsPerLine > 0 && len(attrs) > opts.MaxAttrsPerLine {
		sep = doc.HardLine()
	}

	lead := doc.LineOrSpace()
	rest := attrs
	var prefix doc.Doc
	if firstAttrSameLine {
		prefix = doc.Text(" ").Append(attrs[0])
		rest = attrs[1:]
		if len(rest) == 0 {
			tail := closeBracket
			if selfClose {
				tail = " " + closeBracket
			}
			return doc.Concat(prefix, doc.Text(tail))
		}
		lead = sep
	}

	var tail doc.Doc
	if selfClose {
		tail = doc.Concat(doc.LineOrSpace(), doc.Text(closeBracket))
	} else {
		closing := doc.LineOrNil()
		if opts.ClosingBracketSameLine {
			closing = doc.Nil()
		}
		tail = doc.Concat(closing, doc.Text(closeBracket))
	}

	joined := doc.Join(rest, sep)
	inner := doc.Concat(lead, joined).Nest(indentWidth)
	body := doc.Concat(inner, tail).Group()
	if firstAttrSameLine {
		return doc.Concat(prefix, body)
	}
	return body
}

// genRawTextElement formats a script/style body with the external
// formatter, picking a synthetic path hint from a lang/type attribute so
// the host formatter can select a language.
func genRawTextElement(tagName string, e *ast.Element, ctx *Ctx, openTag, closeTag doc.Doc) doc.Doc {
	var raw string
	if len(e.Children) == 1 {
		if t, ok := e.Children[0].(*ast.TextNode); ok {
			raw = t.Raw
		}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return doc.Concat(openTag, closeTag)
	}

	ext := "ts"
	isStyle := strings.ToLower(tagName) == "style"
	if isStyle {
		ext = "css"
	}
	if v := attrValue(e, "lang"); v != nil {
		ext = *v
	} else if v := attrValue(e, "type"); v != nil {
		ext = extFromMIME(*v, ext)
	}

	pathHint := tagName + "." + ext
	formatted := ctx.formatExternal(pathHint, raw)
	body := doc.Reflow(formatted)

	dialectKey := ctx.Dialect.String()
	indent := ctx.Options.Language.ScriptIndentFor(dialectKey)
	if isStyle {
		indent = ctx.Options.Language.StyleIndentFor(dialectKey)
	}

	if indent {
		return doc.Concat(openTag, doc.HardLine().Append(body).Nest(ctx.indentWidth()), doc.HardLine(), closeTag)
	}
	return doc.Concat(openTag, doc.HardLine(), body, doc.HardLine(), closeTag)
}

func attrValue(e *ast.Element, name string) *string {
	for _, a := range e.Attrs {
		if n, ok := a.(*ast.NativeAttribute); ok && strings.EqualFold(n.Name, name) {
			return n.Value
		}
	}
	return nil
}

func extFromMIME(mime, fallback string) string {
	switch {
	case strings.Contains(mime, "typescript"):
		return "ts"
	case strings.Contains(mime, "javascript"):
		return "js"
	case strings.Contains(mime, "scss"):
		return "scss"
	case strings.Contains(mime, "less"):
		return "less"
	case strings.Contains(mime, "css"):
		return "css"
	default:
		return fallback
	}
}
