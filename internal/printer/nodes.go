package printer

import (
	"strings"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/config"
	"github.com/g-plane/markupfmt-go/internal/doc"
)

// GenRoot is the printer's entry point: it turns a parsed tree into a
// render-ready doc.Doc, the way printer.rs's `DocGen for Root` does.
func GenRoot(root *ast.Root, ctx *Ctx) doc.Doc {
	items := genChildrenBlock(root.Children, ctx)
	if items.IsNil() {
		return doc.Nil()
	}
	return doc.Concat(items, doc.HardLine())
}

func genNode(n ast.Node, ctx *Ctx) doc.Doc {
	switch v := n.(type) {
	case *ast.Element:
		return genElement(v, ctx)
	case *ast.TextNode:
		return doc.Reflow(v.Raw)
	case *ast.Comment:
		return doc.Reflow("<!--" + v.Raw + "-->")
	case *ast.Doctype:
		return genDoctype(v, ctx)
	case *ast.FrontMatter:
		return doc.Concat(doc.Text("---"), doc.HardLine(), doc.Reflow(strings.Trim(v.Raw, "\n")), doc.HardLine(), doc.Text("---"))
	case *ast.VueInterpolation:
		return genBracedExpr("{{", "}}", v.Expr, ctx)
	case *ast.AngularInterpolation:
		return genBracedExpr("{{", "}}", v.Expr, ctx)
	case *ast.SvelteInterpolation:
		return genBracedExpr("{", "}", v.Expr, ctx)
	case *ast.VentoInterpolation:
		return genBracedExpr("{{", "}}", v.Expr, ctx)
	case *ast.MustacheInterpolation:
		if v.Escaped {
			return genBracedExpr("{{", "}}", v.Expr, ctx)
		}
		return genBracedExpr("{{{", "}}}", v.Expr, ctx)
	case *ast.SvelteIfBlock:
		return genSvelteIfBlock(v, ctx)
	case *ast.SvelteEachBlock:
		return genSvelteEachBlock(v, ctx)
	case *ast.SvelteAwaitBlock:
		return genSvelteAwaitBlock(v, ctx)
	case *ast.SvelteKeyBlock:
		return doc.Concat(
			doc.Text("{#key "+v.Expr+"}"),
			genIndentedBlock(v.Children, ctx),
			doc.HardLine(),
			doc.Text("{/key}"),
		)
	case *ast.SvelteAtTag:
		return doc.Text("{@" + v.Name + " " + ctx.formatExternal("expr.ts", v.Expr) + "}")
	case *ast.AngularIf:
		return genAngularIf(v, ctx)
	case *ast.AstroExpr:
		return genAstroExpr(v, ctx)
	case *ast.JinjaBlock:
		return genJinjaBlock(v, ctx)
	case *ast.JinjaTag:
		return doc.Text("{% " + v.Content + " %}")
	case *ast.JinjaInterpolation:
		return genBracedExpr("{{", "}}", v.Expr, ctx)
	case *ast.JinjaComment:
		return doc.Reflow("{#" + v.Raw + "#}")
	case *ast.VentoBlock:
		return genVentoBlock(v, ctx)
	case *ast.VentoTag:
		return doc.Text("{{" + v.Tag + "}}")
	case *ast.VentoEval:
		return doc.Text("{{ " + v.Raw + " }}")
	case *ast.VentoComment:
		return doc.Reflow("{{#" + v.Raw + "#}}")
	default:
		return doc.Nil()
	}
}

// genChildrenVerbatim renders children with no added whitespace, for
// whitespace-sensitive tags where the raw text carries layout meaning.
func genChildrenVerbatim(children []ast.Node, ctx *Ctx) doc.Doc {
	directive := ctx.Options.Language.IgnoreCommentDirective
	docs := make([]doc.Doc, 0, len(children))
	ignoreNext := false
	for _, c := range children {
		if t, ok := c.(*ast.TextNode); ok && strings.TrimSpace(t.Raw) == "" {
			docs = append(docs, genNode(c, ctx))
			continue
		}
		docs = append(docs, genChild(c, ctx, ignoreNext))
		ignoreNext = precedesIgnoredNode(c, directive)
	}
	return doc.Concat(docs...)
}

// genChildrenBlock lays children out one per (hard) line, collapsing
// whitespace-only text nodes and preserving a single blank line where the
// source had two or more, mirroring how printer.rs treats block content.
func genChildrenBlock(children []ast.Node, ctx *Ctx) doc.Doc {
	type item struct {
		d     doc.Doc
		blank bool
	}
	var items []item
	blankPending := false
	ignoreNext := false
	directive := ctx.Options.Language.IgnoreCommentDirective
	for _, c := range children {
		if t, ok := c.(*ast.TextNode); ok {
			if strings.TrimSpace(t.Raw) == "" {
				if t.LineBreaks >= 2 {
					blankPending = true
				}
				continue
			}
			items = append(items, item{d: genCollapsedText(t.Raw), blank: blankPending})
			blankPending = false
			ignoreNext = false
			continue
		}
		items = append(items, item{d: genChild(c, ctx, ignoreNext), blank: blankPending})
		blankPending = false
		ignoreNext = precedesIgnoredNode(c, directive)
	}
	if len(items) == 0 {
		return doc.Nil()
	}
	docs := make([]doc.Doc, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			docs = append(docs, doc.HardLine())
			if it.blank {
				docs = append(docs, doc.HardLine())
			}
		}
		docs = append(docs, it.d)
	}
	return doc.Concat(docs...)
}

// precedesIgnoredNode reports whether c is a comment whose trimmed text
// matches the configured ignore-comment directive, meaning the next
// sibling (skipping whitespace-only text) must be emitted verbatim.
func precedesIgnoredNode(c ast.Node, directive string) bool {
	comment, ok := c.(*ast.Comment)
	return ok && directive != "" && strings.TrimSpace(comment.Raw) == directive
}

// genChild renders n normally, unless verbatim is set (an ignore-comment
// directive immediately preceded it), in which case it's re-sliced from
// its recorded source span instead, per spec.md §4.3 "Ignore directives".
func genChild(n ast.Node, ctx *Ctx, verbatim bool) doc.Doc {
	if verbatim {
		if span, ok := ctx.Spans[n]; ok {
			return doc.Reflow(ctx.Source[span.Start:span.End])
		}
	}
	return genNode(n, ctx)
}

// genCollapsedText turns a run of text into word docs joined by
// LineOrSpace so a Group around each paragraph can reflow at the
// configured width, while a blank line inside the text (two or more
// newlines) survives as a hard paragraph separator instead of being
// folded away with the rest of the whitespace, per spec.md §4.3 step 4.
func genCollapsedText(raw string) doc.Doc {
	paragraphs := splitParagraphs(raw)
	docs := make([]doc.Doc, 0, len(paragraphs)*3)
	for i, p := range paragraphs {
		if i > 0 {
			docs = append(docs, doc.HardLine(), doc.HardLine())
		}
		docs = append(docs, genCollapsedParagraph(p))
	}
	return doc.Concat(docs...)
}

func genCollapsedParagraph(raw string) doc.Doc {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return doc.Nil()
	}
	docs := make([]doc.Doc, len(fields))
	for i, f := range fields {
		docs[i] = doc.Text(f)
	}
	return doc.Join(docs, doc.LineOrSpace()).Group()
}

// splitParagraphs splits raw on a blank line: a run of two or more
// newlines, with intervening spaces/tabs/carriage-returns still counting
// as part of the same run. The separator whitespace itself is dropped;
// callers re-emit it explicitly as a hard paragraph break.
func splitParagraphs(raw string) []string {
	var paragraphs []string
	segStart := 0
	newlines := 0
	runStart := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\n':
			if newlines == 0 {
				runStart = i
			}
			newlines++
		case ' ', '\t', '\r':
			// whitespace inside a newline run doesn't break or extend it
		default:
			if newlines >= 2 {
				paragraphs = append(paragraphs, raw[segStart:runStart])
				segStart = i
			}
			newlines = 0
		}
	}
	return append(paragraphs, raw[segStart:])
}

// genIndentedBlock is the common shape for dialect block bodies: a hard
// line, the nested children, no trailing line (the caller appends its own
// closing marker after one).
func genIndentedBlock(children []ast.Node, ctx *Ctx) doc.Doc {
	body := genChildrenBlock(children, ctx)
	if body.IsNil() {
		return doc.Nil()
	}
	return doc.Concat(doc.HardLine(), body).Nest(ctx.indentWidth())
}

func genDoctype(d *ast.Doctype, ctx *Ctx) doc.Doc {
	keyword := d.Keyword
	switch ctx.Options.Language.DoctypeKeywordCase {
	case config.DoctypeUpper:
		keyword = strings.ToUpper(keyword)
	case config.DoctypeLower:
		keyword = strings.ToLower(keyword)
	}
	value := strings.TrimSpace(d.Value)
	if value == "" {
		return doc.Text("<!" + keyword + ">")
	}
	return doc.Text("<!" + keyword + " " + value + ">")
}

// genBracedExpr formats an interpolation's expression text through the
// external formatter and wraps it back in its delimiters, trimming the
// formatter's trailing semicolon/newline since an interpolation is an
// expression, not a statement.
func genBracedExpr(open, close, expr string, ctx *Ctx) doc.Doc {
	formatted := ctx.formatExternal("expr.ts", expr)
	formatted = strings.TrimRight(formatted, "\n")
	formatted = strings.TrimSuffix(formatted, ";")
	if formatted == "" {
		return doc.Text(open + close)
	}
	return doc.Text(open + " " + formatted + " " + close)
}
