package printer

import (
	"strings"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/config"
	"github.com/g-plane/markupfmt-go/internal/doc"
)

func genAttr(attr ast.Attribute, ctx *Ctx) doc.Doc {
	switch a := attr.(type) {
	case *ast.NativeAttribute:
		return genNativeAttr(a, ctx)
	case *ast.VueDirective:
		return genVueDirective(a, ctx)
	case *ast.SvelteAttribute:
		return genSvelteAttr(a, ctx)
	case *ast.AstroAttribute:
		return genAstroAttr(a, ctx)
	default:
		return doc.Nil()
	}
}

func genNativeAttr(a *ast.NativeAttribute, ctx *Ctx) doc.Doc {
	if a.Value == nil {
		return doc.Text(a.Name)
	}
	return doc.Text(a.Name + "=" + quoteAttrValue(*a.Value, ctx.Options.Language.Quotes))
}

// directiveKind normalizes a parsed Vue directive name (either a `:`/`@`/
// `#` shorthand or a `v-name` long form) to its semantic family, so the
// configured shorthand style can be applied uniformly regardless of how
// the source spelled it.
func directiveKind(name string) string {
	switch name {
	case ":", "bind":
		return "bind"
	case "@", "on":
		return "on"
	case "#", "slot":
		return "slot"
	default:
		return name
	}
}

func genVueDirective(a *ast.VueDirective, ctx *Ctx) doc.Doc {
	opts := &ctx.Options.Language
	kind := directiveKind(a.Name)

	var prefix string
	switch kind {
	case "bind":
		style := config.VBindShort
		if opts.VBindStyle != nil {
			style = *opts.VBindStyle
		}
		if style == config.VBindLong {
			prefix = "v-bind"
		} else {
			prefix = ":"
		}
	case "on":
		style := config.VOnShort
		if opts.VOnStyle != nil {
			style = *opts.VOnStyle
		}
		if style == config.VOnLong {
			prefix = "v-on"
		} else {
			prefix = "@"
		}
	case "slot":
		style := config.VSlotShort
		if opts.VSlotStyle != nil {
			style = *opts.VSlotStyle
		}
		if style == config.VSlotLong || style == config.VSlotVSlot {
			prefix = "v-slot"
		} else {
			prefix = "#"
		}
	default:
		prefix = "v-" + a.Name
	}

	var b strings.Builder
	b.WriteString(prefix)
	if a.ArgAndModifiers != nil {
		needsColon := prefix == "v-bind" || prefix == "v-on" || prefix == "v-slot"
		if needsColon {
			b.WriteByte(':')
		}
		b.WriteString(*a.ArgAndModifiers)
	}
	if a.Value != nil {
		value := *a.Value
		if kind == "for" {
			value = applyVForStyle(value, opts)
		}
		b.WriteByte('=')
		b.WriteString(quoteAttrValue(value, opts.Quotes))
	}
	return doc.Text(b.String())
}

// applyVForStyle rewrites the first standalone "in"/"of" delimiter in a
// v-for expression to match the configured style.
func applyVForStyle(expr string, opts *config.LanguageOptions) string {
	style := config.VForIn
	if opts.VForDelimiterStyle != nil {
		style = *opts.VForDelimiterStyle
	}
	want := "in"
	if style == config.VForOf {
		want = "of"
	}
	first := -1
	for _, candidate := range []string{" in ", " of "} {
		if i := strings.Index(expr, candidate); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	if first < 0 {
		return expr
	}
	return expr[:first] + " " + want + " " + expr[first+len(" in "):]
}

func genSvelteAttr(a *ast.SvelteAttribute, ctx *Ctx) doc.Doc {
	expr := ctx.formatExternal("expr.ts", a.Expr)
	if a.Name == nil {
		return doc.Text("{" + expr + "}")
	}
	return doc.Text(*a.Name + "={" + expr + "}")
}

func genAstroAttr(a *ast.AstroAttribute, ctx *Ctx) doc.Doc {
	expr := ctx.formatExternal("expr.ts", a.Expr)
	if a.Name == nil {
		return doc.Text("{" + expr + "}")
	}
	return doc.Text(*a.Name + "={" + expr + "}")
}
