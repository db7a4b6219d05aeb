package printer

import (
	"strings"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/config"
	"github.com/iancoleman/strcase"
)

// nonWhitespaceSensitiveTags is the 76-element table from helpers.rs: tags
// whose inter-child whitespace carries no layout meaning, so the printer
// is free to reformat it.
var nonWhitespaceSensitiveTags = map[string]bool{
	"address": true, "blockquote": true, "button": true, "caption": true,
	"center": true, "colgroup": true, "dialog": true, "div": true,
	"figure": true, "figcaption": true, "footer": true, "form": true,
	"select": true, "option": true, "optgroup": true, "header": true,
	"hr": true, "legend": true, "listing": true, "main": true, "p": true,
	"plaintext": true, "pre": true, "progress": true, "search": true,
	"object": true, "details": true, "summary": true, "xmp": true,
	"area": true, "base": true, "basefont": true, "datalist": true,
	"head": true, "link": true, "meta": true, "meter": true,
	"noembed": true, "noframes": true, "param": true, "rp": true,
	"title": true, "html": true, "body": true, "article": true,
	"aside": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "hgroup": true, "nav": true, "section": true,
	"table": true, "tr": true, "thead": true, "th": true, "tbody": true,
	"td": true, "tfoot": true, "dir": true, "dd": true, "dl": true,
	"dt": true, "menu": true, "ol": true, "ul": true, "li": true,
	"fieldset": true, "video": true, "audio": true, "picture": true,
	"source": true, "track": true,
}

// svgTags is a practical subset of SVG element names; the pack carries no
// dedicated SVG tag dataset dependency, so this is a hand-kept table
// rather than the upstream css_dataset crate's lookup (documented in
// DESIGN.md as the one stdlib-only fallback in the printer).
var svgTags = map[string]bool{
	"svg": true, "circle": true, "ellipse": true, "line": true, "path": true,
	"polygon": true, "polyline": true, "rect": true, "g": true, "defs": true,
	"symbol": true, "use": true, "text": true, "tspan": true, "mask": true,
	"clippath": true, "lineargradient": true, "radialgradient": true, "stop": true,
}

// isWhitespaceSensitiveTag mirrors helpers.rs's is_whitespace_sensitive_tag.
func isWhitespaceSensitiveTag(name string, d ast.Dialect, ws config.WhitespaceSensitivity) bool {
	switch ws {
	case config.WhitespaceStrict:
		return true
	case config.WhitespaceIgnore:
		return false
	}
	lower := strings.ToLower(name)
	if lower == "a" {
		return true
	}
	if d == ast.Xml {
		return false
	}
	return !nonWhitespaceSensitiveTags[lower] && !svgTags[lower]
}

// isComponent reports whether a tag name names a component rather than a
// native element, per helpers.rs's is_component.
func isComponent(name string) bool {
	if strings.ContainsRune(name, '-') {
		return true
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// resolveSelfClosing picks the per-tag-class self-closing override,
// following the Native/Component/SVG/MathML/void tiers from config.go.
// Defaults match markup_fmt's config.rs (every field there is an
// `Option<bool>` that's None out of the box): void HTML elements and
// components self-close by default; ordinary HTML elements don't.
func resolveSelfClosing(tagName string, void bool, opts *config.LanguageOptions) bool {
	if isComponent(tagName) {
		return opts.ComponentSelfClosing.Resolve(true)
	}
	if svgTags[strings.ToLower(tagName)] {
		return opts.SVGSelfClosing.Resolve(true)
	}
	if mathMLTags[strings.ToLower(tagName)] {
		return opts.MathMLSelfClosing.Resolve(true)
	}
	if void {
		return opts.HTMLVoidSelfClosing.Resolve(true)
	}
	return opts.HTMLNormalSelfClosing.Resolve(false)
}

var mathMLTags = map[string]bool{
	"math": true, "mi": true, "mn": true, "mo": true, "ms": true, "mtext": true,
	"mrow": true, "mfrac": true, "msqrt": true, "mroot": true, "mtable": true,
	"mtr": true, "mtd": true,
}

// vueComponentName applies the configured pascal/kebab conversion, via
// strcase, mirroring helpers.rs's pascal2kebab/kebab2pascal.
func vueComponentName(name string, mode config.VueComponentCase) string {
	switch mode {
	case config.VueComponentPascalCase:
		return strcase.ToCamel(name)
	case config.VueComponentKebabCase:
		return strcase.ToKebab(name)
	default:
		return name
	}
}
