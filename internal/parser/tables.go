package parser

import (
	"strings"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"golang.org/x/net/html/atom"
)

// voidElements is the fixed HTML void-element set from spec.md §4.1/§4.3,
// used verbatim for dialects outside the HTML family (where tag lookup
// can't go through golang.org/x/net/html/atom's ASCII-lowercase table).
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true, "param": true,
}

// rawTextTags switch the parser into verbatim-scan mode for their body.
var rawTextTags = map[string]bool{
	"script": true, "style": true,
}

// whitespacePreservingRawTags (textarea, pre) are scanned as raw text just
// like <script>/<style>: isRawTextTag includes them, so their body becomes a
// single verbatim TextNode and template interpolation inside is not parsed.
// Unlike script/style, their content is not a candidate for the external
// formatter (see isScriptOrStyle).
var whitespacePreservingRawTags = map[string]bool{
	"textarea": true, "pre": true,
}

// voidAtoms/rawTextAtoms/whitespacePreservingAtoms mirror the maps above
// but keyed by golang.org/x/net/html/atom's canonical HTML tag table,
// which the HTML-family case-insensitive path below uses instead of a
// per-call case-folding scan.
var voidAtoms = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true, atom.Param: true,
}

var rawTextAtoms = map[atom.Atom]bool{atom.Script: true, atom.Style: true}

var whitespacePreservingAtoms = map[atom.Atom]bool{atom.Textarea: true, atom.Pre: true}

// lookupAtom resolves tagName to its canonical atom, case-insensitively;
// zero means tagName isn't one of the HTML tags atom.go knows about (e.g.
// a custom element or component name).
func lookupAtom(tagName string) atom.Atom {
	return atom.Lookup([]byte(strings.ToLower(tagName)))
}

// isHTMLFamily reports whether d uses ASCII-case-insensitive tag-name
// comparison, per spec.md §4.1 ("For HTML-family dialects, tag-name
// comparison is ASCII-case-insensitive; for XML it is strict") generalized
// to every non-component dialect the same way helpers.rs groups them.
func isHTMLFamily(d ast.Dialect) bool {
	switch d {
	case ast.Html, ast.Jinja, ast.Vento, ast.Mustache, ast.Angular:
		return true
	default:
		return false
	}
}

func tagNameEqual(a, b string, d ast.Dialect) bool {
	if isHTMLFamily(d) {
		return asciiEqualFold(a, b)
	}
	return a == b
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func isVoidElement(tagName string, d ast.Dialect) bool {
	if d == ast.Xml {
		return false
	}
	if isHTMLFamily(d) {
		return voidAtoms[lookupAtom(tagName)]
	}
	return voidElements[tagName]
}

func isRawTextTag(tagName string, d ast.Dialect) bool {
	if d == ast.Xml {
		return false
	}
	if isHTMLFamily(d) {
		a := lookupAtom(tagName)
		return rawTextAtoms[a] || whitespacePreservingAtoms[a]
	}
	return rawTextTags[tagName] || whitespacePreservingRawTags[tagName]
}

// isScriptOrStyle distinguishes the subset of raw-text tags that get
// handed to the external formatter (script/style) from the subset that is
// only raw-scanned for whitespace-preservation purposes (textarea/pre).
func isScriptOrStyle(tagName string, d ast.Dialect) bool {
	if isHTMLFamily(d) {
		return rawTextAtoms[lookupAtom(tagName)]
	}
	return rawTextTags[tagName]
}
