package parser

import (
	"fmt"

	"github.com/g-plane/markupfmt-go/internal/loc"
)

// SyntaxErrorKind is the closed taxonomy of parse failures from spec.md §4.1.
type SyntaxErrorKind uint8

const (
	ExpectAttrName SyntaxErrorKind = iota
	ExpectAttrValue
	ExpectCloseTag
	ExpectComment
	ExpectElement
	ExpectIdentifier
	ExpectSelfCloseTag
	ExpectSvelteAttr
	ExpectSvelteBlockEnd
	ExpectSvelteIfBlock
	ExpectSvelteInterpolation
	ExpectTagName
	ExpectTextNode
	ExpectVueDirective
	ExpectVueInterpolation
	UnknownSvelteBlock
	ExpectBlockEnd
	ExpectAngularIf
	ExpectJinjaTag
	ExpectVentoTag
)

var syntaxErrorReasons = map[SyntaxErrorKind]string{
	ExpectAttrName:            "expect attribute name",
	ExpectAttrValue:           "expect attribute value",
	ExpectCloseTag:            "expect close tag",
	ExpectComment:             "expect comment",
	ExpectElement:             "expect element",
	ExpectIdentifier:          "expect identifier",
	ExpectSelfCloseTag:        "expect self close tag",
	ExpectSvelteAttr:          "expect Svelte attribute",
	ExpectSvelteBlockEnd:      "expect end of Svelte block",
	ExpectSvelteIfBlock:       "expect Svelte if block",
	ExpectSvelteInterpolation: "expect Svelte interpolation",
	ExpectTagName:             "expect tag name",
	ExpectTextNode:            "expect text node",
	ExpectVueDirective:        "expect Vue directive",
	ExpectVueInterpolation:    "expect Vue interpolation",
	UnknownSvelteBlock:        "unknown Svelte block",
	ExpectBlockEnd:            "expect end of block",
	ExpectAngularIf:           "expect Angular @if block",
	ExpectJinjaTag:            "expect Jinja tag",
	ExpectVentoTag:            "expect Vento tag",
}

// SyntaxError is a fatal parse failure at a specific byte offset. Source
// is carried alongside Pos so Error() can report a line:column position
// instead of a raw byte offset.
type SyntaxError struct {
	Kind   SyntaxErrorKind
	Pos    int
	Source string
}

func (e *SyntaxError) Error() string {
	reason, ok := syntaxErrorReasons[e.Kind]
	if !ok {
		reason = "syntax error"
	}
	line, col := loc.LineCol(e.Source, e.Pos)
	return fmt.Sprintf("syntax error '%s' at line %d, column %d", reason, line, col)
}

func newErr(kind SyntaxErrorKind, pos int, source string) *SyntaxError {
	return &SyntaxError{Kind: kind, Pos: pos, Source: source}
}
