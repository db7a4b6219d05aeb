// Package config holds the option record threaded through formatting: how
// wide a line can be, which quote style to prefer, how each dialect's
// shorthand attributes should be spelled. Deserializing this from an
// on-disk config file is the host application's job (see spec §1); this
// package only defines the record and its defaults.
package config

// LineBreak selects the line terminator written to the output.
type LineBreak uint8

const (
	LF LineBreak = iota
	CRLF
)

func (lb LineBreak) String() string {
	if lb == CRLF {
		return "\r\n"
	}
	return "\n"
}

// LayoutOptions controls whitespace-insensitive layout: indentation,
// wrap width, line endings.
type LayoutOptions struct {
	PrintWidth  int
	UseTabs     bool
	IndentWidth int
	LineBreak   LineBreak
}

func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		PrintWidth:  80,
		UseTabs:     false,
		IndentWidth: 2,
		LineBreak:   LF,
	}
}

type Quotes uint8

const (
	QuotesDouble Quotes = iota
	QuotesSingle
)

type ClosingTagLineBreakForEmpty uint8

const (
	ClosingTagAlways ClosingTagLineBreakForEmpty = iota
	ClosingTagFit
	ClosingTagNever
)

type WhitespaceSensitivity uint8

const (
	WhitespaceCSS WhitespaceSensitivity = iota
	WhitespaceStrict
	WhitespaceIgnore
)

type DoctypeKeywordCase uint8

const (
	DoctypeIgnore DoctypeKeywordCase = iota
	DoctypeUpper
	DoctypeLower
)

type VBindStyle uint8

const (
	VBindShort VBindStyle = iota
	VBindLong
)

type VOnStyle uint8

const (
	VOnShort VOnStyle = iota
	VOnLong
)

type VForDelimiterStyle uint8

const (
	VForIn VForDelimiterStyle = iota
	VForOf
)

type VSlotStyle uint8

const (
	VSlotShort VSlotStyle = iota
	VSlotLong
	VSlotVSlot
)

type VueComponentCase uint8

const (
	VueComponentIgnore VueComponentCase = iota
	VueComponentPascalCase
	VueComponentKebabCase
)

type ScriptFormatter uint8

const (
	ScriptFormatterNone ScriptFormatter = iota
	ScriptFormatterDprint
	ScriptFormatterBiome
)

// TriState distinguishes "inherit the dialect default" (Unset) from an
// explicit on/off, matching the Rust `Option<bool>` per-tag-class overrides.
type TriState uint8

const (
	Unset TriState = iota
	On
	Off
)

func (t TriState) Resolve(fallback bool) bool {
	switch t {
	case On:
		return true
	case Off:
		return false
	default:
		return fallback
	}
}

// LanguageOptions controls dialect-specific syntax choices. The zero value
// is not the default record: DefaultLanguageOptions returns the defaults
// markup-fmt ships.
type LanguageOptions struct {
	Quotes         Quotes
	FormatComments bool

	ScriptIndent       bool
	HTMLScriptIndent   TriState
	VueScriptIndent    TriState
	SvelteScriptIndent TriState
	AstroScriptIndent  TriState

	StyleIndent       bool
	HTMLStyleIndent   TriState
	VueStyleIndent    TriState
	SvelteStyleIndent TriState
	AstroStyleIndent  TriState

	ClosingBracketSameLine       bool
	ClosingTagLineBreakForEmpty  ClosingTagLineBreakForEmpty
	MaxAttrsPerLine              int // 0 means unset/no limit
	PreferAttrsSingleLine        bool
	SingleAttrSameLine           bool

	HTMLNormalSelfClosing TriState
	HTMLVoidSelfClosing   TriState
	ComponentSelfClosing  TriState
	SVGSelfClosing        TriState
	MathMLSelfClosing     TriState

	WhitespaceSensitivity          WhitespaceSensitivity
	ComponentWhitespaceSensitivity *WhitespaceSensitivity

	DoctypeKeywordCase DoctypeKeywordCase

	VBindStyle             *VBindStyle
	VOnStyle               *VOnStyle
	VForDelimiterStyle     *VForDelimiterStyle
	VSlotStyle             *VSlotStyle
	ComponentVSlotStyle    *VSlotStyle
	DefaultVSlotStyle      *VSlotStyle
	NamedVSlotStyle        *VSlotStyle
	VBindSameNameShortHand *bool
	VueComponentCase       VueComponentCase

	StrictSvelteAttr         bool
	SvelteAttrShorthand      *bool
	SvelteDirectiveShorthand *bool

	AstroAttrShorthand *bool

	AngularNextControlFlowSameLine bool

	ScriptFormatter ScriptFormatter

	IgnoreCommentDirective     string
	IgnoreFileCommentDirective string

	// HTMLParseJSExpressions is accepted for config compatibility but its
	// doc-generation behavior is an open question upstream (see spec §9);
	// it is a no-op here until that's resolved.
	HTMLParseJSExpressions bool
}

func DefaultLanguageOptions() LanguageOptions {
	return LanguageOptions{
		Quotes:                         QuotesDouble,
		FormatComments:                 false,
		ClosingTagLineBreakForEmpty:    ClosingTagFit,
		SingleAttrSameLine:             true,
		WhitespaceSensitivity:          WhitespaceCSS,
		DoctypeKeywordCase:             DoctypeUpper,
		VueComponentCase:               VueComponentIgnore,
		AngularNextControlFlowSameLine: true,
		IgnoreCommentDirective:         "markup-fmt-ignore",
		IgnoreFileCommentDirective:     "markup-fmt-ignore-file",
	}
}

// FormatOptions is the full, flattened option record accepted by FormatText.
type FormatOptions struct {
	Layout   LayoutOptions
	Language LanguageOptions
}

func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Layout:   DefaultLayoutOptions(),
		Language: DefaultLanguageOptions(),
	}
}

// ScriptIndentFor resolves the per-dialect script-indent override.
func (o *LanguageOptions) ScriptIndentFor(dialect string) bool {
	var override TriState
	switch dialect {
	case "html":
		override = o.HTMLScriptIndent
	case "vue":
		override = o.VueScriptIndent
	case "svelte":
		override = o.SvelteScriptIndent
	case "astro":
		override = o.AstroScriptIndent
	}
	return override.Resolve(o.ScriptIndent)
}

// StyleIndentFor resolves the per-dialect style-indent override.
func (o *LanguageOptions) StyleIndentFor(dialect string) bool {
	var override TriState
	switch dialect {
	case "html":
		override = o.HTMLStyleIndent
	case "vue":
		override = o.VueStyleIndent
	case "svelte":
		override = o.SvelteStyleIndent
	case "astro":
		override = o.AstroStyleIndent
	}
	return override.Resolve(o.StyleIndent)
}
