// Package ast defines the borrowed tree produced by internal/parser.
//
// Every node holds string slices into the original source rather than
// copies: Go strings already alias their backing array on reslice, so this
// falls out of using `string` fields populated by `source[start:end]`
// instead of concatenation. Nodes are read-only once the parser returns
// them; nothing downstream mutates the tree.
package ast

// Node is implemented by every tree element. Kind is a closed discriminant
// so printer code can type-switch exhaustively, matching the tagged-union
// shape the parser's source dialect favors over polymorphism.
type Node interface {
	Kind() NodeKind
}

type NodeKind uint8

const (
	KindElement NodeKind = iota
	KindTextNode
	KindComment
	KindDoctype
	KindFrontMatter
	KindVueInterpolation
	KindAngularInterpolation
	KindSvelteInterpolation
	KindVentoInterpolation
	KindSvelteIfBlock
	KindSvelteEachBlock
	KindSvelteAwaitBlock
	KindSvelteKeyBlock
	KindSvelteAtTag
	KindAngularIf
	KindAstroExpr
	KindJinjaBlock
	KindJinjaTag
	KindJinjaInterpolation
	KindJinjaComment
	KindVentoBlock
	KindVentoTag
	KindVentoEval
	KindVentoComment
	KindMustacheInterpolation
	KindRoot
)

// Span is a node's half-open byte range [Start, End) in the original
// source, recorded for every node parseNode returns. The printer uses it
// to re-emit a node's exact source text when an ignore-comment directive
// precedes it, instead of generating a fresh Doc for it.
type Span struct {
	Start int
	End   int
}

// Root is the top-level container returned by Parse. Spans maps every
// node parseNode produced (at any depth) to its source byte range. Spans is
// left out of JSON output: its keys are nodes, not strings.
type Root struct {
	Children []Node
	Spans    map[Node]Span `json:"-"`
}

func (*Root) Kind() NodeKind { return KindRoot }

// AttributeKind discriminates the Attribute sub-union.
type AttributeKind uint8

const (
	AttrNative AttributeKind = iota
	AttrVueDirective
	AttrSvelte
	AttrAstro
)

// Attribute is implemented by each attribute variant.
type Attribute interface {
	AttrKind() AttributeKind
}

// NativeAttribute is a plain HTML/XML attribute: name or name="value".
type NativeAttribute struct {
	Name  string
	Value *string
}

func (*NativeAttribute) AttrKind() AttributeKind { return AttrNative }

// VueDirective covers v-bind/v-on/v-slot/v-for/etc., including the `:`,
// `@`, `#` shorthand spellings (Name holds the shorthand marker itself in
// that case).
type VueDirective struct {
	Name            string
	ArgAndModifiers *string
	Value           *string
}

func (*VueDirective) AttrKind() AttributeKind { return AttrVueDirective }

// SvelteAttribute is `name={expr}`, optionally with Name == nil for the
// `{expr}` shorthand form (name is bound by the expression's identifier).
type SvelteAttribute struct {
	Name *string
	Expr string
}

func (*SvelteAttribute) AttrKind() AttributeKind { return AttrSvelte }

// AstroAttribute is `{name}` shorthand or a full expression attribute.
type AstroAttribute struct {
	Name *string
	Expr string
}

func (*AstroAttribute) AttrKind() AttributeKind { return AttrAstro }

// Element is a tag, its attributes, and its children.
type Element struct {
	TagName           string
	Attrs             []Attribute
	FirstAttrSameLine bool
	Children          []Node
	SelfClosing       bool
	VoidElement       bool
}

func (*Element) Kind() NodeKind { return KindElement }

// TextNode is raw text between tags. LineBreaks counts '\n' bytes in Raw,
// used by the printer to tell a single soft wrap from a paragraph break.
type TextNode struct {
	Raw        string
	LineBreaks int
}

func (*TextNode) Kind() NodeKind { return KindTextNode }

type Comment struct {
	Raw string
}

func (*Comment) Kind() NodeKind { return KindComment }

type Doctype struct {
	Keyword string
	Value   string
}

func (*Doctype) Kind() NodeKind { return KindDoctype }

type FrontMatter struct {
	Raw string
}

func (*FrontMatter) Kind() NodeKind { return KindFrontMatter }

type VueInterpolation struct{ Expr string }

func (*VueInterpolation) Kind() NodeKind { return KindVueInterpolation }

type AngularInterpolation struct{ Expr string }

func (*AngularInterpolation) Kind() NodeKind { return KindAngularInterpolation }

type SvelteInterpolation struct{ Expr string }

func (*SvelteInterpolation) Kind() NodeKind { return KindSvelteInterpolation }

type VentoInterpolation struct{ Expr string }

func (*VentoInterpolation) Kind() NodeKind { return KindVentoInterpolation }

// MustacheInterpolation is `{{ expr }}` (Escaped true) or the unescaped
// `{{{ expr }}}` triple-mustache form.
type MustacheInterpolation struct {
	Expr    string
	Escaped bool
}

func (*MustacheInterpolation) Kind() NodeKind { return KindMustacheInterpolation }

type SvelteElseIfBlock struct {
	Expr     string
	Children []Node
}

type SvelteIfBlock struct {
	Expr          string
	Children      []Node
	ElseIfBlocks  []SvelteElseIfBlock
	ElseChildren  []Node // nil when absent
}

func (*SvelteIfBlock) Kind() NodeKind { return KindSvelteIfBlock }

type SvelteEachBlock struct {
	Expr         string
	Binding      string
	Index        *string
	Key          *string
	Children     []Node
	ElseChildren []Node // nil when absent
}

func (*SvelteEachBlock) Kind() NodeKind { return KindSvelteEachBlock }

type SvelteThenBlock struct {
	Binding  *string
	Children []Node
}

type SvelteCatchBlock struct {
	Binding  *string
	Children []Node
}

type SvelteAwaitBlock struct {
	Expr         string
	ThenBinding  *string
	CatchBinding *string
	Children     []Node
	ThenBlock    *SvelteThenBlock
	CatchBlock   *SvelteCatchBlock
}

func (*SvelteAwaitBlock) Kind() NodeKind { return KindSvelteAwaitBlock }

type SvelteKeyBlock struct {
	Expr     string
	Children []Node
}

func (*SvelteKeyBlock) Kind() NodeKind { return KindSvelteKeyBlock }

// SvelteAtTag covers {@html expr}, {@const expr}, {@debug expr}.
type SvelteAtTag struct {
	Name string
	Expr string
}

func (*SvelteAtTag) Kind() NodeKind { return KindSvelteAtTag }

type AngularElseIf struct {
	Expr      string
	Reference *string
	Children  []Node
}

type AngularIf struct {
	Expr         string
	Reference    *string
	Children     []Node
	ElseIfBlocks []AngularElseIf
	ElseChildren []Node // nil when absent
}

func (*AngularIf) Kind() NodeKind { return KindAngularIf }

// AstroExprChild is a Script (raw JS/TS slice) or a Template (nested
// markup), interleaved inside `{...}` Astro expressions.
type AstroExprChild struct {
	Script   *string
	Template []Node
}

type AstroExpr struct {
	Children []AstroExprChild
}

func (*AstroExpr) Kind() NodeKind { return KindAstroExpr }

// JinjaTagOrChildren is either a bare {% tag %} or a nested child list,
// used to build up the body of a JinjaBlock ({% if %}...{% elif %}...{% endif %}).
type JinjaTagOrChildren struct {
	Tag      *JinjaTag
	Children []Node
}

type JinjaBlock struct {
	Body []JinjaTagOrChildren
}

func (*JinjaBlock) Kind() NodeKind { return KindJinjaBlock }

// JinjaTag is a single {% ... %} marker (if/elif/else/endif/for/endfor/...).
type JinjaTag struct {
	Content string
}

func (*JinjaTag) Kind() NodeKind { return KindJinjaTag }

type JinjaInterpolation struct{ Expr string }

func (*JinjaInterpolation) Kind() NodeKind { return KindJinjaInterpolation }

type JinjaComment struct{ Raw string }

func (*JinjaComment) Kind() NodeKind { return KindJinjaComment }

// VentoTag is a single {{ tag ... }} or {{> partial}} marker.
type VentoTag struct {
	Tag string
}

func (*VentoTag) Kind() NodeKind { return KindVentoTag }

type VentoTagOrChildren struct {
	Tag      *VentoTag
	Children []Node
}

type VentoBlock struct {
	Body []VentoTagOrChildren
}

func (*VentoBlock) Kind() NodeKind { return KindVentoBlock }

// VentoEval is a `{{ stmt }}` that doesn't interpolate (e.g. assignments).
type VentoEval struct{ Raw string }

func (*VentoEval) Kind() NodeKind { return KindVentoEval }

type VentoComment struct{ Raw string }

func (*VentoComment) Kind() NodeKind { return KindVentoComment }
