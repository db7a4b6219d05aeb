package parser

import (
	"testing"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"gotest.tools/v3/assert"
)

func TestParseHTMLElement(t *testing.T) {
	root, err := Parse(`<div id="a" class='b'>hello <br> world</div>`, ast.Html)
	assert.NilError(t, err)
	assert.Equal(t, len(root.Children), 1)

	el, ok := root.Children[0].(*ast.Element)
	assert.Assert(t, ok)
	assert.Equal(t, el.TagName, "div")
	assert.Equal(t, len(el.Attrs), 2)
	assert.Equal(t, len(el.Children), 3)

	br, ok := el.Children[1].(*ast.Element)
	assert.Assert(t, ok)
	assert.Equal(t, br.TagName, "br")
	assert.Assert(t, br.VoidElement)
}

func TestParseHTMLCaseInsensitiveCloseTag(t *testing.T) {
	_, err := Parse(`<DIV>x</div>`, ast.Html)
	assert.NilError(t, err)
}

func TestParseXMLCaseSensitiveCloseTagFails(t *testing.T) {
	_, err := Parse(`<Item>x</item>`, ast.Xml)
	assert.ErrorContains(t, err, "syntax error")
}

func TestParseDoctypeAndComment(t *testing.T) {
	root, err := Parse(`<!DOCTYPE html><!-- hi --><p></p>`, ast.Html)
	assert.NilError(t, err)
	assert.Equal(t, len(root.Children), 3)

	dt, ok := root.Children[0].(*ast.Doctype)
	assert.Assert(t, ok)
	assert.Equal(t, dt.Keyword, "DOCTYPE")
	assert.Equal(t, dt.Value, "html")

	cm, ok := root.Children[1].(*ast.Comment)
	assert.Assert(t, ok)
	assert.Equal(t, cm.Raw, " hi ")
}

func TestParseScriptIsRawText(t *testing.T) {
	root, err := Parse("<script>const a = '</b>';</script>", ast.Html)
	assert.NilError(t, err)
	el := root.Children[0].(*ast.Element)
	assert.Equal(t, len(el.Children), 1)
	text := el.Children[0].(*ast.TextNode)
	assert.Equal(t, text.Raw, "const a = '</b>';")
}

func TestParseVueInterpolationAndDirectives(t *testing.T) {
	root, err := Parse(`<div v-if="show" :class="cls" @click="onClick">{{ msg }}</div>`, ast.Vue)
	assert.NilError(t, err)
	el := root.Children[0].(*ast.Element)
	assert.Equal(t, len(el.Attrs), 3)

	vif, ok := el.Attrs[0].(*ast.VueDirective)
	assert.Assert(t, ok)
	assert.Equal(t, vif.Name, "if")
	assert.Assert(t, vif.Value != nil && *vif.Value == "show")

	bind, ok := el.Attrs[1].(*ast.VueDirective)
	assert.Assert(t, ok)
	assert.Equal(t, bind.Name, ":")
	assert.Assert(t, bind.ArgAndModifiers != nil && *bind.ArgAndModifiers == "class")

	interp, ok := el.Children[0].(*ast.VueInterpolation)
	assert.Assert(t, ok)
	assert.Equal(t, interp.Expr, " msg ")
}

func TestParseSvelteIfElseIfElse(t *testing.T) {
	src := `{#if a}A{:else if b}B{:else}C{/if}`
	root, err := Parse(src, ast.Svelte)
	assert.NilError(t, err)
	assert.Equal(t, len(root.Children), 1)

	block, ok := root.Children[0].(*ast.SvelteIfBlock)
	assert.Assert(t, ok)
	assert.Equal(t, block.Expr, "a")
	assert.Equal(t, len(block.ElseIfBlocks), 1)
	assert.Equal(t, block.ElseIfBlocks[0].Expr, "b")
	assert.Equal(t, len(block.ElseChildren), 1)
}

func TestParseSvelteEachWithIndexAndKey(t *testing.T) {
	src := `{#each items as item, i (item.id)}{item}{/each}`
	root, err := Parse(src, ast.Svelte)
	assert.NilError(t, err)
	block := root.Children[0].(*ast.SvelteEachBlock)
	assert.Equal(t, block.Expr, "items")
	assert.Equal(t, block.Binding, "item")
	assert.Assert(t, block.Index != nil && *block.Index == "i")
	assert.Assert(t, block.Key != nil && *block.Key == "item.id")
}

func TestParseSvelteAwaitThenCatch(t *testing.T) {
	src := `{#await promise}pending{:then value}success{:catch err}error{/await}`
	root, err := Parse(src, ast.Svelte)
	assert.NilError(t, err)
	block := root.Children[0].(*ast.SvelteAwaitBlock)
	assert.Equal(t, block.Expr, "promise")
	assert.Assert(t, block.ThenBinding == nil)
	assert.Assert(t, block.ThenBlock != nil)
	assert.Equal(t, *block.ThenBlock.Binding, "value")
	assert.Assert(t, block.CatchBlock != nil)
	assert.Equal(t, *block.CatchBlock.Binding, "err")
}

func TestParseSvelteAtTag(t *testing.T) {
	root, err := Parse(`{@html rawContent}`, ast.Svelte)
	assert.NilError(t, err)
	tag := root.Children[0].(*ast.SvelteAtTag)
	assert.Equal(t, tag.Name, "html")
	assert.Equal(t, tag.Expr, "rawContent")
}

func TestParseAstroFrontMatterAndExpr(t *testing.T) {
	src := "---\nconst x = 1;\n---\n<div>{items.map(i => <span>{i}</span>)}</div>"
	root, err := Parse(src, ast.Astro)
	assert.NilError(t, err)
	fm, ok := root.Children[0].(*ast.FrontMatter)
	assert.Assert(t, ok)
	assert.Equal(t, fm.Raw, "const x = 1;\n")

	el := root.Children[1].(*ast.Element)
	expr := el.Children[0].(*ast.AstroExpr)
	assert.Assert(t, len(expr.Children) >= 2)
	assert.Assert(t, expr.Children[0].Script != nil)
	assert.Assert(t, expr.Children[1].Template != nil)
}

func TestParseAngularInterpolationAndIf(t *testing.T) {
	src := `<p>{{ name }}</p>@if (cond; as ref) {<p>yes</p>} @else if (other) {<p>maybe</p>} @else {<p>no</p>}`
	root, err := Parse(src, ast.Angular)
	assert.NilError(t, err)
	p := root.Children[0].(*ast.Element)
	interp := p.Children[0].(*ast.AngularInterpolation)
	assert.Equal(t, interp.Expr, " name ")

	ifBlock := root.Children[1].(*ast.AngularIf)
	assert.Equal(t, ifBlock.Expr, "cond")
	assert.Assert(t, ifBlock.Reference != nil && *ifBlock.Reference == "ref")
	assert.Equal(t, len(ifBlock.ElseIfBlocks), 1)
	assert.Equal(t, len(ifBlock.ElseChildren), 1)
}

func TestParseJinjaIfElifElse(t *testing.T) {
	src := `{% if a %}A{% elif b %}B{% else %}C{% endif %}`
	root, err := Parse(src, ast.Jinja)
	assert.NilError(t, err)
	block := root.Children[0].(*ast.JinjaBlock)
	assert.Assert(t, len(block.Body) > 0)
	assert.Equal(t, block.Body[0].Tag.Content, "if a")
}

func TestParseJinjaInlineSetIsNotBlock(t *testing.T) {
	root, err := Parse(`{% set x = 1 %}`, ast.Jinja)
	assert.NilError(t, err)
	tag, ok := root.Children[0].(*ast.JinjaTag)
	assert.Assert(t, ok)
	assert.Equal(t, tag.Content, "set x = 1")
}

func TestParseJinjaBlockSetIsBlock(t *testing.T) {
	root, err := Parse(`{% set x %}value{% endset %}`, ast.Jinja)
	assert.NilError(t, err)
	_, ok := root.Children[0].(*ast.JinjaBlock)
	assert.Assert(t, ok)
}

func TestParseJinjaCommentAndInterpolation(t *testing.T) {
	root, err := Parse(`{# note #}{{ value }}`, ast.Jinja)
	assert.NilError(t, err)
	cm := root.Children[0].(*ast.JinjaComment)
	assert.Equal(t, cm.Raw, " note ")
	interp := root.Children[1].(*ast.JinjaInterpolation)
	assert.Equal(t, interp.Expr, " value ")
}

func TestParseVentoIfBlock(t *testing.T) {
	src := `{{ if a }}A{{ else }}B{{ /if }}`
	root, err := Parse(src, ast.Vento)
	assert.NilError(t, err)
	block, ok := root.Children[0].(*ast.VentoBlock)
	assert.Assert(t, ok)
	assert.Equal(t, block.Body[0].Tag.Tag, "if a")
}

func TestParseVentoEvalAndComment(t *testing.T) {
	root, err := Parse(`{{ set x = 1 }}{{# note #}}`, ast.Vento)
	assert.NilError(t, err)
	evalNode, ok := root.Children[0].(*ast.VentoEval)
	assert.Assert(t, ok)
	assert.Equal(t, evalNode.Raw, "set x = 1")
	cm := root.Children[1].(*ast.VentoComment)
	assert.Equal(t, cm.Raw, " note ")
}

func TestParseMustacheEscapedAndUnescaped(t *testing.T) {
	root, err := Parse(`{{ name }}{{{ rawHtml }}}`, ast.Mustache)
	assert.NilError(t, err)
	escaped := root.Children[0].(*ast.MustacheInterpolation)
	assert.Assert(t, escaped.Escaped)
	unescaped := root.Children[1].(*ast.MustacheInterpolation)
	assert.Assert(t, !unescaped.Escaped)
}

func TestParseUnterminatedElementIsError(t *testing.T) {
	_, err := Parse(`<div><span></div>`, ast.Html)
	assert.ErrorContains(t, err, "syntax error")
}
