package doc_test

import (
	"testing"

	"github.com/g-plane/markupfmt-go/internal/doc"
	"gotest.tools/v3/assert"
)

func render(d doc.Doc, width int) string {
	return doc.Render(d, doc.PrintOptions{Width: width, LineBreak: "\n"})
}

func TestGroupFlatWhenFits(t *testing.T) {
	d := doc.Text("<div").
		Append(doc.LineOrSpace(), doc.Text(`id="x">`)).
		Group()
	assert.Equal(t, render(d, 80), `<div id="x">`)
}

func TestGroupBreaksWhenTooWide(t *testing.T) {
	d := doc.Text("<div").
		Append(doc.LineOrSpace().Nest(2), doc.Text(`id="x"`).Nest(2)).
		Group()
	assert.Equal(t, render(d, 5), "<div\n  id=\"x\"")
}

func TestHardLineForcesBreakInEnclosingGroup(t *testing.T) {
	d := doc.Concat(doc.Text("a"), doc.HardLine(), doc.Text("b")).Group()
	assert.Equal(t, render(d, 80), "a\nb")
}

func TestLineOrNilFlatIsEmpty(t *testing.T) {
	d := doc.Text("<a").Append(doc.LineOrNil(), doc.Text(">")).Group()
	assert.Equal(t, render(d, 80), "<a>")
}

func TestJoinIntersperses(t *testing.T) {
	d := doc.Join([]doc.Doc{doc.Text("a"), doc.Text("b"), doc.Text("c")}, doc.Text(","))
	assert.Equal(t, render(d, 80), "a,b,c")
}

func TestReflowPreservesLines(t *testing.T) {
	d := doc.Reflow("one\r\ntwo\nthree")
	assert.Equal(t, render(d, 80), "one\ntwo\nthree")
}

func TestNestedGroupBreaksOuterKeepsInnerFlat(t *testing.T) {
	inner := doc.Text("inner").Append(doc.LineOrSpace(), doc.Text("tail")).Group()
	outer := doc.Text("outer").Append(doc.LineOrSpace().Nest(2), inner.Nest(2)).Group()
	// flat: "outer inner tail" (16 chars) fits in 80 but not in 15.
	assert.Equal(t, render(outer, 80), "outer inner tail")
	assert.Equal(t, render(outer, 15), "outer\n  inner tail")
}

func TestUseTabsIndentsWithTabs(t *testing.T) {
	d := doc.Text("a").Append(doc.HardLine().Nest(2), doc.Text("b").Nest(2))
	got := doc.Render(d, doc.PrintOptions{Width: 80, LineBreak: "\n", UseTabs: true, TabWidth: 2})
	assert.Equal(t, got, "a\n\tb")
}
