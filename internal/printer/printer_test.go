package printer_test

import (
	"strings"
	"testing"

	markupfmt "github.com/g-plane/markupfmt-go"
	"github.com/g-plane/markupfmt-go/internal/config"
	"github.com/g-plane/markupfmt-go/internal/testutil"
	"gotest.tools/v3/assert"
)

func format(t *testing.T, source string, dialect markupfmt.Dialect, mutate func(*markupfmt.Options)) string {
	t.Helper()
	opts := markupfmt.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	out, err := markupfmt.FormatText(source, dialect, opts, nil)
	assert.NilError(t, err)
	return out
}

func TestFormatPlainElement(t *testing.T) {
	out := format(t, `<div id="a"><p>hello</p></div>`, markupfmt.Html, nil)
	testutil.MakeSnapshot(&testutil.SnapshotOptions{
		Testing:      t,
		TestCaseName: "plain element",
		Input:        `<div id="a"><p>hello</p></div>`,
		Output:       out,
		Dialect:      "html",
	})
}

func TestFormatWrapsAttrsWhenOverWidth(t *testing.T) {
	src := `<input type="text" name="username" placeholder="Enter your username here" required disabled>`
	out := format(t, src, markupfmt.Html, func(o *markupfmt.Options) {
		o.Layout.PrintWidth = 40
	})
	assert.Assert(t, containsNewline(out))
}

func TestFormatDoctypeUppercase(t *testing.T) {
	out := format(t, `<!doctype html><html></html>`, markupfmt.Html, nil)
	assert.Assert(t, containsAll(out, "<!DOCTYPE html>"))
}

func TestFormatVueShorthandBind(t *testing.T) {
	out := format(t, `<div v-bind:id="x"></div>`, markupfmt.Vue, nil)
	assert.Assert(t, containsAll(out, `:id="x"`))
}

func TestFormatVueLongFormOn(t *testing.T) {
	out := format(t, `<button @click="go"></button>`, markupfmt.Vue, func(o *markupfmt.Options) {
		style := config.VOnLong
		o.Language.VOnStyle = &style
	})
	assert.Assert(t, containsAll(out, `v-on:click="go"`))
}

func TestFormatSvelteIfBlock(t *testing.T) {
	out := format(t, `{#if cond}<p>yes</p>{:else}<p>no</p>{/if}`, markupfmt.Svelte, nil)
	assert.Assert(t, containsAll(out, "{#if", "{:else}", "{/if}"))
}

func TestFormatSelfClosingVoidElement(t *testing.T) {
	out := format(t, `<img src="a.png">`, markupfmt.Html, nil)
	assert.Equal(t, out, "<img src=\"a.png\" />\n")
}

func TestFormatSelfClosingComponent(t *testing.T) {
	out := format(t, `<MyCmp v-bind:foo="bar" v-on:x="y"/>`, markupfmt.Vue, func(o *markupfmt.Options) {
		bind := config.VBindLong
		on := config.VOnLong
		o.Language.VBindStyle = &bind
		o.Language.VOnStyle = &on
	})
	assert.Equal(t, out, "<MyCmp v-bind:foo=\"bar\" v-on:x=\"y\" />\n")
}

func TestFormatInlineShortElement(t *testing.T) {
	out := format(t, "<div><p>hi</p></div>", markupfmt.Html, nil)
	assert.Equal(t, out, "<div><p>hi</p></div>\n")
}

func TestFormatParagraphBreakSurvives(t *testing.T) {
	out := format(t, "<p>\n  one\n\n  two\n</p>", markupfmt.Html, nil)
	assert.Equal(t, out, "<p>\n  one\n  \n  two\n</p>\n")
}

func TestFormatIgnoreCommentDirective(t *testing.T) {
	src := "<!-- markup-fmt-ignore -->\n<div   class=\"a\"   ></div   >"
	out := format(t, src, markupfmt.Html, nil)
	assert.Assert(t, containsAll(out, "<!-- markup-fmt-ignore -->", `<div   class="a"   ></div   >`))
}

func containsAll(haystack string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			return false
		}
	}
	return true
}

func containsNewline(s string) bool {
	return strings.Contains(s, "\n")
}
