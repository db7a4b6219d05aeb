package main

import (
	"bytes"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// defaultExternalFormatter is the CLI's built-in ExternalFormatter: it
// re-serializes CSS/SCSS/LESS bodies through tdewolff/parse's streaming
// grammar (collapsing redundant whitespace the same pass scope-css.go in
// the compiler this tool is descended from uses to walk style bodies) and
// passes everything else through unchanged. A caller that wants real
// TypeScript/JavaScript formatting supplies its own ExternalFormatter to
// markupfmt.FormatText; this default exists so the CLI works standalone.
func defaultExternalFormatter(pathHint, code string, printWidth int) (string, error) {
	if !isStylesheetPath(pathHint) {
		return code, nil
	}
	return normalizeCSS(code)
}

func isStylesheetPath(pathHint string) bool {
	for _, ext := range []string{".css", ".scss", ".less"} {
		if strings.HasSuffix(pathHint, ext) {
			return true
		}
	}
	return false
}

// normalizeCSS re-emits code token by token, collapsing the whitespace
// between grammar tokens to a single space/newline so minified or
// inconsistently-indented embedded stylesheets come out uniform.
func normalizeCSS(code string) (string, error) {
	p := css.NewParser(bytes.NewBufferString(code), false)
	var out strings.Builder
	indent := 0

	writeIndent := func() {
		out.WriteByte('\n')
		for i := 0; i < indent; i++ {
			out.WriteString("  ")
		}
	}

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if len(data) > 0 {
				out.Write(data)
			}
			return out.String(), nil
		case css.CommentGrammar:
			out.Write(data)
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			out.Write(data)
			for _, v := range p.Values() {
				out.Write(v.Data)
			}
			out.WriteString(" {")
			indent++
			writeIndent()
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			indent--
			writeIndent()
			out.WriteString("}")
			writeIndent()
		case css.DeclarationGrammar:
			out.Write(data)
			out.WriteString(": ")
			for _, v := range p.Values() {
				out.Write(v.Data)
			}
			out.WriteString(";")
			writeIndent()
		case css.AtRuleGrammar, css.QualifiedRuleGrammar:
			out.Write(data)
			for _, v := range p.Values() {
				out.Write(v.Data)
			}
			out.WriteString(";")
			writeIndent()
		default:
			out.Write(data)
		}
	}
}
