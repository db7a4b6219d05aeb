// Package printer turns a parsed ast.Root into a internal/doc document,
// then into the final formatted string. It mirrors printer.rs's
// Ctx-threaded DocGen approach: every node-to-Doc function takes the
// shared *Ctx carrying options, the active dialect, and the external
// formatter hook for script/style/expression bodies.
package printer

import (
	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/config"
)

// ExternalFormatter formats embedded code (script/style bodies,
// interpolation expressions, type parameter lists) outside the markup
// grammar. pathHint is a synthetic extension-bearing path such as
// "script.ts" or "expr.ts", used by host formatters to pick a language.
type ExternalFormatter func(pathHint string, code string, printWidth int) (string, error)

// Ctx is threaded through every DocGen call.
type Ctx struct {
	Dialect           ast.Dialect
	Options           *config.FormatOptions
	CurrentTagName    string
	ExternalFormatter ExternalFormatter
	ExternalErrors    []error

	// Source and Spans back the ignore-comment directive (spec.md §4.3):
	// when a node must be serialized verbatim, it's re-sliced from Source
	// using its entry in Spans instead of being run through genNode.
	Source string
	Spans  map[ast.Node]ast.Span
}

func NewCtx(dialect ast.Dialect, options *config.FormatOptions, ext ExternalFormatter, source string, spans map[ast.Node]ast.Span) *Ctx {
	return &Ctx{Dialect: dialect, Options: options, ExternalFormatter: ext, Source: source, Spans: spans}
}

// formatExternal calls the external formatter, recording a non-fatal
// error and returning the original code unchanged on failure, per
// spec.md §6 ("non-fatal errors collected and surfaced as FormatError.External
// after full doc generation").
func (c *Ctx) formatExternal(pathHint, code string) string {
	if c.ExternalFormatter == nil {
		return code
	}
	out, err := c.ExternalFormatter(pathHint, code, c.Options.Layout.PrintWidth)
	if err != nil {
		c.ExternalErrors = append(c.ExternalErrors, err)
		return code
	}
	return out
}

func (c *Ctx) indentWidth() int { return c.Options.Layout.IndentWidth }
