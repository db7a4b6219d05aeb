// Package markupfmt formats Vue/Svelte/Astro/Angular/Jinja/Vento/Mustache/
// plain HTML and XML source, delegating embedded script/style/expression
// bodies to a caller-supplied ExternalFormatter.
package markupfmt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/config"
	"github.com/g-plane/markupfmt-go/internal/doc"
	"github.com/g-plane/markupfmt-go/internal/parser"
	"github.com/g-plane/markupfmt-go/internal/printer"
)

// Dialect re-exports the parser's closed set of markup languages so callers
// never need to import internal/ast directly.
type Dialect = ast.Dialect

const (
	Html     = ast.Html
	Vue      = ast.Vue
	Svelte   = ast.Svelte
	Astro    = ast.Astro
	Angular  = ast.Angular
	Jinja    = ast.Jinja
	Vento    = ast.Vento
	Mustache = ast.Mustache
	Xml      = ast.Xml
)

// Options is the full, flattened option record accepted by FormatText.
type Options = config.FormatOptions

func DefaultOptions() Options { return config.DefaultFormatOptions() }

// DialectFromExtension maps a file extension (".vue", "vue", or a full
// path) to its Dialect, defaulting to Html for anything unrecognized.
func DialectFromExtension(pathOrExt string) Dialect {
	if strings.HasSuffix(strings.ToLower(pathOrExt), ".component.html") {
		return Angular
	}
	ext := strings.TrimPrefix(filepath.Ext(pathOrExt), ".")
	if ext == "" {
		ext = strings.TrimPrefix(pathOrExt, ".")
	}
	switch strings.ToLower(ext) {
	case "vue":
		return Vue
	case "svelte":
		return Svelte
	case "astro":
		return Astro
	case "ng", "angular":
		return Angular
	case "jinja", "jinja2", "j2", "twig", "njk":
		return Jinja
	case "vto", "vento":
		return Vento
	case "mustache", "hbs":
		return Mustache
	case "xml", "svg":
		return Xml
	default:
		return Html
	}
}

// ExternalFormatter formats embedded code outside the markup grammar
// itself: script/style bodies and interpolation expressions. pathHint is a
// synthetic path such as "script.ts" or "style.scss" for language
// dispatch; printWidth mirrors the caller's configured line width.
type ExternalFormatter = printer.ExternalFormatter

// FormatError distinguishes a fatal parse failure from the non-fatal
// external-formatter failures collected while printing; the latter never
// abort formatting; Output still holds the best-effort result.
type FormatError struct {
	Syntax   error
	External []error
	Output   string
}

func (e *FormatError) Error() string {
	if e.Syntax != nil {
		return fmt.Sprintf("markupfmt: %s", e.Syntax)
	}
	return fmt.Sprintf("markupfmt: %d external formatter error(s)", len(e.External))
}

func (e *FormatError) Unwrap() error { return e.Syntax }

// FormatText parses source as dialect and renders it back out under
// options. A syntax error aborts with Output empty; external-formatter
// errors are collected onto the returned FormatError.External while still
// producing the best-effort Output using the unformatted embedded code.
func FormatText(source string, dialect Dialect, options Options, ext ExternalFormatter) (string, error) {
	root, err := parser.Parse(source, dialect)
	if err != nil {
		return "", &FormatError{Syntax: err}
	}

	if fileIgnored(root, options.Language.IgnoreFileCommentDirective) {
		return source, nil
	}

	ctx := printer.NewCtx(dialect, &options, ext, source, root.Spans)
	rendered := printer.GenRoot(root, ctx)

	lineBreak := "\n"
	if options.Layout.LineBreak == config.CRLF {
		lineBreak = "\r\n"
	}
	out := doc.Render(rendered, doc.PrintOptions{
		Width:     options.Layout.PrintWidth,
		UseTabs:   options.Layout.UseTabs,
		TabWidth:  options.Layout.IndentWidth,
		LineBreak: lineBreak,
	})

	if len(ctx.ExternalErrors) > 0 {
		return out, &FormatError{External: ctx.ExternalErrors, Output: out}
	}
	return out, nil
}

// fileIgnored reports whether the first non-whitespace node of root is a
// comment equal, after trimming, to directive — per spec.md §4.3 "Ignore
// directives", such a file is returned completely unchanged.
func fileIgnored(root *ast.Root, directive string) bool {
	if directive == "" {
		return false
	}
	for _, c := range root.Children {
		if t, ok := c.(*ast.TextNode); ok && strings.TrimSpace(t.Raw) == "" {
			continue
		}
		comment, ok := c.(*ast.Comment)
		return ok && strings.TrimSpace(comment.Raw) == directive
	}
	return false
}
