// Package main implements the markupfmt CLI: format Vue/Svelte/Astro/
// Angular/Jinja/Vento/Mustache/HTML/XML files in place or print the result.
package main

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/diff"
	"github.com/spf13/cobra"

	markupfmt "github.com/g-plane/markupfmt-go"
	"github.com/g-plane/markupfmt-go/internal/ast"
	"github.com/g-plane/markupfmt-go/internal/parser"
)

var (
	write       bool
	showDiff    bool
	printAST    bool
	dialectFlag string
	printWidth  int
	useTabs     bool
)

func main() {
	root := &cobra.Command{
		Use:   "markupfmt [files...]",
		Short: "Format Vue, Svelte, Astro, Angular, Jinja, Vento, Mustache, HTML and XML markup",
		Long: "Format Vue, Svelte, Astro, Angular, Jinja, Vento, Mustache, HTML and XML markup.\n\n" +
			"Embedded <script>/<style> bodies and template expressions are run through a\n" +
			"default external formatter: CSS/SCSS/LESS gets its whitespace normalized via\n" +
			"a CSS tokenizer, everything else (JS/TS/JSON) passes through unchanged. A\n" +
			"--external-formatter-cmd flag for shelling out to a real JS/CSS formatter is\n" +
			"a documented extension point, not yet implemented.",
		Args: cobra.MinimumNArgs(1),
		RunE: runFormat,
	}
	root.Flags().BoolVarP(&write, "write", "w", false, "write the formatted output back to the file")
	root.Flags().BoolVar(&showDiff, "diff", false, "print a unified diff instead of the formatted output")
	root.Flags().BoolVar(&printAST, "ast", false, "print the parsed syntax tree as JSON instead of formatting")
	root.Flags().StringVar(&dialectFlag, "dialect", "", "force a dialect instead of detecting it from the file extension")
	root.Flags().IntVar(&printWidth, "print-width", 80, "wrap lines longer than this many columns")
	root.Flags().BoolVar(&useTabs, "use-tabs", false, "indent with tabs instead of spaces")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts := markupfmt.DefaultOptions()
	opts.Layout.PrintWidth = printWidth
	opts.Layout.UseTabs = useTabs

	for _, path := range args {
		if err := formatOne(path, opts); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func formatOne(path string, opts markupfmt.Options) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dialect := markupfmt.DialectFromExtension(path)
	if dialectFlag != "" {
		dialect = markupfmt.DialectFromExtension(dialectFlag)
	}

	if printAST {
		return printSyntaxTree(string(source), dialect)
	}

	formatted, err := markupfmt.FormatText(string(source), dialect, opts, defaultExternalFormatter)
	if fmtErr, ok := err.(*markupfmt.FormatError); ok {
		if fmtErr.Syntax != nil {
			return fmtErr
		}
		for _, e := range fmtErr.External {
			fmt.Fprintf(os.Stderr, "%s: external formatter: %v\n", path, e)
		}
	} else if err != nil {
		return err
	}

	switch {
	case showDiff:
		return diff.Text(path+" (original)", path+" (formatted)", string(source), formatted, os.Stdout)
	case write:
		return os.WriteFile(path, []byte(formatted), 0o644)
	default:
		_, err := os.Stdout.WriteString(formatted)
		return err
	}
}

func printSyntaxTree(source string, dialect ast.Dialect) error {
	root, err := parser.Parse(source, dialect)
	if err != nil {
		return err
	}
	return json.MarshalWrite(os.Stdout, root, jsontext.WithIndent("  "))
}
