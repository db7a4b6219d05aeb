package ast

import "strings"

// Dialect is the closed set of markup languages the parser understands.
type Dialect uint8

const (
	Html Dialect = iota
	Vue
	Svelte
	Astro
	Angular
	Jinja
	Vento
	Mustache
	Xml
)

func (d Dialect) String() string {
	switch d {
	case Html:
		return "html"
	case Vue:
		return "vue"
	case Svelte:
		return "svelte"
	case Astro:
		return "astro"
	case Angular:
		return "angular"
	case Jinja:
		return "jinja"
	case Vento:
		return "vento"
	case Mustache:
		return "mustache"
	case Xml:
		return "xml"
	default:
		return "unknown"
	}
}

// HasTemplateInterpolation reports whether s contains an interpolation
// delimiter recognized by d. Nothing in the parser or printer calls it.
func HasTemplateInterpolation(s string, d Dialect) bool {
	switch d {
	case Html, Xml:
		return false
	case Svelte, Astro:
		return strings.ContainsRune(s, '{')
	case Vue, Angular:
		return strings.Contains(s, "{{")
	case Jinja, Vento, Mustache:
		return strings.Contains(s, "{{") || strings.Contains(s, "{%")
	default:
		return false
	}
}
