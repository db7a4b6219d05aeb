package printer

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/g-plane/markupfmt-go/internal/config"
)

// unescapeQuoteEntities substitutes the three quote-producing entities
// back to literal quote characters before the printer decides which quote
// character to wrap a value in, mirroring helpers.rs's UNESCAPING_AC
// (an Aho-Corasick automaton over ["&quot;", "&#x22;", "&#x27;"]); this
// module substitutes dlclark/regexp2 for that multi-pattern scan.
var unescapingPattern = regexp2.MustCompile(`&quot;|&#x22;|&#x27;`, regexp2.IgnoreCase)

func unescapeQuoteEntities(s string) string {
	out, err := unescapingPattern.ReplaceFunc(s, func(m regexp2.Match) string {
		switch strings.ToLower(m.String()) {
		case "&quot;", "&#x22;":
			return `"`
		default:
			return `'`
		}
	}, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// quoteAttrValue wraps value in the configured quote character, switching
// to the other quote when value contains the preferred one but not the
// other, matching how prettier/markup-fmt resolve attribute quoting.
func quoteAttrValue(value string, quotes config.Quotes) string {
	unescaped := unescapeQuoteEntities(value)
	preferred := byte('"')
	other := byte('\'')
	if quotes == config.QuotesSingle {
		preferred, other = other, preferred
	}
	if strings.IndexByte(unescaped, preferred) >= 0 && strings.IndexByte(unescaped, other) < 0 {
		return string(other) + unescaped + string(other)
	}
	return string(preferred) + unescaped + string(preferred)
}
