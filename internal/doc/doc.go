// Package doc implements the Wadler/Lindig-style document algebra used to
// drive pretty-printing: text, concatenation, nesting, soft/hard line
// breaks, and width-aware grouping. No off-the-shelf pretty-print backend
// ships in the corpus this module was grounded on, so this package is the
// renderer spec.md §9 asks for when one isn't otherwise available.
package doc

// Kind discriminates the small, closed set of Doc constructors.
type Kind uint8

const (
	KindText Kind = iota
	KindConcat
	KindNest
	KindLineOrSpace
	KindLineOrNil
	KindHardLine
	KindGroup
)

// Doc is an immutable node in the document algebra. Trees are built with
// the constructor functions below and combined with Concat/Append; nothing
// about a Doc mutates once built.
type Doc struct {
	kind     Kind
	text     string
	children []Doc
	indent   int
}

// Text wraps a literal string. It must not itself contain a newline; use
// Concat with HardLine to join multi-line content, or Reflow to split an
// arbitrary string on its existing line breaks.
func Text(s string) Doc { return Doc{kind: KindText, text: s} }

// Nil is the empty document, the identity element for Concat.
func Nil() Doc { return Doc{kind: KindConcat} }

// Concat sequences docs one after another.
func Concat(docs ...Doc) Doc {
	return Doc{kind: KindConcat, children: docs}
}

// Append is Concat(d, other...), useful for the fluent chains the printer
// builds up per node.
func (d Doc) Append(others ...Doc) Doc {
	children := make([]Doc, 0, len(others)+1)
	children = append(children, d)
	children = append(children, others...)
	return Doc{kind: KindConcat, children: children}
}

// Nest adds n columns of indent to every line break rendered inside d.
func (d Doc) Nest(n int) Doc {
	return Doc{kind: KindNest, indent: n, children: []Doc{d}}
}

// LineOrSpace renders as a newline+indent when its enclosing group breaks,
// or a single space when the group stays flat.
func LineOrSpace() Doc { return Doc{kind: KindLineOrSpace} }

// LineOrNil renders as a newline+indent when broken, or nothing when flat.
func LineOrNil() Doc { return Doc{kind: KindLineOrNil} }

// HardLine always renders as a newline+indent, regardless of group state,
// and forces every enclosing group to break.
func HardLine() Doc { return Doc{kind: KindHardLine} }

// Group renders d flat if it fits within the remaining print width,
// otherwise every soft line inside it (that isn't inside a nested group)
// renders broken.
func (d Doc) Group() Doc { return Doc{kind: KindGroup, children: []Doc{d}} }

// List is a convenience constructor equivalent to Concat(docs...), named
// after the corpus's own `Doc::list`.
func List(docs []Doc) Doc { return Doc{kind: KindConcat, children: docs} }

// Join interleaves sep between successive elements of docs, mirroring
// itertools::intersperse in the original printer.
func Join(docs []Doc, sep Doc) Doc {
	if len(docs) == 0 {
		return Nil()
	}
	out := make([]Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return Concat(out...)
}

// Reflow splits s on '\n' (tolerating a trailing '\r' per line) and joins
// the pieces with HardLine, for verbatim multi-line content such as
// comments and embedded script/style bodies.
func Reflow(s string) Doc {
	lines := splitLines(s)
	docs := make([]Doc, len(lines))
	for i, l := range lines {
		docs[i] = Text(l)
	}
	return Join(docs, HardLine())
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			end := i
			if end > start && s[end-1] == '\r' {
				end--
			}
			lines = append(lines, s[start:end])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// IsNil reports whether d carries no content at all (an empty Concat and
// nothing else), used by callers that want to skip appending a no-op.
func (d Doc) IsNil() bool {
	return d.kind == KindConcat && len(d.children) == 0
}
