package doc

import "strings"

// PrintOptions configures Render's output. Indent (the `n` passed to
// Doc.Nest) is always a column count, matching spec.md §4.3 ("nest(n, d)
// adds n columns of indent"); UseTabs only changes how those columns are
// spelled when a line break actually happens.
type PrintOptions struct {
	Width     int
	UseTabs   bool
	TabWidth  int // columns per indent level when UseTabs is set; defaults to 2 if 0
	LineBreak string // "\n" or "\r\n"
}

func (o PrintOptions) writeIndent(sb *strings.Builder, columns int) {
	if !o.UseTabs {
		for i := 0; i < columns; i++ {
			sb.WriteByte(' ')
		}
		return
	}
	tabWidth := o.TabWidth
	if tabWidth <= 0 {
		tabWidth = 2
	}
	levels := columns / tabWidth
	for i := 0; i < levels; i++ {
		sb.WriteByte('\t')
	}
	for i := 0; i < columns%tabWidth; i++ {
		sb.WriteByte(' ')
	}
}

// mode tracks whether the group currently being rendered is flat or broken.
type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

type item struct {
	indent int
	mode   mode
	doc    Doc
}

// Render walks d and produces the final string, choosing per-Group whether
// to lay it out flat or broken based on whether the flat rendering fits
// within opts.Width starting at the current column. This is the classic
// one-pass-with-lookahead strategy: fits() does a bounded scan of the
// pending work list rather than fully rendering twice.
func Render(d Doc, opts PrintOptions) string {
	var sb strings.Builder
	column := 0
	stack := []item{{indent: 0, mode: modeBreak, doc: d}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch it.doc.kind {
		case KindText:
			sb.WriteString(it.doc.text)
			column += runeLen(it.doc.text)
		case KindConcat:
			for i := len(it.doc.children) - 1; i >= 0; i-- {
				stack = append(stack, item{indent: it.indent, mode: it.mode, doc: it.doc.children[i]})
			}
		case KindNest:
			stack = append(stack, item{indent: it.indent + it.doc.indent, mode: it.mode, doc: it.doc.children[0]})
		case KindHardLine:
			sb.WriteString(opts.LineBreak)
			opts.writeIndent(&sb, it.indent)
			column = it.indent
		case KindLineOrSpace:
			if it.mode == modeFlat {
				sb.WriteByte(' ')
				column++
			} else {
				sb.WriteString(opts.LineBreak)
				opts.writeIndent(&sb, it.indent)
				column = it.indent
			}
		case KindLineOrNil:
			if it.mode == modeFlat {
				// nothing
			} else {
				sb.WriteString(opts.LineBreak)
				opts.writeIndent(&sb, it.indent)
				column = it.indent
			}
		case KindGroup:
			inner := it.doc.children[0]
			chosen := modeFlat
			if containsHardLine(inner) || !fits(opts.Width-column, item{indent: it.indent, mode: modeFlat, doc: inner}, stack) {
				chosen = modeBreak
			}
			stack = append(stack, item{indent: it.indent, mode: chosen, doc: inner})
		}
	}

	return sb.String()
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// containsHardLine reports whether d contains a HardLine at any depth,
// nested Groups included; a group enclosing a hard line can never render
// flat.
func containsHardLine(d Doc) bool {
	switch d.kind {
	case KindHardLine:
		return true
	case KindText, KindLineOrSpace, KindLineOrNil:
		return false
	default:
		for _, c := range d.children {
			if containsHardLine(c) {
				return true
			}
		}
		return false
	}
}

// fits greedily measures whether rendering first in flat mode, followed by
// the remaining work already on the stack, stays within width columns
// before the next hard line or newline. width may go negative mid-scan;
// that's the signal to stop and report "doesn't fit".
func fits(width int, first item, rest []item) bool {
	if width < 0 {
		return false
	}
	stack := []item{first}
	restIdx := len(rest) - 1

	for width >= 0 {
		var it item
		if len(stack) > 0 {
			it = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		} else if restIdx >= 0 {
			it = rest[restIdx]
			restIdx--
		} else {
			return true
		}

		switch it.doc.kind {
		case KindText:
			width -= runeLen(it.doc.text)
		case KindConcat:
			for i := len(it.doc.children) - 1; i >= 0; i-- {
				stack = append(stack, item{indent: it.indent, mode: it.mode, doc: it.doc.children[i]})
			}
		case KindNest:
			stack = append(stack, item{indent: it.indent + it.doc.indent, mode: it.mode, doc: it.doc.children[0]})
		case KindHardLine:
			return true
		case KindLineOrSpace:
			if it.mode == modeFlat {
				width--
			} else {
				return true
			}
		case KindLineOrNil:
			if it.mode != modeFlat {
				return true
			}
		case KindGroup:
			stack = append(stack, item{indent: it.indent, mode: modeFlat, doc: it.doc.children[0]})
		}
	}
	return false
}
