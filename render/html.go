// Package render projects an ansiterm.Model to a display format. The
// core package deliberately has no opinion on output format (see
// ansiterm's package doc); this package provides the one concrete
// renderer: an HTML projection of the buffer.
//
// Renderer is kept separate from the core so a caller that wants a
// different projection (plain text, a terminal-UI widget, ...) can
// write one without pulling in HTML-specific machinery, and so the
// core's Model stays a trivially comparable, I/O-free value.
package render

import (
	"html"
	"strings"
	"sync"

	"github.com/phroun/ansiterm"
)

// Row is one rendered line: a row element's content, as a sequence of
// Spans, followed by a trailing newline text node per the rendering
// contract.
type Row struct {
	Spans []Span
}

// Span is one styled run within a row.
type Span struct {
	Text       string
	FontWeight string // "bold" or "normal"
	Classes    []string
}

// Document is the full rendered view of a Model: one Row per buffer
// line, in order.
type Document struct {
	Rows []Row
}

// HTML renders m into a Document: each row becomes a block element
// containing one span per chunk plus a trailing newline, each span
// carrying a font-weight style and a derived color class list.
func HTML(m ansiterm.Model) Document {
	doc := Document{Rows: make([]Row, m.RowCount())}
	for i := range doc.Rows {
		doc.Rows[i] = renderLine(m.Row(i))
	}
	return doc
}

func renderLine(line ansiterm.Line) Row {
	row := Row{Spans: make([]Span, len(line))}
	for i, chunk := range line {
		row.Spans[i] = renderChunk(chunk)
	}
	return row
}

func renderChunk(chunk ansiterm.Chunk) Span {
	weight := "normal"
	if chunk.Style.Bold {
		weight = "bold"
	}
	return Span{
		Text:       chunk.Text,
		FontWeight: weight,
		Classes:    colorClasses(chunk.Style),
	}
}

// colorClasses derives the foreground/background class list for a
// Style: inversion swaps which color plays which role, and each side
// independently contributes zero, one "ansi-bold", or one
// "ansi[-bright]-<name>[-fg|-bg]" class.
func colorClasses(s ansiterm.Style) []string {
	fg, bg := s.Foreground, s.Background
	if s.Inverted {
		fg, bg = bg, fg
	}
	var classes []string
	if c := colorClass(fg, "-fg", s.Bold); c != "" {
		classes = append(classes, c)
	}
	if c := colorClass(bg, "-bg", s.Bold); c != "" {
		classes = append(classes, c)
	}
	return classes
}

func colorClass(c *ansiterm.Color, suffix string, bold bool) string {
	switch {
	case c == nil:
		if bold {
			return "ansi-bold"
		}
		return ""
	case c.IsBright():
		return "ansi-bright-" + c.Name() + suffix
	case bold:
		return "ansi-bright-" + c.Name() + suffix
	default:
		return "ansi-" + c.Name() + suffix
	}
}

// WriteHTML writes doc as a sequence of <div class="row"> blocks, one
// <span> per chunk, HTML-escaping text content. This is one concrete
// serialization of Document; callers embedding the buffer in their own
// page markup are free to walk Document themselves instead.
func WriteHTML(sb *strings.Builder, doc Document) {
	for _, row := range doc.Rows {
		sb.WriteString(`<div class="row">`)
		for _, span := range row.Spans {
			sb.WriteString(`<span style="font-weight:`)
			sb.WriteString(span.FontWeight)
			sb.WriteString(`"`)
			if len(span.Classes) > 0 {
				sb.WriteString(` class="`)
				sb.WriteString(strings.Join(span.Classes, " "))
				sb.WriteString(`"`)
			}
			sb.WriteString(`>`)
			sb.WriteString(html.EscapeString(span.Text))
			sb.WriteString(`</span>`)
		}
		sb.WriteString("</div>\n")
	}
}

// memo caches a Document by Model buffer identity so unchanged rows are
// never re-rendered to HTML twice. Keyed by the address of each Line's
// first Chunk, which is stable across calls
// that don't touch that row since the core replaces rows wholesale
// (ansiterm.updateLine) rather than mutating them in place.
type memo struct {
	mu    sync.Mutex
	cache map[*ansiterm.Chunk]Row
}

// newMemo constructs an empty per-line render cache. A Memoizer isn't
// required for correctness -- HTML is pure -- it exists purely as a
// throughput optimization for callers re-rendering a mostly-unchanged
// buffer on every tick: identity-keyed, safe to share across calls,
// advisory only.
func newMemo() *memo {
	return &memo{cache: make(map[*ansiterm.Chunk]Row)}
}

// Memoizer renders a Model to a Document, reusing a Row's prior
// rendering when the underlying Line's first Chunk pointer is unchanged
// from a previous call. Safe for concurrent use by multiple readers
// rendering different Models; a single Memoizer should not be driven by
// concurrent goroutines rendering the *same* evolving Model without
// external synchronization (matching the core's own single-writer
// rule).
type Memoizer struct {
	m *memo
}

// NewMemoizer constructs a Memoizer with an empty cache.
func NewMemoizer() *Memoizer {
	return &Memoizer{m: newMemo()}
}

// Render behaves like HTML but reuses a row's previous Span slice when
// that row's underlying Chunk storage is identical to a prior call
// (i.e. the row was never replaced by updateLine since).
func (mz *Memoizer) Render(m ansiterm.Model) Document {
	doc := Document{Rows: make([]Row, m.RowCount())}
	mz.m.mu.Lock()
	defer mz.m.mu.Unlock()
	for i := range doc.Rows {
		line := m.Row(i)
		if len(line) == 0 {
			doc.Rows[i] = Row{}
			continue
		}
		key := &line[0]
		if cached, ok := mz.m.cache[key]; ok {
			doc.Rows[i] = cached
			continue
		}
		row := renderLine(line)
		mz.m.cache[key] = row
		doc.Rows[i] = row
	}
	return doc
}
