package ansiterm

// Model aggregates everything Update needs to carry between calls: the
// line discipline, the buffer, the cursor, an optional saved cursor
// position, the current style, and any unterminated escape bytes left
// over from the previous call. Model is a plain value; every operation
// in this package returns a new one rather than mutating the receiver
// in place.
type Model struct {
	LineDiscipline LineDiscipline
	Buffer         Buffer
	Cursor         CursorPosition
	SavedCursor    *CursorPosition
	Style          Style
	Remainder      string
}

// Init constructs an empty Model with the given line discipline.
func Init(discipline LineDiscipline) Model {
	return Model{
		LineDiscipline: discipline,
		Buffer:         Buffer{},
		Cursor:         CursorPosition{},
		Style:          DefaultStyle,
	}
}

// Update feeds one chunk of bytes to m and returns the evolved Model. m
// itself is never mutated; Update is a total function from (bytes, m)
// to a new Model. The caller must serialize calls against the same
// Model; Update holds no lock of its own.
func Update(data string, m Model) Model {
	actions := parse(m.Remainder + data)
	m.Remainder = ""
	for _, a := range actions {
		m = apply(a, m)
	}
	return m
}

// RowCount returns the number of rows currently in m's buffer.
func (m Model) RowCount() int {
	return rowCount(m.Buffer)
}

// Row returns row r of m's buffer, or an empty Line if r is beyond the
// buffer's current extent.
func (m Model) Row(r int) Line {
	return rowAt(m.Buffer, r)
}
