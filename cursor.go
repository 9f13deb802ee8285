package ansiterm

// LineDiscipline selects how a Linebreak Action affects the column: Raw
// preserves it, Cooked resets it to 0 (the conventional "\r\n" terminal
// behavior collapsed into a single Action since this library never sees
// a bare '\n' as anything but a linebreak).
type LineDiscipline int

const (
	Cooked LineDiscipline = iota
	Raw
)

// CursorPosition is a (row, column) pair, both non-negative.
type CursorPosition struct {
	Row, Column int
}

// apply consumes one Action, returning the evolved Model.
func apply(a Action, m Model) Model {
	if isStyleAction(a) {
		m.Style = m.Style.apply(a)
		return m
	}

	switch v := a.(type) {
	case ActionPrint:
		m = printAt(string(v), m)

	case ActionCarriageReturn:
		m.Cursor.Column = 0

	case ActionLinebreak:
		m.Cursor.Row++
		if m.LineDiscipline == Cooked {
			m.Cursor.Column = 0
		}
		// Force the buffer to grow to contain the new row even if
		// nothing else gets printed before the next cursor move.
		m = printAt("", m)

	case ActionCursorUp:
		m.Cursor.Row = saturate(m.Cursor.Row - int(v))
	case ActionCursorDown:
		m.Cursor.Row = saturate(m.Cursor.Row + int(v))
	case ActionCursorForward:
		m.Cursor.Column = saturate(m.Cursor.Column + int(v))
	case ActionCursorBack:
		m.Cursor.Column = saturate(m.Cursor.Column - int(v))

	case ActionCursorPosition:
		m.Cursor = CursorPosition{Row: saturate(v.Row - 1), Column: saturate(v.Col - 1)}

	case ActionCursorColumn:
		// No 1-based to 0-based adjustment here; see DESIGN.md.
		m.Cursor.Column = saturate(int(v))

	case ActionSaveCursorPosition:
		saved := m.Cursor
		m.SavedCursor = &saved

	case ActionRestoreCursorPosition:
		if m.SavedCursor != nil {
			m.Cursor = *m.SavedCursor
		}

	case ActionEraseLine:
		m.Buffer = updateLine(m.Cursor.Row, func(line Line) Line {
			switch v.Mode {
			case EraseToEnd:
				return eraseToEnd(m.Cursor.Column, line)
			case EraseToBeginning:
				return eraseToBeginning(m.Cursor.Column, line, m.Style)
			case EraseAll:
				return eraseAll()
			default:
				return line
			}
		}, m.Buffer)

	case ActionRemainder:
		m.Remainder = string(v)

	default:
		// Unknown Action: leave buffer and cursor untouched.
	}
	return m
}

// printAt writes text at the cursor's current position, styled with the
// model's current Style, and advances the column by len(text). An empty
// text still forces the buffer to grow to the cursor's row (used by
// Linebreak so a trailing newline produces a visible row).
func printAt(text string, m Model) Model {
	row, col := m.Cursor.Row, m.Cursor.Column
	if len(text) == 0 {
		m.Buffer = updateLine(row, func(line Line) Line { return line }, m.Buffer)
		return m
	}
	chunk := Chunk{Text: text, Style: m.Style}
	m.Buffer = updateLine(row, func(line Line) Line {
		return writeChunk(col, chunk, line)
	}, m.Buffer)
	m.Cursor.Column += len(text)
	return m
}

func saturate(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
