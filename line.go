package ansiterm

import "strings"

// Chunk is a non-empty run of printable code units sharing one Style.
type Chunk struct {
	Text  string
	Style Style
}

// Line is an ordered sequence of Chunks making up one row. Chunks are
// never merged or split for compactness: the model is append-biased,
// and splits occur only when a mid-row overwrite requires one. Two
// adjacent writes of the same style remain two adjacent chunks.
type Line []Chunk

// lineLength returns the sum of a Line's chunks' text lengths: the
// column index one past the last printed cell.
func lineLength(line Line) int {
	n := 0
	for _, c := range line {
		n += len(c.Text)
	}
	return n
}

// writeChunk overwrites columns [column, column+len(chunk.Text)) of line
// with chunk, returning a new Line. line is never mutated in place.
func writeChunk(column int, chunk Chunk, line Line) Line {
	if len(chunk.Text) == 0 {
		return line
	}
	length := lineLength(line)

	switch {
	case column == length:
		out := make(Line, len(line), len(line)+1)
		copy(out, line)
		return append(out, chunk)

	case column > length:
		pad := Chunk{Text: strings.Repeat(" ", column-length), Style: chunk.Style}
		out := make(Line, len(line), len(line)+2)
		copy(out, line)
		out = append(out, pad, chunk)
		return out

	default: // column < length
		prefix := takePrefix(column, line)
		suffix := dropPrefix(column+len(chunk.Text), line)
		out := make(Line, 0, len(prefix)+1+len(suffix))
		out = append(out, prefix...)
		out = append(out, chunk)
		out = append(out, suffix...)
		return out
	}
}

// takePrefix returns the prefix of line covering the first n columns.
// The chunk spanning column n, if any, is truncated by code-unit count.
func takePrefix(n int, line Line) Line {
	if n <= 0 {
		return Line{}
	}
	var out Line
	remaining := n
	for _, c := range line {
		if remaining <= 0 {
			break
		}
		if len(c.Text) <= remaining {
			out = append(out, c)
			remaining -= len(c.Text)
			continue
		}
		out = append(out, Chunk{Text: c.Text[:remaining], Style: c.Style})
		remaining = 0
	}
	return out
}

// dropPrefix returns the suffix of line starting at column n,
// symmetrically with takePrefix.
func dropPrefix(n int, line Line) Line {
	if n <= 0 {
		return append(Line{}, line...)
	}
	var out Line
	remaining := n
	for _, c := range line {
		if remaining <= 0 {
			out = append(out, c)
			continue
		}
		if len(c.Text) <= remaining {
			remaining -= len(c.Text)
			continue
		}
		out = append(out, Chunk{Text: c.Text[remaining:], Style: c.Style})
		remaining = 0
	}
	return out
}

// eraseToEnd truncates line at column, discarding everything from
// column onward.
func eraseToEnd(column int, line Line) Line {
	return takePrefix(column, line)
}

// eraseToBeginning blanks columns [0, column) of line with spaces in
// style, leaving the suffix from column onward untouched.
func eraseToBeginning(column int, line Line, style Style) Line {
	if column <= 0 {
		return append(Line{}, line...)
	}
	return writeChunk(0, Chunk{Text: strings.Repeat(" ", column), Style: style}, line)
}

// eraseAll returns an empty Line.
func eraseAll() Line {
	return Line{}
}
