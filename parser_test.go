package ansiterm

import (
	"reflect"
	"testing"
)

func TestParsePlainText(t *testing.T) {
	actions := parse("hello")
	want := []Action{ActionPrint("hello")}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse(%q) = %#v, want %#v", "hello", actions, want)
	}
}

func TestParseCarriageReturnAndLinebreak(t *testing.T) {
	actions := parse("a\rb\nc")
	want := []Action{
		ActionPrint("a"),
		ActionCarriageReturn{},
		ActionPrint("b"),
		ActionLinebreak{},
		ActionPrint("c"),
	}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse(%q) = %#v, want %#v", "a\rb\nc", actions, want)
	}
}

func TestParseSGRForeground(t *testing.T) {
	actions := parse("\x1b[31mred")
	red := Red
	want := []Action{
		ActionSetForeground{Color: &red},
		ActionPrint("red"),
	}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse = %#v, want %#v", actions, want)
	}
}

func TestParseSGRReset(t *testing.T) {
	actions := parse("\x1b[0m")
	want := []Action{ActionSGRReset{}}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse(%q) = %#v, want %#v", "\x1b[0m", actions, want)
	}
}

func TestParseEmptySGRIsDropped(t *testing.T) {
	actions := parse("\x1b[mx")
	want := []Action{ActionPrint("x")}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse(%q) = %#v, want %#v", "\x1b[mx", actions, want)
	}
}

func TestParseCursorMovementDefaults(t *testing.T) {
	actions := parse("\x1b[A\x1b[3B")
	want := []Action{ActionCursorUp(1), ActionCursorDown(3)}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse = %#v, want %#v", actions, want)
	}
}

func TestParseCursorPositionDefaults(t *testing.T) {
	actions := parse("\x1b[H")
	want := []Action{ActionCursorPosition{Row: 1, Col: 1}}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse = %#v, want %#v", actions, want)
	}
}

func TestParseEraseLineModes(t *testing.T) {
	cases := []struct {
		in   string
		want EraseMode
	}{
		{"\x1b[K", EraseToEnd},
		{"\x1b[0K", EraseToEnd},
		{"\x1b[1K", EraseToBeginning},
		{"\x1b[2K", EraseAll},
	}
	for _, c := range cases {
		actions := parse(c.in)
		want := []Action{ActionEraseLine{Mode: c.want}}
		if !reflect.DeepEqual(actions, want) {
			t.Errorf("parse(%q) = %#v, want %#v", c.in, actions, want)
		}
	}
}

func TestParseUnknownFinalByteDropsSequence(t *testing.T) {
	actions := parse("\x1b[5Zx")
	want := []Action{ActionPrint("x")}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse = %#v, want %#v", actions, want)
	}
}

func TestParseInvalidParamDropsSequence(t *testing.T) {
	// '!' is neither a digit nor ';', so the parameter list fails to
	// parse; the whole sequence (through the final byte 'm') is
	// discarded and nothing past it is affected.
	actions := parse("\x1b[2!mx")
	want := []Action{ActionPrint("x")}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse = %#v, want %#v", actions, want)
	}
}

func TestParseSignedParamDropsSequence(t *testing.T) {
	// A leading '+' or '-' is not a valid parameter byte even though
	// strconv.Atoi would otherwise accept it; both must be treated the
	// same as any other non-digit and drop the whole sequence.
	cases := []string{"\x1b[-5Ax", "\x1b[+5Ax"}
	for _, in := range cases {
		actions := parse(in)
		want := []Action{ActionPrint("x")}
		if !reflect.DeepEqual(actions, want) {
			t.Errorf("parse(%q) = %#v, want %#v", in, actions, want)
		}
	}
}

func TestParseIncompleteEscapeAtEndIsRemainder(t *testing.T) {
	actions := parse("abc\x1b[2")
	want := []Action{ActionPrint("abc"), ActionRemainder("\x1b[2")}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse = %#v, want %#v", actions, want)
	}
}

func TestParseLoneEscapeAtEndIsRemainder(t *testing.T) {
	actions := parse("abc\x1b")
	want := []Action{ActionPrint("abc"), ActionRemainder("\x1b")}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("parse = %#v, want %#v", actions, want)
	}
}

// cell is one column of a row: its byte and the Style it was drawn with.
type cell struct {
	b     byte
	style Style
}

// cells flattens buf into one cell per column, so two buffers showing the
// same styled text compare equal however their rows are divided into
// chunks.
func cells(buf Buffer) [][]cell {
	out := make([][]cell, len(buf))
	for r, line := range buf {
		for _, c := range line {
			for i := 0; i < len(c.Text); i++ {
				out[r] = append(out[r], cell{b: c.Text[i], style: c.Style})
			}
		}
	}
	return out
}

// TestParseSplitBoundaries checks that feeding a fixture string through
// Update in two chunks, split at every possible boundary, produces the
// same visible buffer (text and style of every cell) and cursor as
// feeding it in one call. A split inside a run of printable text leaves
// that run as two adjacent chunks, since writes are never merged, so the
// comparison is per cell rather than per chunk.
func TestParseSplitBoundaries(t *testing.T) {
	fixture := "abc\x1b[31mred\x1b[0m \x1b[2Kxyz\r\ndone"
	whole := Update(fixture, Init(Cooked))

	for i := 0; i <= len(fixture); i++ {
		a, b := fixture[:i], fixture[i:]
		got := Update(b, Update(a, Init(Cooked)))
		if !reflect.DeepEqual(cells(got.Buffer), cells(whole.Buffer)) {
			t.Fatalf("split at %d: buffer mismatch\n got: %#v\nwant: %#v", i, got.Buffer, whole.Buffer)
		}
		if got.Cursor != whole.Cursor {
			t.Fatalf("split at %d: cursor = %+v, want %+v", i, got.Cursor, whole.Cursor)
		}
	}
}
