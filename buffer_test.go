package ansiterm

import "testing"

func TestUpdateLineGrowsBuffer(t *testing.T) {
	var buf Buffer
	buf = updateLine(2, func(l Line) Line {
		return writeChunk(0, Chunk{Text: "hi", Style: DefaultStyle}, l)
	}, buf)

	if rowCount(buf) != 3 {
		t.Fatalf("rowCount = %d, want 3", rowCount(buf))
	}
	for r := 0; r < 2; r++ {
		if len(rowAt(buf, r)) != 0 {
			t.Errorf("row %d = %#v, want blank", r, rowAt(buf, r))
		}
	}
	if lineText(rowAt(buf, 2)) != "hi" {
		t.Errorf("row 2 = %q, want %q", lineText(rowAt(buf, 2)), "hi")
	}
}

func TestUpdateLineReplacesExistingRow(t *testing.T) {
	var buf Buffer
	buf = updateLine(0, func(l Line) Line {
		return writeChunk(0, Chunk{Text: "a", Style: DefaultStyle}, l)
	}, buf)
	buf = updateLine(0, func(l Line) Line {
		return writeChunk(1, Chunk{Text: "b", Style: DefaultStyle}, l)
	}, buf)

	if rowCount(buf) != 1 {
		t.Fatalf("rowCount = %d, want 1", rowCount(buf))
	}
	if lineText(rowAt(buf, 0)) != "ab" {
		t.Errorf("row 0 = %q, want %q", lineText(rowAt(buf, 0)), "ab")
	}
}

func TestRowAtBeyondBufferIsBlank(t *testing.T) {
	var buf Buffer
	if got := rowAt(buf, 5); len(got) != 0 {
		t.Errorf("rowAt(5) = %#v, want blank", got)
	}
}

func TestBufferNeverShrinks(t *testing.T) {
	var buf Buffer
	buf = updateLine(3, func(l Line) Line { return l }, buf)
	before := rowCount(buf)
	buf = updateLine(0, func(l Line) Line { return eraseAll() }, buf)
	if rowCount(buf) != before {
		t.Errorf("rowCount after erase = %d, want unchanged %d", rowCount(buf), before)
	}
}
