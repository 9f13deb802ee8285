package render

import (
	"strings"
	"testing"

	"github.com/phroun/ansiterm"
)

func TestHTMLFontWeight(t *testing.T) {
	m := ansiterm.Update("\x1b[1mbold\x1b[0m plain", ansiterm.Init(ansiterm.Cooked))
	doc := HTML(m)
	if len(doc.Rows) != 1 || len(doc.Rows[0].Spans) != 2 {
		t.Fatalf("doc = %#v, want 1 row with 2 spans", doc)
	}
	if doc.Rows[0].Spans[0].FontWeight != "bold" {
		t.Errorf("span 0 weight = %q, want bold", doc.Rows[0].Spans[0].FontWeight)
	}
	if doc.Rows[0].Spans[1].FontWeight != "normal" {
		t.Errorf("span 1 weight = %q, want normal", doc.Rows[0].Spans[1].FontWeight)
	}
}

func TestColorClassDerivation(t *testing.T) {
	cases := []struct {
		name     string
		style    ansiterm.Style
		wantFg   string
		wantBg   string
	}{
		{
			name:   "none/not-bold -> nothing",
			style:  ansiterm.Style{},
			wantFg: "",
			wantBg: "",
		},
		{
			name:   "none/bold -> ansi-bold",
			style:  ansiterm.Style{Bold: true},
			wantFg: "ansi-bold",
			wantBg: "ansi-bold",
		},
		{
			name:   "standard/not-bold",
			style:  ansiterm.Style{Foreground: ptr(ansiterm.Red)},
			wantFg: "ansi-red-fg",
			wantBg: "",
		},
		{
			name:   "standard/bold -> bright",
			style:  ansiterm.Style{Foreground: ptr(ansiterm.Red), Bold: true},
			wantFg: "ansi-bright-red-fg",
			wantBg: "ansi-bold",
		},
		{
			name:   "bright regardless of bold",
			style:  ansiterm.Style{Background: ptr(ansiterm.BrightBlue)},
			wantFg: "",
			wantBg: "ansi-bright-blue-bg",
		},
		{
			name:   "inverted swaps fg/bg",
			style:  ansiterm.Style{Foreground: ptr(ansiterm.Green), Inverted: true},
			wantFg: "",
			wantBg: "ansi-green-bg",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			classes := colorClasses(c.style)
			var want []string
			if c.wantFg != "" {
				want = append(want, c.wantFg)
			}
			if c.wantBg != "" {
				want = append(want, c.wantBg)
			}
			if !equalStrings(classes, want) {
				t.Errorf("colorClasses(%#v) = %v, want %v", c.style, classes, want)
			}
		})
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ptr(c ansiterm.Color) *ansiterm.Color {
	return &c
}

func TestMemoizerReusesUnchangedRows(t *testing.T) {
	mz := NewMemoizer()
	m := ansiterm.Update("line one\nline two", ansiterm.Init(ansiterm.Cooked))
	first := mz.Render(m)

	// Touch only row 1; row 0's backing Chunk array is untouched so its
	// rendering should be reused by identity.
	m2 := ansiterm.Update("\x1b[2;1Hxx", m)
	second := mz.Render(m2)

	if len(second.Rows[0].Spans) != len(first.Rows[0].Spans) {
		t.Fatalf("row 0 spans changed after editing row 1: got %v, want %v", second.Rows[0], first.Rows[0])
	}
	for i := range first.Rows[0].Spans {
		if first.Rows[0].Spans[i].Text != second.Rows[0].Spans[i].Text {
			t.Errorf("row 0 span %d text = %q, want %q", i, second.Rows[0].Spans[i].Text, first.Rows[0].Spans[i].Text)
		}
	}
}

func TestWriteHTMLEscapesText(t *testing.T) {
	m := ansiterm.Update("<script>", ansiterm.Init(ansiterm.Cooked))
	doc := HTML(m)
	var sb strings.Builder
	WriteHTML(&sb, doc)
	if strings.Contains(sb.String(), "<script>") {
		t.Errorf("WriteHTML output contains unescaped markup: %s", sb.String())
	}
	if !strings.Contains(sb.String(), "&lt;script&gt;") {
		t.Errorf("WriteHTML output = %s, want escaped text", sb.String())
	}
}
