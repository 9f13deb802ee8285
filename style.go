package ansiterm

// Style records the current SGR attributes. It is an immutable value
// type: every mutation in this package replaces the whole record rather
// than modifying one in place.
type Style struct {
	Foreground *Color
	Background *Color
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
	Inverted   bool
}

// DefaultStyle is the Style a fresh Model starts with: no colors, no
// flags set.
var DefaultStyle = Style{}

// Equal reports whether s and other describe the same presentation.
func (s Style) Equal(other Style) bool {
	if s.Bold != other.Bold || s.Faint != other.Faint || s.Italic != other.Italic ||
		s.Underline != other.Underline || s.Inverted != other.Inverted {
		return false
	}
	return colorEqual(s.Foreground, other.Foreground) && colorEqual(s.Background, other.Background)
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// colorPtr returns a pointer to a copy of c; the caller owns the returned pointer.
func colorPtr(c Color) *Color {
	v := c
	return &v
}

// apply folds a single style-setting Action into s, returning the new
// Style. Actions that are not style-setting leave s unchanged.
func (s Style) apply(a Action) Style {
	switch v := a.(type) {
	case ActionSGRReset:
		return DefaultStyle
	case ActionSetForeground:
		s.Foreground = v.Color
	case ActionSetBackground:
		s.Background = v.Color
	case ActionSetBold:
		s.Bold = bool(v)
	case ActionSetFaint:
		s.Faint = bool(v)
	case ActionSetItalic:
		s.Italic = bool(v)
	case ActionSetUnderline:
		s.Underline = bool(v)
	case ActionSetInverted:
		s.Inverted = bool(v)
	}
	return s
}

// isStyleAction reports whether a is one of the seven style-setting
// Actions or ActionSGRReset.
func isStyleAction(a Action) bool {
	switch a.(type) {
	case ActionSGRReset, ActionSetForeground, ActionSetBackground,
		ActionSetBold, ActionSetFaint, ActionSetItalic, ActionSetUnderline, ActionSetInverted:
		return true
	default:
		return false
	}
}
