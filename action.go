package ansiterm

// Action is the closed set of events the parser emits. It is a tagged
// sum realized as a sealed interface: every variant is a distinct
// concrete type implementing the unexported marker method, so a type
// switch over Action is exhaustive by construction rather than by
// convention.
type Action interface {
	isAction()
}

// ActionPrint is one or more printable code units. Consecutive print
// bytes coalesce into a single ActionPrint.
type ActionPrint string

// ActionLinebreak is a bare '\n'.
type ActionLinebreak struct{}

// ActionCarriageReturn is a bare '\r'.
type ActionCarriageReturn struct{}

// ActionSetForeground sets (or, if Color is nil, clears) the current
// foreground color.
type ActionSetForeground struct{ Color *Color }

// ActionSetBackground sets (or, if Color is nil, clears) the current
// background color.
type ActionSetBackground struct{ Color *Color }

// ActionSetBold, ActionSetFaint, ActionSetItalic, ActionSetUnderline and
// ActionSetInverted set the corresponding Style flag. There is no
// "clear this one flag" variant; SGR 0 (ActionSGRReset) is the only way
// to turn a flag back off.
type (
	ActionSetBold      bool
	ActionSetFaint     bool
	ActionSetItalic    bool
	ActionSetUnderline bool
	ActionSetInverted  bool
)

// ActionSGRReset is SGR parameter 0: foreground and background go to
// none, every flag goes to false.
type ActionSGRReset struct{}

// ActionCursorUp, ActionCursorDown, ActionCursorForward and
// ActionCursorBack move the cursor by n (n >= 1).
type (
	ActionCursorUp      int
	ActionCursorDown    int
	ActionCursorForward int
	ActionCursorBack    int
)

// ActionCursorPosition is CSI H/f. Row and Col are 1-based, as received
// on the wire; the cursor engine subtracts 1 from each.
type ActionCursorPosition struct {
	Row, Col int
}

// ActionCursorColumn is CSI G. Preserves the source's observable
// behavior of applying Col without a 1-based to 0-based adjustment
// (see DESIGN.md open-question resolutions).
type ActionCursorColumn int

// ActionSaveCursorPosition is CSI s.
type ActionSaveCursorPosition struct{}

// ActionRestoreCursorPosition is CSI u.
type ActionRestoreCursorPosition struct{}

// EraseMode selects how much of a line EraseLine clears.
type EraseMode int

const (
	EraseToEnd EraseMode = iota
	EraseToBeginning
	EraseAll
)

// ActionEraseLine is CSI K.
type ActionEraseLine struct{ Mode EraseMode }

// ActionRemainder carries the unterminated tail of the input. The
// parser emits it at most once, and only as the last Action in the
// slice it returns.
type ActionRemainder string

func (ActionPrint) isAction()                  {}
func (ActionLinebreak) isAction()               {}
func (ActionCarriageReturn) isAction()          {}
func (ActionSetForeground) isAction()           {}
func (ActionSetBackground) isAction()           {}
func (ActionSetBold) isAction()                 {}
func (ActionSetFaint) isAction()                {}
func (ActionSetItalic) isAction()               {}
func (ActionSetUnderline) isAction()            {}
func (ActionSetInverted) isAction()             {}
func (ActionSGRReset) isAction()                {}
func (ActionCursorUp) isAction()                {}
func (ActionCursorDown) isAction()              {}
func (ActionCursorForward) isAction()           {}
func (ActionCursorBack) isAction()              {}
func (ActionCursorPosition) isAction()          {}
func (ActionCursorColumn) isAction()            {}
func (ActionSaveCursorPosition) isAction()      {}
func (ActionRestoreCursorPosition) isAction()   {}
func (ActionEraseLine) isAction()               {}
func (ActionRemainder) isAction()               {}
