package ansiterm

import "strconv"

// parse turns input into an ordered list of Actions. The caller is
// responsible for prepending any remainder left over from a previous
// call. It never returns an error: malformed input is either dropped
// (invalid CSI) or captured verbatim as a trailing ActionRemainder.
//
// Implemented as a loop over a cursor index rather than recursion, so
// stack depth never grows with input length.
func parse(input string) []Action {
	var actions []Action
	var printBuf []byte

	flushPrint := func() {
		if len(printBuf) > 0 {
			actions = append(actions, ActionPrint(string(printBuf)))
			printBuf = printBuf[:0]
		}
	}

	i := 0
	n := len(input)
	for i < n {
		b := input[i]

		switch b {
		case '\r':
			flushPrint()
			actions = append(actions, ActionCarriageReturn{})
			i++
			continue
		case '\n':
			flushPrint()
			actions = append(actions, ActionLinebreak{})
			i++
			continue
		case 0x1B: // ESC
			if i+1 >= n {
				// Lone ESC at end of input: stash as remainder.
				flushPrint()
				actions = append(actions, ActionRemainder(input[i:]))
				return actions
			}
			if input[i+1] != '[' {
				// Not a CSI introducer this parser recognizes; drop the
				// ESC byte alone and continue from the next byte.
				i++
				continue
			}
			seq, consumed, complete := scanCSI(input[i:])
			if !complete {
				flushPrint()
				actions = append(actions, ActionRemainder(input[i:]))
				return actions
			}
			flushPrint()
			if a, ok := decodeCSI(seq); ok {
				actions = append(actions, a...)
			}
			i += consumed
			continue
		default:
			printBuf = append(printBuf, b)
			i++
		}
	}
	flushPrint()
	return actions
}

// scanCSI scans a CSI sequence starting at s[0:2] == ESC '['. It returns
// the parameter bytes plus the terminating final byte (excluding
// "ESC["), the number of bytes of s consumed if complete, and whether a
// terminating letter was found before s ran out.
func scanCSI(s string) (payload string, consumed int, complete bool) {
	i := 2 // skip ESC [
	for i < len(s) {
		c := s[i]
		if isCSIFinal(c) {
			return s[2 : i+1], i + 1, true
		}
		i++
	}
	return "", 0, false
}

func isCSIFinal(c byte) bool {
	return c >= 0x40 && c <= 0x7E
}

// decodeCSI interprets the parameter bytes plus final letter of a CSI
// sequence (payload, as returned by scanCSI) into zero or more Actions.
// ok is false only to signal "no action" distinctly from "one action
// that happens to produce nothing" — callers currently treat both the
// same way, but the distinction keeps the decode step total.
func decodeCSI(payload string) ([]Action, bool) {
	if len(payload) == 0 {
		return nil, false
	}
	final := payload[len(payload)-1]
	paramStr := payload[:len(payload)-1]

	params, ok := parseParams(paramStr)
	if !ok {
		return nil, false
	}

	switch final {
	case 'm':
		return decodeSGR(params, paramStr), true
	case 'A':
		return []Action{ActionCursorUp(paramOrDefault(params, 0, 1))}, true
	case 'B':
		return []Action{ActionCursorDown(paramOrDefault(params, 0, 1))}, true
	case 'C':
		return []Action{ActionCursorForward(paramOrDefault(params, 0, 1))}, true
	case 'D':
		return []Action{ActionCursorBack(paramOrDefault(params, 0, 1))}, true
	case 'H', 'f':
		row := paramOrDefault(params, 0, 1)
		col := paramOrDefault(params, 1, 1)
		return []Action{ActionCursorPosition{Row: row, Col: col}}, true
	case 'G':
		return []Action{ActionCursorColumn(paramOrDefault(params, 0, 1))}, true
	case 's':
		return []Action{ActionSaveCursorPosition{}}, true
	case 'u':
		return []Action{ActionRestoreCursorPosition{}}, true
	case 'K':
		mode := paramOrDefault(params, 0, 0)
		em, ok := eraseModeFromCode(mode)
		if !ok {
			return nil, false
		}
		return []Action{ActionEraseLine{Mode: em}}, true
	default:
		// Unknown final byte: skip the whole sequence.
		return nil, false
	}
}

func eraseModeFromCode(code int) (EraseMode, bool) {
	switch code {
	case 0:
		return EraseToEnd, true
	case 1:
		return EraseToBeginning, true
	case 2:
		return EraseAll, true
	default:
		return 0, false
	}
}

// parseParams splits a ';'-separated decimal parameter list. An empty
// paramStr (the "\e[m" / "\e[A" case with no digits at all) yields an
// empty, successful params slice -- callers apply their own per-command
// default. A non-digit byte anywhere in the list is a parse failure,
// and the whole sequence is dropped.
func parseParams(paramStr string) ([]int, bool) {
	if paramStr == "" {
		return nil, true
	}
	parts := splitParams(paramStr)
	params := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			// An empty element (e.g. "1;;3") is a missing parameter,
			// which defaults to 0 in SGR context and is otherwise
			// treated like parameter 0.
			params = append(params, 0)
			continue
		}
		if !allDigits(p) {
			return nil, false
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		params = append(params, v)
	}
	return params, true
}

// allDigits reports whether p is non-empty and consists entirely of
// ASCII digits. strconv.Atoi alone would accept a leading '+'/'-',
// which is not a valid CSI parameter byte and must fall into the same
// "invalid, drop the sequence" path as any other non-digit.
func allDigits(p string) bool {
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}

func splitParams(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// paramOrDefault returns params[idx] if present and nonzero-length
// params were supplied at all, else def. CSI "\e[A" and "\e[0A" are
// both "move by 1" -- a present but zero parameter still uses def for
// the cursor-movement commands; SGR's own zero-vs-absent handling is
// independent and lives in decodeSGR.
func paramOrDefault(params []int, idx int, def int) int {
	if idx >= len(params) {
		return def
	}
	if params[idx] == 0 {
		return def
	}
	return params[idx]
}

// decodeSGR maps SGR parameters to style-setting Actions. An "\e[m"
// with a literal empty parameter list (paramStr == "") is documented
// upstream as a TODO to equate with "\e[0m" but is currently dropped as
// invalid -- see DESIGN.md open-question resolutions. A parameter list
// that is present but parses to a single zero ("\e[0m") resets style as
// normal.
func decodeSGR(params []int, paramStr string) []Action {
	if paramStr == "" {
		return nil
	}
	var actions []Action
	for _, p := range params {
		switch {
		case p == 0:
			actions = append(actions, ActionSGRReset{})
		case p == 1:
			actions = append(actions, ActionSetBold(true))
		case p == 2:
			actions = append(actions, ActionSetFaint(true))
		case p == 3:
			actions = append(actions, ActionSetItalic(true))
		case p == 4:
			actions = append(actions, ActionSetUnderline(true))
		case p == 7:
			actions = append(actions, ActionSetInverted(true))
		case p >= 30 && p <= 37:
			c, _ := standardColorFromCode(p - 30)
			actions = append(actions, ActionSetForeground{Color: colorPtr(c)})
		case p >= 40 && p <= 47:
			c, _ := standardColorFromCode(p - 40)
			actions = append(actions, ActionSetBackground{Color: colorPtr(c)})
		case p >= 90 && p <= 97:
			c, _ := brightColorFromCode(p - 90)
			actions = append(actions, ActionSetForeground{Color: colorPtr(c)})
		case p >= 100 && p <= 107:
			c, _ := brightColorFromCode(p - 100)
			actions = append(actions, ActionSetBackground{Color: colorPtr(c)})
		default:
			// Unknown SGR code: silently ignored.
		}
	}
	return actions
}
