// Package engine implements the modal keyboard state machine shared by the
// vim-style widgets. An Engine interprets key presses into commands, tracks
// the current mode, pending two-key chords, the visual anchor, the edit and
// search buffers and the yank register, and applies commands to a widget
// model through the Adapter interface.
package engine

// Mode represents the current interaction mode.
type Mode int

const (
	// ModeNormal dispatches keys as commands.
	ModeNormal Mode = iota
	// ModeInsert captures keys into the edit buffer.
	ModeInsert
	// ModeVisual extends a selection from the anchor to the cursor.
	ModeVisual
	// ModeVisualLine selects whole rows from the anchor to the cursor.
	ModeVisualLine
	// ModeSearch captures keys into the search buffer.
	ModeSearch
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// IsVisual reports whether m is one of the selection modes.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine
}

// Direction is a single cursor step.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Placement says where an insert or paste lands relative to the cursor.
// Flat widgets read it literally; the tree reads Below as "as a child" and
// Above as "as the previous sibling".
type Placement int

const (
	Below Placement = iota
	Above
)

func (p Placement) String() string {
	if p == Above {
		return "above"
	}
	return "below"
}
