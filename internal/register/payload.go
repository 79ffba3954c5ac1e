// Package register holds the yank register payload shared by every widget
// and its plain-text form on the system clipboard.
//
// A payload is one of a scalar, a single row, a rectangular block of cells,
// a run of lines, or a forest of node snapshots. Text flattens any payload
// with tabs between cells and newlines between rows; Parse goes the other way.
package register

import "strings"

// Kind identifies the shape of a payload.
type Kind int

const (
	KindEmpty Kind = iota
	KindScalar
	KindRow
	KindBlock
	KindLines
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindScalar:
		return "scalar"
	case KindRow:
		return "row"
	case KindBlock:
		return "block"
	case KindLines:
		return "lines"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Snapshot is a detached deep copy of a tree node.
type Snapshot struct {
	Text     string
	Data     any
	Children []Snapshot
}

// Clone deep-copies the snapshot. Data is copied by reference.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Text: s.Text, Data: s.Data}
	if len(s.Children) > 0 {
		out.Children = make([]Snapshot, len(s.Children))
		for i, c := range s.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Count returns the number of nodes in the snapshot including itself.
func (s Snapshot) Count() int {
	n := 1
	for _, c := range s.Children {
		n += c.Count()
	}
	return n
}

// Payload is the content of the register.
// Cells always holds at least one row for non-empty, non-tree payloads.
// Data carries an owner-defined value (e.g. multimedia items) alongside the text.
type Payload struct {
	Kind  Kind
	Cells [][]string
	Trees []Snapshot
	Data  any
}

// Scalar wraps a single value.
func Scalar(s string) Payload {
	return Payload{Kind: KindScalar, Cells: [][]string{{s}}}
}

// Row wraps one row of cells.
func Row(cells []string) Payload {
	return Payload{Kind: KindRow, Cells: [][]string{cloneRow(cells)}}
}

// Block wraps a rectangular selection of cells.
func Block(rows [][]string) Payload {
	if len(rows) == 0 {
		return Payload{}
	}
	return Payload{Kind: KindBlock, Cells: cloneRows(rows)}
}

// Lines wraps a run of single-value items.
func Lines(lines []string) Payload {
	if len(lines) == 0 {
		return Payload{}
	}
	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = []string{l}
	}
	return Payload{Kind: KindLines, Cells: rows}
}

// Trees wraps one or more node snapshots.
func Trees(snaps ...Snapshot) Payload {
	if len(snaps) == 0 {
		return Payload{}
	}
	out := make([]Snapshot, len(snaps))
	for i, s := range snaps {
		out[i] = s.Clone()
	}
	return Payload{Kind: KindTree, Trees: out}
}

// WithData attaches an owner-defined value to the payload.
func (p Payload) WithData(data any) Payload {
	p.Data = data
	return p
}

// IsEmpty reports whether the payload has nothing to paste.
func (p Payload) IsEmpty() bool {
	switch p.Kind {
	case KindEmpty:
		return true
	case KindTree:
		return len(p.Trees) == 0
	default:
		return len(p.Cells) == 0
	}
}

// Text serializes the payload for the system clipboard: cells are joined
// with tabs, rows with newlines. Trees contribute their root texts.
func (p Payload) Text() string {
	return strings.Join(p.Lines(), "\n")
}

// Lines returns one string per row, cells joined with tabs.
func (p Payload) Lines() []string {
	if p.Kind == KindTree {
		out := make([]string, len(p.Trees))
		for i, s := range p.Trees {
			out[i] = s.Text
		}
		return out
	}
	out := make([]string, len(p.Cells))
	for i, row := range p.Cells {
		out[i] = strings.Join(row, "\t")
	}
	return out
}

// Rows returns a copy of the cell grid. Trees become single-cell rows.
func (p Payload) Rows() [][]string {
	if p.Kind == KindTree {
		rows := make([][]string, len(p.Trees))
		for i, s := range p.Trees {
			rows[i] = []string{s.Text}
		}
		return rows
	}
	return cloneRows(p.Cells)
}

// Snapshots returns the payload as node snapshots. Non-tree payloads become
// one childless snapshot per line.
func (p Payload) Snapshots() []Snapshot {
	if p.Kind == KindTree {
		out := make([]Snapshot, len(p.Trees))
		for i, s := range p.Trees {
			out[i] = s.Clone()
		}
		return out
	}
	lines := p.Lines()
	out := make([]Snapshot, len(lines))
	for i, l := range lines {
		out[i] = Snapshot{Text: l}
	}
	return out
}

// Normalize pads or truncates cells to exactly width entries.
func Normalize(cells []string, width int) []string {
	out := make([]string, width)
	copy(out, cells)
	return out
}

func cloneRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = cloneRow(r)
	}
	return out
}
