package vimtree

import (
	"slices"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/register"
)

type adapter struct {
	m *Model
}

var _ engine.Adapter[*Node] = (*adapter)(nil)

func (a *adapter) Len() int { return len(a.m.visible()) }

func (a *adapter) Cursor() (*Node, bool) { return a.m.cursor, a.m.cursor != nil }

// SetCursor focuses n and reveals it, so search can land inside collapsed nodes.
func (a *adapter) SetCursor(n *Node) {
	if n == nil || !a.m.attached(n) {
		return
	}
	a.m.reveal(n)
	a.m.cursor = n
}

// Move walks the visible order vertically. Left collapses an expanded node or
// climbs to the parent; right expands a collapsed node or descends to its
// first child.
func (a *adapter) Move(dir engine.Direction) bool {
	n := a.m.cursor
	if n == nil {
		return false
	}
	switch dir {
	case engine.DirDown, engine.DirUp:
		vis := a.m.visible()
		i := slices.Index(vis, n)
		if dir == engine.DirDown {
			i++
		} else {
			i--
		}
		if i < 0 || i >= len(vis) {
			return false
		}
		a.m.cursor = vis[i]
	case engine.DirLeft:
		switch {
		case n.Expanded && n.HasChildren():
			a.m.SetExpanded(n, false)
		case n.parent != nil:
			a.m.cursor = n.parent
		default:
			return false
		}
	case engine.DirRight:
		if !n.HasChildren() {
			return false
		}
		if !n.Expanded {
			a.m.SetExpanded(n, true)
		} else {
			a.m.cursor = n.children[0]
		}
	}
	return true
}

func (a *adapter) First() (*Node, bool) {
	if len(a.m.roots) == 0 {
		return nil, false
	}
	return a.m.roots[0], true
}

func (a *adapter) Last() (*Node, bool) {
	vis := a.m.visible()
	if len(vis) == 0 {
		return nil, false
	}
	return vis[len(vis)-1], true
}

func (a *adapter) Positions() []*Node { return a.m.all() }

func (a *adapter) Text(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Text
}

func (a *adapter) Rebuild() {
	a.m.rebuild()
	log.Debug(log.CatTree, "refreshed", "nodes", len(a.m.all()))
}

func (a *adapter) Commit(n *Node, value string) {
	if n == nil {
		return
	}
	old := n.Text
	n.Text = value
	a.m.emit(event.ItemEdited, n, value, old)
}

// place attaches subtrees relative to the cursor: Below makes them the last
// children of the cursor, Above inserts them as siblings before it. With no
// cursor they become roots.
func (a *adapter) place(where engine.Placement, nodes []*Node) {
	cur := a.m.cursor
	switch {
	case cur == nil && where == engine.Below:
		a.m.roots = append(a.m.roots, nodes...)
	case cur == nil:
		a.m.roots = slices.Insert(a.m.roots, 0, nodes...)
	case where == engine.Below:
		for _, n := range nodes {
			cur.attach(len(cur.children), n)
		}
		a.m.SetExpanded(cur, true)
	default:
		at := a.m.indexOf(cur)
		for i, n := range nodes {
			a.m.insertSibling(cur, at+i, n)
		}
	}
	a.m.cursor = nodes[0]
	for _, n := range nodes {
		a.m.emitAdded(n)
	}
}

func (a *adapter) Insert(where engine.Placement, value string) bool {
	a.place(where, []*Node{NewNode(value)})
	return true
}

func (a *adapter) Delete(n *Node) error {
	if n == nil {
		return nil
	}
	a.m.cursor = a.m.successor([]*Node{n})
	a.m.detach(n)
	a.m.emit(event.ItemDeleted, n, n.Text, "")
	return nil
}

func (a *adapter) Yank(n *Node) register.Payload {
	if n == nil {
		return register.Payload{}
	}
	return register.Trees(n.Snapshot())
}

// Paste recreates each snapshot with fresh IDs. Plain text pastes become
// one leaf per line.
func (a *adapter) Paste(where engine.Placement, payload register.Payload) bool {
	snaps := payload.Snapshots()
	if len(snaps) == 0 {
		return false
	}
	nodes := make([]*Node, len(snaps))
	for i, s := range snaps {
		nodes[i] = fromSnapshot(s)
	}
	a.place(where, nodes)
	return true
}

// span returns the top-most nodes of the visible range between anchor and
// cursor. A hidden anchor collapses the range to the cursor.
func (a *adapter) span(anchor, cursor *Node) []*Node {
	vis := a.m.visible()
	ic := slices.Index(vis, cursor)
	if ic < 0 {
		return nil
	}
	ia := slices.Index(vis, anchor)
	if ia < 0 {
		ia = ic
	}
	lo, hi := min(ia, ic), max(ia, ic)
	var top []*Node
	for _, n := range vis[lo : hi+1] {
		covered := false
		for _, t := range top {
			if n.isDescendantOf(t) {
				covered = true
				break
			}
		}
		if !covered {
			top = append(top, n)
		}
	}
	return top
}

func (a *adapter) YankSpan(anchor, cursor *Node, _ engine.Mode) register.Payload {
	nodes := a.span(anchor, cursor)
	snaps := make([]register.Snapshot, len(nodes))
	for i, n := range nodes {
		snaps[i] = n.Snapshot()
	}
	return register.Trees(snaps...)
}

func (a *adapter) DeleteSpan(anchor, cursor *Node, _ engine.Mode) error {
	nodes := a.span(anchor, cursor)
	if len(nodes) == 0 {
		return nil
	}
	a.m.cursor = a.m.successor(nodes)
	for _, n := range nodes {
		a.m.detach(n)
		a.m.emit(event.ItemDeleted, n, n.Text, "")
	}
	return nil
}

func (a *adapter) Focused(n *Node) {
	a.m.emit(event.ItemSelected, n, a.Text(n), "")
}
