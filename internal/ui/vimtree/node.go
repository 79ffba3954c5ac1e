package vimtree

import (
	"slices"

	"github.com/google/uuid"

	"github.com/zjrosen/vimkit/internal/register"
)

// Node is one tree entry. Children are owned by their parent; use the Model
// API to attach or detach nodes so parent links stay consistent.
type Node struct {
	ID       string
	Text     string
	Data     any
	Expanded bool

	parent   *Node
	children []*Node
}

// NewNode creates a collapsed node with a fresh ID and the given children.
func NewNode(text string, children ...*Node) *Node {
	n := &Node{ID: uuid.NewString(), Text: text}
	for _, c := range children {
		n.attach(len(n.children), c)
	}
	return n
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return slices.Clone(n.children) }
func (n *Node) HasChildren() bool { return len(n.children) > 0 }
func (n *Node) ChildCount() int   { return len(n.children) }
func (n *Node) IsRoot() bool      { return n.parent == nil }
func (n *Node) String() string    { return n.Text }

// Child returns the i-th child, or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// attach links c as the i-th child, moving it away from any previous parent.
// Attaching n to itself or to one of its descendants is ignored.
func (n *Node) attach(i int, c *Node) {
	if c == nil || c == n || n.isDescendantOf(c) {
		return
	}
	if c.parent == n {
		if j := slices.Index(n.children, c); j >= 0 && j < i {
			i--
		}
	}
	c.unlink()
	i = min(max(i, 0), len(n.children))
	c.parent = n
	n.children = slices.Insert(n.children, i, c)
}

// unlink removes n from its parent's children.
func (n *Node) unlink() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// Depth is 0 for roots.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// isDescendantOf reports whether n lies strictly below ancestor.
func (n *Node) isDescendantOf(ancestor *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Snapshot deep-copies the subtree into a detached register snapshot.
func (n *Node) Snapshot() register.Snapshot {
	s := register.Snapshot{Text: n.Text, Data: n.Data}
	for _, c := range n.children {
		s.Children = append(s.Children, c.Snapshot())
	}
	return s
}

// fromSnapshot recreates a subtree with fresh IDs.
func fromSnapshot(s register.Snapshot) *Node {
	n := NewNode(s.Text)
	n.Data = s.Data
	for _, c := range s.Children {
		n.attach(len(n.children), fromSnapshot(c))
	}
	return n
}

// walk visits n and its descendants in pre-order.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}
