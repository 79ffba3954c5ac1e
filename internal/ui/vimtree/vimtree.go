// Package vimtree provides an editable forest of text nodes with vim-style
// modal keyboard navigation. Navigation follows the visible order: children
// of collapsed nodes are skipped until expanded.
package vimtree

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
	"github.com/zjrosen/vimkit/internal/ui/shared/widget"
)

// Config configures a tree.
type Config struct {
	widget.Options

	Roots        []*Node
	ZebraStripes bool

	OnEdit     func(Event)
	OnSelect   func(Event)
	OnAdd      func(Event)
	OnDelete   func(Event)
	OnExpand   func(Event)
	OnCollapse func(Event)
}

// Model is the tree widget.
type Model struct {
	roots  []*Node
	cursor *Node
	zebra  bool

	host   *widget.Host[*Node]
	events *event.Hub[Event]
	scroll widget.Scroll
}

// New creates a tree from cfg. The cursor starts on the first root.
func New(cfg Config) *Model {
	m := &Model{
		roots:  adoptRoots(cfg.Roots),
		zebra:  cfg.ZebraStripes,
		events: event.NewHub[Event](),
	}
	if len(m.roots) > 0 {
		m.cursor = m.roots[0]
	}
	m.host = widget.NewHost[*Node]("tree", &adapter{m: m}, cfg.Options)

	r := m.host.Engine().Registry()
	r.Register(engine.NewInsertPrompt[*Node](engine.Below, "New child: ", "o"))
	r.Register(engine.NewInsertPrompt[*Node](engine.Above, "New sibling: ", "O"))
	r.Register(&toggleCommand{m: m})

	hook := func(kind event.Kind, fn func(Event)) {
		if fn == nil {
			return
		}
		m.events.Subscribe(func(e Event) {
			if e.Kind == kind {
				fn(e)
			}
		})
	}
	hook(event.ItemEdited, cfg.OnEdit)
	hook(event.ItemSelected, cfg.OnSelect)
	hook(event.ItemAdded, cfg.OnAdd)
	hook(event.ItemDeleted, cfg.OnDelete)
	hook(event.NodeExpanded, cfg.OnExpand)
	hook(event.NodeCollapsed, cfg.OnCollapse)
	return m
}

// Subscribe registers a listener for every tree event.
func (m *Model) Subscribe(fn func(Event)) (unsubscribe func()) {
	return m.events.Subscribe(fn)
}

// Bridge forwards events to a pubsub broker as well.
func (m *Model) Bridge(p pubsub.Publisher[Event]) {
	m.events.Bridge(p)
}

func (m *Model) emit(kind event.Kind, n *Node, value, old string) {
	m.events.Emit(Event{Kind: kind, Node: n, Value: value, Old: old})
}

// emitAdded reports every node of a new subtree, parents first.
func (m *Model) emitAdded(n *Node) {
	n.walk(func(c *Node) { m.emit(event.ItemAdded, c, c.Text, "") })
}

func (m *Model) Engine() *engine.Engine[*Node] { return m.host.Engine() }
func (m *Model) Mode() engine.Mode             { return m.host.Engine().Mode() }
func (m *Model) Focus()                        { m.host.Focus() }
func (m *Model) Blur()                         { m.host.Blur() }

// SetSize sets the outer dimensions including the modeline.
func (m *Model) SetSize(width, height int) {
	m.host.SetSize(width, height)
	m.follow()
}

// SetForest replaces every root. A root that sits under another node is
// moved out of it. The cursor stays on its node if that node is still part
// of the forest.
func (m *Model) SetForest(roots []*Node) {
	m.roots = adoptRoots(roots)
	m.changed()
	log.Debug(log.CatTree, "forest set", "roots", len(m.roots))
}

// AddChild appends a node under parent, or a new root when parent is nil.
func (m *Model) AddChild(parent *Node, text string, data any) *Node {
	n := NewNode(text)
	n.Data = data
	if parent == nil {
		m.roots = append(m.roots, n)
	} else {
		if !m.attached(parent) {
			return nil
		}
		parent.attach(len(parent.children), n)
	}
	m.changed()
	m.emitAdded(n)
	return n
}

// AddSibling inserts a node next to ref, above it when above is set.
func (m *Model) AddSibling(ref *Node, text string, above bool, data any) *Node {
	if ref == nil || !m.attached(ref) {
		return nil
	}
	n := NewNode(text)
	n.Data = data
	at := m.indexOf(ref)
	if !above {
		at++
	}
	m.insertSibling(ref, at, n)
	m.changed()
	m.emitAdded(n)
	return n
}

// RemoveNode detaches n and its subtree. A cursor inside the subtree moves
// to the next visible node, or the previous one at the end.
func (m *Model) RemoveNode(n *Node) {
	if n == nil || !m.attached(n) {
		return
	}
	if m.cursor == n || (m.cursor != nil && m.cursor.isDescendantOf(n)) {
		m.cursor = m.successor([]*Node{n})
	}
	m.detach(n)
	m.changed()
	m.emit(event.ItemDeleted, n, n.Text, "")
}

// Clear removes every node.
func (m *Model) Clear() {
	m.roots = nil
	m.cursor = nil
	m.changed()
}

// Current returns the focused node, or nil when the tree is empty.
func (m *Model) Current() *Node { return m.cursor }

// CurrentText returns the focused node's text.
func (m *Model) CurrentText() (string, bool) {
	if m.cursor == nil {
		return "", false
	}
	return m.cursor.Text, true
}

// Roots returns the top-level nodes.
func (m *Model) Roots() []*Node { return slices.Clone(m.roots) }

// Select focuses n, expanding its ancestors.
func (m *Model) Select(n *Node) bool {
	if n == nil || !m.attached(n) {
		return false
	}
	m.reveal(n)
	if m.cursor != n {
		m.cursor = n
		m.emit(event.ItemSelected, n, n.Text, "")
	}
	m.follow()
	return true
}

// Find returns the node with id.
func (m *Model) Find(id string) *Node {
	for _, n := range m.all() {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// SetExpanded expands or collapses n. Leaves are left alone.
func (m *Model) SetExpanded(n *Node, expanded bool) {
	if n == nil || !n.HasChildren() || n.Expanded == expanded {
		return
	}
	n.Expanded = expanded
	if expanded {
		m.emit(event.NodeExpanded, n, n.Text, "")
	} else {
		m.emit(event.NodeCollapsed, n, n.Text, "")
	}
	if !expanded && m.cursor != nil && m.cursor.isDescendantOf(n) {
		m.cursor = n
	}
}

// reveal expands every ancestor of n.
func (m *Model) reveal(n *Node) {
	for p := n.parent; p != nil; p = p.parent {
		m.SetExpanded(p, true)
	}
}

// attached reports whether n belongs to this forest.
func (m *Model) attached(n *Node) bool {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return slices.Contains(m.roots, root)
}

func (m *Model) siblings(n *Node) []*Node {
	if n.parent == nil {
		return m.roots
	}
	return n.parent.children
}

func (m *Model) indexOf(n *Node) int {
	return slices.Index(m.siblings(n), n)
}

func (m *Model) insertSibling(ref *Node, at int, n *Node) {
	if ref.parent == nil {
		n.unlink()
		m.roots = slices.Insert(m.roots, at, n)
		return
	}
	ref.parent.attach(at, n)
}

// adoptRoots unlinks every root from its parent so each node is reachable
// once. Nil and repeated roots are dropped.
func adoptRoots(roots []*Node) []*Node {
	out := make([]*Node, 0, len(roots))
	for _, r := range roots {
		if r == nil || slices.Contains(out, r) {
			continue
		}
		r.unlink()
		out = append(out, r)
	}
	return out
}

func (m *Model) detach(n *Node) {
	i := m.indexOf(n)
	if i < 0 {
		return
	}
	if n.parent == nil {
		m.roots = slices.Delete(m.roots, i, i+1)
		return
	}
	n.unlink()
}

// visible lists nodes in display order, skipping children of collapsed nodes.
func (m *Model) visible() []*Node {
	var out []*Node
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n)
			if n.Expanded {
				walk(n.children)
			}
		}
	}
	walk(m.roots)
	return out
}

// all lists every node in pre-order.
func (m *Model) all() []*Node {
	var out []*Node
	for _, r := range m.roots {
		r.walk(func(n *Node) { out = append(out, n) })
	}
	return out
}

// successor picks the focus after removing nodes: the first visible node
// after them that is not inside a removed subtree, else the visible node
// just before the first of them.
func (m *Model) successor(removed []*Node) *Node {
	gone := func(n *Node) bool {
		for _, r := range removed {
			if n == r || n.isDescendantOf(r) {
				return true
			}
		}
		return false
	}
	vis := m.visible()
	first, last := -1, -1
	for i, n := range vis {
		if gone(n) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil
	}
	for _, n := range vis[last+1:] {
		if !gone(n) {
			return n
		}
	}
	for i := first - 1; i >= 0; i-- {
		if !gone(vis[i]) {
			return vis[i]
		}
	}
	return nil
}

func (m *Model) changed() {
	m.rebuild()
	m.host.Engine().InvalidateSearch()
}

// rebuild keeps the cursor on a visible, attached node.
func (m *Model) rebuild() {
	if m.cursor == nil || !m.attached(m.cursor) {
		m.cursor = nil
		if len(m.roots) > 0 {
			m.cursor = m.roots[0]
		}
	}
	if m.cursor != nil {
		for p := m.cursor.parent; p != nil; p = p.parent {
			if !p.Expanded {
				m.cursor = p
			}
		}
	}
	m.follow()
}

func (m *Model) follow() {
	vis := m.visible()
	m.scroll.Follow(slices.Index(vis, m.cursor), len(vis), m.rowsHeight())
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		vis := m.visible()
		start, end := m.scroll.Window(len(vis), m.rowsHeight())
		if i, ok := m.host.ClickedRow(msg, start, end); ok && m.host.Focused() {
			m.Select(vis[i])
		}
		return m, nil
	}
	_, cmd := m.host.Update(msg)
	m.follow()
	return m, cmd
}

// ============================================================================
// toggleCommand - Enter / Space
// ============================================================================

type toggleCommand struct {
	engine.MotionBase
	m *Model
}

func (c *toggleCommand) Execute(_ *engine.Engine[*Node]) engine.Result {
	n := c.m.cursor
	if n == nil || !n.HasChildren() {
		return engine.Skipped
	}
	c.m.SetExpanded(n, !n.Expanded)
	return engine.Executed
}

func (c *toggleCommand) Keys() []string { return []string{engine.KeyEnter, engine.KeySpace} }
func (c *toggleCommand) ID() string     { return "tree.toggle" }
