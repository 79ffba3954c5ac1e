// Package keys describes the keyboard surface of each widget for help
// footers and the generated keyboard reference. Dispatch itself goes through
// the engine registry; these bindings only mirror it.
package keys

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap is the help-facing binding set of one widget.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	First key.Binding
	Last  key.Binding

	// Editing
	Edit        key.Binding
	InsertBelow key.Binding
	InsertAbove key.Binding
	Delete      key.Binding
	Yank        key.Binding
	PasteBelow  key.Binding
	PasteAbove  key.Binding

	// Modes
	Visual     key.Binding
	VisualLine key.Binding
	Search     key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	Refresh    key.Binding
	Escape     key.Binding

	// Widget-specific bindings, listed as their own help column.
	Extra []key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

func bind(keys []string, helpKey, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// Common returns the bindings shared by every vim-style widget.
func Common() KeyMap {
	return KeyMap{
		Up:    bind([]string{"k", "up"}, "k/↑", "move up"),
		Down:  bind([]string{"j", "down"}, "j/↓", "move down"),
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "move left"), key.WithDisabled()),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "move right"), key.WithDisabled()),
		First: bind([]string{"g", "home"}, "gg", "go to first"),
		Last:  bind([]string{"G", "end"}, "G", "go to last"),

		Edit:        bind([]string{"i"}, "i", "edit"),
		InsertBelow: bind([]string{"o"}, "o", "insert below"),
		InsertAbove: bind([]string{"O"}, "O", "insert above"),
		Delete:      bind([]string{"d", "x"}, "dd/x", "delete"),
		Yank:        bind([]string{"y"}, "yy", "yank"),
		PasteBelow:  bind([]string{"p"}, "p", "paste below"),
		PasteAbove:  bind([]string{"P"}, "P", "paste above"),

		Visual:     bind([]string{"v"}, "v", "visual"),
		VisualLine: key.NewBinding(key.WithKeys("V"), key.WithHelp("V", "visual line"), key.WithDisabled()),
		Search:     bind([]string{"/"}, "/", "search"),
		NextMatch:  bind([]string{"n"}, "n", "next match"),
		PrevMatch:  bind([]string{"N"}, "N", "previous match"),
		Refresh:    bind([]string{"r"}, "r", "refresh"),
		Escape:     bind([]string{"esc"}, "esc", "cancel"),

		Help: bind([]string{"?"}, "?", "toggle help"),
		Quit: bind([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}

// List returns the list and multimedia list bindings.
func List() KeyMap {
	return Common()
}

// Table returns the table bindings.
func Table() KeyMap {
	k := Common()
	k.Left.SetEnabled(true)
	k.Right.SetEnabled(true)
	k.VisualLine.SetEnabled(true)
	k.Visual.SetHelp("v", "visual block")
	k.Delete.SetHelp("dd/x", "delete row")
	k.Yank.SetHelp("yy", "yank row (y: cell)")
	k.InsertBelow.SetHelp("o", "blank row below")
	k.InsertAbove.SetHelp("O", "blank row above")
	k.Edit.SetHelp("i", "edit cell")
	k.Extra = []key.Binding{
		bind([]string{"I"}, "I", "edit header"),
		bind([]string{"a"}, "a", "add column right"),
		bind([]string{"A"}, "A", "add column at end"),
		bind([]string{"c"}, "dc", "delete column"),
	}
	return k
}

// Tree returns the tree bindings.
func Tree() KeyMap {
	k := Common()
	k.Left.SetEnabled(true)
	k.Right.SetEnabled(true)
	k.Left.SetHelp("h/←", "collapse or parent")
	k.Right.SetHelp("l/→", "expand or child")
	k.InsertBelow.SetHelp("o", "add child")
	k.InsertAbove.SetHelp("O", "add sibling above")
	k.PasteBelow.SetHelp("p", "paste as child")
	k.PasteAbove.SetHelp("P", "paste as sibling")
	k.Yank.SetHelp("yy", "yank subtree")
	k.Extra = []key.Binding{
		bind([]string{"enter", " "}, "enter/space", "toggle expand"),
	}
	return k
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Delete, k.Yank, k.PasteBelow, k.Search, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.First, k.Last},
		{k.Edit, k.InsertBelow, k.InsertAbove, k.Delete, k.Yank, k.PasteBelow, k.PasteAbove},
		{k.Visual, k.VisualLine, k.Search, k.NextMatch, k.PrevMatch, k.Refresh, k.Escape},
	}
	if len(k.Extra) > 0 {
		groups = append(groups, k.Extra)
	}
	return append(groups, []key.Binding{k.Help, k.Quit})
}

// GalleryKeyMap defines the image gallery bindings.
type GalleryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Mark    key.Binding
	MarkAll key.Binding
	Open    key.Binding
	Close   key.Binding
	Rescan  key.Binding
	Filter  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// Gallery returns the gallery bindings.
func Gallery() GalleryKeyMap {
	return GalleryKeyMap{
		Up:      bind([]string{"k", "up"}, "k/↑", "row up"),
		Down:    bind([]string{"j", "down"}, "j/↓", "row down"),
		Left:    bind([]string{"h", "left"}, "h/←", "previous image"),
		Right:   bind([]string{"l", "right"}, "l/→", "next image"),
		Mark:    bind([]string{" "}, "space", "toggle mark"),
		MarkAll: bind([]string{"a"}, "a", "mark all"),
		Open:    bind([]string{"enter"}, "enter", "open viewer"),
		Close:   bind([]string{"esc"}, "esc", "close or clear marks"),
		Rescan:  bind([]string{"r"}, "r", "rescan folder"),
		Filter:  bind([]string{"/"}, "/", "filter by name"),
		Help:    bind([]string{"?"}, "?", "toggle help"),
		Quit:    bind([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Open, k.Rescan, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Mark, k.MarkAll, k.Open, k.Close, k.Rescan, k.Filter},
		{k.Help, k.Quit},
	}
}

// helpKeyMap is the subset of help.KeyMap the reference needs.
type helpKeyMap interface {
	FullHelp() [][]key.Binding
}

// Markdown renders a keyboard reference section for the enabled bindings of km.
func Markdown(title string, km helpKeyMap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", title)
	for _, group := range km.FullHelp() {
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	return b.String()
}

// Reference renders the full keyboard reference for every widget.
func Reference() string {
	sections := []string{
		"# vimkit keyboard reference\n",
		Markdown("List and multimedia list", List()),
		Markdown("Table", Table()),
		Markdown("Tree", Tree()),
		Markdown("Gallery", Gallery()),
	}
	return strings.Join(sections, "\n")
}
