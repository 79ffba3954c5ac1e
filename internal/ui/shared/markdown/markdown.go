// Package markdown renders markdown documents, such as the keyboard
// reference, for the terminal.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by New. Plain renders without colors for pipes and files.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StylePlain = "notty"
)

// noMarginStyle drops the document margin so output lines up with the shell prompt.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour renderer with a fixed wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer wrapping at width. An empty style means dark.
// The style is named explicitly rather than auto-detected so no terminal
// query escapes leak into the input stream.
func New(width int, style string) (*Renderer, error) {
	switch style {
	case "":
		style = StyleDark
	case StyleDark, StyleLight, StylePlain:
	default:
		return nil, fmt.Errorf("unknown markdown style %q", style)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width}, nil
}

func (r *Renderer) Width() int { return r.width }

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
