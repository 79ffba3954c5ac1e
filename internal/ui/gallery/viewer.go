package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimkit/internal/imagemeta"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

const (
	viewerMaxWidth  = 60
	viewerMinWidth  = 30
	viewerMaxHeight = 12
)

// viewer is the modal metadata panel for one image. Its body scrolls in a
// viewport when the terminal is short.
type viewer struct {
	path  string
	info  imagemeta.Info
	err   error
	index int
	total int
	vp    viewport.Model
}

func newViewer(path string, info imagemeta.Info, err error, index, total, width, height int) *viewer {
	v := &viewer{path: path, info: info, err: err, index: index, total: total}
	v.setSize(width, height)
	return v
}

func (v *viewer) boxWidth(width int) int {
	if width <= 0 {
		return viewerMaxWidth
	}
	return max(min(width-4, viewerMaxWidth), viewerMinWidth)
}

func (v *viewer) setSize(width, height int) {
	h := viewerMaxHeight
	if height > 0 {
		h = max(min(height-6, viewerMaxHeight), 3)
	}
	w := v.boxWidth(width) - 4
	v.vp = viewport.New(w, h)
	v.vp.SetContent(v.content(w))
}

func (v *viewer) update(msg tea.Msg) {
	v.vp, _ = v.vp.Update(msg)
}

func (v *viewer) content(width int) string {
	label := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Width(12)
	row := func(k, val string) string {
		return label.Render(k) + styles.TruncateString(val, max(width-12, 1))
	}
	if v.err != nil {
		return strings.Join([]string{
			row("Path", v.path),
			row("Error", v.err.Error()),
		}, "\n")
	}
	return strings.Join([]string{
		row("Path", v.path),
		row("Format", strings.ToUpper(v.info.Format)),
		row("Dimensions", v.info.Dimensions()+" px"),
		row("Size", v.info.HumanSize()),
		row("Modified", v.info.ModTime.Format("2006-01-02 15:04")),
	}, "\n")
}

func (v *viewer) View() string {
	title := styles.HeaderStyle.Render(fmt.Sprintf("%s  %d/%d", v.info.Name(), v.index+1, v.total))
	if v.err != nil {
		title = styles.HeaderStyle.Render(fmt.Sprintf("%d/%d", v.index+1, v.total))
	}
	footer := styles.MutedStyle.Render("h/l previous/next · esc close")
	return styles.BorderStyle.
		Padding(0, 1).
		Render(title + "\n\n" + v.vp.View() + "\n\n" + footer)
}
