package gallery

import "github.com/zjrosen/vimkit/internal/event"

// Event is emitted when the cursor lands on an image (ImageSelected), an
// image is opened (ImageActivated) or the marked set changes
// (SelectionChanged). Marked lists marked paths in folder order.
type Event struct {
	Kind   event.Kind
	Index  int
	Path   string
	Marked []string
}

// EventKind implements event.Kinded.
func (e Event) EventKind() event.Kind { return e.Kind }
