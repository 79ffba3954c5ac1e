// Package event broadcasts widget domain events to any number of listeners.
//
// Listeners run synchronously, in subscription order, on the goroutine that
// emits (the Bubble Tea update loop). A Hub can also be bridged to a
// pubsub.Broker so hosts can consume the same events asynchronously.
package event

import "github.com/zjrosen/vimkit/internal/pubsub"

// Kind names a widget event.
type Kind int

const (
	ItemEdited Kind = iota
	ItemSelected
	ItemAdded
	ItemDeleted
	CellEdited
	NodeExpanded
	NodeCollapsed
	ImageSelected
	ImageActivated
	SelectionChanged
)

func (k Kind) String() string {
	switch k {
	case ItemEdited:
		return "item_edited"
	case ItemSelected:
		return "item_selected"
	case ItemAdded:
		return "item_added"
	case ItemDeleted:
		return "item_deleted"
	case CellEdited:
		return "cell_edited"
	case NodeExpanded:
		return "node_expanded"
	case NodeCollapsed:
		return "node_collapsed"
	case ImageSelected:
		return "image_selected"
	case ImageActivated:
		return "image_activated"
	case SelectionChanged:
		return "selection_changed"
	default:
		return "unknown"
	}
}

// EventType maps the kind onto the broker's event vocabulary.
func (k Kind) EventType() pubsub.EventType {
	switch k {
	case ItemEdited, CellEdited:
		return pubsub.EditedEvent
	case ItemSelected, ImageSelected, ImageActivated:
		return pubsub.SelectedEvent
	case ItemAdded:
		return pubsub.AddedEvent
	case ItemDeleted:
		return pubsub.DeletedEvent
	case NodeExpanded:
		return pubsub.ExpandedEvent
	case NodeCollapsed:
		return pubsub.CollapsedEvent
	default:
		return pubsub.ChangedEvent
	}
}

// Kinded is implemented by every widget event type.
type Kinded interface {
	EventKind() Kind
}
