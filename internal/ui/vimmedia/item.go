package vimmedia

import "github.com/google/uuid"

// Item is one multimedia entry: a line of text and an optional image file.
type Item struct {
	ID    string
	Text  string
	Image string
}

// HasImage reports whether the item references an image file.
func (it Item) HasImage() bool { return it.Image != "" }

// withID fills a missing ID.
func (it Item) withID() Item {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return it
}

// copied returns a duplicate with a fresh ID.
func (it Item) copied() Item {
	it.ID = uuid.NewString()
	return it
}
