package todo

import "github.com/google/uuid"

// Item is the state of one list entry.
type Item struct {
	ID        string
	Title     string
	Completed bool
}

// RemoveRequested is the item's "remove me" signal. The item never destroys
// itself; the owning list reacts by excising the handle and destroying the
// entity, so there is exactly one owner tearing the resource down.
type RemoveRequested struct{}

func newItem(title string) Item {
	return Item{ID: uuid.NewString(), Title: title}
}
