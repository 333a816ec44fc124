package todo

import (
	"slices"

	"github.com/thoth-note/thoth/internal/entity"
)

// listState is the list entity's owned state: item handles in insertion
// order. Append-only; there is no reordering.
type listState struct {
	items []entity.Handle[Item]
}

// List owns the item arena and one list entity. Every handle in the list
// state refers to a live item; a handle leaves the state in the same
// reaction that destroys its item.
type List struct {
	items    *entity.Container[Item]
	lists    *entity.Container[listState]
	h        entity.Handle[listState]
	onChange func()
}

func newList(onChange func()) *List {
	l := &List{
		items:    entity.NewContainer[Item](),
		lists:    entity.NewContainer[listState](),
		onChange: onChange,
	}
	l.h = l.lists.Create(listState{})
	l.lists.Subscribe(l.h, func(any) { l.onChange() })
	return l
}

// Add creates an item for title, appends it and returns the new id.
// Empty titles are legal; the list imposes no validation.
func (l *List) Add(title string) string {
	it := newItem(title)
	h := l.items.Create(it)

	var sub *entity.Subscription
	sub = l.items.Subscribe(h, func(ev any) {
		switch ev.(type) {
		case RemoveRequested:
			// Excise first (this also notifies list observers), then release
			// the subscription and destroy the item. The handle is never
			// retained past this point.
			l.lists.Update(l.h, func(s *listState) {
				s.items = slices.DeleteFunc(s.items, func(x entity.Handle[Item]) bool {
					return x == h
				})
			})
			sub.Cancel()
			l.items.Destroy(h)
		case entity.Changed:
			// Toggle or retitle: nothing to own here, just repaint.
			l.onChange()
		}
	})

	l.lists.Update(l.h, func(s *listState) { s.items = append(s.items, h) })
	return it.ID
}

// Items returns the handles in display order.
func (l *List) Items() []entity.Handle[Item] {
	state := l.lists.Get(l.h)
	out := make([]entity.Handle[Item], len(state.items))
	copy(out, state.items)
	return out
}

// Item reads one item's state through the container.
func (l *List) Item(h entity.Handle[Item]) Item {
	return l.items.Get(h)
}

func (l *List) Len() int {
	return len(l.lists.Get(l.h).items)
}

// ToggleCompleted sets the item's completion flag. No other entity reacts;
// observers get the generic change notification.
func (l *List) ToggleCompleted(h entity.Handle[Item], done bool) {
	l.items.Update(h, func(it *Item) { it.Completed = done })
}

// SetTitle replaces the item's text.
func (l *List) SetTitle(h entity.Handle[Item], title string) {
	l.items.Update(h, func(it *Item) { it.Title = title })
}

// RequestDelete emits the item's remove signal. Removal and destruction
// happen synchronously before this returns.
func (l *List) RequestDelete(h entity.Handle[Item]) {
	l.items.Emit(h, RemoveRequested{})
}
