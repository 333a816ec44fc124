package todo

import "github.com/thoth-note/thoth/internal/entity"

// Draft is the editor entity's owned state: the text being composed.
type Draft struct {
	Text string
}

// Committed is the editor's submit signal. It carries no payload; the
// handler reads the draft text at the instant of commit. Committing does
// not clear the draft — that is the consumer's decision.
type Committed struct{}

// Editor wraps the draft entity.
type Editor struct {
	drafts *entity.Container[Draft]
	h      entity.Handle[Draft]
}

func newEditor() *Editor {
	e := &Editor{drafts: entity.NewContainer[Draft]()}
	e.h = e.drafts.Create(Draft{})
	return e
}

// SetText replaces the draft and notifies subscribers of the change.
func (e *Editor) SetText(text string) {
	e.drafts.Update(e.h, func(d *Draft) { d.Text = text })
}

// Text returns the current draft.
func (e *Editor) Text() string {
	return e.drafts.Get(e.h).Text
}

// Commit emits the submit signal without touching the text.
func (e *Editor) Commit() {
	e.drafts.Emit(e.h, Committed{})
}

// Subscribe registers fn for the editor's change and commit events.
func (e *Editor) Subscribe(fn func(event any)) *entity.Subscription {
	return e.drafts.Subscribe(e.h, fn)
}
