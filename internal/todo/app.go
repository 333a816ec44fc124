// Package todo is the reactive core of the app: items, the list that owns
// them, the draft editor, and the root controller wiring them together.
// Cross-entity effects travel over explicit subscriptions — deleting an
// item removes it from its list because the list subscribed to that item's
// remove signal, not because anything shares mutable state.
package todo

import "github.com/thoth-note/thoth/internal/entity"

// App owns one list and one editor. It caches none of their state; reads
// always go through the containers.
type App struct {
	list   *List
	editor *Editor
	notify func()
}

func NewApp() *App {
	a := &App{notify: func() {}}
	a.list = newList(func() { a.notify() })
	a.editor = newEditor()

	a.editor.Subscribe(func(ev any) {
		switch ev.(type) {
		case Committed:
			a.commitDraft()
		case entity.Changed:
			a.notify()
		}
	})
	return a
}

// Notify registers the render collaborator's repaint callback. It is
// invoked once per mutated entity; the collaborator re-reads whatever it
// derives from the state.
func (a *App) Notify(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	a.notify = fn
}

func (a *App) List() *List     { return a.list }
func (a *App) Editor() *Editor { return a.editor }

// commitDraft is the one shared commit procedure: read the draft, append
// it as a new item, clear the draft. Both trigger sites — the editor's
// commit signal and the explicit append affordance — converge here, so the
// two paths cannot drift apart. Dispatch is synchronous, so no edit can
// slip between the read and the clear.
func (a *App) commitDraft() {
	text := a.editor.Text()
	a.list.Add(text)
	a.editor.SetText("")
}

// AppendDraft is the explicit "append" affordance: same effect as
// committing the editor, without going through the commit signal.
func (a *App) AppendDraft() {
	a.commitDraft()
}
