package todo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddKeepsCallOrderAndUniqueIDs(t *testing.T) {
	l := NewApp().List()

	ids := []string{l.Add("a"), l.Add("b"), l.Add("c")}

	items := l.Items()
	require.Len(t, items, 3)
	seen := map[string]bool{}
	for i, h := range items {
		it := l.Item(h)
		require.Equal(t, ids[i], it.ID)
		require.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
	require.Equal(t, "a", l.Item(items[0]).Title)
	require.Equal(t, "b", l.Item(items[1]).Title)
	require.Equal(t, "c", l.Item(items[2]).Title)
}

func TestReadAfterWrite(t *testing.T) {
	l := NewApp().List()

	id := l.Add("X")

	items := l.Items()
	require.Len(t, items, 1)
	it := l.Item(items[0])
	require.Equal(t, id, it.ID)
	require.Equal(t, "X", it.Title)
	require.False(t, it.Completed)
}

func TestEmptyTitleIsLegal(t *testing.T) {
	l := NewApp().List()
	l.Add("")
	require.Equal(t, 1, l.Len())
	require.Equal(t, "", l.Item(l.Items()[0]).Title)
}

func TestToggleAffectsOnlyThatItem(t *testing.T) {
	l := NewApp().List()
	l.Add("a")
	l.Add("b")
	l.Add("c")

	items := l.Items()
	l.ToggleCompleted(items[1], true)

	require.False(t, l.Item(items[0]).Completed)
	require.True(t, l.Item(items[1]).Completed)
	require.False(t, l.Item(items[2]).Completed)

	l.ToggleCompleted(items[1], false)
	require.False(t, l.Item(items[1]).Completed)
}

func TestSetTitle(t *testing.T) {
	l := NewApp().List()
	id := l.Add("before")
	h := l.Items()[0]

	l.SetTitle(h, "after")

	it := l.Item(h)
	require.Equal(t, "after", it.Title)
	require.Equal(t, id, it.ID, "retitle must not change identity")
}

func TestRequestDeleteRemovesExactlyOne(t *testing.T) {
	l := NewApp().List()
	l.Add("a")
	l.Add("b")
	l.Add("c")

	items := l.Items()
	l.ToggleCompleted(items[2], true)
	doomed := items[1]

	l.RequestDelete(doomed)

	require.Equal(t, 2, l.Len())
	require.False(t, l.items.Alive(doomed), "item must be destroyed with its list entry")

	remaining := l.Items()
	require.Equal(t, "a", l.Item(remaining[0]).Title)
	require.False(t, l.Item(remaining[0]).Completed)
	require.Equal(t, "c", l.Item(remaining[1]).Title)
	require.True(t, l.Item(remaining[1]).Completed)
}

func TestEveryListedHandleIsLive(t *testing.T) {
	l := NewApp().List()
	for _, title := range []string{"a", "b", "c", "d"} {
		l.Add(title)
	}
	l.RequestDelete(l.Items()[0])
	l.RequestDelete(l.Items()[2])

	for _, h := range l.Items() {
		require.True(t, l.items.Alive(h))
	}
}

func TestEditorRoundTrip(t *testing.T) {
	app := NewApp()

	app.Editor().SetText("A")
	require.Equal(t, "A", app.Editor().Text())

	app.Editor().Commit()

	require.Equal(t, "", app.Editor().Text())
	items := app.List().Items()
	require.Len(t, items, 1)
	it := app.List().Item(items[0])
	require.Equal(t, "A", it.Title)
	require.False(t, it.Completed)
}

func TestCommitEmptyDraftAppendsEmptyItem(t *testing.T) {
	app := NewApp()
	app.Editor().Commit()
	require.Equal(t, 1, app.List().Len())
	require.Equal(t, "", app.List().Item(app.List().Items()[0]).Title)
}

func TestAppendDraftMatchesCommitPath(t *testing.T) {
	app := NewApp()

	app.Editor().SetText("via signal")
	app.Editor().Commit()
	app.Editor().SetText("via button")
	app.AppendDraft()

	items := app.List().Items()
	require.Len(t, items, 2)
	require.Equal(t, "via signal", app.List().Item(items[0]).Title)
	require.Equal(t, "via button", app.List().Item(items[1]).Title)
	require.Equal(t, "", app.Editor().Text())
}

func TestNotifyFiresPerMutatedEntity(t *testing.T) {
	app := NewApp()

	var n int
	app.Notify(func() { n++ })

	app.Editor().SetText("draft")
	require.Positive(t, n, "editor change must notify")

	before := n
	app.List().Add("x")
	require.Greater(t, n, before, "list change must notify")

	before = n
	h := app.List().Items()[0]
	app.List().ToggleCompleted(h, true)
	require.Greater(t, n, before, "item change must notify")

	before = n
	app.List().RequestDelete(h)
	require.Greater(t, n, before, "removal must notify")
}

// The concrete end-to-end scenario: compose, commit, toggle, delete.
func TestSessionScenario(t *testing.T) {
	app := NewApp()
	require.Equal(t, 0, app.List().Len())
	require.Equal(t, "", app.Editor().Text())

	app.Editor().SetText("buy milk")
	app.Editor().Commit()

	items := app.List().Items()
	require.Len(t, items, 1)
	it := app.List().Item(items[0])
	require.Equal(t, "buy milk", it.Title)
	require.False(t, it.Completed)
	require.Equal(t, "", app.Editor().Text())

	app.List().ToggleCompleted(items[0], true)
	require.True(t, app.List().Item(items[0]).Completed)
	require.Equal(t, 1, app.List().Len())

	app.List().RequestDelete(items[0])
	require.Equal(t, 0, app.List().Len())
}
