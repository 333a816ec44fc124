package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap satisfies help.KeyMap so the footer can render itself.
type keyMap struct {
	Commit  key.Binding
	Append  key.Binding
	Newline key.Binding
	Focus   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Append:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "append")),
		Newline: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "newline")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Append, k.Focus, k.Toggle, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Append, k.Newline, k.Focus},
		{k.Up, k.Down, k.Toggle, k.Delete, k.Quit},
	}
}
