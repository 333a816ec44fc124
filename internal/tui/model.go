// Package tui is the rendering collaborator: it draws the core state and
// translates keystrokes into calls against the core's public operations.
// It owns no list or editor state of its own; every paint re-reads through
// the app.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/thoth-note/thoth/internal/config"
	"github.com/thoth-note/thoth/internal/todo"
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusList
)

// Model is the Bubble Tea model wrapping the core app.
type Model struct {
	app     *todo.App
	theme   Theme
	mdStyle string
	keys    keyMap
	help    help.Model
	ta      textarea.Model

	focus  focusArea
	cursor int
	width  int
	height int

	log *zap.Logger
}

func New(app *todo.App, cfg config.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "What to do..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.Focus()

	m := Model{
		app:     app,
		theme:   NewTheme(cfg.Theme),
		mdStyle: resolveMarkdownStyle(cfg.MarkdownStyle),
		keys:    defaultKeyMap(),
		help:    help.New(),
		ta:      ta,
		log:     logger,
	}

	// Dirty signal from the core. Bubble Tea repaints after every Update
	// pass, so inside this program the callback only needs to trace; a
	// collaborator with its own frame pacing would schedule a repaint here.
	app.Notify(func() {
		logger.Debug("entity changed")
	})

	return m
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(app *todo.App, cfg config.Config, logger *zap.Logger) error {
	ApplyColorProfile(cfg.Theme)
	if _, err := tea.NewProgram(New(app, cfg, logger), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return textarea.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.log.Debug("quit", zap.String("key", msg.String()))
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Focus) {
			return m.switchFocus(), nil
		}
		if key.Matches(msg, m.keys.Append) {
			// Explicit append affordance; same shared commit procedure as
			// the editor's commit signal.
			m.app.AppendDraft()
			m.ta.Reset()
			return m, nil
		}
		if m.focus == focusEditor {
			return m.updateEditor(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.updateList(msg), nil
	}

	if m.focus == focusEditor {
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		m.syncDraft()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Newline):
		m.ta.InsertString("\n")
		m.syncDraft()
		return m, nil
	case key.Matches(msg, m.keys.Commit):
		m.app.Editor().Commit()
		m.ta.Reset()
		m.syncDraft()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	m.syncDraft()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) Model {
	items := m.app.List().Items()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor >= 0 && m.cursor < len(items) {
			h := items[m.cursor]
			it := m.app.List().Item(h)
			m.app.List().ToggleCompleted(h, !it.Completed)
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor >= 0 && m.cursor < len(items) {
			m.log.Debug("delete item", zap.Int("index", m.cursor))
			m.app.List().RequestDelete(items[m.cursor])
			if n := m.app.List().Len(); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			}
		}
	}
	return m
}

func (m Model) switchFocus() Model {
	if m.focus == focusEditor {
		m.focus = focusList
		m.ta.Blur()
	} else {
		m.focus = focusEditor
		m.ta.Focus()
	}
	return m
}

// syncDraft pushes the textarea's value into the core editor so every
// character-level edit fires the editor's change signal.
func (m *Model) syncDraft() {
	if v := m.ta.Value(); v != m.app.Editor().Text() {
		m.app.Editor().SetText(v)
	}
}

func (m *Model) layout() {
	ew, _ := m.paneSizes()
	m.ta.SetWidth(ew - 4)
	m.ta.SetHeight(maxInt(3, m.height-6))
	m.help.Width = m.width
}

// paneSizes splits the window: editor left, list right.
func (m Model) paneSizes() (editor, list int) {
	w := m.width
	if w <= 0 {
		w = 80
	}
	editor = w / 2
	list = w - editor
	return editor, list
}

func (m Model) View() string {
	ew, lw := m.paneSizes()

	editorPane := m.paneStyle(focusEditor).Width(ew - 2).Render(m.ta.View())
	listPane := m.paneStyle(focusList).Width(lw - 2).Render(m.listView(lw - 6))

	body := lipgloss.JoinHorizontal(lipgloss.Top, editorPane, listPane)
	return m.headerView() + "\n" + body + "\n" + m.help.View(m.keys)
}

func (m Model) paneStyle(area focusArea) lipgloss.Style {
	if m.focus == area {
		return m.theme.Focused
	}
	return m.theme.Border
}

// headerView shows the app title with live counts, the same shape as the
// interactive list header.
func (m Model) headerView() string {
	done, pending := 0, 0
	for _, h := range m.app.List().Items() {
		if m.app.List().Item(h).Completed {
			done++
		} else {
			pending++
		}
	}
	return fmt.Sprintf(" %s   %s %d  %s %d  %s %d",
		m.theme.Title.Render("Thoth Note"),
		m.theme.Success.Render("✔"), done,
		m.theme.Pending.Render("•"), pending,
		m.theme.Accent.Render("Total"), done+pending,
	)
}

func (m Model) listView(width int) string {
	items := m.app.List().Items()
	if len(items) == 0 {
		return m.theme.Muted.Render("Nothing yet. Commit a draft with enter.")
	}
	rows := make([]string, 0, len(items))
	for i, h := range items {
		rows = append(rows, m.renderRow(i, m.app.List().Item(h), width))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(index int, it todo.Item, width int) string {
	box := m.theme.Muted.Render(m.theme.BoxUnchecked)
	text := renderMarkdownLine(it.Title, m.mdStyle, width)
	if it.Completed {
		// Strikethrough plain text rather than restyling glamour output.
		box = m.theme.Success.Render(m.theme.BoxChecked)
		text = m.theme.Done.Render(firstLine(it.Title))
	}

	prefix := "  "
	if index == m.cursor && m.focus == focusList {
		prefix = m.theme.Selected.Render("> ")
	}
	return prefix + box + " " + text
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + " …"
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
