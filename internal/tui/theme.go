package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the palette and checkbox glyphs. All rendering pulls from
// the model's theme; nothing styles ad hoc.
//
// Colors are adaptive so the TUI stays readable on light and dark
// terminals alike.
type Theme struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style
	Focused  lipgloss.Style

	BoxChecked   string
	BoxUnchecked string
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// NewTheme returns the named theme; unknown names fall back to classic.
func NewTheme(name string) Theme {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ac("250", "8")).
		Padding(0, 1)

	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:        lipgloss.NewStyle().Bold(true).Foreground(ac("127", "213")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(ac("31", "51")),
			Success:      lipgloss.NewStyle().Foreground(ac("28", "48")),
			Pending:      lipgloss.NewStyle().Foreground(ac("130", "228")),
			Error:        lipgloss.NewStyle().Foreground(ac("124", "197")).Bold(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Border:       border,
			Focused:      border.BorderForeground(ac("127", "213")),
			BoxChecked:   "◼",
			BoxUnchecked: "◻",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Title:        plain.Bold(true),
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Pending:      plain,
			Error:        plain.Bold(true),
			Selected:     plain.Reverse(true),
			Done:         plain.Strikethrough(true),
			Help:         plain,
			Border:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			Focused:      lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
			BoxChecked:   "[x]",
			BoxUnchecked: "[ ]",
		}
	default: // classic
		return Theme{
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(ac("26", "12")),
			Success:      lipgloss.NewStyle().Foreground(ac("28", "42")),
			Pending:      lipgloss.NewStyle().Foreground(ac("130", "214")),
			Error:        lipgloss.NewStyle().Foreground(ac("124", "9")).Bold(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Border:       border,
			Focused:      border.BorderForeground(ac("26", "12")),
			BoxChecked:   "☑",
			BoxUnchecked: "☐",
		}
	}
}

// ApplyColorProfile pins the lipgloss color profile before the program
// starts. The mono theme forces ASCII so glyph fallbacks and no-color
// output stay consistent; otherwise termenv's detection wins (it respects
// CLICOLOR/NO_COLOR).
func ApplyColorProfile(themeName string) {
	if strings.ToLower(themeName) == "mono" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
