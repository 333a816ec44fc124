package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Renderers are cached per style+width. Building one is not cheap, and
// WithAutoStyle can block on terminal queries in some setups, so the style
// is always resolved up front.
var mdRenderers = map[string]*glamour.TermRenderer{}

// resolveMarkdownStyle maps the configured style to a glamour standard
// style name. "auto" follows the detected terminal background.
func resolveMarkdownStyle(configured string) string {
	switch strings.ToLower(strings.TrimSpace(configured)) {
	case "dark":
		return "dark"
	case "light":
		return "light"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// renderMarkdown renders md wrapped to width. On any renderer error the raw
// text comes back unstyled; a paint glitch beats a dropped title.
func renderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := style + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// renderMarkdownLine renders md and collapses it to its first non-blank
// rendered line, for single-height list rows. Multi-line entries get an
// ellipsis.
func renderMarkdownLine(md, style string, width int) string {
	out := renderMarkdown(md, style, width)
	lines := strings.Split(out, "\n")
	first := ""
	rest := 0
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		if first == "" {
			first = strings.TrimSpace(ln)
			continue
		}
		rest++
	}
	if rest > 0 {
		first += " …"
	}
	return first
}
