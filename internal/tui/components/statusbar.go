package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tally/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left and
// the active window plus save state on the right.
func RenderStatusBar(width int, windowLabel, saved string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [w/m/y/a]window  [←/→]shift  [tab]next  [q]uit"
	right := windowLabel
	if saved != "" {
		right += "  ·  " + saved
	}
	right += " "

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
