package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/theme"
)

// ColorForLevel maps a debt status level to a theme color.
func ColorForLevel(level model.StatusLevel) lipgloss.Color {
	t := theme.Active
	switch level {
	case model.Overdue:
		return t.Negative
	case model.Urgent:
		return t.Warning
	default:
		return t.Positive
	}
}

// DebtBar renders a labelled repayment progress bar.
func DebtBar(label string, s model.DebtStatus, labelW, barWidth int) string {
	t := theme.Active
	color := ColorForLevel(s.Level)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	name := label
	if lipgloss.Width(name) > labelW {
		name = truncate(name, labelW)
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, name)) + " " +
		bar.ViewAs(s.Progress) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", s.Progress*100))
}

// BudgetBar shows spent against a budget, turning red once it is exceeded.
func BudgetBar(spent, budget int64, width int) string {
	t := theme.Active

	pct := 0.0
	if budget > 0 {
		pct = float64(spent) / float64(budget)
	}
	color := t.Positive
	switch {
	case pct > 1:
		color = t.Negative
	case pct >= 0.8:
		color = t.Warning
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)
	return bar.ViewAs(min(pct, 1))
}

func truncate(s string, w int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
