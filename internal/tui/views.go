package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/debt"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"
)

func signTone(n int64) components.Tone {
	switch {
	case n > 0:
		return components.Good
	case n < 0:
		return components.Bad
	default:
		return components.Neutral
	}
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary

	days := cli.FormatDays(int64(s.DaysOffCanTake), s.DaysOffUnbounded)
	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatAmount(s.FilteredIncome), Tone: components.Good},
		{Label: "Spent", Value: cli.FormatAmount(s.TotalActualSpending),
			Note: "planned " + cli.FormatDecimal(s.TotalPlannedSpending)},
		{Label: "Status", Value: cli.FormatSigned(s.FinancialStatus), Tone: signTone(s.FinancialStatus)},
		{Label: "Disposable", Value: cli.FormatSigned(s.DisposableIncome), Tone: signTone(s.DisposableIncome),
			Note: days + " days off"},
	}, cw))
	b.WriteString("\n")

	half := components.LayoutRow(cw, 2)

	var budget strings.Builder
	barW := components.CardInnerWidth(half[0]) - 24
	fmt.Fprintf(&budget, "%-6s %s %s\n", "Food",
		components.BudgetBar(s.FilteredFood, s.FoodBudget, barW),
		cli.FormatCompact(s.FilteredFood)+"/"+cli.FormatCompact(s.FoodBudget))
	fmt.Fprintf(&budget, "%-6s %s %s\n", "Misc",
		components.BudgetBar(s.FilteredMisc, s.MiscBudget, barW),
		cli.FormatCompact(s.FilteredMisc)+"/"+cli.FormatCompact(s.MiscBudget))
	fmt.Fprintf(&budget, "Fixed  %s   Debt paid  %s\n", cli.FormatAmount(s.FixedExpenses), cli.FormatAmount(s.FilteredDebtPayments))
	fmt.Fprintf(&budget, "Weekly debt need  %s\n", cli.FormatDecimal(s.WeeklyDebtContribution))
	fmt.Fprintf(&budget, "Savings  %s", cli.FormatAmount(a.state.SavingsBalance))

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Budget", budget.String(), half[0]),
		components.ContentCard("Fixed costs", a.renderFixedCosts(), half[1]),
	}))
	b.WriteString("\n")

	month := pipeline.Daily(a.state, a.now().AddDate(0, 0, -29), a.now())
	// Daily is newest first; the sparkline reads left to right.
	trend := make([]int64, len(month))
	for i, f := range month {
		trend[len(month)-1-i] = f.Spending()
	}

	flows := month[:min(7, len(month))]
	bars := make([]components.Bar, len(flows))
	for i, f := range flows {
		bars[i] = components.Bar{
			Label: cli.FormatDayOfWeek(int(f.Date.Weekday())) + " " + f.Date.Format("02/01"),
			Value: f.Spending(),
			Text:  cli.FormatAmount(f.Spending()),
		}
	}
	chart := components.BarChart(bars, t.Accent, components.CardInnerWidth(cw)) +
		"\n\n30 days " + components.Sparkline(trend, t.Info)
	b.WriteString(components.ContentCard("Last 7 days", chart, cw))

	return b.String()
}

func (a App) renderFixedCosts() string {
	t := theme.Active
	f := a.fixed
	ok := lipgloss.NewStyle().Foreground(t.Positive)
	warn := lipgloss.NewStyle().Foreground(t.Warning)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	if f.FuelFilledToday {
		b.WriteString(ok.Render("● fuel filled today"))
	} else {
		b.WriteString(muted.Render("○ no fuel today"))
	}
	fmt.Fprintf(&b, "  %s\n", muted.Render(fmt.Sprintf("%d fills this window", f.FuelFillsInWindow)))
	if f.HasFuelInterval {
		line := fmt.Sprintf("last refill interval %d days", f.LastFuelInterval)
		if f.FuelIntervalShorter {
			b.WriteString(warn.Render(line + " (shorter than usual)"))
		} else {
			b.WriteString(muted.Render(line))
		}
		b.WriteString("\n")
	}

	switch {
	case f.LastConnectivityPayment.IsZero():
		b.WriteString(warn.Render("○ connectivity never paid"))
	case f.ConnectivityDueSoon:
		b.WriteString(warn.Render("● connectivity due soon, paid " + cli.FormatDate(f.LastConnectivityPayment)))
	case f.ConnectivityPaidRecently:
		b.WriteString(ok.Render("● connectivity paid " + cli.FormatDate(f.LastConnectivityPayment)))
	default:
		b.WriteString(warn.Render("○ connectivity expired " + cli.FormatDate(f.LastConnectivityPayment)))
	}
	return b.String()
}

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active
	now := a.now()
	active, completed := debt.Partition(a.state.Debts)
	sort.Slice(active, func(i, j int) bool { return active[i].DueDate.Before(active[j].DueDate) })

	if len(active) == 0 && len(completed) == 0 {
		return components.ContentCard("Debts", "No debts recorded.", cw)
	}

	inner := components.CardInnerWidth(cw)
	labelW := min(28, inner/3)
	barW := max(inner-labelW-50, 10)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for _, d := range active {
		st := debt.Status(d, now)
		hint := ""
		switch debt.Suggest(a.summary.DisposableIncome, st) {
		case model.SuggestPause:
			hint = "pause"
		case model.SuggestIncrease:
			hint = "pay more"
		case model.SuggestContinue:
			hint = "keep going"
		}
		b.WriteString(components.DebtBar(d.Name, st, labelW, barW))
		fmt.Fprintf(&b, " %s\n", muted.Render(fmt.Sprintf("%s left · %s · %s/wk %s",
			cli.FormatCompact(st.Remaining),
			cli.FormatDaysLeft(st.DaysLeft),
			cli.FormatCompact(st.WeeklyPaymentNeed.Round(0).IntPart()),
			hint)))
	}
	if len(completed) > 0 {
		fmt.Fprintf(&b, "\n%s", muted.Render(fmt.Sprintf("%d completed", len(completed))))
	}

	title := fmt.Sprintf("Active debts · weekly need %s", cli.FormatDecimal(debt.WeeklyContribution(a.state.Debts, now)))
	return components.ContentCard(title, strings.TrimRight(b.String(), "\n"), cw)
}

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	now := a.now()
	if len(a.state.Aspirations) == 0 {
		return components.ContentCard("Goals", "No aspirations yet.", cw)
	}

	goals := make([]model.Aspiration, len(a.state.Aspirations))
	copy(goals, a.state.Aspirations)
	sort.SliceStable(goals, func(i, j int) bool { return goals[i].IsPinned && !goals[j].IsPinned })

	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	good := lipgloss.NewStyle().Foreground(t.Positive)
	bad := lipgloss.NewStyle().Foreground(t.Negative)

	var b strings.Builder
	for _, g := range goals {
		pin := "  "
		if g.IsPinned {
			pin = "★ "
		}
		fmt.Fprintf(&b, "%s%s %s\n", pin, title.Render(truncStr(g.Title, 50)), muted.Render("["+string(g.Status)+"]"))

		f, ok := pipeline.Analyze(g, a.state, a.cfg.Costs(), now)
		if !ok {
			fmt.Fprintf(&b, "   %s\n", muted.Render("advice: "+string(pipeline.Advise(g.MotivationLevel, g.PreparednessLevel))))
			continue
		}

		eta := "never at current surplus"
		if !f.NeverAchievable {
			eta = fmt.Sprintf("%d months", f.MonthsToAchieve)
		}
		verdict := good.Render("realistic")
		if !f.IsRealistic {
			verdict = bad.Render("unrealistic")
		}
		fmt.Fprintf(&b, "   %s  %s  %s\n",
			muted.Render(cli.FormatAmount(g.TargetAmount)+" in "+eta),
			verdict,
			muted.Render("surplus "+cli.FormatDecimal(f.MonthlySurplus)+"/mo · "+string(f.Advice)))
		for _, r := range f.Risks {
			fmt.Fprintf(&b, "   %s\n", lipgloss.NewStyle().Foreground(t.Warning).Render("! "+r.Risk))
		}
	}

	return components.ContentCard("Aspirations", strings.TrimRight(b.String(), "\n"), cw)
}

func (a App) renderHolidaysTab(cw int) string {
	t := theme.Active
	if len(a.state.Holidays) == 0 {
		return components.ContentCard("Holidays", "No upcoming holidays.", cw)
	}

	off := lipgloss.NewStyle().Foreground(t.Positive)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for _, h := range a.state.Holidays {
		mark := muted.Render("○")
		if h.IsTakingOff {
			mark = off.Render("●")
		}
		fmt.Fprintf(&b, "%s %s  %s", mark, cli.FormatDate(h.Date), h.Name)
		if h.StartDate != "" && h.EndDate != "" {
			fmt.Fprintf(&b, "  %s", muted.Render(h.StartDate+" → "+h.EndDate))
		}
		if h.Note != "" {
			fmt.Fprintf(&b, "  %s", muted.Render(truncStr(h.Note, 40)))
		}
		b.WriteString("\n")
	}

	title := fmt.Sprintf("Holidays · %s days off available this window",
		cli.FormatDays(int64(a.summary.DaysOffCanTake), a.summary.DaysOffUnbounded))
	return components.ContentCard(title, strings.TrimRight(b.String(), "\n"), cw)
}
