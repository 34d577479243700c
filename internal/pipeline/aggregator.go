// Package pipeline derives budget summaries, aspiration projections and
// tracker views from ledger state and the active filter.
package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/debt"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/window"
)

// Summarize computes planned-vs-actual totals for the filter window.
func Summarize(state model.Ledger, f model.Filter, fixed model.FixedCosts, now time.Time) (model.BudgetSummary, error) {
	if err := window.Validate(f); err != nil {
		return model.BudgetSummary{}, fmt.Errorf("summarizing budget: %w", err)
	}
	in := func(t time.Time) bool { return window.Matches(t, f) }

	s := model.BudgetSummary{
		Filter:        f,
		FixedExpenses: fixed.Total(),
		FoodBudget:    state.FoodBudget,
		MiscBudget:    state.MiscBudget,
	}
	for _, l := range state.IncomeLogs {
		if in(l.Date) {
			s.FilteredIncome += l.Amount
		}
	}
	for _, l := range state.FoodLogs {
		if in(l.Date) {
			s.FilteredFood += l.Amount
		}
	}
	for _, l := range state.MiscLogs {
		if in(l.Date) {
			s.FilteredMisc += l.Amount
		}
	}
	s.FilteredDebtPayments = debt.PaymentsIn(state.Debts, in)

	s.WeeklyDebtContribution = debt.WeeklyContribution(state.Debts, now)
	s.TotalPlannedSpending = decimal.NewFromInt(s.FixedExpenses + s.FoodBudget + s.MiscBudget).
		Add(s.WeeklyDebtContribution)
	s.TotalActualSpending = s.FixedExpenses + s.FilteredFood + s.FilteredMisc + s.FilteredDebtPayments

	s.FinancialStatus = s.FilteredIncome - s.TotalActualSpending
	s.DisposableIncome = s.FilteredIncome - (s.FixedExpenses + s.FilteredFood + s.FilteredMisc)

	s.DaysOffCanTake, s.DaysOffUnbounded = daysOff(s.FilteredIncome, s.TotalActualSpending)
	return s, nil
}

// daysOff estimates how many spending-free days the surplus sustains at a
// daily burn of a seventh of actual spending, whatever the window length.
func daysOff(income, actual int64) (int, bool) {
	if actual <= 0 {
		return 0, true
	}
	surplus := income - actual
	if surplus <= 0 {
		return 0, false
	}
	// floor(surplus / (actual / 7)) kept exact in integers.
	return int(surplus * 7 / actual), false
}

// Daily returns one entry per calendar day from since through until, most
// recent first, with days lacking activity filled in as zeros.
func Daily(state model.Ledger, since, until time.Time) []model.DailyFlow {
	loc := since.Location()
	byDay := make(map[string]*model.DailyFlow)
	day := dayStart(since, loc)
	end := dayStart(until, loc)
	for !day.After(end) {
		byDay[day.Format("2006-01-02")] = &model.DailyFlow{Date: day}
		day = day.AddDate(0, 0, 1)
	}
	bucket := func(t time.Time) *model.DailyFlow {
		return byDay[t.In(loc).Format("2006-01-02")]
	}

	for _, l := range state.IncomeLogs {
		if d := bucket(l.Date); d != nil {
			d.Income += l.Amount
		}
	}
	for _, l := range state.FoodLogs {
		if d := bucket(l.Date); d != nil {
			d.Food += l.Amount
		}
	}
	for _, l := range state.MiscLogs {
		if d := bucket(l.Date); d != nil {
			d.Misc += l.Amount
		}
	}
	for _, dt := range state.Debts {
		for _, tx := range dt.Transactions {
			if tx.Type != model.Payment {
				continue
			}
			if d := bucket(tx.Date); d != nil {
				d.DebtPayments += tx.Amount
			}
		}
	}

	days := make([]model.DailyFlow, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// calendarDays counts midnights crossed going from a to b in a's location.
func calendarDays(a, b time.Time) int {
	loc := a.Location()
	from, to := dayStart(a, loc), dayStart(b, loc)
	// Round to absorb DST shifts.
	return int(to.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}
