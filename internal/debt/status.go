package debt

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/model"
)

// urgentDays is the horizon at which a debt is flagged urgent.
const urgentDays = 3

// Status derives the amortization view of d at now.
func Status(d model.Debt, now time.Time) model.DebtStatus {
	remaining := d.Remaining()
	daysLeft := int(math.Ceil(d.DueDate.Sub(now).Hours() / 24))
	weeks := int(math.Ceil(float64(daysLeft) / 7))
	if weeks < 1 {
		weeks = 1
	}

	s := model.DebtStatus{
		Remaining:         remaining,
		IsOverdue:         now.After(d.DueDate) && remaining > 0,
		DaysLeft:          daysLeft,
		WeeksRemaining:    weeks,
		WeeklyPaymentNeed: decimal.Zero,
	}
	if remaining > 0 {
		s.WeeklyPaymentNeed = decimal.NewFromInt(remaining).Div(decimal.NewFromInt(int64(weeks)))
	}

	switch {
	case daysLeft < 0:
		s.Level = model.Overdue
	case daysLeft <= urgentDays:
		s.Level = model.Urgent
	default:
		s.Level = model.OnTrack
	}

	if d.TotalAmount > 0 {
		s.Progress = math.Min(float64(d.AmountPaid)/float64(d.TotalAmount), 1)
	}
	return s
}

// Suggest returns the contribution hint for a debt given the income left after
// non-debt obligations.
func Suggest(disposable int64, s model.DebtStatus) model.Suggestion {
	switch {
	case s.Remaining <= 0:
		return model.SuggestNone
	case disposable <= 0:
		return model.SuggestPause
	case decimal.NewFromInt(disposable).GreaterThan(s.WeeklyPaymentNeed.Mul(decimal.NewFromInt(2))):
		return model.SuggestIncrease
	default:
		return model.SuggestContinue
	}
}

// WeeklyContribution sums the weekly payment need of every active debt. Debts
// past due contribute their whole remaining balance.
func WeeklyContribution(debts []model.Debt, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if !d.IsActive() {
			continue
		}
		total = total.Add(Status(d, now).WeeklyPaymentNeed)
	}
	return total
}

// PaymentsIn sums payment transactions across all debts, active or completed,
// for which match returns true. Withdrawals are not counted.
func PaymentsIn(debts []model.Debt, match func(time.Time) bool) int64 {
	var total int64
	for _, d := range debts {
		for _, tx := range d.Transactions {
			if tx.Type == model.Payment && match(tx.Date) {
				total += tx.Amount
			}
		}
	}
	return total
}

// ForPeriod returns the active debts attributed to month/year, soonest due first.
func ForPeriod(debts []model.Debt, month time.Month, year int) []model.Debt {
	var out []model.Debt
	for _, d := range debts {
		if !d.IsActive() {
			continue
		}
		if m, y := d.Attribution(); m == month && y == year {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// Partition splits debts into active and completed, preserving order.
func Partition(debts []model.Debt) (active, completed []model.Debt) {
	for _, d := range debts {
		if d.IsActive() {
			active = append(active, d)
		} else {
			completed = append(completed, d)
		}
	}
	return active, completed
}

// History returns d's transactions most recent first.
func History(d model.Debt) []model.DebtTransaction {
	out := make([]model.DebtTransaction, len(d.Transactions))
	for i, tx := range d.Transactions {
		out[len(out)-1-i] = tx
	}
	return out
}
