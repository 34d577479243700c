package pipeline

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/debt"
	"github.com/theirongolddev/tally/internal/model"
)

// defaultLevel stands in for an unrated motivation or preparedness level.
const defaultLevel = 5

var seasonRisk = model.Risk{
	Risk:       "Deadline falls in the Lunar New Year season, when spending runs high.",
	Precaution: "Save faster in the months before the holiday.",
}

// Analyze projects savings toward a financial aspiration. It reports false for
// non-financial aspirations and those without a target amount.
func Analyze(a model.Aspiration, state model.Ledger, fixed model.FixedCosts, now time.Time) (model.Feasibility, bool) {
	if a.Type != model.Financial || a.TargetAmount <= 0 {
		return model.Feasibility{}, false
	}

	var f model.Feasibility
	f.AvgWeeklyIncome = AverageWeeklyIncome(state.IncomeLogs)

	surplus := f.AvgWeeklyIncome.
		Sub(decimal.NewFromInt(fixed.Total() + state.FoodBudget)).
		Sub(debt.WeeklyContribution(state.Debts, now))
	f.WeeklySurplus = decimal.Max(decimal.Zero, surplus)
	f.MonthlySurplus = f.WeeklySurplus.Mul(decimal.NewFromInt(4))

	if f.MonthlySurplus.IsPositive() {
		f.MonthsToAchieve = int(decimal.NewFromInt(a.TargetAmount).Div(f.MonthlySurplus).Ceil().IntPart())
	} else {
		f.NeverAchievable = true
	}

	if a.Deadline.IsZero() {
		f.NoDeadline = true
	} else {
		days := math.Ceil(a.Deadline.Sub(now).Hours() / 24)
		f.MonthsToDeadline = int(math.Ceil(days / 30))
		if m := a.Deadline.Month(); m == time.January || m == time.February {
			f.Risks = append(f.Risks, seasonRisk)
		}
	}

	switch {
	case f.NoDeadline:
		f.IsRealistic = true
	case f.NeverAchievable:
		f.IsRealistic = false
	default:
		f.IsRealistic = f.MonthsToAchieve <= f.MonthsToDeadline
	}

	f.Advice = Advise(a.MotivationLevel, a.PreparednessLevel)
	return f, true
}

// Advise classifies motivation and preparedness levels. Zero means unrated.
func Advise(motivation, preparedness int) model.Advice {
	if motivation == 0 {
		motivation = defaultLevel
	}
	if preparedness == 0 {
		preparedness = defaultLevel
	}
	switch {
	case motivation >= 8 && preparedness >= 8:
		return model.AdviceActNow
	case motivation >= 8 && preparedness < 5:
		return model.AdvicePlanInDetail
	case motivation < 5 && preparedness >= 8:
		return model.AdviceFindMotivation
	default:
		return model.AdviceReconsider
	}
}

// AverageWeeklyIncome divides all recorded income by the number of distinct
// ISO weeks holding at least one income log.
func AverageWeeklyIncome(logs []model.IncomeLog) decimal.Decimal {
	if len(logs) == 0 {
		return decimal.Zero
	}
	type isoWeek struct{ year, week int }
	weeks := make(map[isoWeek]struct{})
	var total int64
	for _, l := range logs {
		total += l.Amount
		y, w := l.Date.ISOWeek()
		weeks[isoWeek{y, w}] = struct{}{}
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(len(weeks))))
}
