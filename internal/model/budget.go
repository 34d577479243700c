package model

import "github.com/shopspring/decimal"

// FixedCosts are the flat recurring fees charged once per their own cadence.
type FixedCosts struct {
	Fuel         int64
	Connectivity int64
}

// Total is the combined fixed expense.
func (f FixedCosts) Total() int64 {
	return f.Fuel + f.Connectivity
}

// BudgetSummary holds planned-vs-actual totals for one filter window.
type BudgetSummary struct {
	Filter Filter

	FilteredIncome       int64
	FilteredFood         int64
	FilteredMisc         int64
	FilteredDebtPayments int64
	FixedExpenses        int64
	FoodBudget           int64
	MiscBudget           int64

	WeeklyDebtContribution decimal.Decimal
	TotalPlannedSpending   decimal.Decimal
	TotalActualSpending    int64

	// FinancialStatus is positive for a surplus and negative for a deficit.
	FinancialStatus  int64
	DisposableIncome int64

	DaysOffCanTake   int
	DaysOffUnbounded bool
}
