package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/model"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.Local)
}

// March 3-9 2025 is ISO week 10.
var week10 = model.Filter{Kind: model.FilterWeek, Year: 2025, Week: 10}

func TestSummarizeScenario(t *testing.T) {
	state := model.Ledger{
		FoodBudget: 315_000,
		IncomeLogs: []model.IncomeLog{
			{Amount: 1_500_000, Date: day(3)},
			{Amount: 500_000, Date: day(7)},
			{Amount: 9_999_999, Date: day(17)}, // outside window
		},
		FoodLogs: []model.FoodLog{
			{Amount: 200_000, Date: day(4)},
			{Amount: 50_000, Date: day(9)},
		},
		MiscLogs: []model.MiscLog{{Name: "soap", Amount: 50_000, Date: day(5)}},
		Debts: []model.Debt{{
			TotalAmount: 1_000_000,
			AmountPaid:  70_000,
			DueDate:     day(5).AddDate(0, 1, 0),
			Transactions: []model.DebtTransaction{
				{Amount: 100_000, Type: model.Payment, Date: day(6)},
				{Amount: 30_000, Type: model.Withdrawal, Date: day(6), Reason: "mistake"},
			},
		}},
	}
	fixed := model.FixedCosts{Fuel: 70_000, Connectivity: 30_000}

	s, err := Summarize(state, week10, fixed, day(6))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	checks := []struct {
		name string
		got  int64
		want int64
	}{
		{"FilteredIncome", s.FilteredIncome, 2_000_000},
		{"FilteredFood", s.FilteredFood, 250_000},
		{"FilteredMisc", s.FilteredMisc, 50_000},
		{"FilteredDebtPayments", s.FilteredDebtPayments, 100_000},
		{"FixedExpenses", s.FixedExpenses, 100_000},
		{"TotalActualSpending", s.TotalActualSpending, 500_000},
		{"FinancialStatus", s.FinancialStatus, 1_500_000},
		{"DisposableIncome", s.DisposableIncome, 1_600_000},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	// 1,500,000 / (500,000 / 7) = 21
	if s.DaysOffCanTake != 21 || s.DaysOffUnbounded {
		t.Errorf("DaysOffCanTake = %d unbounded=%v, want 21", s.DaysOffCanTake, s.DaysOffUnbounded)
	}
	// 930,000 remaining over 5 weeks.
	wantPlanned := decimal.NewFromInt(100_000 + 315_000).Add(decimal.NewFromInt(186_000))
	if !s.TotalPlannedSpending.Equal(wantPlanned) {
		t.Errorf("TotalPlannedSpending = %s, want %s", s.TotalPlannedSpending, wantPlanned)
	}
}

func TestSummarizeDaysOff(t *testing.T) {
	tests := []struct {
		name          string
		income        int64
		fixed         model.FixedCosts
		wantDays      int
		wantUnbounded bool
	}{
		{"no spending", 1_000, model.FixedCosts{}, 0, true},
		{"deficit", 50, model.FixedCosts{Fuel: 100}, 0, false},
		{"break even", 100, model.FixedCosts{Fuel: 100}, 0, false},
		{"partial day", 110, model.FixedCosts{Fuel: 100}, 0, false},
		{"one week", 200, model.FixedCosts{Fuel: 100}, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := model.Ledger{IncomeLogs: []model.IncomeLog{{Amount: tt.income, Date: day(4)}}}
			s, err := Summarize(state, week10, tt.fixed, day(4))
			if err != nil {
				t.Fatalf("Summarize: %v", err)
			}
			if s.DaysOffCanTake != tt.wantDays || s.DaysOffUnbounded != tt.wantUnbounded {
				t.Errorf("days off = %d/%v, want %d/%v", s.DaysOffCanTake, s.DaysOffUnbounded, tt.wantDays, tt.wantUnbounded)
			}
		})
	}
}

func TestSummarizeRejectsMalformedFilter(t *testing.T) {
	_, err := Summarize(model.Ledger{}, model.Filter{Kind: model.FilterWeek, Year: 2025}, model.FixedCosts{}, day(1))
	if !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("Summarize() error = %v, want ErrInvalidArgument", err)
	}
}

func TestDaily(t *testing.T) {
	state := model.Ledger{
		IncomeLogs: []model.IncomeLog{{Amount: 1_000, Date: day(3)}},
		FoodLogs:   []model.FoodLog{{Amount: 40, Date: day(3)}, {Amount: 60, Date: day(5)}},
		MiscLogs:   []model.MiscLog{{Amount: 5, Date: day(20)}},
		Debts: []model.Debt{{Transactions: []model.DebtTransaction{
			{Amount: 300, Type: model.Payment, Date: day(5)},
			{Amount: 100, Type: model.Withdrawal, Date: day(5)},
		}}},
	}
	days := Daily(state, day(3), day(6))
	if len(days) != 4 {
		t.Fatalf("len = %d, want 4", len(days))
	}
	if days[0].Date.Day() != 6 || days[3].Date.Day() != 3 {
		t.Errorf("order = %d..%d, want 6..3", days[0].Date.Day(), days[3].Date.Day())
	}
	if days[3].Income != 1_000 || days[3].Food != 40 {
		t.Errorf("March 3 = %+v", days[3])
	}
	if days[1].Spending() != 360 {
		t.Errorf("March 5 spending = %d, want 360", days[1].Spending())
	}
	if days[0].Spending() != 0 {
		t.Errorf("March 6 spending = %d, want 0", days[0].Spending())
	}
}

func TestFixedCosts(t *testing.T) {
	now := day(10)
	f := model.Filter{Kind: model.FilterMonth, Year: 2025, Month: time.March}
	tests := []struct {
		name            string
		fuel            []time.Time
		connectivity    time.Time
		wantToday       bool
		wantInterval    int
		wantShorter     bool
		wantPaid        bool
		wantDueSoon     bool
		wantFillsInView int
	}{
		{
			name:      "no history",
			wantToday: false,
		},
		{
			name:            "unsorted fills with short gap",
			fuel:            []time.Time{day(10), day(2), day(7)},
			connectivity:    day(8),
			wantToday:       true,
			wantInterval:    3,
			wantShorter:     true,
			wantPaid:        true,
			wantFillsInView: 3,
		},
		{
			name:            "regular gap, connectivity nearly due",
			fuel:            []time.Time{day(1), time.Date(2025, 2, 20, 8, 0, 0, 0, time.Local)},
			connectivity:    day(4),
			wantInterval:    9,
			wantPaid:        true,
			wantDueSoon:     true,
			wantFillsInView: 1,
		},
		{
			name:         "connectivity lapsed",
			connectivity: day(1),
			wantDueSoon:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := model.Ledger{LastConnectivityPayment: tt.connectivity}
			for _, d := range tt.fuel {
				state.FuelLogs = append(state.FuelLogs, model.FuelLog{Date: d})
			}
			st := FixedCosts(state, f, now)
			if st.FuelFilledToday != tt.wantToday {
				t.Errorf("FuelFilledToday = %v, want %v", st.FuelFilledToday, tt.wantToday)
			}
			if st.HasFuelInterval != (len(tt.fuel) >= 2) || st.LastFuelInterval != tt.wantInterval {
				t.Errorf("interval = %d (has %v), want %d", st.LastFuelInterval, st.HasFuelInterval, tt.wantInterval)
			}
			if st.FuelIntervalShorter != tt.wantShorter {
				t.Errorf("FuelIntervalShorter = %v, want %v", st.FuelIntervalShorter, tt.wantShorter)
			}
			if st.ConnectivityPaidRecently != tt.wantPaid || st.ConnectivityDueSoon != tt.wantDueSoon {
				t.Errorf("connectivity paid=%v due=%v, want %v/%v", st.ConnectivityPaidRecently, st.ConnectivityDueSoon, tt.wantPaid, tt.wantDueSoon)
			}
			if st.FuelFillsInWindow != tt.wantFillsInView {
				t.Errorf("FuelFillsInWindow = %d, want %d", st.FuelFillsInWindow, tt.wantFillsInView)
			}
		})
	}
}
