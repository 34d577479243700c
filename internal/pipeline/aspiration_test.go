package pipeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/model"
)

func TestAnalyze(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	state := model.Ledger{
		FoodBudget: 300_000,
		IncomeLogs: []model.IncomeLog{
			{Amount: 1_000_000, Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.Local)},
			{Amount: 500_000, Date: time.Date(2025, 2, 4, 0, 0, 0, 0, time.Local)},
			{Amount: 1_500_000, Date: time.Date(2025, 2, 12, 0, 0, 0, 0, time.Local)},
		},
	}
	fixed := model.FixedCosts{Fuel: 70_000, Connectivity: 30_000}

	tests := []struct {
		name         string
		asp          model.Aspiration
		wantOK       bool
		wantMonths   int
		wantRealistc bool
		wantRisks    int
		wantAdvice   model.Advice
	}{
		{
			name:   "non-financial",
			asp:    model.Aspiration{Type: model.NonFinancial, TargetAmount: 1},
			wantOK: false,
		},
		{
			name:   "no target",
			asp:    model.Aspiration{Type: model.Financial},
			wantOK: false,
		},
		{
			// avg weekly 1,500,000; surplus 1,100,000/wk -> 4,400,000/mo
			name:         "reachable before deadline",
			asp:          model.Aspiration{Type: model.Financial, TargetAmount: 10_000_000, Deadline: now.AddDate(0, 0, 120), MotivationLevel: 9, PreparednessLevel: 9},
			wantOK:       true,
			wantMonths:   3,
			wantRealistc: true,
			wantAdvice:   model.AdviceActNow,
		},
		{
			name:         "too ambitious in tet season",
			asp:          model.Aspiration{Type: model.Financial, TargetAmount: 50_000_000, Deadline: time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local), MotivationLevel: 9, PreparednessLevel: 2},
			wantOK:       true,
			wantMonths:   12,
			wantRealistc: false,
			wantRisks:    1,
			wantAdvice:   model.AdvicePlanInDetail,
		},
		{
			name:         "no deadline",
			asp:          model.Aspiration{Type: model.Financial, TargetAmount: 4_400_000},
			wantOK:       true,
			wantMonths:   1,
			wantRealistc: true,
			wantAdvice:   model.AdviceReconsider,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Analyze(tt.asp, state, fixed, now)
			if ok != tt.wantOK {
				t.Fatalf("Analyze() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !f.MonthlySurplus.Equal(decimal.NewFromInt(4_400_000)) {
				t.Errorf("MonthlySurplus = %s, want 4400000", f.MonthlySurplus)
			}
			if f.MonthsToAchieve != tt.wantMonths {
				t.Errorf("MonthsToAchieve = %d, want %d", f.MonthsToAchieve, tt.wantMonths)
			}
			if f.IsRealistic != tt.wantRealistc {
				t.Errorf("IsRealistic = %v, want %v", f.IsRealistic, tt.wantRealistc)
			}
			if len(f.Risks) != tt.wantRisks {
				t.Errorf("len(Risks) = %d, want %d", len(f.Risks), tt.wantRisks)
			}
			if f.Advice != tt.wantAdvice {
				t.Errorf("Advice = %q, want %q", f.Advice, tt.wantAdvice)
			}
		})
	}
}

func TestAnalyzeWithoutSurplus(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	state := model.Ledger{FoodBudget: 315_000}
	a := model.Aspiration{Type: model.Financial, TargetAmount: 1_000, Deadline: now.AddDate(1, 0, 0)}
	f, ok := Analyze(a, state, model.FixedCosts{}, now)
	if !ok {
		t.Fatal("Analyze() ok = false")
	}
	if !f.NeverAchievable || f.IsRealistic {
		t.Errorf("never=%v realistic=%v, want true/false", f.NeverAchievable, f.IsRealistic)
	}
	if !f.WeeklySurplus.IsZero() {
		t.Errorf("WeeklySurplus = %s, want 0", f.WeeklySurplus)
	}
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		mot, prep int
		want      model.Advice
	}{
		{8, 8, model.AdviceActNow},
		{10, 4, model.AdvicePlanInDetail},
		{8, 5, model.AdviceReconsider},
		{4, 8, model.AdviceFindMotivation},
		{5, 9, model.AdviceReconsider},
		{0, 0, model.AdviceReconsider},
		{9, 0, model.AdviceReconsider},
	}
	for _, tt := range tests {
		if got := Advise(tt.mot, tt.prep); got != tt.want {
			t.Errorf("Advise(%d, %d) = %q, want %q", tt.mot, tt.prep, got, tt.want)
		}
	}
}

func TestAverageWeeklyIncomeAcrossYears(t *testing.T) {
	logs := []model.IncomeLog{
		// Same week number in different years must not collapse.
		{Amount: 100, Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local)},
		{Amount: 300, Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local)},
	}
	if got := AverageWeeklyIncome(logs); !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("AverageWeeklyIncome() = %s, want 200", got)
	}
	if got := AverageWeeklyIncome(nil); !got.IsZero() {
		t.Errorf("AverageWeeklyIncome(nil) = %s, want 0", got)
	}
}
