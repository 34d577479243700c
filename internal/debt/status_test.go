package debt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tally/internal/model"
)

func TestStatusAmortization(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	d := model.Debt{TotalAmount: 1_000_000, DueDate: now.Add(14 * 24 * time.Hour)}

	s := Status(d, now)
	if s.WeeksRemaining != 2 || !s.WeeklyPaymentNeed.Equal(decimal.NewFromInt(500_000)) {
		t.Errorf("unpaid: weeks=%d need=%s, want 2 / 500000", s.WeeksRemaining, s.WeeklyPaymentNeed)
	}

	d.AmountPaid = 300_000
	s = Status(d, now)
	if s.Remaining != 700_000 {
		t.Errorf("Remaining = %d, want 700000", s.Remaining)
	}
	if !s.WeeklyPaymentNeed.Equal(decimal.NewFromInt(350_000)) {
		t.Errorf("WeeklyPaymentNeed = %s, want 350000", s.WeeklyPaymentNeed)
	}
	if s.Level != model.OnTrack || s.IsOverdue {
		t.Errorf("Level = %v overdue=%v, want on-track", s.Level, s.IsOverdue)
	}
	if s.Progress != 0.3 {
		t.Errorf("Progress = %v, want 0.3", s.Progress)
	}
}

func TestStatusNeedMonotonic(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	d := model.Debt{TotalAmount: 900_000, DueDate: now.AddDate(0, 0, 40)}
	prev := Status(d, now).WeeklyPaymentNeed
	for paid := int64(0); paid <= 1_000_000; paid += 50_000 {
		d.AmountPaid = paid
		need := Status(d, now).WeeklyPaymentNeed
		if need.GreaterThan(prev) {
			t.Fatalf("need rose from %s to %s at paid=%d", prev, need, paid)
		}
		prev = need
	}
	if !prev.IsZero() {
		t.Errorf("overpaid need = %s, want 0", prev)
	}
}

func TestStatusDueWithinAWeek(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	tests := []struct {
		name      string
		due       time.Time
		wantDays  int
		wantLevel model.StatusLevel
		overdue   bool
	}{
		{"in seven days", now.AddDate(0, 0, 7), 7, model.OnTrack, false},
		{"in two days", now.AddDate(0, 0, 2), 2, model.Urgent, false},
		{"in a few hours", now.Add(3 * time.Hour), 1, model.Urgent, false},
		{"two days late", now.AddDate(0, 0, -2), -2, model.Overdue, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Status(model.Debt{TotalAmount: 210_000, AmountPaid: 10_000, DueDate: tt.due}, now)
			if s.DaysLeft != tt.wantDays {
				t.Errorf("DaysLeft = %d, want %d", s.DaysLeft, tt.wantDays)
			}
			if s.Level != tt.wantLevel {
				t.Errorf("Level = %v, want %v", s.Level, tt.wantLevel)
			}
			if s.IsOverdue != tt.overdue {
				t.Errorf("IsOverdue = %v, want %v", s.IsOverdue, tt.overdue)
			}
			if s.WeeksRemaining != 1 || !s.WeeklyPaymentNeed.Equal(decimal.NewFromInt(200_000)) {
				t.Errorf("weeks=%d need=%s, want the full remaining balance", s.WeeksRemaining, s.WeeklyPaymentNeed)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	need := model.DebtStatus{Remaining: 100, WeeklyPaymentNeed: decimal.NewFromInt(100)}
	tests := []struct {
		name       string
		disposable int64
		status     model.DebtStatus
		want       model.Suggestion
	}{
		{"paid off", 1_000, model.DebtStatus{Remaining: 0}, model.SuggestNone},
		{"overpaid", 1_000, model.DebtStatus{Remaining: -50}, model.SuggestNone},
		{"no disposable", 0, need, model.SuggestPause},
		{"deficit", -10, need, model.SuggestPause},
		{"plenty", 201, need, model.SuggestIncrease},
		{"exactly double", 200, need, model.SuggestContinue},
		{"tight", 50, need, model.SuggestContinue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.disposable, tt.status); got != tt.want {
				t.Errorf("Suggest(%d) = %q, want %q", tt.disposable, got, tt.want)
			}
		})
	}
}

func TestWeeklyContribution(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	debts := []model.Debt{
		{TotalAmount: 1_000_000, DueDate: now.AddDate(0, 0, 14)},                    // 500000
		{TotalAmount: 300_000, AmountPaid: 100_000, DueDate: now.AddDate(0, 0, -3)}, // past due: 200000
		{TotalAmount: 400_000, AmountPaid: 400_000, DueDate: now.AddDate(0, 0, 21)}, // completed
		{TotalAmount: 300_000, DueDate: now.AddDate(0, 0, 21)},                      // 100000
	}
	got := WeeklyContribution(debts, now)
	if !got.Equal(decimal.NewFromInt(800_000)) {
		t.Errorf("WeeklyContribution() = %s, want 800000", got)
	}
}

func TestPaymentsIn(t *testing.T) {
	march := func(day int) time.Time { return time.Date(2025, 3, day, 0, 0, 0, 0, time.Local) }
	debts := []model.Debt{
		{TotalAmount: 10, AmountPaid: 10, Transactions: []model.DebtTransaction{
			{Amount: 10, Type: model.Payment, Date: march(2)},
		}},
		{TotalAmount: 100, AmountPaid: 20, Transactions: []model.DebtTransaction{
			{Amount: 50, Type: model.Payment, Date: march(3)},
			{Amount: 30, Type: model.Withdrawal, Date: march(4), Reason: "refund"},
			{Amount: 99, Type: model.Payment, Date: march(20)},
		}},
	}
	inFirstWeek := func(t time.Time) bool { return t.Day() <= 7 }
	if got := PaymentsIn(debts, inFirstWeek); got != 60 {
		t.Errorf("PaymentsIn() = %d, want 60", got)
	}
}

func TestForPeriod(t *testing.T) {
	debts := []model.Debt{
		{ID: "late", TotalAmount: 1, DueDate: time.Date(2025, 4, 20, 0, 0, 0, 0, time.Local)},
		{ID: "attributed", TotalAmount: 1, DueDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local), TargetMonth: time.April, TargetYear: 2025},
		{ID: "billed-march", TotalAmount: 1, DueDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local), TargetMonth: time.March, TargetYear: 2025},
		{ID: "done", TotalAmount: 1, AmountPaid: 1, DueDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)},
	}
	got := ForPeriod(debts, time.April, 2025)
	if len(got) != 2 || got[0].ID != "attributed" || got[1].ID != "late" {
		ids := make([]string, len(got))
		for i, d := range got {
			ids[i] = d.ID
		}
		t.Errorf("ForPeriod(April) = %v, want [attributed late]", ids)
	}

	active, completed := Partition(debts)
	if len(active) != 3 || len(completed) != 1 {
		t.Errorf("Partition() = %d/%d, want 3/1", len(active), len(completed))
	}
}

func TestHistory(t *testing.T) {
	d := model.Debt{Transactions: []model.DebtTransaction{
		{ID: "a", Amount: 300, Type: model.Payment},
		{ID: "b", Amount: 500, Type: model.Withdrawal, Reason: "oops"},
		{ID: "c", Amount: 200, Type: model.Payment},
	}}
	h := History(d)
	if h[0].ID != "c" || h[2].ID != "a" {
		t.Errorf("History() order = %s..%s, want c..a", h[0].ID, h[2].ID)
	}
	if d.Transactions[0].ID != "a" {
		t.Error("History() mutated the debt's transactions")
	}
}
