package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusLevel buckets a debt's urgency for display.
type StatusLevel int

const (
	OnTrack StatusLevel = iota
	Urgent
	Overdue
)

func (l StatusLevel) String() string {
	switch l {
	case Urgent:
		return "urgent"
	case Overdue:
		return "overdue"
	default:
		return "on-track"
	}
}

// DebtStatus is derived fresh from a debt and the current time on every read.
type DebtStatus struct {
	Remaining         int64
	IsOverdue         bool
	DaysLeft          int
	WeeksRemaining    int
	WeeklyPaymentNeed decimal.Decimal
	Level             StatusLevel
	Progress          float64 // 0-1
}

// Suggestion is the advisory contribution hint for a debt.
type Suggestion string

const (
	SuggestNone     Suggestion = ""
	SuggestPause    Suggestion = "pause"
	SuggestIncrease Suggestion = "increase"
	SuggestContinue Suggestion = "continue"
)

// Advice classifies an aspiration by motivation and preparedness.
type Advice string

const (
	AdviceActNow         Advice = "act-now"
	AdvicePlanInDetail   Advice = "plan-in-detail"
	AdviceFindMotivation Advice = "find-motivation"
	AdviceReconsider     Advice = "reconsider"
)

// Risk pairs a risk with the precaution it calls for.
type Risk struct {
	Risk       string
	Precaution string
}

// Feasibility is the savings projection for a financial aspiration.
type Feasibility struct {
	AvgWeeklyIncome decimal.Decimal
	WeeklySurplus   decimal.Decimal
	MonthlySurplus  decimal.Decimal

	MonthsToAchieve  int
	NeverAchievable  bool // no surplus to save from
	MonthsToDeadline int
	NoDeadline       bool

	IsRealistic bool
	Risks       []Risk
	Advice      Advice
}

// FixedCostStatus summarizes the fuel and connectivity trackers.
type FixedCostStatus struct {
	FuelFilledToday     bool
	FuelFillsInWindow   int
	LastFuelInterval    int // days between the last two fills
	HasFuelInterval     bool
	FuelIntervalShorter bool

	LastConnectivityPayment  time.Time
	ConnectivityPaidRecently bool
	ConnectivityDueSoon      bool
}

// DailyFlow is the money moved on one calendar day.
type DailyFlow struct {
	Date         time.Time
	Income       int64
	Food         int64
	Misc         int64
	DebtPayments int64
}

// Spending is the day's total outflow excluding fixed costs.
func (d DailyFlow) Spending() int64 {
	return d.Food + d.Misc + d.DebtPayments
}
