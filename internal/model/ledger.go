// Package model defines the ledger entities and the derived views computed from them.
package model

import "time"

// TransactionType distinguishes contributions to a debt from money taken back out.
type TransactionType string

const (
	Payment    TransactionType = "payment"
	Withdrawal TransactionType = "withdrawal"
)

// IncomeLog records money received. Withdrawals from the savings buffer are
// recorded as income too, flagged so they can be told apart from earnings.
type IncomeLog struct {
	ID                  string
	Date                time.Time
	Amount              int64
	IsSavingsWithdrawal bool
}

// FoodLog records a food expense.
type FoodLog struct {
	ID     string
	Date   time.Time
	Amount int64
}

// MiscLog records a miscellaneous expense with a short label.
type MiscLog struct {
	ID     string
	Name   string
	Date   time.Time
	Amount int64
}

// FuelLog marks a day the tank was refilled.
type FuelLog struct {
	ID   string
	Date time.Time
}

// DebtTransaction is one entry of a debt's append-only payment history.
type DebtTransaction struct {
	ID     string
	Date   time.Time
	Amount int64
	Type   TransactionType
	Reason string // set for withdrawals
}

// Debt is an obligation paid down over time. AmountPaid is the running balance
// and is mutated together with each appended transaction.
type Debt struct {
	ID           string
	Name         string
	Source       string
	TotalAmount  int64
	AmountPaid   int64
	DueDate      time.Time
	CreatedAt    time.Time
	TargetMonth  time.Month // zero when unset
	TargetYear   int        // zero when unset
	Transactions []DebtTransaction
}

// Remaining is the unpaid balance. It goes negative on overpayment.
func (d Debt) Remaining() int64 {
	return d.TotalAmount - d.AmountPaid
}

// IsActive reports whether the debt still has a balance to pay.
func (d Debt) IsActive() bool {
	return d.AmountPaid < d.TotalAmount
}

// Attribution returns the budgeting month and year the debt is counted against,
// falling back to the due date for any unset field.
func (d Debt) Attribution() (time.Month, int) {
	month, year := d.TargetMonth, d.TargetYear
	if month == 0 {
		month = d.DueDate.Month()
	}
	if year == 0 {
		year = d.DueDate.Year()
	}
	return month, year
}

// Holiday is a calendar holiday with the user's annotations.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	IsTakingOff bool
	StartDate   string // YYYY-MM-DD, optional
	EndDate     string // YYYY-MM-DD, optional
	Note        string
}

type AspirationType string

const (
	Financial    AspirationType = "financial"
	NonFinancial AspirationType = "non-financial"
)

type AspirationStatus string

const (
	Pending   AspirationStatus = "pending"
	Achieved  AspirationStatus = "achieved"
	Cancelled AspirationStatus = "cancelled"
)

// Aspiration is a longer-term goal. Financial ones may carry a target amount
// and deadline; levels are 1-10 and zero means not rated.
type Aspiration struct {
	ID                string
	Type              AspirationType
	Title             string
	Description       string
	CreatedAt         time.Time
	TargetAmount      int64
	Deadline          time.Time
	MotivationLevel   int
	PreparednessLevel int
	Status            AspirationStatus
	IsPinned          bool
}

// Ledger is the complete persisted state.
type Ledger struct {
	FuelLogs                []FuelLog
	LastConnectivityPayment time.Time
	Debts                   []Debt
	IncomeLogs              []IncomeLog
	FoodLogs                []FoodLog
	MiscLogs                []MiscLog
	SavingsBalance          int64
	FoodBudget              int64
	MiscBudget              int64
	Holidays                []Holiday
	Aspirations             []Aspiration
}

// Clone returns a deep copy so callers can never alias store-owned slices.
func (l Ledger) Clone() Ledger {
	out := l
	out.FuelLogs = append([]FuelLog{}, l.FuelLogs...)
	out.IncomeLogs = append([]IncomeLog{}, l.IncomeLogs...)
	out.FoodLogs = append([]FoodLog{}, l.FoodLogs...)
	out.MiscLogs = append([]MiscLog{}, l.MiscLogs...)
	out.Holidays = append([]Holiday{}, l.Holidays...)
	out.Aspirations = append([]Aspiration{}, l.Aspirations...)
	out.Debts = make([]Debt, len(l.Debts))
	for i, d := range l.Debts {
		d.Transactions = append([]DebtTransaction{}, d.Transactions...)
		out.Debts[i] = d
	}
	return out
}
