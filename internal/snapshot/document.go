// Package snapshot converts ledger state to and from the portable JSON backup
// document. Timestamps are RFC 3339 text; months are zero-based on the wire.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"
)

// stamp is a timestamp that also decodes bare dates. Date-only text is UTC
// midnight and text without an offset is local time.
type stamp struct{ time.Time }

var stampLayouts = []struct {
	layout string
	loc    *time.Location
}{
	{time.RFC3339Nano, time.UTC},
	{"2006-01-02T15:04:05.999999999", time.Local},
	{"2006-01-02T15:04", time.Local},
	{"2006-01-02", time.UTC},
}

func at(t time.Time) stamp { return stamp{t} }

func (s *stamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if text == "" {
		return nil
	}
	for _, l := range stampLayouts {
		if t, err := time.ParseInLocation(l.layout, text, l.loc); err == nil {
			s.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", text)
}

// Document is the backup shape. Unknown top-level fields are ignored on decode.
type Document struct {
	GasHistory      []fuelDoc       `json:"gasHistory"`
	LastWifiPayment *stamp          `json:"lastWifiPayment"`
	Debts           []debtDoc       `json:"debts"`
	IncomeLogs      []incomeDoc     `json:"incomeLogs"`
	FoodLogs        []foodDoc       `json:"foodLogs"`
	MiscLogs        []miscDoc       `json:"miscLogs"`
	SavingsBalance  int64           `json:"savingsBalance"`
	FoodBudget      int64           `json:"foodBudget"`
	MiscBudget      int64           `json:"miscBudget"`
	Holidays        []holidayDoc    `json:"holidays"`
	Aspirations     []aspirationDoc `json:"aspirations"`
}

type fuelDoc struct {
	ID   string `json:"id"`
	Date stamp  `json:"date"`
}

type incomeDoc struct {
	ID                  string `json:"id"`
	Date                stamp  `json:"date"`
	Amount              int64  `json:"amount"`
	IsSavingsWithdrawal bool   `json:"isSavingsWithdrawal,omitempty"`
}

type foodDoc struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Date   stamp  `json:"date"`
}

type miscDoc struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Date   stamp  `json:"date"`
}

type transactionDoc struct {
	ID     string `json:"id"`
	Date   stamp  `json:"date"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason,omitempty"`
	Type   string `json:"type"`
}

type debtDoc struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Source       string           `json:"source"`
	TotalAmount  int64            `json:"totalAmount"`
	AmountPaid   int64            `json:"amountPaid"`
	DueDate      stamp            `json:"dueDate"`
	CreatedAt    stamp            `json:"createdAt"`
	TargetMonth  *int             `json:"targetMonth,omitempty"` // 0-11
	TargetYear   *int             `json:"targetYear,omitempty"`
	Transactions []transactionDoc `json:"transactions"`
}

type holidayDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        stamp  `json:"date"`
	IsTakingOff bool   `json:"isTakingOff"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Note        string `json:"note,omitempty"`
}

type aspirationDoc struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	CreatedAt         stamp  `json:"createdAt"`
	TargetAmount      *int64 `json:"targetAmount,omitempty"`
	Deadline          *stamp `json:"deadline,omitempty"`
	MotivationLevel   *int   `json:"motivationLevel,omitempty"`
	PreparednessLevel *int   `json:"preparednessLevel,omitempty"`
	Status            string `json:"status"`
	IsPinned          bool   `json:"isPinned,omitempty"`
}
