package snapshot

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/tally/internal/model"
)

func utc(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fullLedger() model.Ledger {
	return model.Ledger{
		FuelLogs:                []model.FuelLog{{ID: "g1", Date: utc("2025-03-01T07:30:00Z")}},
		LastConnectivityPayment: utc("2025-03-02T10:00:00Z"),
		Debts: []model.Debt{
			{
				ID: "d1", Name: "SPayLater T2", Source: "Shopee",
				TotalAmount: 500_000, AmountPaid: 200_000,
				DueDate:     utc("2025-03-10T00:00:00Z"),
				CreatedAt:   utc("2025-02-20T08:00:00Z"),
				TargetMonth: time.February, TargetYear: 2025,
				Transactions: []model.DebtTransaction{
					{ID: "t1", Date: utc("2025-02-25T09:00:00Z"), Amount: 300_000, Type: model.Payment},
					{ID: "t2", Date: utc("2025-02-26T09:00:00Z"), Amount: 100_000, Type: model.Withdrawal, Reason: "refund"},
				},
			},
			{ID: "d2", Name: "Loan", TotalAmount: 10, DueDate: utc("2025-12-31T00:00:00Z"), CreatedAt: utc("2025-01-01T00:00:00Z"), Transactions: []model.DebtTransaction{}},
		},
		IncomeLogs: []model.IncomeLog{
			{ID: "i1", Date: utc("2025-03-03T12:00:00Z"), Amount: 2_000_000},
			{ID: "i2", Date: utc("2025-03-04T12:00:00Z"), Amount: 100_000, IsSavingsWithdrawal: true},
		},
		FoodLogs:       []model.FoodLog{{ID: "f1", Date: utc("2025-03-03T18:00:00Z"), Amount: 45_000}},
		MiscLogs:       []model.MiscLog{{ID: "m1", Name: "soap", Date: utc("2025-03-03T19:00:00Z"), Amount: 20_000}},
		SavingsBalance: 1_000_000,
		FoodBudget:     315_000,
		MiscBudget:     50_000,
		Holidays: []model.Holiday{
			{ID: "national-day-2025", Name: "National Day", Date: utc("2025-09-02T00:00:00Z"), IsTakingOff: true, StartDate: "2025-08-30", EndDate: "2025-09-03", Note: "trip"},
		},
		Aspirations: []model.Aspiration{
			{ID: "a1", Type: model.Financial, Title: "Bike", Description: "new bike", CreatedAt: utc("2025-01-05T00:00:00Z"), TargetAmount: 30_000_000, Deadline: utc("2026-01-20T00:00:00Z"), MotivationLevel: 9, PreparednessLevel: 4, Status: model.Pending, IsPinned: true},
			{ID: "a2", Type: model.NonFinancial, Title: "Read more", CreatedAt: utc("2025-01-06T00:00:00Z"), Status: model.Achieved},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	want := fullLedger()
	data, err := Encode(want)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExportWireShape(t *testing.T) {
	data, err := Encode(fullLedger())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"gasHistory", "lastWifiPayment", "debts", "incomeLogs", "foodLogs", "miscLogs", "savingsBalance", "foodBudget", "miscBudget", "holidays", "aspirations"} {
		assert.Contains(t, raw, key)
	}
	debts := raw["debts"].([]any)
	first := debts[0].(map[string]any)
	assert.Equal(t, float64(1), first["targetMonth"], "months are zero-based on the wire")
	assert.Equal(t, "2025-03-10T00:00:00Z", first["dueDate"])
	_, hasTarget := debts[1].(map[string]any)["targetMonth"]
	assert.False(t, hasTarget)
}

func TestDecodeToleratesMissingCollections(t *testing.T) {
	got, err := Decode([]byte(`{"savingsBalance": 42, "foodLogs": [{"id":"f","amount":5,"date":"2025-03-03T18:00:00.000Z"}], "extra": true}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.SavingsBalance)
	assert.Len(t, got.FoodLogs, 1)
	assert.NotNil(t, got.Debts)
	assert.Empty(t, got.Debts)
	assert.NotNil(t, got.Aspirations)
	assert.True(t, got.LastConnectivityPayment.IsZero())
}

func TestDecodeDebtWithoutTransactions(t *testing.T) {
	doc := `{"debts":[{"id":"1","name":"x","source":"","totalAmount":100,"amountPaid":0,
		"dueDate":"2025-04-10T00:00:00.000Z","createdAt":"2025-03-01T00:00:00.000Z","targetMonth":11,"targetYear":2024}]}`
	got, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, got.Debts, 1)
	assert.Equal(t, time.December, got.Debts[0].TargetMonth)
	assert.NotNil(t, got.Debts[0].Transactions)
}

func TestDecodeDateOnlyText(t *testing.T) {
	doc := `{
		"lastWifiPayment": "2025-03-02",
		"incomeLogs": [{"id":"i","amount":5,"date":"2025-03-03T08:15:00"}],
		"aspirations": [{"id":"a","type":"financial","title":"Laptop","createdAt":"2025-01-05","deadline":"2026-01-01"}]
	}`
	got, err := Decode([]byte(doc))
	require.NoError(t, err)

	assert.True(t, got.LastConnectivityPayment.Equal(utc("2025-03-02T00:00:00Z")))
	assert.Equal(t, time.Date(2025, time.March, 3, 8, 15, 0, 0, time.Local), got.IncomeLogs[0].Date)
	require.Len(t, got.Aspirations, 1)
	assert.True(t, got.Aspirations[0].Deadline.Equal(utc("2026-01-01T00:00:00Z")))
	assert.True(t, got.Aspirations[0].CreatedAt.Equal(utc("2025-01-05T00:00:00Z")))
}

func TestDecodeMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":          `garbage`,
		"array":             `[]`,
		"null":              `null`,
		"truncated":         `{"debts": [`,
		"wrong type":        `{"savingsBalance": "lots"}`,
		"bad date":          `{"foodLogs":[{"id":"f","amount":1,"date":"yesterday"}]}`,
		"missing date":      `{"incomeLogs":[{"id":"i","amount":1}]}`,
		"missing id":        `{"gasHistory":[{"date":"2025-03-03T00:00:00Z"}]}`,
		"negative amount":   `{"miscLogs":[{"id":"m","name":"x","amount":-1,"date":"2025-03-03T00:00:00Z"}]}`,
		"target month":      `{"debts":[{"id":"d","totalAmount":1,"dueDate":"2025-03-03T00:00:00Z","targetMonth":12}]}`,
		"transaction type":  `{"debts":[{"id":"d","totalAmount":1,"dueDate":"2025-03-03T00:00:00Z","transactions":[{"id":"t","amount":1,"date":"2025-03-03T00:00:00Z","type":"refund"}]}]}`,
		"zero total":        `{"debts":[{"id":"d","totalAmount":0,"dueDate":"2025-03-03T00:00:00Z"}]}`,
		"aspiration type":   `{"aspirations":[{"id":"a","type":"spiritual","title":"x"}]}`,
		"whitespace object": "   ",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrMalformedImport)
			assert.False(t, strings.Contains(err.Error(), "%!"), "bad format verb in %q", err)
		})
	}
}
