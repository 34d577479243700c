package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/theirongolddev/tally/internal/model"
)

// Export builds the backup document for l.
func Export(l model.Ledger) Document {
	doc := Document{
		GasHistory:     make([]fuelDoc, 0, len(l.FuelLogs)),
		Debts:          make([]debtDoc, 0, len(l.Debts)),
		IncomeLogs:     make([]incomeDoc, 0, len(l.IncomeLogs)),
		FoodLogs:       make([]foodDoc, 0, len(l.FoodLogs)),
		MiscLogs:       make([]miscDoc, 0, len(l.MiscLogs)),
		SavingsBalance: l.SavingsBalance,
		FoodBudget:     l.FoodBudget,
		MiscBudget:     l.MiscBudget,
		Holidays:       make([]holidayDoc, 0, len(l.Holidays)),
		Aspirations:    make([]aspirationDoc, 0, len(l.Aspirations)),
	}
	if !l.LastConnectivityPayment.IsZero() {
		t := at(l.LastConnectivityPayment)
		doc.LastWifiPayment = &t
	}
	for _, f := range l.FuelLogs {
		doc.GasHistory = append(doc.GasHistory, fuelDoc{ID: f.ID, Date: at(f.Date)})
	}
	for _, i := range l.IncomeLogs {
		doc.IncomeLogs = append(doc.IncomeLogs, incomeDoc{
			ID: i.ID, Date: at(i.Date), Amount: i.Amount, IsSavingsWithdrawal: i.IsSavingsWithdrawal,
		})
	}
	for _, f := range l.FoodLogs {
		doc.FoodLogs = append(doc.FoodLogs, foodDoc{ID: f.ID, Amount: f.Amount, Date: at(f.Date)})
	}
	for _, m := range l.MiscLogs {
		doc.MiscLogs = append(doc.MiscLogs, miscDoc{ID: m.ID, Name: m.Name, Amount: m.Amount, Date: at(m.Date)})
	}
	for _, d := range l.Debts {
		dd := debtDoc{
			ID:           d.ID,
			Name:         d.Name,
			Source:       d.Source,
			TotalAmount:  d.TotalAmount,
			AmountPaid:   d.AmountPaid,
			DueDate:      at(d.DueDate),
			CreatedAt:    at(d.CreatedAt),
			Transactions: make([]transactionDoc, 0, len(d.Transactions)),
		}
		if d.TargetMonth != 0 {
			m := int(d.TargetMonth) - 1
			dd.TargetMonth = &m
		}
		if d.TargetYear != 0 {
			y := d.TargetYear
			dd.TargetYear = &y
		}
		for _, tx := range d.Transactions {
			dd.Transactions = append(dd.Transactions, transactionDoc{
				ID: tx.ID, Date: at(tx.Date), Amount: tx.Amount, Reason: tx.Reason, Type: string(tx.Type),
			})
		}
		doc.Debts = append(doc.Debts, dd)
	}
	for _, h := range l.Holidays {
		doc.Holidays = append(doc.Holidays, holidayDoc{
			ID: h.ID, Name: h.Name, Date: at(h.Date), IsTakingOff: h.IsTakingOff,
			StartDate: h.StartDate, EndDate: h.EndDate, Note: h.Note,
		})
	}
	for _, a := range l.Aspirations {
		ad := aspirationDoc{
			ID:          a.ID,
			Type:        string(a.Type),
			Title:       a.Title,
			Description: a.Description,
			CreatedAt:   at(a.CreatedAt),
			Status:      string(a.Status),
			IsPinned:    a.IsPinned,
		}
		if a.TargetAmount != 0 {
			v := a.TargetAmount
			ad.TargetAmount = &v
		}
		if !a.Deadline.IsZero() {
			v := at(a.Deadline)
			ad.Deadline = &v
		}
		if a.MotivationLevel != 0 {
			v := a.MotivationLevel
			ad.MotivationLevel = &v
		}
		if a.PreparednessLevel != 0 {
			v := a.PreparednessLevel
			ad.PreparednessLevel = &v
		}
		doc.Aspirations = append(doc.Aspirations, ad)
	}
	return doc
}

// Import rebuilds ledger state from doc, validating it as it goes. Missing
// collections become empty.
func Import(doc Document) (model.Ledger, error) {
	l := model.Ledger{
		SavingsBalance: doc.SavingsBalance,
		FoodBudget:     doc.FoodBudget,
		MiscBudget:     doc.MiscBudget,
		FuelLogs:       make([]model.FuelLog, 0, len(doc.GasHistory)),
		IncomeLogs:     make([]model.IncomeLog, 0, len(doc.IncomeLogs)),
		FoodLogs:       make([]model.FoodLog, 0, len(doc.FoodLogs)),
		MiscLogs:       make([]model.MiscLog, 0, len(doc.MiscLogs)),
		Debts:          make([]model.Debt, 0, len(doc.Debts)),
		Holidays:       make([]model.Holiday, 0, len(doc.Holidays)),
		Aspirations:    make([]model.Aspiration, 0, len(doc.Aspirations)),
	}
	if doc.LastWifiPayment != nil {
		l.LastConnectivityPayment = doc.LastWifiPayment.Time
	}

	for i, f := range doc.GasHistory {
		if err := entry("gasHistory", i, f.ID, f.Date.Time, 0); err != nil {
			return model.Ledger{}, err
		}
		l.FuelLogs = append(l.FuelLogs, model.FuelLog{ID: f.ID, Date: f.Date.Time})
	}
	for i, in := range doc.IncomeLogs {
		if err := entry("incomeLogs", i, in.ID, in.Date.Time, in.Amount); err != nil {
			return model.Ledger{}, err
		}
		l.IncomeLogs = append(l.IncomeLogs, model.IncomeLog{
			ID: in.ID, Date: in.Date.Time, Amount: in.Amount, IsSavingsWithdrawal: in.IsSavingsWithdrawal,
		})
	}
	for i, f := range doc.FoodLogs {
		if err := entry("foodLogs", i, f.ID, f.Date.Time, f.Amount); err != nil {
			return model.Ledger{}, err
		}
		l.FoodLogs = append(l.FoodLogs, model.FoodLog{ID: f.ID, Date: f.Date.Time, Amount: f.Amount})
	}
	for i, m := range doc.MiscLogs {
		if err := entry("miscLogs", i, m.ID, m.Date.Time, m.Amount); err != nil {
			return model.Ledger{}, err
		}
		l.MiscLogs = append(l.MiscLogs, model.MiscLog{ID: m.ID, Name: m.Name, Date: m.Date.Time, Amount: m.Amount})
	}
	for i, dd := range doc.Debts {
		d, err := importDebt(i, dd)
		if err != nil {
			return model.Ledger{}, err
		}
		l.Debts = append(l.Debts, d)
	}
	for i, h := range doc.Holidays {
		if err := entry("holidays", i, h.ID, h.Date.Time, 0); err != nil {
			return model.Ledger{}, err
		}
		l.Holidays = append(l.Holidays, model.Holiday{
			ID: h.ID, Name: h.Name, Date: h.Date.Time, IsTakingOff: h.IsTakingOff,
			StartDate: h.StartDate, EndDate: h.EndDate, Note: h.Note,
		})
	}
	for i, ad := range doc.Aspirations {
		a, err := importAspiration(i, ad)
		if err != nil {
			return model.Ledger{}, err
		}
		l.Aspirations = append(l.Aspirations, a)
	}
	return l, nil
}

func importDebt(i int, dd debtDoc) (model.Debt, error) {
	if err := entry("debts", i, dd.ID, dd.DueDate.Time, dd.AmountPaid); err != nil {
		return model.Debt{}, err
	}
	if dd.TotalAmount <= 0 {
		return model.Debt{}, malformed("debts[%d]: totalAmount must be positive", i)
	}
	d := model.Debt{
		ID:           dd.ID,
		Name:         dd.Name,
		Source:       dd.Source,
		TotalAmount:  dd.TotalAmount,
		AmountPaid:   dd.AmountPaid,
		DueDate:      dd.DueDate.Time,
		CreatedAt:    dd.CreatedAt.Time,
		Transactions: make([]model.DebtTransaction, 0, len(dd.Transactions)),
	}
	if dd.TargetMonth != nil {
		if *dd.TargetMonth < 0 || *dd.TargetMonth > 11 {
			return model.Debt{}, malformed("debts[%d]: targetMonth %d outside 0-11", i, *dd.TargetMonth)
		}
		d.TargetMonth = time.Month(*dd.TargetMonth + 1)
	}
	if dd.TargetYear != nil {
		d.TargetYear = *dd.TargetYear
	}
	for j, tx := range dd.Transactions {
		where := fmt.Sprintf("debts[%d].transactions", i)
		if err := entry(where, j, tx.ID, tx.Date.Time, tx.Amount); err != nil {
			return model.Debt{}, err
		}
		typ := model.TransactionType(tx.Type)
		if typ != model.Payment && typ != model.Withdrawal {
			return model.Debt{}, malformed("%s[%d]: unknown type %q", where, j, tx.Type)
		}
		d.Transactions = append(d.Transactions, model.DebtTransaction{
			ID: tx.ID, Date: tx.Date.Time, Amount: tx.Amount, Type: typ, Reason: tx.Reason,
		})
	}
	return d, nil
}

func importAspiration(i int, ad aspirationDoc) (model.Aspiration, error) {
	if ad.ID == "" {
		return model.Aspiration{}, malformed("aspirations[%d]: missing id", i)
	}
	a := model.Aspiration{
		ID:          ad.ID,
		Type:        model.AspirationType(ad.Type),
		Title:       ad.Title,
		Description: ad.Description,
		CreatedAt:   ad.CreatedAt.Time,
		Status:      model.AspirationStatus(ad.Status),
		IsPinned:    ad.IsPinned,
	}
	if a.Type != model.Financial && a.Type != model.NonFinancial {
		return model.Aspiration{}, malformed("aspirations[%d]: unknown type %q", i, ad.Type)
	}
	if a.Status == "" {
		a.Status = model.Pending
	}
	if ad.TargetAmount != nil {
		a.TargetAmount = *ad.TargetAmount
	}
	if ad.Deadline != nil {
		a.Deadline = ad.Deadline.Time
	}
	if ad.MotivationLevel != nil {
		a.MotivationLevel = *ad.MotivationLevel
	}
	if ad.PreparednessLevel != nil {
		a.PreparednessLevel = *ad.PreparednessLevel
	}
	return a, nil
}

// Encode writes the backup for l as indented JSON.
func Encode(l model.Ledger) ([]byte, error) {
	b, err := json.MarshalIndent(Export(l), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return b, nil
}

// Decode parses and validates a backup. Every failure wraps ErrMalformedImport
// and no state is returned with it.
func Decode(data []byte) (model.Ledger, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return model.Ledger{}, malformed("document is not a JSON object")
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Ledger{}, fmt.Errorf("%w: %v", model.ErrMalformedImport, err)
	}
	return Import(doc)
}

func entry(collection string, i int, id string, date time.Time, amount int64) error {
	if id == "" {
		return malformed("%s[%d]: missing id", collection, i)
	}
	if date.IsZero() {
		return malformed("%s[%d]: missing date", collection, i)
	}
	if amount < 0 {
		return malformed("%s[%d]: negative amount %d", collection, i, amount)
	}
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{model.ErrMalformedImport}, args...)...)
}
