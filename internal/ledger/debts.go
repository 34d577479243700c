package ledger

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tally/internal/debt"
	"github.com/theirongolddev/tally/internal/model"
)

// DebtEdit carries the editable fields of a debt. Payment history and the
// paid balance are never touched by an edit.
type DebtEdit struct {
	Name        string
	Source      string
	TotalAmount int64
	DueDate     time.Time
	TargetMonth time.Month
	TargetYear  int
}

// Debt returns the debt with the given id.
func (s *Store) Debt(id string) (model.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.state.Debts {
		if d.ID == id {
			d.Transactions = append([]model.DebtTransaction{}, d.Transactions...)
			return d, nil
		}
	}
	return model.Debt{}, fmt.Errorf("debt %q: %w", id, model.ErrNotFound)
}

// AddDebts expands p and appends every resulting debt. An empty schedule is
// not an error.
func (s *Store) AddDebts(p debt.Plan) ([]model.Debt, error) {
	drafts, err := debt.Expand(p, s.now())
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, nil
	}
	for i := range drafts {
		drafts[i].ID = s.newID()
	}
	err = s.mutate("debt.add", func(st *model.Ledger) error {
		st.Debts = append(st.Debts, drafts...)
		return nil
	})
	return drafts, err
}

// RecordPayment appends a payment and raises the paid balance. Overpayment is
// allowed.
func (s *Store) RecordPayment(id string, amount int64, date time.Time) (model.Debt, error) {
	if err := positive(amount); err != nil {
		return model.Debt{}, err
	}
	tx := model.DebtTransaction{ID: s.newID(), Date: s.dateOrNow(date), Amount: amount, Type: model.Payment}
	var out model.Debt
	err := s.mutate("debt.pay", func(st *model.Ledger) error {
		d, err := findDebt(st, id)
		if err != nil {
			return err
		}
		d.AmountPaid += amount
		d.Transactions = append(d.Transactions, tx)
		out = *d
		return nil
	})
	if err == nil {
		s.log.Debug().Str("id", id).Int64("amount", amount).Msg("debt payment recorded")
	}
	return out, err
}

// RecordWithdrawal takes money back out of a debt's paid balance. It is
// rejected when amount exceeds the balance.
func (s *Store) RecordWithdrawal(id string, amount int64, reason string) (model.Debt, error) {
	if err := positive(amount); err != nil {
		return model.Debt{}, err
	}
	if reason == "" {
		return model.Debt{}, fmt.Errorf("%w: withdrawal reason is required", model.ErrInvalidArgument)
	}
	tx := model.DebtTransaction{ID: s.newID(), Date: s.now(), Amount: amount, Type: model.Withdrawal, Reason: reason}
	var out model.Debt
	err := s.mutate("debt.withdraw", func(st *model.Ledger) error {
		d, err := findDebt(st, id)
		if err != nil {
			return err
		}
		if amount > d.AmountPaid {
			return fmt.Errorf("withdrawing %d from debt %q with %d paid: %w", amount, id, d.AmountPaid, model.ErrInsufficientBalance)
		}
		d.AmountPaid = max(0, d.AmountPaid-amount)
		d.Transactions = append(d.Transactions, tx)
		out = *d
		return nil
	})
	if err == nil {
		s.log.Debug().Str("id", id).Int64("amount", amount).Msg("debt withdrawal recorded")
	}
	return out, err
}

// EditDebt replaces the editable fields of a debt.
func (s *Store) EditDebt(id string, e DebtEdit) (model.Debt, error) {
	if err := positive(e.TotalAmount); err != nil {
		return model.Debt{}, err
	}
	if e.Name == "" || e.DueDate.IsZero() {
		return model.Debt{}, fmt.Errorf("%w: debt name and due date are required", model.ErrInvalidArgument)
	}
	var out model.Debt
	err := s.mutate("debt.edit", func(st *model.Ledger) error {
		d, err := findDebt(st, id)
		if err != nil {
			return err
		}
		d.Name = e.Name
		d.Source = e.Source
		d.TotalAmount = e.TotalAmount
		d.DueDate = e.DueDate
		d.TargetMonth = e.TargetMonth
		d.TargetYear = e.TargetYear
		out = *d
		return nil
	})
	return out, err
}

// DeleteDebt removes a debt and its whole transaction history.
func (s *Store) DeleteDebt(id string) error {
	return s.mutate("debt.delete", func(st *model.Ledger) error {
		for i, d := range st.Debts {
			if d.ID == id {
				st.Debts = append(st.Debts[:i], st.Debts[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("debt %q: %w", id, model.ErrNotFound)
	})
}

func findDebt(st *model.Ledger, id string) (*model.Debt, error) {
	for i := range st.Debts {
		if st.Debts[i].ID == id {
			return &st.Debts[i], nil
		}
	}
	return nil, fmt.Errorf("debt %q: %w", id, model.ErrNotFound)
}
