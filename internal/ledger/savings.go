package ledger

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
)

// DepositSurplus moves the window's positive financial status into savings and
// returns the amount moved. A zero or negative status deposits nothing.
func (s *Store) DepositSurplus(f model.Filter, fixed model.FixedCosts) (int64, error) {
	var moved int64
	err := s.mutate("savings.deposit", func(st *model.Ledger) error {
		sum, err := pipeline.Summarize(*st, f, fixed, s.now())
		if err != nil {
			return err
		}
		if sum.FinancialStatus <= 0 {
			return errUnchanged
		}
		moved = sum.FinancialStatus
		st.SavingsBalance += moved
		return nil
	})
	if err == nil && moved > 0 {
		s.log.Debug().Int64("amount", moved).Msg("surplus deposited")
	}
	return moved, err
}

// WithdrawSavings moves money out of savings and records it as income flagged
// as a savings withdrawal.
func (s *Store) WithdrawSavings(amount int64) (model.IncomeLog, error) {
	if err := positive(amount); err != nil {
		return model.IncomeLog{}, err
	}
	l := model.IncomeLog{ID: s.newID(), Date: s.now(), Amount: amount, IsSavingsWithdrawal: true}
	err := s.mutate("savings.withdraw", func(st *model.Ledger) error {
		if amount > st.SavingsBalance {
			return fmt.Errorf("withdrawing %d from savings of %d: %w", amount, st.SavingsBalance, model.ErrInsufficientBalance)
		}
		st.SavingsBalance -= amount
		st.IncomeLogs = append(st.IncomeLogs, l)
		return nil
	})
	if err != nil {
		return model.IncomeLog{}, err
	}
	return l, nil
}
