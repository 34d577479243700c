package ledger

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tally/internal/model"
)

func positive(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", model.ErrInvalidArgument, amount)
	}
	return nil
}

// AddIncome appends an income log. A zero date means now.
func (s *Store) AddIncome(amount int64, date time.Time) (model.IncomeLog, error) {
	if err := positive(amount); err != nil {
		return model.IncomeLog{}, err
	}
	l := model.IncomeLog{ID: s.newID(), Date: s.dateOrNow(date), Amount: amount}
	err := s.mutate("income.add", func(st *model.Ledger) error {
		st.IncomeLogs = append(st.IncomeLogs, l)
		return nil
	})
	return l, err
}

// EditIncome corrects the amount of an income log. Its date and savings
// flag are kept.
func (s *Store) EditIncome(id string, amount int64) (model.IncomeLog, error) {
	if err := positive(amount); err != nil {
		return model.IncomeLog{}, err
	}
	var out model.IncomeLog
	err := s.mutate("income.edit", func(st *model.Ledger) error {
		for i := range st.IncomeLogs {
			if st.IncomeLogs[i].ID == id {
				st.IncomeLogs[i].Amount = amount
				out = st.IncomeLogs[i]
				return nil
			}
		}
		return fmt.Errorf("income %q: %w", id, model.ErrNotFound)
	})
	return out, err
}

// AddFood appends a food expense. A zero date means now.
func (s *Store) AddFood(amount int64, date time.Time) (model.FoodLog, error) {
	if err := positive(amount); err != nil {
		return model.FoodLog{}, err
	}
	l := model.FoodLog{ID: s.newID(), Date: s.dateOrNow(date), Amount: amount}
	err := s.mutate("food.add", func(st *model.Ledger) error {
		st.FoodLogs = append(st.FoodLogs, l)
		return nil
	})
	return l, err
}

// AddMisc appends a labelled miscellaneous expense. A zero date means now.
func (s *Store) AddMisc(name string, amount int64, date time.Time) (model.MiscLog, error) {
	if err := positive(amount); err != nil {
		return model.MiscLog{}, err
	}
	if name == "" {
		return model.MiscLog{}, fmt.Errorf("%w: expense name is required", model.ErrInvalidArgument)
	}
	l := model.MiscLog{ID: s.newID(), Name: name, Date: s.dateOrNow(date), Amount: amount}
	err := s.mutate("misc.add", func(st *model.Ledger) error {
		st.MiscLogs = append(st.MiscLogs, l)
		return nil
	})
	return l, err
}

// DeleteMisc removes a miscellaneous expense.
func (s *Store) DeleteMisc(id string) error {
	return s.mutate("misc.delete", func(st *model.Ledger) error {
		for i, l := range st.MiscLogs {
			if l.ID == id {
				st.MiscLogs = append(st.MiscLogs[:i], st.MiscLogs[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("misc expense %q: %w", id, model.ErrNotFound)
	})
}

// SetFoodBudget sets the planned food spend per window.
func (s *Store) SetFoodBudget(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: budget cannot be negative", model.ErrInvalidArgument)
	}
	return s.mutate("budget.food", func(st *model.Ledger) error {
		st.FoodBudget = amount
		return nil
	})
}

// SetMiscBudget sets the planned miscellaneous spend per window.
func (s *Store) SetMiscBudget(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: budget cannot be negative", model.ErrInvalidArgument)
	}
	return s.mutate("budget.misc", func(st *model.Ledger) error {
		st.MiscBudget = amount
		return nil
	})
}
