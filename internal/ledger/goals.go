package ledger

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tally/internal/holiday"
	"github.com/theirongolddev/tally/internal/model"
)

// HolidayNote carries the user-editable fields of a holiday.
type HolidayNote struct {
	IsTakingOff bool
	StartDate   string
	EndDate     string
	Note        string
}

// MergeHolidays replaces the holiday list with fresh, keeping the user's
// annotations on holidays that are still present.
func (s *Store) MergeHolidays(fresh []model.Holiday) error {
	return s.mutate("holiday.merge", func(st *model.Ledger) error {
		st.Holidays = holiday.Merge(fresh, st.Holidays)
		return nil
	})
}

// AnnotateHoliday sets the user fields of a holiday.
func (s *Store) AnnotateHoliday(id string, n HolidayNote) error {
	for _, d := range []string{n.StartDate, n.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("%w: date %q is not YYYY-MM-DD", model.ErrInvalidArgument, d)
		}
	}
	return s.mutate("holiday.annotate", func(st *model.Ledger) error {
		for i := range st.Holidays {
			if st.Holidays[i].ID == id {
				h := &st.Holidays[i]
				h.IsTakingOff = n.IsTakingOff
				h.StartDate = n.StartDate
				h.EndDate = n.EndDate
				h.Note = n.Note
				return nil
			}
		}
		return fmt.Errorf("holiday %q: %w", id, model.ErrNotFound)
	})
}

// AddAspiration records a new pending goal.
func (s *Store) AddAspiration(a model.Aspiration) (model.Aspiration, error) {
	if a.Title == "" {
		return model.Aspiration{}, fmt.Errorf("%w: goal title is required", model.ErrInvalidArgument)
	}
	if a.Type == "" {
		a.Type = model.Financial
	}
	if a.Type != model.Financial && a.Type != model.NonFinancial {
		return model.Aspiration{}, fmt.Errorf("%w: unknown goal type %q", model.ErrInvalidArgument, a.Type)
	}
	for _, lvl := range []int{a.MotivationLevel, a.PreparednessLevel} {
		if lvl < 0 || lvl > 10 {
			return model.Aspiration{}, fmt.Errorf("%w: level %d outside 1-10", model.ErrInvalidArgument, lvl)
		}
	}
	if a.TargetAmount < 0 {
		return model.Aspiration{}, fmt.Errorf("%w: target amount cannot be negative", model.ErrInvalidArgument)
	}
	a.ID = s.newID()
	a.CreatedAt = s.now()
	a.Status = model.Pending
	a.IsPinned = false
	err := s.mutate("goal.add", func(st *model.Ledger) error {
		st.Aspirations = append(st.Aspirations, a)
		return nil
	})
	return a, err
}

// DeleteAspiration removes a goal.
func (s *Store) DeleteAspiration(id string) error {
	return s.mutate("goal.delete", func(st *model.Ledger) error {
		for i, a := range st.Aspirations {
			if a.ID == id {
				st.Aspirations = append(st.Aspirations[:i], st.Aspirations[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("goal %q: %w", id, model.ErrNotFound)
	})
}

// TogglePin flips the pinned flag of a goal and reports the new value.
func (s *Store) TogglePin(id string) (bool, error) {
	var pinned bool
	err := s.updateAspiration("goal.pin", id, func(a *model.Aspiration) error {
		a.IsPinned = !a.IsPinned
		pinned = a.IsPinned
		return nil
	})
	return pinned, err
}

// SetAspirationStatus moves a goal to status.
func (s *Store) SetAspirationStatus(id string, status model.AspirationStatus) error {
	switch status {
	case model.Pending, model.Achieved, model.Cancelled:
	default:
		return fmt.Errorf("%w: unknown goal status %q", model.ErrInvalidArgument, status)
	}
	return s.updateAspiration("goal.status", id, func(a *model.Aspiration) error {
		a.Status = status
		return nil
	})
}

func (s *Store) updateAspiration(op, id string, fn func(*model.Aspiration) error) error {
	return s.mutate(op, func(st *model.Ledger) error {
		for i := range st.Aspirations {
			if st.Aspirations[i].ID == id {
				return fn(&st.Aspirations[i])
			}
		}
		return fmt.Errorf("goal %q: %w", id, model.ErrNotFound)
	})
}
