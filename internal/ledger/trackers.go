package ledger

import (
	"sort"
	"time"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// ToggleFuelToday removes today's refill if one is logged, otherwise logs one.
// It reports whether a refill is logged for today afterwards.
func (s *Store) ToggleFuelToday() (bool, error) {
	now := s.now()
	var filled bool
	err := s.mutate("fuel.toggle", func(st *model.Ledger) error {
		kept := st.FuelLogs[:0]
		for _, l := range st.FuelLogs {
			if !sameDay(now, l.Date) {
				kept = append(kept, l)
			}
		}
		if len(kept) == len(st.FuelLogs) {
			kept = append(kept, model.FuelLog{ID: s.newID(), Date: now})
			filled = true
		}
		st.FuelLogs = kept
		return nil
	})
	return filled, err
}

// LogFuel records a refill on date, keeping the log in date order.
func (s *Store) LogFuel(date time.Time) (model.FuelLog, error) {
	l := model.FuelLog{ID: s.newID(), Date: s.dateOrNow(date)}
	err := s.mutate("fuel.log", func(st *model.Ledger) error {
		st.FuelLogs = append(st.FuelLogs, l)
		sort.SliceStable(st.FuelLogs, func(i, j int) bool {
			return st.FuelLogs[i].Date.Before(st.FuelLogs[j].Date)
		})
		return nil
	})
	return l, err
}

// ToggleConnectivity clears a payment made within the current cycle, otherwise
// marks it paid now. It reports whether connectivity is paid afterwards.
func (s *Store) ToggleConnectivity() (bool, error) {
	now := s.now()
	var paid bool
	err := s.mutate("connectivity.toggle", func(st *model.Ledger) error {
		if pipeline.ConnectivityPaidRecently(st.LastConnectivityPayment, now) {
			st.LastConnectivityPayment = time.Time{}
			return nil
		}
		st.LastConnectivityPayment = now
		paid = true
		return nil
	})
	return paid, err
}

// SetConnectivityPaid records a connectivity payment on date.
func (s *Store) SetConnectivityPaid(date time.Time) error {
	date = s.dateOrNow(date)
	return s.mutate("connectivity.set", func(st *model.Ledger) error {
		st.LastConnectivityPayment = date
		return nil
	})
}
