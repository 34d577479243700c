package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/window"
)

const (
	// A refill gap below this many days is flagged as shorter than usual.
	usualFuelInterval = 5
	// ConnectivityCycle is the number of days a connectivity payment covers.
	ConnectivityCycle     = 7
	connectivityWarnAfter = 6
)

// FixedCosts reports the fuel and connectivity trackers at now. Fills are
// counted against f, which must be valid.
func FixedCosts(state model.Ledger, f model.Filter, now time.Time) model.FixedCostStatus {
	var st model.FixedCostStatus

	fills := make([]time.Time, 0, len(state.FuelLogs))
	for _, l := range state.FuelLogs {
		fills = append(fills, l.Date)
		if calendarDays(l.Date, now) == 0 {
			st.FuelFilledToday = true
		}
		if window.Matches(l.Date, f) {
			st.FuelFillsInWindow++
		}
	}
	sort.Slice(fills, func(i, j int) bool { return fills[i].Before(fills[j]) })
	if n := len(fills); n >= 2 {
		st.HasFuelInterval = true
		st.LastFuelInterval = calendarDays(fills[n-2], fills[n-1])
		st.FuelIntervalShorter = st.LastFuelInterval < usualFuelInterval
	}

	st.LastConnectivityPayment = state.LastConnectivityPayment
	if !state.LastConnectivityPayment.IsZero() {
		since := calendarDays(state.LastConnectivityPayment, now)
		st.ConnectivityPaidRecently = since < ConnectivityCycle
		st.ConnectivityDueSoon = since >= connectivityWarnAfter
	}
	return st
}

// ConnectivityPaidRecently reports whether the last payment is still inside
// its cycle at now.
func ConnectivityPaidRecently(last, now time.Time) bool {
	return !last.IsZero() && calendarDays(last, now) < ConnectivityCycle
}
