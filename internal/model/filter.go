package model

import "time"

// FilterKind selects the granularity of the active time window.
type FilterKind string

const (
	FilterAll   FilterKind = "all"
	FilterWeek  FilterKind = "week"
	FilterMonth FilterKind = "month"
	FilterYear  FilterKind = "year"
)

// Filter is the single active time window. Year is the ISO week-numbering year
// for week filters and the calendar year otherwise.
type Filter struct {
	Kind  FilterKind
	Year  int
	Month time.Month // month filters only
	Week  int        // week filters only, 1-53
}
