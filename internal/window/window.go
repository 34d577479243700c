// Package window classifies timestamps against the active time filter and
// builds and moves filters relative to a point in time.
package window

import (
	"fmt"
	"time"

	"github.com/theirongolddev/tally/internal/model"
)

// Validate reports whether f is a well-formed filter.
func Validate(f model.Filter) error {
	switch f.Kind {
	case model.FilterAll:
		return nil
	case model.FilterYear:
		if f.Year <= 0 {
			return fmt.Errorf("%w: year filter needs a year", model.ErrInvalidArgument)
		}
	case model.FilterMonth:
		if f.Year <= 0 {
			return fmt.Errorf("%w: month filter needs a year", model.ErrInvalidArgument)
		}
		if f.Month < time.January || f.Month > time.December {
			return fmt.Errorf("%w: month filter needs a month, got %d", model.ErrInvalidArgument, f.Month)
		}
	case model.FilterWeek:
		if f.Year <= 0 {
			return fmt.Errorf("%w: week filter needs a year", model.ErrInvalidArgument)
		}
		if f.Week < 1 || f.Week > isoWeeks(f.Year) {
			return fmt.Errorf("%w: week %d out of range for %d", model.ErrInvalidArgument, f.Week, f.Year)
		}
	default:
		return fmt.Errorf("%w: unknown filter kind %q", model.ErrInvalidArgument, f.Kind)
	}
	return nil
}

// Matches reports whether t falls inside f. Week filters compare the ISO
// week-numbering year, so 2024-12-30 belongs to week 1 of 2025.
// It panics on a filter that fails Validate.
func Matches(t time.Time, f model.Filter) bool {
	if err := Validate(f); err != nil {
		panic(err)
	}
	switch f.Kind {
	case model.FilterYear:
		return t.Year() == f.Year
	case model.FilterMonth:
		return t.Year() == f.Year && t.Month() == f.Month
	case model.FilterWeek:
		y, w := t.ISOWeek()
		return y == f.Year && w == f.Week
	default:
		return true
	}
}

// Current returns the filter of the given kind that contains now.
func Current(kind model.FilterKind, now time.Time) model.Filter {
	switch kind {
	case model.FilterWeek:
		y, w := now.ISOWeek()
		return model.Filter{Kind: kind, Year: y, Week: w}
	case model.FilterMonth:
		return model.Filter{Kind: kind, Year: now.Year(), Month: now.Month()}
	case model.FilterYear:
		return model.Filter{Kind: kind, Year: now.Year()}
	default:
		return model.Filter{Kind: model.FilterAll, Year: now.Year()}
	}
}

// Shift moves f by n periods of its own kind. All-time filters are returned unchanged.
func Shift(f model.Filter, n int) model.Filter {
	switch f.Kind {
	case model.FilterWeek:
		start := WeekStart(f.Year, f.Week, time.Local)
		y, w := start.AddDate(0, 0, 7*n).ISOWeek()
		return model.Filter{Kind: f.Kind, Year: y, Week: w}
	case model.FilterMonth:
		first := time.Date(f.Year, f.Month+time.Month(n), 1, 0, 0, 0, 0, time.Local)
		return model.Filter{Kind: f.Kind, Year: first.Year(), Month: first.Month()}
	case model.FilterYear:
		f.Year += n
		return f
	default:
		return f
	}
}

// Week is one ISO week with its Monday start and Sunday end.
type Week struct {
	Number int
	Start  time.Time
	End    time.Time
}

// WeeksInYear lists every ISO week of the ISO week-numbering year.
func WeeksInYear(year int) []Week {
	n := isoWeeks(year)
	weeks := make([]Week, 0, n)
	for w := 1; w <= n; w++ {
		start := WeekStart(year, w, time.Local)
		weeks = append(weeks, Week{Number: w, Start: start, End: start.AddDate(0, 0, 6)})
	}
	return weeks
}

// WeekStart returns midnight on the Monday of ISO week w of year.
func WeekStart(year, w int, loc *time.Location) time.Time {
	// January 4th is always in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, 7*(w-1))
}

// Label renders a short human description of f.
func Label(f model.Filter) string {
	switch f.Kind {
	case model.FilterWeek:
		start, end, _ := Bounds(f, time.Local)
		return fmt.Sprintf("Week %d, %d (%s - %s)", f.Week, f.Year, start.Format("Jan 2"), end.Format("Jan 2"))
	case model.FilterMonth:
		return fmt.Sprintf("%s %d", f.Month, f.Year)
	case model.FilterYear:
		return fmt.Sprintf("%d", f.Year)
	default:
		return "All time"
	}
}

func isoWeeks(year int) int {
	// December 28th is always in the last week.
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// Bounds returns the first and last calendar day covered by f. All-time
// filters have no bounds and report ok=false.
func Bounds(f model.Filter, loc *time.Location) (start, end time.Time, ok bool) {
	switch f.Kind {
	case model.FilterWeek:
		start = WeekStart(f.Year, f.Week, loc)
		return start, start.AddDate(0, 0, 6), true
	case model.FilterMonth:
		start = time.Date(f.Year, f.Month, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, -1), true
	case model.FilterYear:
		start = time.Date(f.Year, time.January, 1, 0, 0, 0, 0, loc)
		return start, time.Date(f.Year, time.December, 31, 0, 0, 0, 0, loc), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
