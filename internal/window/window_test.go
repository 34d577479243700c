package window

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/tally/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		filter model.Filter
		want   bool
	}{
		{"all", "1999-05-05", model.Filter{Kind: model.FilterAll}, true},
		{"year hit", "2025-06-01", model.Filter{Kind: model.FilterYear, Year: 2025}, true},
		{"year miss", "2024-12-31", model.Filter{Kind: model.FilterYear, Year: 2025}, false},
		{"month hit", "2025-03-15", model.Filter{Kind: model.FilterMonth, Year: 2025, Month: time.March}, true},
		{"month wrong year", "2024-03-15", model.Filter{Kind: model.FilterMonth, Year: 2025, Month: time.March}, false},
		{"month wrong month", "2025-04-01", model.Filter{Kind: model.FilterMonth, Year: 2025, Month: time.March}, false},
		{"week hit", "2025-01-08", model.Filter{Kind: model.FilterWeek, Year: 2025, Week: 2}, true},
		{"week miss", "2025-01-13", model.Filter{Kind: model.FilterWeek, Year: 2025, Week: 2}, false},
		// Monday 2024-12-30 opens ISO week 1 of 2025.
		{"late december in next iso year", "2024-12-30", model.Filter{Kind: model.FilterWeek, Year: 2025, Week: 1}, true},
		{"late december not in calendar year week", "2024-12-30", model.Filter{Kind: model.FilterWeek, Year: 2024, Week: 1}, false},
		// Friday 2021-01-01 still belongs to week 53 of 2020.
		{"early january in previous iso year", "2021-01-01", model.Filter{Kind: model.FilterWeek, Year: 2020, Week: 53}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(mustDate(t, tt.date), tt.filter)
			if got != tt.want {
				t.Errorf("Matches(%s, %+v) = %v, want %v", tt.date, tt.filter, got, tt.want)
			}
		})
	}
}

func TestMatchesExactlyOneWeek(t *testing.T) {
	day := mustDate(t, "2024-12-20")
	for i := 0; i < 30; i++ {
		d := day.AddDate(0, 0, i)
		hits := 0
		for _, year := range []int{2024, 2025} {
			for _, w := range WeeksInYear(year) {
				if Matches(d, model.Filter{Kind: model.FilterWeek, Year: year, Week: w.Number}) {
					hits++
				}
			}
		}
		if hits != 1 {
			t.Errorf("%s matched %d weeks, want 1", d.Format("2006-01-02"), hits)
		}
	}
}

func TestMatchesPanicsOnMalformedFilter(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for month filter without month")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, model.ErrInvalidArgument) {
			t.Errorf("panic value = %v, want ErrInvalidArgument", r)
		}
	}()
	Matches(time.Now(), model.Filter{Kind: model.FilterMonth, Year: 2025})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  model.Filter
		wantErr bool
	}{
		{"all", model.Filter{Kind: model.FilterAll}, false},
		{"unknown kind", model.Filter{Kind: "decade"}, true},
		{"year zero", model.Filter{Kind: model.FilterYear}, true},
		{"month 13", model.Filter{Kind: model.FilterMonth, Year: 2025, Month: 13}, true},
		{"week 53 in long year", model.Filter{Kind: model.FilterWeek, Year: 2020, Week: 53}, false},
		{"week 53 in short year", model.Filter{Kind: model.FilterWeek, Year: 2025, Week: 53}, true},
		{"week zero", model.Filter{Kind: model.FilterWeek, Year: 2025}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.filter)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.filter, err, tt.wantErr)
			}
		})
	}
}

func TestCurrentAndShift(t *testing.T) {
	now := mustDate(t, "2025-12-31")

	wk := Current(model.FilterWeek, now)
	if wk.Year != 2026 || wk.Week != 1 {
		t.Errorf("Current(week) = %+v, want 2026 W1", wk)
	}
	prev := Shift(wk, -1)
	if prev.Year != 2025 || prev.Week != 52 {
		t.Errorf("Shift(-1) = %+v, want 2025 W52", prev)
	}

	mo := Current(model.FilterMonth, now)
	next := Shift(mo, 1)
	if next.Year != 2026 || next.Month != time.January {
		t.Errorf("Shift(month, 1) = %+v, want January 2026", next)
	}
	back := Shift(mo, -12)
	if back.Year != 2024 || back.Month != time.December {
		t.Errorf("Shift(month, -12) = %+v, want December 2024", back)
	}

	all := Current(model.FilterAll, now)
	if Shift(all, 5) != all {
		t.Error("Shift on all-time filter should be a no-op")
	}
}

func TestWeeksInYear(t *testing.T) {
	tests := []struct {
		year      int
		wantWeeks int
		wantFirst string
	}{
		{2020, 53, "2019-12-30"},
		{2025, 52, "2024-12-30"},
		{2026, 53, "2025-12-29"},
	}
	for _, tt := range tests {
		weeks := WeeksInYear(tt.year)
		if len(weeks) != tt.wantWeeks {
			t.Errorf("WeeksInYear(%d) len = %d, want %d", tt.year, len(weeks), tt.wantWeeks)
			continue
		}
		if got := weeks[0].Start.Format("2006-01-02"); got != tt.wantFirst {
			t.Errorf("WeeksInYear(%d)[0].Start = %s, want %s", tt.year, got, tt.wantFirst)
		}
		if weeks[0].End.Sub(weeks[0].Start) < 6*24*time.Hour-time.Hour {
			t.Errorf("week 1 of %d spans less than six days", tt.year)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(model.Filter{Kind: model.FilterAll}); got != "All time" {
		t.Errorf("Label(all) = %q", got)
	}
	if got := Label(model.Filter{Kind: model.FilterMonth, Year: 2025, Month: time.March}); got != "March 2025" {
		t.Errorf("Label(month) = %q", got)
	}
	if got := Label(model.Filter{Kind: model.FilterWeek, Year: 2025, Week: 1}); got != "Week 1, 2025 (Dec 30 - Jan 5)" {
		t.Errorf("Label(week) = %q", got)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		filter    model.Filter
		wantStart string
		wantEnd   string
	}{
		{model.Filter{Kind: model.FilterWeek, Year: 2025, Week: 1}, "2024-12-30", "2025-01-05"},
		{model.Filter{Kind: model.FilterMonth, Year: 2024, Month: time.February}, "2024-02-01", "2024-02-29"},
		{model.Filter{Kind: model.FilterYear, Year: 2025}, "2025-01-01", "2025-12-31"},
	}
	for _, tt := range tests {
		start, end, ok := Bounds(tt.filter, time.Local)
		if !ok {
			t.Errorf("Bounds(%+v) reported no bounds", tt.filter)
			continue
		}
		if got := start.Format("2006-01-02"); got != tt.wantStart {
			t.Errorf("Bounds(%+v) start = %s, want %s", tt.filter, got, tt.wantStart)
		}
		if got := end.Format("2006-01-02"); got != tt.wantEnd {
			t.Errorf("Bounds(%+v) end = %s, want %s", tt.filter, got, tt.wantEnd)
		}
	}
	if _, _, ok := Bounds(model.Filter{Kind: model.FilterAll}, time.Local); ok {
		t.Error("Bounds(all) should report no bounds")
	}
}
