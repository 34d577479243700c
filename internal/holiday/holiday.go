// Package holiday computes the upcoming public holiday calendar and merges
// it with the user's saved annotations.
package holiday

import (
	"fmt"
	"sort"
	"time"

	"github.com/theirongolddev/tally/internal/model"
)

type fixed struct {
	slug  string
	name  string
	month time.Month
	day   int
}

var solar = []fixed{
	{"new-year", "New Year's Day", time.January, 1},
	{"reunification-day", "Reunification Day", time.April, 30},
	{"labour-day", "International Labour Day", time.May, 1},
	{"national-day", "National Day", time.September, 2},
}

// lunarNewYear holds the month and day of the first day of each Lunar New
// Year. Years after LastLunarYear have no entry and get no Lunar New Year
// holiday until the table is extended.
var lunarNewYear = map[int]struct {
	month time.Month
	day   int
}{
	2024: {time.February, 10},
	2025: {time.January, 29},
	2026: {time.February, 17},
	2027: {time.February, 6},
	2028: {time.January, 26},
	2029: {time.February, 13},
	2030: {time.February, 3},
	2031: {time.January, 23},
	2032: {time.February, 11},
	2033: {time.January, 31},
	2034: {time.February, 19},
	2035: {time.February, 8},
}

// LastLunarYear is the last year the Lunar New Year table covers.
const LastLunarYear = 2035

// Upcoming returns the holidays from the start of now's day through the next
// twelve months, soonest first. IDs are stable across calls.
func Upcoming(now time.Time) []model.Holiday {
	loc := now.Location()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	until := from.AddDate(1, 0, 0)

	var out []model.Holiday
	add := func(slug, name string, date time.Time) {
		if date.Before(from) || !date.Before(until) {
			return
		}
		out = append(out, model.Holiday{
			ID:   fmt.Sprintf("%s-%d", slug, date.Year()),
			Name: name,
			Date: date,
		})
	}
	for year := now.Year(); year <= now.Year()+1; year++ {
		for _, h := range solar {
			add(h.slug, h.name, time.Date(year, h.month, h.day, 0, 0, 0, 0, loc))
		}
		if d, ok := lunarNewYear[year]; ok {
			add("lunar-new-year", "Lunar New Year", time.Date(year, d.month, d.day, 0, 0, 0, 0, loc))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Merge overlays the user fields of saved holidays onto the fresh calendar by
// ID. Saved holidays no longer in the calendar are dropped.
func Merge(fresh, saved []model.Holiday) []model.Holiday {
	byID := make(map[string]model.Holiday, len(saved))
	for _, h := range saved {
		byID[h.ID] = h
	}
	out := make([]model.Holiday, len(fresh))
	for i, h := range fresh {
		if s, ok := byID[h.ID]; ok {
			h.IsTakingOff = s.IsTakingOff
			h.Note = s.Note
			h.StartDate = s.StartDate
			h.EndDate = s.EndDate
		}
		out[i] = h
	}
	return out
}
