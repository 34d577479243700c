package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/tally/internal/model"
)

func TestToggleFuelToday(t *testing.T) {
	yesterday := model.FuelLog{ID: "old", Date: testNow.AddDate(0, 0, -1)}
	s := newTestStore(t, model.Ledger{FuelLogs: []model.FuelLog{yesterday}})

	filled, err := s.ToggleFuelToday()
	require.NoError(t, err)
	assert.True(t, filled)
	assert.Len(t, s.Snapshot().FuelLogs, 2)

	filled, err = s.ToggleFuelToday()
	require.NoError(t, err)
	assert.False(t, filled)
	assert.Equal(t, []model.FuelLog{yesterday}, s.Snapshot().FuelLogs)
}

func TestLogFuelKeepsOrder(t *testing.T) {
	s := newTestStore(t, model.Ledger{})
	for _, offset := range []int{-1, -10, -5} {
		_, err := s.LogFuel(testNow.AddDate(0, 0, offset))
		require.NoError(t, err)
	}
	logs := s.Snapshot().FuelLogs
	require.Len(t, logs, 3)
	assert.True(t, logs[0].Date.Before(logs[1].Date))
	assert.True(t, logs[1].Date.Before(logs[2].Date))
}

func TestToggleConnectivity(t *testing.T) {
	s := newTestStore(t, model.Ledger{LastConnectivityPayment: testNow.AddDate(0, 0, -9)})

	paid, err := s.ToggleConnectivity()
	require.NoError(t, err)
	assert.True(t, paid)
	assert.Equal(t, testNow, s.Snapshot().LastConnectivityPayment)

	paid, err = s.ToggleConnectivity()
	require.NoError(t, err)
	assert.False(t, paid)
	assert.True(t, s.Snapshot().LastConnectivityPayment.IsZero())

	require.NoError(t, s.SetConnectivityPaid(testNow.AddDate(0, 0, -2)))
	assert.Equal(t, testNow.AddDate(0, 0, -2), s.Snapshot().LastConnectivityPayment)
}

func TestHolidays(t *testing.T) {
	s := newTestStore(t, model.Ledger{Holidays: []model.Holiday{
		{ID: "national-day-2025", IsTakingOff: true, Note: "home"},
	}})
	fresh := []model.Holiday{
		{ID: "national-day-2025", Name: "National Day", Date: time.Date(2025, 9, 2, 0, 0, 0, 0, time.Local)},
		{ID: "new-year-2026", Name: "New Year's Day", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)},
	}
	require.NoError(t, s.MergeHolidays(fresh))
	hs := s.Snapshot().Holidays
	require.Len(t, hs, 2)
	assert.True(t, hs[0].IsTakingOff)
	assert.Equal(t, "home", hs[0].Note)

	require.NoError(t, s.AnnotateHoliday("new-year-2026", HolidayNote{IsTakingOff: true, StartDate: "2025-12-31", EndDate: "2026-01-02"}))
	assert.True(t, s.Snapshot().Holidays[1].IsTakingOff)
	assert.ErrorIs(t, s.AnnotateHoliday("new-year-2026", HolidayNote{StartDate: "31/12"}), model.ErrInvalidArgument)
	assert.ErrorIs(t, s.AnnotateHoliday("missing", HolidayNote{}), model.ErrNotFound)
}

func TestAspirations(t *testing.T) {
	s := newTestStore(t, model.Ledger{})
	a, err := s.AddAspiration(model.Aspiration{Title: "Motorbike", TargetAmount: 30_000_000, IsPinned: true, Status: model.Achieved})
	require.NoError(t, err)
	assert.Equal(t, model.Financial, a.Type)
	assert.Equal(t, model.Pending, a.Status)
	assert.False(t, a.IsPinned)
	assert.Equal(t, testNow, a.CreatedAt)

	_, err = s.AddAspiration(model.Aspiration{})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = s.AddAspiration(model.Aspiration{Title: "x", MotivationLevel: 11})
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	pinned, err := s.TogglePin(a.ID)
	require.NoError(t, err)
	assert.True(t, pinned)

	require.NoError(t, s.SetAspirationStatus(a.ID, model.Achieved))
	assert.Equal(t, model.Achieved, s.Snapshot().Aspirations[0].Status)
	assert.ErrorIs(t, s.SetAspirationStatus(a.ID, "paused"), model.ErrInvalidArgument)

	require.NoError(t, s.DeleteAspiration(a.ID))
	assert.Empty(t, s.Snapshot().Aspirations)
	assert.ErrorIs(t, s.DeleteAspiration(a.ID), model.ErrNotFound)
}
