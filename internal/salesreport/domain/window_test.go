package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestComputeWindowsMidweek(t *testing.T) {
	// Wednesday mid-morning.
	now := date(2024, time.June, 12, 10)
	w := ComputeWindows(now)

	require.Equal(t, date(2024, time.June, 12, 0), w.StartOfDay)
	require.Equal(t, date(2024, time.June, 9, 0), w.StartOfWeek) // Sunday
	require.Equal(t, date(2024, time.June, 1, 0), w.StartOfMonth)
	require.Equal(t, w.StartOfDay, w.Today)
	require.Equal(t, date(2024, time.June, 19, 0), w.NextWeek)
	require.Equal(t, date(2024, time.June, 5, 0), w.LastWeek)
}

func TestComputeWindowsOnSunday(t *testing.T) {
	now := date(2024, time.June, 9, 23)
	w := ComputeWindows(now)

	require.Equal(t, w.StartOfDay, w.StartOfWeek)
}

func TestComputeWindowsWeekSpansMonthBoundary(t *testing.T) {
	// Saturday June 1st: the week began the previous Sunday, in May.
	now := date(2024, time.June, 1, 12)
	w := ComputeWindows(now)

	require.Equal(t, date(2024, time.May, 26, 0), w.StartOfWeek)
	require.Equal(t, date(2024, time.June, 1, 0), w.StartOfMonth)
	require.True(t, w.StartOfWeek.Before(w.StartOfMonth))
}

func TestComputeWindowsPreservesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, loc)
	w := ComputeWindows(now)

	require.Equal(t, loc, w.StartOfDay.Location())
	require.Equal(t, 0, w.StartOfDay.Hour())
}

func TestStartOfDayTruncates(t *testing.T) {
	in := time.Date(2024, time.June, 12, 23, 59, 59, 999, time.UTC)
	require.Equal(t, date(2024, time.June, 12, 0), StartOfDay(in))
}
