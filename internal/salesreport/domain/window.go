package domain

import "time"

// Windows holds the six boundaries every report pass shares. All values are
// derived from a single captured instant so one pass stays internally
// consistent even if the wall clock moves mid-computation.
type Windows struct {
	StartOfDay   time.Time
	StartOfWeek  time.Time
	StartOfMonth time.Time

	// Renewal boundaries. Today equals StartOfDay; NextWeek and LastWeek
	// are inclusive bounds for the due-this-week and missed buckets.
	Today    time.Time
	NextWeek time.Time
	LastWeek time.Time
}

// ComputeWindows derives the reporting boundaries from now, in now's
// location. Weeks start on Sunday.
func ComputeWindows(now time.Time) Windows {
	day := StartOfDay(now)
	return Windows{
		StartOfDay:   day,
		StartOfWeek:  day.AddDate(0, 0, -int(now.Weekday())),
		StartOfMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		Today:        day,
		NextWeek:     day.AddDate(0, 0, 7),
		LastWeek:     day.AddDate(0, 0, -7),
	}
}

// StartOfDay truncates t to midnight in t's location. Subscription end
// dates are calendar dates, so both sides of every comparison go through
// this before equality or ordering checks.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
