package model

import "time"

// Date returns the calendar date y-m-d at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the time of day from t, keeping the calendar date as seen
// in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// DaysInclusive counts the calendar days in [from, to].
func DaysInclusive(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours()/24) + 1
}
