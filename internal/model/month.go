package model

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) FirstDay() time.Time {
	return DateOf(now.With(Date(m.Year, m.Month, 1)).BeginningOfMonth())
}

func (m Month) LastDay() time.Time {
	return DateOf(now.With(Date(m.Year, m.Month, 1)).EndOfMonth())
}

// PreviousMonthEnd is the last calendar day before the month starts.
func (m Month) PreviousMonthEnd() time.Time {
	return AddDays(m.FirstDay(), -1)
}

func (m Month) Contains(d time.Time) bool {
	return MonthOf(d) == m
}

func (m Month) Days() int {
	return m.LastDay().Day()
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
