package rentbuy

import (
	"time"
)

const monthLayout = "2006-01"

// A Month is a calendar month, counted in whole months from year zero.
// Consecutive months differ by one, also across year boundaries.
type Month int

func MonthOf(t time.Time) Month {
	return Month(t.Year()*12 + int(t.Month()) - 1)
}

// ParseMonth parses a month in "2006-01" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return 0, err
	}
	return MonthOf(t), nil
}

func (m Month) Time() time.Time {
	return time.Date(int(m)/12, time.Month(int(m)%12+1), 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return m.Time().Format(monthLayout)
}

func (m Month) Add(n int) Month {
	return m + Month(n)
}

// Sub returns the number of months from n to m.
func (m Month) Sub(n Month) int {
	return int(m - n)
}
