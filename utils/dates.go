// utils/dates.go
package utils

import "time"

const ISODate = "2006-01-02"

// ParseDateOrNow parses an ISO date, falling back to the current time
// when the input is empty or malformed.
func ParseDateOrNow(s string) time.Time {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Now()
	}
	return t
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
