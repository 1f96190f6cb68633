// Package dates holds the single calendar-date grammar shared by
// exercise creation and log filtering, so both call sites agree on what
// parses and how dates render.
package dates

import "time"

const (
	calendarLayout   = "2006-01-02"
	dateStringLayout = "Mon Jan 02 2006"
)

// Parse interprets s as a YYYY-MM-DD calendar date at midnight UTC.
func Parse(s string) (time.Time, error) {
	return time.Parse(calendarLayout, s)
}

// EndOfDay advances t to the last instant of its calendar day
// (23:59:59.999), so a "to" bound includes the whole day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// DateString renders t as a short calendar-date string with no
// time-of-day component, e.g. "Mon May 01 2023".
func DateString(t time.Time) string {
	return t.Format(dateStringLayout)
}
