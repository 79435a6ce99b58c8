package utils

import "time"

// DateLayout is the calendar-date format used for member-since and
// bot-creation dates.
const DateLayout = "2006-01-02"

// Today returns the current date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DateLayout)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
