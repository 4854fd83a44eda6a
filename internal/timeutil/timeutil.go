package timeutil

import (
	"regexp"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var hhmmRe = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// IsHHMM reports whether s is a zero-padded 24h HH:MM string. Values in
// this form compare correctly as plain strings, which is how every time
// comparison in the scheduling domain works.
func IsHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}

// IsDate reports whether s is a strict zero-padded ISO date. Parse alone
// accepts non-padded input, so the value must survive a round trip.
func IsDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// Today returns the current calendar date as an ISO string.
func Today() string {
	return time.Now().Format(DateLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartAsTime combines a date and an HH:MM start into a wall-clock instant
// in the local zone. Used only by the maintenance worker for the 24h
// confirmation window.
func StartAsTime(date, hhmm string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hhmm, time.Local)
}
