package domain

import (
	"errors"
	"fmt"
)

// MinuteOfDay is a time-of-day expressed as minutes since midnight.
// All opening/closing/reservation-time comparisons are done on this type;
// no calendar date is ever attached to a time-of-day value.
type MinuteOfDay int

const MinutesPerDay = 24 * 60

var ErrBadClock = errors.New("invalid clock value, want HH:MM")

// ParseClock parses a "HH:MM" string into a MinuteOfDay.
func ParseClock(s string) (MinuteOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrBadClock
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' ||
		s[3] < '0' || s[3] > '9' || s[4] < '0' || s[4] > '9' {
		return 0, ErrBadClock
	}
	if h > 23 || m > 59 {
		return 0, ErrBadClock
	}
	return MinuteOfDay(h*60 + m), nil
}

// Clock formats the minute-of-day back as "HH:MM".
func (m MinuteOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

func (m MinuteOfDay) Valid() bool {
	return m >= 0 && m < MinutesPerDay
}
