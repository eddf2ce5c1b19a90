package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want MinuteOfDay
		ok   bool
	}{
		{"00:00", 0, true},
		{"10:00", 600, true},
		{"13:30", 810, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:00", 0, false},
		{"12-30", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.ok {
			assert.NoError(t, err, c.in)
			assert.Equal(t, c.want, got, c.in)
		} else {
			assert.ErrorIs(t, err, ErrBadClock, c.in)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	assert.Equal(t, "09:05", MinuteOfDay(545).Clock())
	assert.Equal(t, "00:00", MinuteOfDay(0).Clock())
	assert.Equal(t, "23:30", MinuteOfDay(1410).Clock())
}

func TestMinuteOfDayComparisons(t *testing.T) {
	// 23:30 is before a 23:59 close; no midnight rollover ambiguity since
	// a MinuteOfDay carries no date.
	lateSlot, _ := ParseClock("23:30")
	close, _ := ParseClock("23:59")
	assert.True(t, lateSlot < close)
	assert.True(t, lateSlot.Valid())
	assert.False(t, MinuteOfDay(MinutesPerDay).Valid())
	assert.False(t, MinuteOfDay(-1).Valid())
}

func TestReservationStatusTerminal(t *testing.T) {
	assert.False(t, ReservationPending.Terminal())
	assert.False(t, ReservationConfirmed.Terminal())
	assert.True(t, ReservationCancelled.Terminal())
	assert.True(t, ReservationCompleted.Terminal())
}
