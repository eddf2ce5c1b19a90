package booking

import (
	"time"

	"tablebook/internal/domain"
)

const dateLayout = "2006-01-02"

// Slots enumerates the bookable slot start-times for an operating window:
// open, open+g, open+2g, ... strictly below close. Pure and deterministic;
// malformed hours are the caller's precondition, not a failure mode here.
func Slots(open, close domain.MinuteOfDay, granularityMinutes int) []domain.MinuteOfDay {
	if granularityMinutes <= 0 || close <= open {
		return nil
	}

	g := domain.MinuteOfDay(granularityMinutes)
	out := make([]domain.MinuteOfDay, 0, int(close-open)/granularityMinutes+1)
	for t := open; t < close; t += g {
		out = append(out, t)
	}
	return out
}

func parseDate(s string) (string, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", ErrValidation
	}
	return d.Format(dateLayout), nil
}
