package schedule

import (
	"time"

	"telemed/models"
)

// startOfDay truncates a time to its local calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateBookable reports whether a calendar date may be selected against the
// given weekly availability. Both rules are conjunctive: the date's day must
// not precede today's, and the date's weekday must carry at least one open
// window.
func IsDateBookable(days []models.DayAvailability, date, now time.Time) bool {
	if startOfDay(date).Before(startOfDay(now)) {
		return false
	}
	weekday := date.Weekday().String()
	for _, day := range days {
		if day.Day == weekday && len(day.Slots) > 0 {
			return true
		}
	}
	return false
}
