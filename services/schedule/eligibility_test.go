package schedule

import (
	"testing"
	"time"

	"telemed/models"

	"github.com/stretchr/testify/assert"
)

// weekdayAvailability opens a single morning window on each named weekday.
func weekdayAvailability(weekdays ...string) []models.DayAvailability {
	days := make([]models.DayAvailability, 0, len(weekdays))
	for _, name := range weekdays {
		days = append(days, models.DayAvailability{
			Day:   name,
			Slots: []models.AvailabilityWindow{{StartTime: "09:00", EndTime: "12:00"}},
		})
	}
	return days
}

func TestIsDateBookableRejectsPastDays(t *testing.T) {
	// 2025-06-02 is a Monday.
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	days := weekdayAvailability("Sunday", "Monday")

	yesterday := time.Date(2025, time.June, 1, 23, 0, 0, 0, time.UTC)
	assert.False(t, IsDateBookable(days, yesterday, now))
}

func TestIsDateBookableAcceptsToday(t *testing.T) {
	now := time.Date(2025, time.June, 2, 23, 30, 0, 0, time.UTC)
	days := weekdayAvailability("Monday")

	// Same calendar day counts even when the clock is later than now.
	today := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsDateBookable(days, today, now))
}

func TestIsDateBookableRequiresOpenWeekday(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	days := weekdayAvailability("Monday")

	// 2025-06-03 is a Tuesday with no declared window.
	tuesday := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDateBookable(days, tuesday, now))

	// The following Monday is open.
	nextMonday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsDateBookable(days, nextMonday, now))
}

func TestIsDateBookableEmptyWindowListDoesNotCount(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	days := []models.DayAvailability{{Day: "Monday", Slots: nil}}

	monday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDateBookable(days, monday, now))
}

func TestIsDateBookableNoAvailability(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	future := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDateBookable(nil, future, now))
}
