package schedule

import (
	"testing"

	"telemed/models"

	"github.com/stretchr/testify/assert"
)

func TestHourlySlotsStandardDay(t *testing.T) {
	slots := HourlySlots("09:00", "17:00")
	expected := []string{
		"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
		"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	}
	assert.Equal(t, expected, slots)
}

func TestHourlySlotsMidnightWindow(t *testing.T) {
	slots := HourlySlots("00:00", "02:00")
	assert.Equal(t, []string{"12:00 AM", "01:00 AM"}, slots)
}

func TestHourlySlotsNoonBoundary(t *testing.T) {
	slots := HourlySlots("11:00", "13:00")
	assert.Equal(t, []string{"11:00 AM", "12:00 PM"}, slots)
}

func TestHourlySlotsDropsTrailingPartialHour(t *testing.T) {
	// A slot is only emitted when its full hour fits before the end time.
	slots := HourlySlots("09:00", "17:30")
	assert.Len(t, slots, 8)
	assert.Equal(t, "04:00 PM", slots[len(slots)-1])
}

func TestHourlySlotsWindowTooShort(t *testing.T) {
	assert.Empty(t, HourlySlots("09:00", "09:30"))
	assert.Empty(t, HourlySlots("09:00", "09:00"))
}

func TestHourlySlotsInvertedWindow(t *testing.T) {
	assert.Empty(t, HourlySlots("17:00", "09:00"))
}

func TestHourlySlotsMalformedInput(t *testing.T) {
	assert.Empty(t, HourlySlots("9am", "17:00"))
	assert.Empty(t, HourlySlots("09:00", "25:00"))
	assert.Empty(t, HourlySlots("", ""))
}

func TestHourlySlotsOffsetStart(t *testing.T) {
	slots := HourlySlots("09:30", "12:00")
	assert.Equal(t, []string{"09:30 AM", "10:30 AM"}, slots)
}

func TestConvert24To12(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"01:00": "01:00 AM",
		"11:59": "11:59 AM",
		"12:00": "12:00 PM",
		"13:05": "01:05 PM",
		"23:59": "11:59 PM",
	}
	for input, expected := range cases {
		got, err := Convert24To12(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}
}

func TestConvert24To12Invalid(t *testing.T) {
	for _, input := range []string{"24:00", "12:60", "noon", "12", ""} {
		_, err := Convert24To12(input)
		assert.Error(t, err, input)
	}
}

func TestConvert12To24(t *testing.T) {
	cases := map[string]string{
		"12:00 AM": "00:00",
		"01:00 AM": "01:00",
		"11:59 AM": "11:59",
		"12:00 PM": "12:00",
		"01:05 PM": "13:05",
		"11:59 PM": "23:59",
	}
	for input, expected := range cases {
		got, err := Convert12To24(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}
}

func TestConvert12To24Invalid(t *testing.T) {
	for _, input := range []string{"13:00 PM", "00:00 AM", "12:00 XM", "12:00"} {
		_, err := Convert12To24(input)
		assert.Error(t, err, input)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for _, label := range HourlySlots("00:00", "23:59") {
		time24, err := Convert12To24(label)
		assert.NoError(t, err, label)
		back, err := Convert24To12(time24)
		assert.NoError(t, err, label)
		assert.Equal(t, label, back)
	}
}

func TestSlotsForDay(t *testing.T) {
	days := []models.DayAvailability{
		{Day: "Monday", Slots: []models.AvailabilityWindow{{StartTime: "09:00", EndTime: "12:00"}}},
		{Day: "Wednesday", Slots: []models.AvailabilityWindow{{StartTime: "14:00", EndTime: "16:00"}}},
	}

	assert.Equal(t, []string{"09:00 AM", "10:00 AM", "11:00 AM"}, SlotsForDay(days, "Monday"))
	assert.Equal(t, []string{"02:00 PM", "03:00 PM"}, SlotsForDay(days, "Wednesday"))
	assert.Empty(t, SlotsForDay(days, "Sunday"))
	assert.Empty(t, SlotsForDay(nil, "Monday"))
}
