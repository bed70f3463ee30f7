package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"telemed/models"
)

// parseClock parses a 24-hour "HH:MM" string into minutes from midnight.
func parseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return h*60 + m, nil
}

// labelFor formats minutes from midnight as a 12-hour "hh:mm AM/PM" label.
func labelFor(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h
	switch {
	case h == 0:
		h12 = 12
	case h > 12:
		h12 = h - 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

// Convert24To12 formats a 24-hour "HH:MM" clock value as an "hh:mm AM/PM"
// display label. Midnight maps to 12:00 AM and noon to 12:00 PM.
func Convert24To12(time24 string) (string, error) {
	minutes, err := parseClock(time24)
	if err != nil {
		return "", err
	}
	return labelFor(minutes), nil
}

// Convert12To24 parses an "hh:mm AM/PM" label back into 24-hour "HH:MM".
func Convert12To24(label string) (string, error) {
	var h, m int
	var suffix string
	if _, err := fmt.Sscanf(label, "%d:%d %s", &h, &m, &suffix); err != nil {
		return "", fmt.Errorf("invalid time label %q, expected hh:mm AM/PM", label)
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return "", fmt.Errorf("time label %q out of range", label)
	}
	switch suffix {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return "", fmt.Errorf("invalid time label %q, expected AM or PM suffix", label)
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// HourlySlots derives the ordered bookable labels inside one availability
// window. Labels start at the window's start time and advance by one hour; a
// label is emitted only when its full hour still fits before the end time,
// so a trailing partial hour is dropped. Empty or malformed windows yield no
// slots.
func HourlySlots(start, end string) []string {
	startMin, err := parseClock(start)
	if err != nil {
		return nil
	}
	endMin, err := parseClock(end)
	if err != nil {
		return nil
	}

	var slots []string
	for cur := startMin; cur+60 <= endMin; cur += 60 {
		slots = append(slots, labelFor(cur))
	}
	return slots
}

// SlotsForDay concatenates the hourly runs of every window a doctor keeps
// open on the named weekday, in window order.
func SlotsForDay(days []models.DayAvailability, weekday string) []string {
	var slots []string
	for _, day := range days {
		if day.Day != weekday {
			continue
		}
		for _, window := range day.Slots {
			slots = append(slots, HourlySlots(window.StartTime, window.EndTime)...)
		}
	}
	return slots
}
