package models

import "time"

// Weekday names as stored on availability entries, Sunday first.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// AvailabilityWindow is a single bookable window within a day.
// Times are 24-hour "HH:MM" strings with StartTime < EndTime.
type AvailabilityWindow struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// DayAvailability holds the windows a doctor keeps open on one weekday.
// The platform clamps to exactly one window per day; the slice shape is kept
// so the wire format matches clients that send a list.
type DayAvailability struct {
	Day   string               `bson:"day" json:"day"`
	Slots []AvailabilityWindow `bson:"slots" json:"slots"`
}

// DoctorAvailability is the persisted weekly availability set for a doctor.
type DoctorAvailability struct {
	ID        string            `bson:"id" json:"id"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	Days      []DayAvailability `bson:"days" json:"days"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// ReplaceAvailabilityRequest is the payload for the wholesale availability update.
type ReplaceAvailabilityRequest struct {
	Availability []DayAvailability `json:"availability" binding:"required"`
}
