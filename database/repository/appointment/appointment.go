package appointmentRepo

import (
	"telemed/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppointmentRepository defines data access for appointment records.
type AppointmentRepository interface {
	// Create inserts a new appointment.
	Create(appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetByParty retrieves appointments where the user is the patient or the
	// doctor, newest date first.
	GetByParty(userID string) ([]models.Appointment, error)
	// UpdateStatus transitions an appointment to the given status.
	UpdateStatus(id, status string) error
	// SlotTaken reports whether a non-rejected appointment already holds the
	// (doctor, date, time) slot.
	SlotTaken(doctorID, date, timeLabel string) (bool, error)
	// CompletePastApproved marks approved appointments dated strictly before
	// the given date as completed; returns the number updated.
	CompletePastApproved(before string) (int64, error)

	// CountByFilter counts appointments matching the filter.
	CountByFilter(filter bson.M) (int64, error)
	// GroupByStatus returns appointment counts grouped by status.
	GroupByStatus() ([]models.StatusCount, error)
}
