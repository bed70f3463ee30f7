package models

import "time"

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentApproved  = "approved"
	AppointmentRejected  = "rejected"
	AppointmentCompleted = "completed"
)

// Appointment is a booked consultation between a patient and a doctor.
// Date is a "YYYY-MM-DD" calendar date; Time is a bookable slot label in
// "hh:mm AM/PM" form derived from the doctor's availability.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	Doctor    string    `bson:"doctor" json:"doctor"`
	Patient   string    `bson:"patient" json:"patient"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentView embeds the counterparty summaries for dashboards.
type AppointmentView struct {
	Appointment
	DoctorInfo  *UserSummary `json:"doctorInfo,omitempty"`
	PatientInfo *UserSummary `json:"patientInfo,omitempty"`
}

// BookAppointmentRequest is the booking payload submitted by a patient.
type BookAppointmentRequest struct {
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// UpdateAppointmentStatusRequest carries a status transition.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
