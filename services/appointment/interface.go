package appointment

import (
	appointmentRepo "telemed/database/repository/appointment"
	userRepo "telemed/database/repository/user"
	"telemed/models"
	"telemed/services/schedule"
)

// AppointmentService owns the booking admission check and the appointment
// status lifecycle.
type AppointmentService interface {
	// Book validates a patient's booking request and persists a pending
	// appointment on success.
	Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	// ListForUser returns appointments where the user is a party, with
	// counterparty summaries embedded, newest first.
	ListForUser(userID string) ([]models.AppointmentView, error)
	// UpdateStatus applies a status transition on behalf of the appointment's
	// doctor or an admin.
	UpdateStatus(actorID, actorRole, appointmentID, status string) (*models.Appointment, error)
	// CompletePastApproved sweeps approved appointments with past dates into
	// the completed status.
	CompletePastApproved() (int64, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Users    userRepo.UserRepository
	Schedule schedule.ScheduleService
}
