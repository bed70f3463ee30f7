package availabilityRepo

import "telemed/models"

// AvailabilityRepository defines data access for doctor weekly availability.
type AvailabilityRepository interface {
	// GetByDoctorID retrieves a doctor's availability set. Returns (nil, nil)
	// when the doctor has not declared any availability yet.
	GetByDoctorID(doctorID string) (*models.DoctorAvailability, error)
	// Replace stores the given set as the doctor's availability, overwriting
	// any previous set.
	Replace(availability *models.DoctorAvailability) error
	// DeleteByDoctorID removes a doctor's availability set.
	DeleteByDoctorID(doctorID string) error
}
