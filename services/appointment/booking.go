package appointment

import (
	"strings"
	"time"

	"telemed/models"
	"telemed/utils"

	"go.uber.org/zap"
)

// dateLayout is the wire format of appointment dates.
const dateLayout = "2006-01-02"

// Book validates a patient's booking request and persists a pending
// appointment. The check is fail-fast: the first violated precondition is
// returned as a user-facing BookingError and nothing is written.
func (s *DefaultAppointmentService) Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	doctor := strings.TrimSpace(req.Doctor)
	date := strings.TrimSpace(req.Date)
	timeLabel := strings.TrimSpace(req.Time)

	if doctor == "" || date == "" || timeLabel == "" {
		return nil, ErrMissingFields
	}

	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if day.Before(startOfToday()) {
		return nil, ErrDateUnavailable
	}

	// The candidate time must belong to the slot sequence derived from the
	// doctor's availability for the date's weekday. When no sequence exists
	// (the doctor never declared availability), membership is not enforced,
	// matching the declared-availability-first booking flow.
	slots, err := s.Schedule.BookableSlots(doctor, day)
	if err != nil {
		return nil, err
	}
	if len(slots) > 0 && !containsSlot(slots, timeLabel) {
		return nil, ErrSlotUnavailable
	}

	taken, err := s.Repo.SlotTaken(doctor, date, timeLabel)
	if err != nil {
		utils.GetLogger().Error("Book: slot occupancy check failed", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		Doctor:  doctor,
		Patient: patientID,
		Date:    date,
		Time:    timeLabel,
		Status:  models.AppointmentPending,
	}
	if err := s.Repo.Create(appt); err != nil {
		utils.GetLogger().Error("Book: failed to persist appointment", zap.Error(err))
		return nil, err
	}
	return appt, nil
}

func containsSlot(slots []string, label string) bool {
	for _, slot := range slots {
		if slot == label {
			return true
		}
	}
	return false
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
