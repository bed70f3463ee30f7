package appointment

import (
	"fmt"
	"time"

	"telemed/models"
	"telemed/utils"

	"go.uber.org/zap"
)

// allowedTransitions defines the appointment status lifecycle.
var allowedTransitions = map[string][]string{
	models.AppointmentPending:  {models.AppointmentApproved, models.AppointmentRejected},
	models.AppointmentApproved: {models.AppointmentCompleted},
}

// ListForUser returns appointments where the user is a party, with
// counterparty summaries embedded, newest first.
func (s *DefaultAppointmentService) ListForUser(userID string) ([]models.AppointmentView, error) {
	appts, err := s.Repo.GetByParty(userID)
	if err != nil {
		utils.GetLogger().Error("ListForUser: fetch failed", zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("could not fetch appointments")
	}

	summaries := make(map[string]*models.UserSummary)
	views := make([]models.AppointmentView, 0, len(appts))
	for _, appt := range appts {
		views = append(views, models.AppointmentView{
			Appointment: appt,
			DoctorInfo:  s.summaryFor(appt.Doctor, summaries),
			PatientInfo: s.summaryFor(appt.Patient, summaries),
		})
	}
	return views, nil
}

// summaryFor resolves a user summary, memoizing lookups across the listing.
// A missing counterparty (deleted account) degrades to a nil summary rather
// than failing the whole listing.
func (s *DefaultAppointmentService) summaryFor(userID string, cache map[string]*models.UserSummary) *models.UserSummary {
	if summary, ok := cache[userID]; ok {
		return summary
	}
	user, err := s.Users.GetByID(userID)
	if err != nil {
		utils.GetLogger().Warn("ListForUser: counterparty lookup failed", zap.String("userId", userID), zap.Error(err))
		cache[userID] = nil
		return nil
	}
	summary := user.Summary()
	cache[userID] = &summary
	return &summary
}

// UpdateStatus applies a status transition on behalf of the appointment's
// doctor or an admin.
func (s *DefaultAppointmentService) UpdateStatus(actorID, actorRole, appointmentID, status string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment not found")
	}
	if actorRole != models.RoleAdmin && appt.Doctor != actorID {
		return nil, fmt.Errorf("only the appointment's doctor may change its status")
	}

	if !transitionAllowed(appt.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.Repo.UpdateStatus(appointmentID, status); err != nil {
		utils.GetLogger().Error("UpdateStatus: store failed", zap.String("appointmentId", appointmentID), zap.Error(err))
		return nil, fmt.Errorf("failed to update appointment status")
	}
	appt.Status = status
	return appt, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CompletePastApproved sweeps approved appointments with past dates into the
// completed status.
func (s *DefaultAppointmentService) CompletePastApproved() (int64, error) {
	today := time.Now().Format(dateLayout)
	updated, err := s.Repo.CompletePastApproved(today)
	if err != nil {
		utils.GetLogger().Error("CompletePastApproved: sweep failed", zap.Error(err))
		return 0, err
	}
	if updated > 0 {
		utils.GetLogger().Info("Completed past appointments", zap.Int64("count", updated))
	}
	return updated, nil
}
