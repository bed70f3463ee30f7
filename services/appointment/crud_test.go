package appointment

import (
	"testing"

	"telemed/models"

	"github.com/stretchr/testify/assert"
)

func seededService(appt *models.Appointment, users ...*models.User) (*DefaultAppointmentService, *fakeAppointmentRepo) {
	repo := newFakeAppointmentRepo()
	if appt != nil {
		repo.byID[appt.ID] = appt
	}
	return &DefaultAppointmentService{
		Repo:     repo,
		Users:    newFakeUserDirectory(users...),
		Schedule: &fakeSchedule{},
	}, repo
}

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:      "appt-1",
		Doctor:  "doc-1",
		Patient: "pat-1",
		Date:    "2025-06-09",
		Time:    "09:00 AM",
		Status:  models.AppointmentPending,
	}
}

func TestUpdateStatusDoctorApproves(t *testing.T) {
	svc, repo := seededService(pendingAppointment())

	appt, err := svc.UpdateStatus("doc-1", models.RoleDoctor, "appt-1", models.AppointmentApproved)
	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentApproved, appt.Status)
	assert.Equal(t, []string{"appt-1:approved"}, repo.statusLog)
}

func TestUpdateStatusRejectsForeignDoctor(t *testing.T) {
	svc, repo := seededService(pendingAppointment())

	_, err := svc.UpdateStatus("doc-2", models.RoleDoctor, "appt-1", models.AppointmentApproved)
	assert.Error(t, err)
	assert.Empty(t, repo.statusLog)
}

func TestUpdateStatusAdminMayAct(t *testing.T) {
	svc, _ := seededService(pendingAppointment())

	appt, err := svc.UpdateStatus("admin-1", models.RoleAdmin, "appt-1", models.AppointmentRejected)
	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentRejected, appt.Status)
}

func TestUpdateStatusEnforcesLifecycle(t *testing.T) {
	// pending cannot jump straight to completed.
	svc, _ := seededService(pendingAppointment())
	_, err := svc.UpdateStatus("doc-1", models.RoleDoctor, "appt-1", models.AppointmentCompleted)
	assert.Equal(t, ErrInvalidTransition, err)

	// rejected is terminal.
	rejected := pendingAppointment()
	rejected.Status = models.AppointmentRejected
	svc, _ = seededService(rejected)
	_, err = svc.UpdateStatus("doc-1", models.RoleDoctor, "appt-1", models.AppointmentApproved)
	assert.Equal(t, ErrInvalidTransition, err)

	// approved may only complete.
	approved := pendingAppointment()
	approved.Status = models.AppointmentApproved
	svc, _ = seededService(approved)
	_, err = svc.UpdateStatus("doc-1", models.RoleDoctor, "appt-1", models.AppointmentPending)
	assert.Equal(t, ErrInvalidTransition, err)

	appt, err := svc.UpdateStatus("doc-1", models.RoleDoctor, "appt-1", models.AppointmentCompleted)
	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, appt.Status)
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc, _ := seededService(nil)

	_, err := svc.UpdateStatus("doc-1", models.RoleDoctor, "missing", models.AppointmentApproved)
	assert.Error(t, err)
}

func TestListForUserEmbedsCounterpartySummaries(t *testing.T) {
	doctor := &models.User{ID: "doc-1", Name: "Dr. Achieng", Role: models.RoleDoctor, Status: models.StatusActive}
	patient := &models.User{ID: "pat-1", Name: "Brian Otieno", Role: models.RolePatient, Status: models.StatusActive}
	svc, _ := seededService(pendingAppointment(), doctor, patient)

	views, err := svc.ListForUser("pat-1")
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Dr. Achieng", views[0].DoctorInfo.Name)
	assert.Equal(t, "Brian Otieno", views[0].PatientInfo.Name)
}

func TestListForUserToleratesDeletedCounterparty(t *testing.T) {
	// Only the patient still exists.
	patient := &models.User{ID: "pat-1", Name: "Brian Otieno", Role: models.RolePatient}
	svc, _ := seededService(pendingAppointment(), patient)

	views, err := svc.ListForUser("pat-1")
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Nil(t, views[0].DoctorInfo)
	assert.NotNil(t, views[0].PatientInfo)
}

func TestCompletePastApprovedSweep(t *testing.T) {
	past := &models.Appointment{
		ID: "appt-old", Doctor: "doc-1", Patient: "pat-1",
		Date: "2020-01-01", Status: models.AppointmentApproved,
	}
	svc, repo := seededService(past)

	updated, err := svc.CompletePastApproved()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), updated)
	assert.Equal(t, models.AppointmentCompleted, repo.byID["appt-old"].Status)
}

func TestCompletePastApprovedLeavesPendingAlone(t *testing.T) {
	past := &models.Appointment{
		ID: "appt-old", Doctor: "doc-1", Patient: "pat-1",
		Date: "2020-01-01", Status: models.AppointmentPending,
	}
	svc, repo := seededService(past)

	updated, err := svc.CompletePastApproved()
	assert.NoError(t, err)
	assert.Zero(t, updated)
	assert.Equal(t, models.AppointmentPending, repo.byID["appt-old"].Status)
}
