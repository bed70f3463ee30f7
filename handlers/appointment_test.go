package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"telemed/models"
	appointmentService "telemed/services/appointment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeAppointments scripts the service responses for handler tests.
type fakeAppointments struct {
	bookErr    error
	booked     *models.Appointment
	views      []models.AppointmentView
	updateErr  error
	updated    *models.Appointment
	lastListID string
}

func (f *fakeAppointments) Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.booked = &models.Appointment{
		Doctor:  req.Doctor,
		Patient: patientID,
		Date:    req.Date,
		Time:    req.Time,
		Status:  models.AppointmentPending,
	}
	return f.booked, nil
}

func (f *fakeAppointments) ListForUser(userID string) ([]models.AppointmentView, error) {
	f.lastListID = userID
	return f.views, nil
}

func (f *fakeAppointments) UpdateStatus(actorID, actorRole, appointmentID, status string) (*models.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeAppointments) CompletePastApproved() (int64, error) { return 0, nil }

func authedContext(t *testing.T, userID, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set("userID", userID)
	c.Set("role", role)
	return c, rec
}

func withJSONBody(c *gin.Context, method, target string, payload any) {
	body, _ := json.Marshal(payload)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

func TestBookHandlerCreatesAppointment(t *testing.T) {
	svc := &fakeAppointments{}
	h := &AppointmentHandler{Appointments: svc}

	c, rec := authedContext(t, "pat-1", models.RolePatient)
	date := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	withJSONBody(c, http.MethodPost, "/api/appointments", models.BookAppointmentRequest{
		Doctor: "doc-1", Date: date, Time: "09:00 AM",
	})

	h.BookHandler(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "pat-1", svc.booked.Patient)

	var got models.Appointment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.AppointmentPending, got.Status)
}

func TestBookHandlerMapsAdmissionFailures(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{appointmentService.ErrMissingFields, http.StatusBadRequest},
		{appointmentService.ErrInvalidDate, http.StatusBadRequest},
		{appointmentService.ErrDateUnavailable, http.StatusBadRequest},
		{appointmentService.ErrSlotUnavailable, http.StatusBadRequest},
		{appointmentService.ErrSlotTaken, http.StatusConflict},
	}

	for _, tc := range cases {
		h := &AppointmentHandler{Appointments: &fakeAppointments{bookErr: tc.err}}
		c, rec := authedContext(t, "pat-1", models.RolePatient)
		withJSONBody(c, http.MethodPost, "/api/appointments", models.BookAppointmentRequest{
			Doctor: "doc-1", Date: "2030-01-07", Time: "09:00 AM",
		})

		h.BookHandler(c)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestBookHandlerRequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/appointments", nil)

	h := &AppointmentHandler{Appointments: &fakeAppointments{}}
	h.BookHandler(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListHandlerForbidsForeignListing(t *testing.T) {
	h := &AppointmentHandler{Appointments: &fakeAppointments{}}

	c, rec := authedContext(t, "pat-1", models.RolePatient)
	c.Params = gin.Params{{Key: "userId", Value: "pat-2"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/appointments/pat-2", nil)

	h.ListHandler(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListHandlerAdminMayListAnyone(t *testing.T) {
	svc := &fakeAppointments{views: []models.AppointmentView{}}
	h := &AppointmentHandler{Appointments: svc}

	c, rec := authedContext(t, "admin-1", models.RoleAdmin)
	c.Params = gin.Params{{Key: "userId", Value: "pat-2"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/appointments/pat-2", nil)

	h.ListHandler(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pat-2", svc.lastListID)
}

func TestUpdateStatusHandler(t *testing.T) {
	updated := &models.Appointment{ID: "appt-1", Status: models.AppointmentApproved}
	h := &AppointmentHandler{Appointments: &fakeAppointments{updated: updated}}

	c, rec := authedContext(t, "doc-1", models.RoleDoctor)
	c.Params = gin.Params{{Key: "id", Value: "appt-1"}}
	withJSONBody(c, http.MethodPut, "/api/appointments/appt-1/status", models.UpdateAppointmentStatusRequest{
		Status: models.AppointmentApproved,
	})

	h.UpdateStatusHandler(c)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.Appointment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.AppointmentApproved, got.Status)
}

func TestUpdateStatusHandlerInvalidTransition(t *testing.T) {
	h := &AppointmentHandler{Appointments: &fakeAppointments{updateErr: appointmentService.ErrInvalidTransition}}

	c, rec := authedContext(t, "doc-1", models.RoleDoctor)
	c.Params = gin.Params{{Key: "id", Value: "appt-1"}}
	withJSONBody(c, http.MethodPut, "/api/appointments/appt-1/status", models.UpdateAppointmentStatusRequest{
		Status: models.AppointmentCompleted,
	})

	h.UpdateStatusHandler(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
