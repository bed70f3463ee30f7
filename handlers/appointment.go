package handlers

import (
	"errors"
	"net/http"

	"telemed/models"
	appointmentService "telemed/services/appointment"
	"telemed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves booking and appointment lifecycle endpoints.
type AppointmentHandler struct {
	Appointments appointmentService.AppointmentService
}

// bookingErrorStatus maps an admission failure to its HTTP status.
func bookingErrorStatus(be *appointmentService.BookingError) int {
	switch be.Code {
	case "slotTaken":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// BookHandler handles POST /api/appointments. Patient only.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	patientID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Appointments.Book(patientID, req)
	if err != nil {
		var be *appointmentService.BookingError
		if errors.As(err, &be) {
			c.JSON(bookingErrorStatus(be), gin.H{"error": be.Message})
			return
		}
		logger.Error("Booking failed", zap.String("patient", patientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed"})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListHandler handles GET /api/appointments/:userId. Callers may list their
// own appointments; admins may list anyone's.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	logger := utils.GetLogger()

	callerID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	subjectID := c.Param("userId")
	if callerID != subjectID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		return
	}

	views, err := h.Appointments.ListForUser(subjectID)
	if err != nil {
		logger.Error("Appointment listing failed", zap.String("userId", subjectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// UpdateStatusHandler handles PUT /api/appointments/:id/status. The
// appointment's doctor and admins may transition the status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actorID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	appointmentID := c.Param("id")

	var req models.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Appointments.UpdateStatus(actorID, role, appointmentID, req.Status)
	if err != nil {
		var be *appointmentService.BookingError
		if errors.As(err, &be) {
			c.JSON(bookingErrorStatus(be), gin.H{"error": be.Message})
			return
		}
		logger.Error("Status update failed", zap.String("appointment", appointmentID), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}
