package handlers

import (
	"net/http"
	"time"

	"telemed/models"
	scheduleService "telemed/services/schedule"
	"telemed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves doctor availability and derived slots.
type AvailabilityHandler struct {
	Schedule scheduleService.ScheduleService
}

// GetAvailabilityHandler handles GET /api/availability/:doctorId.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	doctorID := c.Param("doctorId")

	days, err := h.Schedule.GetDoctorAvailability(doctorID)
	if err != nil {
		logger.Error("Availability fetch failed", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "availability": days})
}

// GetSlotsHandler handles GET /api/availability/:doctorId/slots?date=YYYY-MM-DD.
// It returns the bookable hourly slot labels for the doctor on that date.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	doctorID := c.Param("doctorId")

	dateStr := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid YYYY-MM-DD calendar date"})
		return
	}

	bookable, err := h.Schedule.IsBookable(doctorID, date)
	if err != nil {
		logger.Error("Eligibility check failed", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !bookable {
		c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": dateStr, "slots": []string{}})
		return
	}

	slots, err := h.Schedule.BookableSlots(doctorID, date)
	if err != nil {
		logger.Error("Slot derivation failed", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": dateStr, "slots": slots})
}

// ReplaceAvailabilityHandler handles PUT /api/availability. Doctor only; the
// caller replaces their own weekly availability wholesale.
func (h *AvailabilityHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req models.ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	availability, err := h.Schedule.ReplaceAvailability(doctorID, req.Availability)
	if err != nil {
		logger.Error("Availability replace failed", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, availability)
}

// ClearAvailabilityHandler handles DELETE /api/availability. Doctor only; the
// caller removes their own weekly availability entirely.
func (h *AvailabilityHandler) ClearAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.Schedule.ClearAvailability(doctorID); err != nil {
		logger.Error("Availability clear failed", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability cleared"})
}
