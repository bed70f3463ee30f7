package handlers

import (
	"net/http"

	"telemed/models"
	recordService "telemed/services/record"
	"telemed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordHandler serves doctor-authored medical history entries.
type RecordHandler struct {
	Records recordService.RecordService
}

// CreateRecordHandler handles POST /api/medical-history. Doctor only.
func (h *RecordHandler) CreateRecordHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req models.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid medical record request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rec, err := h.Records.CreateRecord(doctorID, req)
	if err != nil {
		logger.Error("Medical record create failed", zap.String("doctor", doctorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// AuthoredRecordsHandler handles GET /api/medical-history. Doctor only; it
// returns the records the caller has authored, newest first.
func (h *RecordHandler) AuthoredRecordsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	records, err := h.Records.RecordsByDoctor(doctorID)
	if err != nil {
		logger.Error("Authored records fetch failed", zap.String("doctor", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListRecordsHandler handles GET /api/medical-history/:patientId. Patients
// read their own history; doctors and admins read any patient's.
func (h *RecordHandler) ListRecordsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	callerID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	patientID := c.Param("patientId")

	records, err := h.Records.RecordsFor(callerID, role, patientID)
	if err != nil {
		logger.Error("Medical history fetch failed", zap.String("patient", patientID), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
