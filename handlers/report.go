package handlers

import (
	"net/http"

	recordService "telemed/services/record"
	"telemed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxReportSize caps uploaded report files at 10 MiB.
const maxReportSize = 10 << 20

// ReportHandler serves patient report uploads backed by external storage.
type ReportHandler struct {
	Records recordService.RecordService
}

// UploadReportHandler handles POST /api/reports/upload. Patient only; expects a
// multipart form with a "file" part and an optional "description" field.
func (h *ReportHandler) UploadReportHandler(c *gin.Context) {
	logger := utils.GetLogger()

	patientID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A report file is required"})
		return
	}
	if fileHeader.Size > maxReportSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Report file exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Report file open failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer file.Close()

	description := c.PostForm("description")
	report, err := h.Records.UploadReport(patientID, fileHeader.Filename, description, file)
	if err != nil {
		logger.Error("Report upload failed", zap.String("patient", patientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReportsHandler handles GET /api/reports/:patientId. Patients read their
// own uploads; doctors and admins read any patient's.
func (h *ReportHandler) ListReportsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	callerID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	patientID := c.Param("patientId")

	reports, err := h.Records.ReportsFor(callerID, role, patientID)
	if err != nil {
		logger.Error("Report listing failed", zap.String("patient", patientID), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reports)
}
