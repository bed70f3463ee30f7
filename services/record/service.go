package record

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	recordRepo "telemed/database/repository/record"
	userRepo "telemed/database/repository/user"
	"telemed/models"
	"telemed/services/storage"
	"telemed/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	reportFolder  = "telemed/reports"
	reportURLTTL  = 15 * time.Minute
	uploadTimeout = 30 * time.Second
)

// RecordService owns medical histories and patient-uploaded reports.
type RecordService interface {
	// CreateRecord stores a doctor-authored entry in a patient's history.
	CreateRecord(doctorID string, req models.CreateMedicalRecordRequest) (*models.MedicalRecord, error)
	// RecordsFor returns the records the caller is entitled to see for the
	// subject: patients read their own history, doctors read any patient's,
	// admins read anything.
	RecordsFor(callerID, callerRole, subjectID string) ([]models.MedicalRecord, error)
	// RecordsByDoctor returns the records the doctor has authored, newest
	// first.
	RecordsByDoctor(doctorID string) ([]models.MedicalRecord, error)
	// UploadReport stores the file and its metadata for the patient.
	UploadReport(patientID, fileName, description string, content io.Reader) (*models.Report, error)
	// ReportsFor lists a patient's uploaded reports with fresh download URLs.
	ReportsFor(callerID, callerRole, patientID string) ([]models.Report, error)
}

// DefaultRecordService is the production implementation.
type DefaultRecordService struct {
	Repo    recordRepo.RecordRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}

// CreateRecord stores a doctor-authored entry in a patient's history.
func (s *DefaultRecordService) CreateRecord(doctorID string, req models.CreateMedicalRecordRequest) (*models.MedicalRecord, error) {
	if strings.TrimSpace(req.Diagnosis) == "" {
		return nil, fmt.Errorf("diagnosis is required")
	}

	patient, err := s.Users.GetByID(req.Patient)
	if err != nil || patient == nil || patient.Role != models.RolePatient {
		return nil, fmt.Errorf("patient not found")
	}

	rec := &models.MedicalRecord{
		ID:           uuid.New().String(),
		Patient:      req.Patient,
		Doctor:       doctorID,
		Diagnosis:    strings.TrimSpace(req.Diagnosis),
		Prescription: strings.TrimSpace(req.Prescription),
		Notes:        strings.TrimSpace(req.Notes),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.CreateRecord(rec); err != nil {
		utils.GetLogger().Error("CreateRecord: store failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create medical record")
	}
	return rec, nil
}

// RecordsFor returns the medical history the caller may read.
func (s *DefaultRecordService) RecordsFor(callerID, callerRole, subjectID string) ([]models.MedicalRecord, error) {
	switch callerRole {
	case models.RolePatient:
		if callerID != subjectID {
			return nil, fmt.Errorf("patients may only view their own records")
		}
	case models.RoleDoctor, models.RoleAdmin:
		// unrestricted
	default:
		return nil, fmt.Errorf("access denied")
	}

	records, err := s.Repo.GetRecordsByPatient(subjectID)
	if err != nil {
		utils.GetLogger().Error("RecordsFor: fetch failed", zap.String("patient", subjectID), zap.Error(err))
		return nil, fmt.Errorf("could not fetch medical records")
	}
	return records, nil
}

// RecordsByDoctor returns the records the doctor has authored, newest first.
func (s *DefaultRecordService) RecordsByDoctor(doctorID string) ([]models.MedicalRecord, error) {
	records, err := s.Repo.GetRecordsByDoctor(doctorID)
	if err != nil {
		utils.GetLogger().Error("RecordsByDoctor: fetch failed", zap.String("doctor", doctorID), zap.Error(err))
		return nil, fmt.Errorf("could not fetch medical records")
	}
	return records, nil
}

// UploadReport pushes the file to external storage and persists its metadata.
func (s *DefaultRecordService) UploadReport(patientID, fileName, description string, content io.Reader) (*models.Report, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, fmt.Errorf("file name is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	fileID, err := s.Storage.UploadFile(ctx, content, reportFolder)
	if err != nil {
		utils.GetLogger().Error("UploadReport: storage upload failed", zap.Error(err))
		return nil, fmt.Errorf("failed to upload report file")
	}

	report := &models.Report{
		ID:          uuid.New().String(),
		Patient:     patientID,
		Description: strings.TrimSpace(description),
		FileID:      fileID,
		FileName:    fileName,
		UploadedAt:  time.Now(),
	}
	if err := s.Repo.CreateReport(report); err != nil {
		utils.GetLogger().Error("UploadReport: metadata store failed", zap.Error(err))
		if delErr := s.Storage.DeleteFile(ctx, fileID); delErr != nil {
			utils.GetLogger().Warn("UploadReport: orphan cleanup failed", zap.String("fileId", fileID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to save report")
	}

	if url, err := s.Storage.GetDownloadURL(ctx, fileID, reportURLTTL); err == nil {
		report.URL = url
	}
	return report, nil
}

// ReportsFor lists a patient's uploaded reports with fresh download URLs.
func (s *DefaultRecordService) ReportsFor(callerID, callerRole, patientID string) ([]models.Report, error) {
	if callerRole == models.RolePatient && callerID != patientID {
		return nil, fmt.Errorf("patients may only view their own reports")
	}

	reports, err := s.Repo.GetReportsByPatient(patientID)
	if err != nil {
		utils.GetLogger().Error("ReportsFor: fetch failed", zap.String("patient", patientID), zap.Error(err))
		return nil, fmt.Errorf("could not fetch reports")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for i := range reports {
		if url, err := s.Storage.GetDownloadURL(ctx, reports[i].FileID, reportURLTTL); err == nil {
			reports[i].URL = url
		}
	}
	return reports, nil
}
