package recordRepo

import "telemed/models"

// RecordRepository defines data access for medical records and report metadata.
type RecordRepository interface {
	// CreateRecord inserts a new medical record.
	CreateRecord(record *models.MedicalRecord) error
	// GetRecordsByPatient retrieves a patient's medical history, newest first.
	GetRecordsByPatient(patientID string) ([]models.MedicalRecord, error)
	// GetRecordsByDoctor retrieves records authored by a doctor, newest first.
	GetRecordsByDoctor(doctorID string) ([]models.MedicalRecord, error)

	// CreateReport inserts uploaded report metadata.
	CreateReport(report *models.Report) error
	// GetReportsByPatient retrieves a patient's uploaded reports, newest first.
	GetReportsByPatient(patientID string) ([]models.Report, error)
}
