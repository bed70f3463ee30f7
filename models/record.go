package models

import "time"

// MedicalRecord is a doctor-authored entry in a patient's history.
type MedicalRecord struct {
	ID           string    `bson:"id" json:"id"`
	Patient      string    `bson:"patient" json:"patient"`
	Doctor       string    `bson:"doctor" json:"doctor"`
	Diagnosis    string    `bson:"diagnosis" json:"diagnosis"`
	Prescription string    `bson:"prescription" json:"prescription"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateMedicalRecordRequest is the payload a doctor submits.
type CreateMedicalRecordRequest struct {
	Patient      string `json:"patient" binding:"required"`
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// Report is patient-uploaded file metadata; the file itself lives in
// external storage under FileID.
type Report struct {
	ID          string    `bson:"id" json:"id"`
	Patient     string    `bson:"patient" json:"patient"`
	Description string    `bson:"description" json:"description"`
	FileID      string    `bson:"fileId" json:"fileId"`
	FileName    string    `bson:"fileName" json:"fileName"`
	URL         string    `bson:"url,omitempty" json:"url,omitempty"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
