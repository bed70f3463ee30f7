package recordRepo

import (
	"context"
	"fmt"
	"time"

	"telemed/database"
	"telemed/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRecordRepo implements RecordRepository using MongoDB. Medical records
// and report metadata live in separate collections behind one repository.
type MongoRecordRepo struct {
	records *mongo.Collection
	reports *mongo.Collection
}

// NewMongoRecordRepo creates a new RecordRepository backed by MongoDB.
func NewMongoRecordRepo() RecordRepository {
	repo := &MongoRecordRepo{
		records: database.Collection("medical_records"),
		reports: database.Collection("reports"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRecordRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.records.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "doctor", Value: 1}, {Key: "createdAt", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create record indexes: %w", err)
	}
	if _, err := r.reports.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient", Value: 1}, {Key: "uploadedAt", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create report indexes: %w", err)
	}
	return nil
}

// CreateRecord inserts a new medical record.
func (r *MongoRecordRepo) CreateRecord(record *models.MedicalRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	if _, err := r.records.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

// GetRecordsByPatient retrieves a patient's medical history, newest first.
func (r *MongoRecordRepo) GetRecordsByPatient(patientID string) ([]models.MedicalRecord, error) {
	return r.findRecords(bson.M{"patient": patientID})
}

// GetRecordsByDoctor retrieves records authored by a doctor, newest first.
func (r *MongoRecordRepo) GetRecordsByDoctor(doctorID string) ([]models.MedicalRecord, error) {
	return r.findRecords(bson.M{"doctor": doctorID})
}

func (r *MongoRecordRepo) findRecords(filter bson.M) ([]models.MedicalRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.records.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve medical records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode medical records: %w", err)
	}
	return records, nil
}

// CreateReport inserts uploaded report metadata.
func (r *MongoRecordRepo) CreateReport(report *models.Report) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	report.UploadedAt = time.Now()

	if _, err := r.reports.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetReportsByPatient retrieves a patient's uploaded reports, newest first.
func (r *MongoRecordRepo) GetReportsByPatient(patientID string) ([]models.Report, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	cursor, err := r.reports.Find(ctx, bson.M{"patient": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}
