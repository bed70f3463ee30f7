package schedule

import (
	"testing"
	"time"

	"telemed/models"

	"github.com/stretchr/testify/assert"
)

// fakeAvailabilityRepo is an in-memory stand-in for the Mongo repository.
type fakeAvailabilityRepo struct {
	stored map[string]*models.DoctorAvailability
	err    error
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{stored: make(map[string]*models.DoctorAvailability)}
}

func (f *fakeAvailabilityRepo) GetByDoctorID(doctorID string) (*models.DoctorAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored[doctorID], nil
}

func (f *fakeAvailabilityRepo) Replace(availability *models.DoctorAvailability) error {
	if f.err != nil {
		return f.err
	}
	f.stored[availability.DoctorID] = availability
	return nil
}

func (f *fakeAvailabilityRepo) DeleteByDoctorID(doctorID string) error {
	delete(f.stored, doctorID)
	return nil
}

func validDays() []models.DayAvailability {
	return []models.DayAvailability{
		{Day: "Monday", Slots: []models.AvailabilityWindow{{StartTime: "09:00", EndTime: "17:00"}}},
		{Day: "Friday", Slots: []models.AvailabilityWindow{{StartTime: "10:00", EndTime: "13:00"}}},
	}
}

func TestReplaceAvailabilityStoresValidSet(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultScheduleService{Repo: repo}

	availability, err := svc.ReplaceAvailability("doc-1", validDays())
	assert.NoError(t, err)
	assert.Equal(t, "doc-1", availability.DoctorID)
	assert.Len(t, repo.stored["doc-1"].Days, 2)
}

func TestReplaceAvailabilityRejectsUnknownWeekday(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultScheduleService{Repo: repo}

	days := []models.DayAvailability{
		{Day: "Funday", Slots: []models.AvailabilityWindow{{StartTime: "09:00", EndTime: "17:00"}}},
	}
	_, err := svc.ReplaceAvailability("doc-1", days)
	assert.Error(t, err)
	assert.Empty(t, repo.stored)
}

func TestReplaceAvailabilityRejectsDuplicateDay(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultScheduleService{Repo: repo}

	days := []models.DayAvailability{
		{Day: "Monday", Slots: []models.AvailabilityWindow{{StartTime: "09:00", EndTime: "12:00"}}},
		{Day: "Monday", Slots: []models.AvailabilityWindow{{StartTime: "14:00", EndTime: "17:00"}}},
	}
	_, err := svc.ReplaceAvailability("doc-1", days)
	assert.Error(t, err)
}

func TestReplaceAvailabilityRequiresExactlyOneWindow(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultScheduleService{Repo: repo}

	_, err := svc.ReplaceAvailability("doc-1", []models.DayAvailability{{Day: "Monday"}})
	assert.Error(t, err)

	two := []models.DayAvailability{{Day: "Monday", Slots: []models.AvailabilityWindow{
		{StartTime: "09:00", EndTime: "12:00"},
		{StartTime: "14:00", EndTime: "17:00"},
	}}}
	_, err = svc.ReplaceAvailability("doc-1", two)
	assert.Error(t, err)
}

func TestReplaceAvailabilityRejectsInvertedWindow(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultScheduleService{Repo: repo}

	days := []models.DayAvailability{
		{Day: "Monday", Slots: []models.AvailabilityWindow{{StartTime: "17:00", EndTime: "09:00"}}},
	}
	_, err := svc.ReplaceAvailability("doc-1", days)
	assert.Error(t, err)
}

func TestGetDoctorAvailabilityEmptyWhenUndeclared(t *testing.T) {
	svc := &DefaultScheduleService{Repo: newFakeAvailabilityRepo()}

	days, err := svc.GetDoctorAvailability("doc-unknown")
	assert.NoError(t, err)
	assert.Empty(t, days)
}

func TestClearAvailabilityRemovesDeclaredDays(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultScheduleService{Repo: repo}

	_, err := svc.ReplaceAvailability("doc-1", validDays())
	assert.NoError(t, err)
	assert.Contains(t, repo.stored, "doc-1")

	assert.NoError(t, svc.ClearAvailability("doc-1"))
	assert.NotContains(t, repo.stored, "doc-1")

	days, err := svc.GetDoctorAvailability("doc-1")
	assert.NoError(t, err)
	assert.Empty(t, days)
}

func TestBookableSlotsFollowWeekday(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultScheduleService{Repo: repo}

	_, err := svc.ReplaceAvailability("doc-1", validDays())
	assert.NoError(t, err)

	// 2025-06-02 is a Monday, 2025-06-03 a Tuesday.
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	slots, err := svc.BookableSlots("doc-1", monday)
	assert.NoError(t, err)
	assert.Len(t, slots, 8)
	assert.Equal(t, "09:00 AM", slots[0])

	tuesday := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	slots, err = svc.BookableSlots("doc-1", tuesday)
	assert.NoError(t, err)
	assert.Empty(t, slots)
}
