package schedule

import (
	"fmt"
	"time"

	availabilityRepo "telemed/database/repository/availability"
	"telemed/models"
	"telemed/utils"

	"go.uber.org/zap"
)

const (
	availabilityCachePrefix = "availability:"
	availabilityCacheTTL    = 10 * time.Minute
)

func availabilityCacheKey(doctorID string) string {
	return availabilityCachePrefix + doctorID
}

// ScheduleService manages doctor availability and derives bookable slots.
type ScheduleService interface {
	// GetDoctorAvailability returns the doctor's weekly availability set,
	// empty when none has been declared.
	GetDoctorAvailability(doctorID string) ([]models.DayAvailability, error)
	// ReplaceAvailability validates and stores a wholesale replacement of the
	// doctor's availability set.
	ReplaceAvailability(doctorID string, days []models.DayAvailability) (*models.DoctorAvailability, error)
	// ClearAvailability removes the doctor's availability set entirely.
	ClearAvailability(doctorID string) error
	// BookableSlots derives the ordered slot labels for the doctor on the
	// date's weekday.
	BookableSlots(doctorID string, date time.Time) ([]string, error)
	// IsBookable applies the date eligibility rules for the doctor.
	IsBookable(doctorID string, date time.Time) (bool, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo availabilityRepo.AvailabilityRepository
}

// GetDoctorAvailability returns the doctor's weekly availability set. Reads
// go through the generic cache; a miss falls back to Mongo and repopulates.
func (s *DefaultScheduleService) GetDoctorAvailability(doctorID string) ([]models.DayAvailability, error) {
	var cached []models.DayAvailability
	if utils.GetCachedJSON(availabilityCacheKey(doctorID), &cached) {
		return cached, nil
	}

	availability, err := s.Repo.GetByDoctorID(doctorID)
	if err != nil {
		utils.GetLogger().Error("GetDoctorAvailability: fetch failed", zap.String("doctorId", doctorID), zap.Error(err))
		return nil, fmt.Errorf("could not fetch doctor availability")
	}

	days := []models.DayAvailability{}
	if availability != nil {
		days = availability.Days
	}
	if err := utils.CacheJSON(availabilityCacheKey(doctorID), days, availabilityCacheTTL); err != nil {
		utils.GetLogger().Warn("GetDoctorAvailability: cache write failed", zap.String("doctorId", doctorID), zap.Error(err))
	}
	return days, nil
}

// ReplaceAvailability validates and stores the doctor's availability set.
// The platform clamps to exactly one window per day, so a replacement
// carrying duplicate days or multi-window days is rejected outright.
func (s *DefaultScheduleService) ReplaceAvailability(doctorID string, days []models.DayAvailability) (*models.DoctorAvailability, error) {
	if err := validateAvailability(days); err != nil {
		return nil, err
	}

	availability := &models.DoctorAvailability{
		DoctorID: doctorID,
		Days:     days,
	}
	if err := s.Repo.Replace(availability); err != nil {
		utils.GetLogger().Error("ReplaceAvailability: store failed", zap.String("doctorId", doctorID), zap.Error(err))
		return nil, fmt.Errorf("failed to update availability")
	}
	if err := utils.CacheJSON(availabilityCacheKey(doctorID), days, availabilityCacheTTL); err != nil {
		utils.GetLogger().Warn("ReplaceAvailability: cache write failed", zap.String("doctorId", doctorID), zap.Error(err))
	}
	return availability, nil
}

// ClearAvailability removes the doctor's availability set entirely, leaving
// the doctor unbookable until a new set is declared.
func (s *DefaultScheduleService) ClearAvailability(doctorID string) error {
	if err := s.Repo.DeleteByDoctorID(doctorID); err != nil {
		utils.GetLogger().Error("ClearAvailability: delete failed", zap.String("doctorId", doctorID), zap.Error(err))
		return fmt.Errorf("failed to clear availability")
	}
	if err := utils.InvalidateCache(availabilityCacheKey(doctorID)); err != nil {
		utils.GetLogger().Warn("ClearAvailability: cache invalidation failed", zap.String("doctorId", doctorID), zap.Error(err))
	}
	return nil
}

// BookableSlots derives the ordered slot labels for the doctor on the
// date's weekday.
func (s *DefaultScheduleService) BookableSlots(doctorID string, date time.Time) ([]string, error) {
	days, err := s.GetDoctorAvailability(doctorID)
	if err != nil {
		return nil, err
	}
	return SlotsForDay(days, date.Weekday().String()), nil
}

// IsBookable applies the date eligibility rules for the doctor.
func (s *DefaultScheduleService) IsBookable(doctorID string, date time.Time) (bool, error) {
	days, err := s.GetDoctorAvailability(doctorID)
	if err != nil {
		return false, err
	}
	return IsDateBookable(days, date, time.Now()), nil
}

func validateAvailability(days []models.DayAvailability) error {
	valid := make(map[string]bool, len(models.Weekdays))
	for _, name := range models.Weekdays {
		valid[name] = true
	}

	seen := make(map[string]bool, len(days))
	for _, day := range days {
		if !valid[day.Day] {
			return fmt.Errorf("unknown weekday %q", day.Day)
		}
		if seen[day.Day] {
			return fmt.Errorf("duplicate availability entry for %s", day.Day)
		}
		seen[day.Day] = true

		if len(day.Slots) != 1 {
			return fmt.Errorf("%s must carry exactly one time window", day.Day)
		}
		window := day.Slots[0]
		start, err := parseClock(window.StartTime)
		if err != nil {
			return fmt.Errorf("%s: %v", day.Day, err)
		}
		end, err := parseClock(window.EndTime)
		if err != nil {
			return fmt.Errorf("%s: %v", day.Day, err)
		}
		if start >= end {
			return fmt.Errorf("%s: start time must be before end time", day.Day)
		}
	}
	return nil
}
