package admin

import (
	"fmt"

	appointmentRepo "telemed/database/repository/appointment"
	userRepo "telemed/database/repository/user"
	"telemed/models"
	"telemed/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// recentUserCount caps the dashboard's latest-signups list.
const recentUserCount = 5

// AdminService exposes the aggregate views behind the admin dashboard.
type AdminService interface {
	GetStats() (*models.AdminStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users        userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
}

// GetStats assembles platform-wide counts and recent activity.
func (s *DefaultAdminService) GetStats() (*models.AdminStats, error) {
	logger := utils.GetLogger()
	stats := &models.AdminStats{}

	var err error
	if stats.TotalUsers, err = s.Users.CountByFilter(bson.M{}); err != nil {
		logger.Error("GetStats: total users count failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	if stats.ActiveUsers, err = s.Users.CountByFilter(bson.M{"status": models.StatusActive}); err != nil {
		logger.Error("GetStats: active users count failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	if stats.Doctors, err = s.Users.CountByFilter(bson.M{"role": models.RoleDoctor}); err != nil {
		logger.Error("GetStats: doctor count failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	if stats.Patients, err = s.Users.CountByFilter(bson.M{"role": models.RolePatient}); err != nil {
		logger.Error("GetStats: patient count failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	if stats.Appointments, err = s.Appointments.CountByFilter(bson.M{}); err != nil {
		logger.Error("GetStats: appointment count failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	if stats.PendingAppointments, err = s.Appointments.CountByFilter(bson.M{"status": models.AppointmentPending}); err != nil {
		logger.Error("GetStats: pending appointment count failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}

	byStatus, err := s.Appointments.GroupByStatus()
	if err != nil {
		logger.Error("GetStats: appointment grouping failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	stats.AppointmentsByStatus = byStatus

	byRole, err := s.Users.GroupByField("role")
	if err != nil {
		logger.Error("GetStats: role grouping failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	stats.UsersByRole = byRole

	recent, err := s.Users.GetRecent(recentUserCount)
	if err != nil {
		logger.Error("GetStats: recent users fetch failed", zap.Error(err))
		return nil, fmt.Errorf("could not compute stats")
	}
	stats.RecentUsers = make([]models.UserSummary, 0, len(recent))
	for _, usr := range recent {
		stats.RecentUsers = append(stats.RecentUsers, usr.Summary())
	}

	return stats, nil
}
