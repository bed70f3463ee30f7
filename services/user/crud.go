package user

import (
	"fmt"
	"strings"

	"telemed/models"
	"telemed/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("GetUserByID: fetch failed", zap.String("id", userID), zap.Error(err))
		return nil, fmt.Errorf("user not found")
	}
	return usr, nil
}

// UpdateProfile applies the mutable profile fields.
func (s *DefaultUserService) UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error) {
	updateDoc := bson.M{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updateDoc["name"] = name
	}
	if req.Profile != nil {
		updateDoc["profile"] = req.Profile
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateProfile: store failed", zap.String("id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile")
	}
	return s.GetUserByID(userID)
}

// GetDoctors lists the active doctors as public summaries.
func (s *DefaultUserService) GetDoctors() ([]models.UserSummary, error) {
	doctors, err := s.Repo.GetByRole(models.RoleDoctor)
	if err != nil {
		utils.GetLogger().Error("GetDoctors: fetch failed", zap.Error(err))
		return nil, fmt.Errorf("could not fetch doctors")
	}

	summaries := make([]models.UserSummary, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.Status != models.StatusActive {
			continue
		}
		summaries = append(summaries, doctor.Summary())
	}
	return summaries, nil
}

// GetAllUsers lists every account as a summary (admin view).
func (s *DefaultUserService) GetAllUsers() ([]models.UserSummary, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("GetAllUsers: fetch failed", zap.Error(err))
		return nil, fmt.Errorf("could not fetch users")
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, usr := range users {
		summaries = append(summaries, usr.Summary())
	}
	return summaries, nil
}

// SetStatus activates or deactivates an account. Deactivation also revokes
// any live token so the session dies with the account.
func (s *DefaultUserService) SetStatus(userID, status string) (*models.User, error) {
	if status != models.StatusActive && status != models.StatusInactive {
		return nil, fmt.Errorf("status must be active or inactive")
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"status": status}); err != nil {
		utils.GetLogger().Error("SetStatus: store failed", zap.String("id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user status")
	}
	if status == models.StatusInactive {
		if err := s.RevokeAuthToken(userID); err != nil {
			utils.GetLogger().Warn("SetStatus: token revoke failed", zap.String("id", userID), zap.Error(err))
		}
	}
	return s.GetUserByID(userID)
}
