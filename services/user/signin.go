package user

import (
	"fmt"
	"strings"

	"telemed/models"
	"telemed/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and returns a fresh token. Deactivated
// accounts are refused even with valid credentials.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if userRec.Status != models.StatusActive {
		return nil, fmt.Errorf("this account has been deactivated")
	}

	return s.issueToken(userRec)
}

// RevokeAuthToken invalidates the user's bearer token on logout.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := utils.RevokeAuthToken(userID); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: cache revoke failed", zap.Error(err))
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
