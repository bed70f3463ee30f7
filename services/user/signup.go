package user

import (
	"fmt"
	"strings"
	"time"

	"telemed/models"
	"telemed/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued bearer tokens.
const tokenTTL = 24 * time.Hour

// Register validates the payload, creates the account and returns a signed
// token. Only patient and doctor accounts are self-registered; admins are
// seeded or promoted.
func (s *DefaultUserService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != models.RolePatient && role != models.RoleDoctor {
		return nil, fmt.Errorf("role must be either patient or doctor")
	}
	if role == models.RoleDoctor {
		if req.Profile == nil || req.Profile.Specialization == "" || req.Profile.License == "" {
			return nil, fmt.Errorf("doctor registration requires specialization and license")
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: password hash failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.StatusActive,
	}
	if role == models.RoleDoctor {
		newUser.Profile = req.Profile
	}

	if err := s.Repo.Create(newUser); err != nil {
		utils.GetLogger().Error("Register: failed to persist user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(newUser)
}

// issueToken mints a JWT for the user, stores its hash on the record and in
// the auth cache, and assembles the auth response.
func (s *DefaultUserService) issueToken(usr *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: token mint failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := utils.CacheAuthToken(usr.ID, tokenHash); err != nil {
		// Cache failures degrade to DB-backed verification in middleware.
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &models.AuthResponse{Token: token, User: usr.Summary()}, nil
}

// EnsureDefaultAdmin seeds an admin account when none exists.
func (s *DefaultUserService) EnsureDefaultAdmin(email, password string) error {
	count, err := s.Repo.CountByFilter(bson.M{"role": models.RoleAdmin})
	if err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	admin := &models.User{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}
	if err := s.Repo.Create(admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	utils.GetLogger().Info("Default admin account created", zap.String("email", email))
	return nil
}
