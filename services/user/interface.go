package user

import (
	userRepo "telemed/database/repository/user"
	"telemed/models"
)

// UserService owns account registration, authentication and profile access.
type UserService interface {
	// Registration and authentication
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	RevokeAuthToken(userID string) error

	// Profile access
	GetUserByID(userID string) (*models.User, error)
	UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error)
	GetDoctors() ([]models.UserSummary, error)

	// Admin / utility
	GetAllUsers() ([]models.UserSummary, error)
	SetStatus(userID, status string) (*models.User, error)
	EnsureDefaultAdmin(email, password string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
