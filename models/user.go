package models

import "time"

// User roles.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Account statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// DoctorProfile carries doctor-only credentials shown to patients.
type DoctorProfile struct {
	Specialization string `bson:"specialization" json:"specialization"`
	License        string `bson:"license" json:"license"`
}

// User represents a platform account: patient, doctor or admin.
type User struct {
	ID           string         `bson:"id" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	PasswordHash string         `bson:"passwordHash" json:"-"`
	Role         string         `bson:"role" json:"role"`
	Status       string         `bson:"status" json:"status"`
	Profile      *DoctorProfile `bson:"profile,omitempty" json:"profile,omitempty"`
	TokenHash    string         `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the public view embedded in appointments and listings.
type UserSummary struct {
	ID      string         `bson:"id" json:"id"`
	Name    string         `bson:"name" json:"name"`
	Email   string         `bson:"email" json:"email"`
	Role    string         `bson:"role" json:"role"`
	Profile *DoctorProfile `bson:"profile,omitempty" json:"profile,omitempty"`
}

// Summary projects the public fields of a user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Profile: u.Profile,
	}
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Role     string         `json:"role" binding:"required"`
	Profile  *DoctorProfile `json:"profile,omitempty"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// UserUpdateRequest carries the mutable profile fields.
type UserUpdateRequest struct {
	Name    string         `json:"name,omitempty"`
	Profile *DoctorProfile `json:"profile,omitempty"`
}
