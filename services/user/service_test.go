package user

import (
	"fmt"
	"testing"

	"telemed/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory stand-in for the Mongo repository.
type fakeUserRepo struct {
	byID    map[string]*models.User
	updates map[string]bson.M
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byID:    make(map[string]*models.User),
		updates: make(map[string]bson.M),
	}
	for _, u := range users {
		repo.byID[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByRole(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	f.updates[id] = updateDoc
	if u, ok := f.byID[id]; ok {
		if status, ok := updateDoc["status"].(string); ok {
			u.Status = status
		}
		if name, ok := updateDoc["name"].(string); ok {
			u.Name = name
		}
		if hash, ok := updateDoc["tokenHash"].(string); ok {
			u.TokenHash = hash
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) CountByFilter(filter bson.M) (int64, error) {
	role, _ := filter["role"].(string)
	var n int64
	for _, u := range f.byID {
		if role == "" || u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) GroupByField(field string) ([]models.StatusCount, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetRecent(limit int64) ([]models.User, error) {
	return f.GetAll()
}

func patientRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "Brian Otieno",
		Email:    "brian@example.com",
		Password: "secret123",
		Role:     "patient",
	}
}

func TestRegisterPatient(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(patientRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RolePatient, resp.User.Role)
	assert.Len(t, repo.byID, 1)

	stored, _ := repo.GetByEmail("brian@example.com")
	assert.Equal(t, models.StatusActive, stored.Status)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	req := patientRequest()
	req.Role = "admin"
	_, err := svc.Register(req)
	assert.Error(t, err)
}

func TestRegisterDoctorRequiresCredentials(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	req := patientRequest()
	req.Role = "doctor"
	_, err := svc.Register(req)
	assert.Error(t, err)

	req.Profile = &models.DoctorProfile{Specialization: "Cardiology", License: "KMP-1234"}
	resp, err := svc.Register(req)
	assert.NoError(t, err)
	assert.Equal(t, "Cardiology", resp.User.Profile.Specialization)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(patientRequest())
	assert.NoError(t, err)

	_, err = svc.Register(patientRequest())
	assert.Error(t, err)
	assert.Len(t, repo.byID, 1)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(patientRequest())
	assert.NoError(t, err)

	resp, err := svc.Authenticate("brian@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate("brian@example.com", "wrongpass")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody@example.com", "secret123")
	assert.Error(t, err)
}

func TestAuthenticateRefusesInactiveAccount(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	inactive := &models.User{
		ID:           "u1",
		Email:        "brian@example.com",
		PasswordHash: string(hash),
		Role:         models.RolePatient,
		Status:       models.StatusInactive,
	}
	svc := &DefaultUserService{Repo: newFakeUserRepo(inactive)}

	_, err := svc.Authenticate("brian@example.com", "secret123")
	assert.Error(t, err)
}

func TestSetStatusRevokesTokenOnDeactivate(t *testing.T) {
	active := &models.User{
		ID:     "u1",
		Email:  "brian@example.com",
		Role:   models.RolePatient,
		Status: models.StatusActive,
	}
	repo := newFakeUserRepo(active)
	svc := &DefaultUserService{Repo: repo}

	usr, err := svc.SetStatus("u1", models.StatusInactive)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusInactive, usr.Status)
	assert.Equal(t, "", usr.TokenHash)

	_, err = svc.SetStatus("u1", "suspended")
	assert.Error(t, err)
}

func TestGetDoctorsFiltersInactive(t *testing.T) {
	repo := newFakeUserRepo(
		&models.User{ID: "d1", Role: models.RoleDoctor, Status: models.StatusActive},
		&models.User{ID: "d2", Role: models.RoleDoctor, Status: models.StatusInactive},
		&models.User{ID: "p1", Role: models.RolePatient, Status: models.StatusActive},
	)
	svc := &DefaultUserService{Repo: repo}

	doctors, err := svc.GetDoctors()
	assert.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Equal(t, "d1", doctors[0].ID)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	assert.NoError(t, svc.EnsureDefaultAdmin("admin@example.com", "admin@123"))
	count, _ := repo.CountByFilter(bson.M{"role": models.RoleAdmin})
	assert.Equal(t, int64(1), count)

	// Idempotent: a second call does not create another admin.
	assert.NoError(t, svc.EnsureDefaultAdmin("admin@example.com", "admin@123"))
	count, _ = repo.CountByFilter(bson.M{"role": models.RoleAdmin})
	assert.Equal(t, int64(1), count)
}
