package services

import (
	"testing"
	"time"

	"github.com/campuskit/lostfound-backend/internal/config"
	"github.com/campuskit/lostfound-backend/internal/database"
	"github.com/campuskit/lostfound-backend/internal/dto"
	"github.com/campuskit/lostfound-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(database.NewTestDB(t), &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	})
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@campus.edu",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	user, err := svc.GetUser(resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", user.Password)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@b.edu", Password: "short"})
	assert.Error(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Email: "a@b.edu", Password: "long-enough", Role: "superadmin",
	})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	req := &dto.RegisterRequest{Name: "Alice", Email: "alice@campus.edu", Password: "correct-horse"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Name: "Carol", Email: "carol@campus.edu", Password: "battery-staple", Role: models.RoleStaff,
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "carol@campus.edu", Password: "battery-staple"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, resp.User.Role)

	_, err = svc.Login(&dto.LoginRequest{Email: "carol@campus.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@campus.edu", Password: "battery-staple"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{
		Name: "Alice", Email: "alice@campus.edu", Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// The presented token is single-use.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := newAuthService(t)

	reg, err := svc.Register(&dto.RegisterRequest{
		Name: "Alice", Email: "alice@campus.edu", Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: reg.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
