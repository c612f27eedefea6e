package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorshare/backend/internal/model"
	"github.com/flavorshare/backend/internal/service"
	"github.com/flavorshare/backend/internal/testhelpers"
)

const testSecret = "test-secret-0123456789"

func TestRegisterIssuesValidToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, 7*24*time.Hour)

	token, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var user model.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "password123", user.PasswordHash)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, 7*24*time.Hour)

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register("Other Alice", "alice@example.com", "different456")
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	var count int64
	db.Model(&model.User{}).Where("email = ?", "alice@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, 7*24*time.Hour)

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	var user model.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, 7*24*time.Hour)

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Login("alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenExpired(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	// Negative TTL forces the encoded expiry into the past.
	svc := service.NewAuthService(db, testSecret, -time.Hour)

	token, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, 7*24*time.Hour)
	other := service.NewAuthService(db, "another-secret-456789", 7*24*time.Hour)

	token, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, 7*24*time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
