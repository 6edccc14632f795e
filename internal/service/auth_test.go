package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/security"
)

const testSecret = "test-secret-test-secret-test-secret-1234"

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("parola123"), bcrypt.MinCost)
	assert.NoError(t, err)

	operator := &domain.StaffUser{
		ID:           1,
		Username:     "ana",
		PasswordHash: string(hash),
		FullName:     "Ana Marin",
	}

	t.Run("Success", func(t *testing.T) {
		staffRepo := new(MockStaffRepo)
		staffRepo.On("GetByUsername", ctx, "ana").Return(operator, nil)
		svc := NewAuthService(staffRepo, tokens)

		token, user, err := svc.Login(ctx, "ana", "parola123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "ana", user.Username)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), claims.UserID)
		assert.Equal(t, "Ana Marin", claims.FullName)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		staffRepo := new(MockStaffRepo)
		staffRepo.On("GetByUsername", ctx, "ana").Return(operator, nil)
		svc := NewAuthService(staffRepo, tokens)

		token, user, err := svc.Login(ctx, "ana", "gresit")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("Unknown User Gets Same Error", func(t *testing.T) {
		staffRepo := new(MockStaffRepo)
		staffRepo.On("GetByUsername", ctx, "necunoscut").Return(nil, domain.ErrNotFound)
		svc := NewAuthService(staffRepo, tokens)

		_, _, err := svc.Login(ctx, "necunoscut", "parola123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60)

	t.Run("Password Too Short", func(t *testing.T) {
		svc := NewAuthService(new(MockStaffRepo), tokens)
		user, err := svc.Register(ctx, "ana", "scurt", "Ana Marin")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("Hashes Password", func(t *testing.T) {
		staffRepo := new(MockStaffRepo)
		staffRepo.On("Create", ctx, mock.AnythingOfType("*domain.StaffUser")).Return(nil)
		svc := NewAuthService(staffRepo, tokens)

		user, err := svc.Register(ctx, "ana", "parola123", "Ana Marin")
		assert.NoError(t, err)
		assert.NotEqual(t, "parola123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("parola123")))
	})
}
