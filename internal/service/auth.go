package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/repository"
	"autonom-backend/internal/security"
)

type authService struct {
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
}

func NewAuthService(staffRepo repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{staffRepo: staffRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.StaffUser, error) {
	username = strings.TrimSpace(username)
	user, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same error whether the account or the password is wrong.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("failed login attempt", "username", username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Username, user.FullName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.Info("staff login", "username", username)
	return token, user, nil
}

func (s *authService) Register(ctx context.Context, username, password, fullName string) (*domain.StaffUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return nil, fmt.Errorf("%w: username and a password of at least 8 characters are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.StaffUser{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := s.staffRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
