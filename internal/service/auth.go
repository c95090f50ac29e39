package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
	"boardlink-backend/internal/security"
)

type authService struct {
	store  repository.Store
	tokens security.TokenManager
}

func NewAuthService(store repository.Store, tokens security.TokenManager) AuthService {
	return &authService{store: store, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, username, password, email, location string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.Policyf("username and password are required")
	}

	var user *domain.User
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		if _, err := r.Users.GetByUsername(ctx, username); err == nil {
			return domain.Policyf("username already taken")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user = &domain.User{
			Username:     username,
			PasswordHash: string(hash),
			Email:        email,
			Location:     location,
			Role:         domain.RoleStandard,
		}
		return r.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, string, *domain.User, error) {
	user, err := s.store.Repos().Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", "", nil, domain.Policyf("invalid credentials")
		}
		return "", "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, domain.Policyf("invalid credentials")
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, user, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.Policyf("invalid refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.Policyf("invalid refresh token")
	}

	// Re-read the user so the new access token carries the current role,
	// which may have changed since the refresh token was issued.
	user, err := s.store.Repos().Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
