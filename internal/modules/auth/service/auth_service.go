package service

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/modules/auth/domain"
	authout "fintrack/internal/modules/auth/port/out"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/log"
)

type AuthService struct {
	api    authout.API
	logger *log.Logger
}

func NewAuthService(api authout.API, logger *log.Logger) *AuthService {
	return &AuthService{api: api, logger: logger.WithComponent("auth")}
}

// CheckProfile performs the one-shot startup profile check. A 401 means no
// session cookie and resolves to anonymous without noise; a 404 or any other
// failure is logged but still resolves to anonymous rather than failing the
// whole client.
func (s *AuthService) CheckProfile(ctx context.Context) (domain.User, bool) {
	user, err := s.api.FetchProfile(ctx)
	switch {
	case err == nil:
		return user, true
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		return domain.User{}, false
	case errors.Is(err, apperrors.ErrNotFound):
		s.logger.Error("profile not found for session cookie", "err", err)
		return domain.User{}, false
	default:
		s.logger.Error("profile check failed", "err", err)
		return domain.User{}, false
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: correo y contraseña son requeridos", apperrors.ErrInvalidInput)
	}
	return s.api.Login(ctx, email, password)
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	return s.api.Register(ctx, reg)
}

// Logout tears down the server-side session on a best-effort basis. The
// caller clears client state regardless of the outcome here.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("server-side logout failed", "err", err)
	}
}

func (s *AuthService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	if update.Email == nil && update.Username == nil && update.Password == nil {
		return nil
	}
	if err := update.Validate(); err != nil {
		return err
	}
	return s.api.UpdateProfile(ctx, update)
}
