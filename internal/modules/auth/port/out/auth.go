package out

import (
	"context"

	"fintrack/internal/modules/auth/domain"
)

// API is the auth surface of the finance service. Adapters translate
// HTTP 401 into apperrors.ErrNotAuthenticated and 404 into
// apperrors.ErrNotFound so the service layer can apply its policy without
// knowing about status codes.
type API interface {
	FetchProfile(ctx context.Context) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, reg domain.Registration) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error
}
