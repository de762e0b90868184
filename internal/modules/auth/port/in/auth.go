package in

import (
	"context"

	"fintrack/internal/modules/auth/dto"
)

type Usecase interface {
	// Bootstrap resolves the initial session state from the server-side
	// cookie. Safe to call more than once; only the first call hits the API.
	Bootstrap(ctx context.Context) (dto.SessionOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) error
	Current(ctx context.Context) (dto.SessionOutput, error)
}
