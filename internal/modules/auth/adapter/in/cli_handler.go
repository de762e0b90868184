package in

import (
	"context"

	authdto "fintrack/internal/modules/auth/dto"
	authin "fintrack/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Bootstrap(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Bootstrap(ctx)
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.SessionOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, email, username, password string) error {
	return h.usecase.Register(ctx, authdto.RegisterInput{Email: email, Username: username, Password: password})
}

func (h CLIHandler) UpdateProfile(ctx context.Context, email, username, currentPassword, newPassword string) error {
	return h.usecase.UpdateProfile(ctx, authdto.UpdateProfileInput{
		Email:           email,
		Username:        username,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}
