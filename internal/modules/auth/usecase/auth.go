package usecase

import (
	"context"
	"fmt"

	"fintrack/internal/modules/auth/domain"
	"fintrack/internal/modules/auth/dto"
	authin "fintrack/internal/modules/auth/port/in"
	"fintrack/internal/modules/auth/service"
	apperrors "fintrack/internal/platform/errors"
)

type Interactor struct {
	svc     *service.AuthService
	session *domain.Session
}

func NewInteractor(svc *service.AuthService, session *domain.Session) authin.Usecase {
	return &Interactor{svc: svc, session: session}
}

func (i *Interactor) Bootstrap(ctx context.Context) (dto.SessionOutput, error) {
	if i.session.State() == domain.StateLoading {
		user, authenticated := i.svc.CheckProfile(ctx)
		i.session.Resolve(user, authenticated)
	}
	return i.snapshot(), nil
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	user, err := i.svc.Login(ctx, input.Email, input.Password)
	if err != nil {
		// Session state is untouched on failure; the caller surfaces the reason.
		return dto.SessionOutput{}, err
	}
	i.session.SetUser(user)
	return i.snapshot(), nil
}

// Register never touches the session: registering and logging in are
// decoupled operations.
func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) error {
	return i.svc.Register(ctx, domain.Registration{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	})
}

// Logout clears client state unconditionally, whatever the server said.
func (i *Interactor) Logout(ctx context.Context) error {
	i.svc.Logout(ctx)
	i.session.Clear()
	return nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) error {
	current, ok := i.session.User()
	if !ok {
		return apperrors.ErrNotAuthenticated
	}

	var update domain.ProfileUpdate
	if input.Email != "" && input.Email != current.Email {
		update.Email = &input.Email
	}
	if input.Username != "" && input.Username != current.Username {
		update.Username = &input.Username
	}
	if input.NewPassword != "" {
		if input.CurrentPassword == "" {
			return fmt.Errorf("%w: debes proporcionar tu contraseña actual para cambiarla", apperrors.ErrInvalidInput)
		}
		update.Password = &input.NewPassword
	}
	return i.svc.UpdateProfile(ctx, update)
}

func (i *Interactor) Current(_ context.Context) (dto.SessionOutput, error) {
	return i.snapshot(), nil
}

func (i *Interactor) snapshot() dto.SessionOutput {
	user, authenticated := i.session.User()
	return dto.SessionOutput{
		Authenticated: authenticated,
		Email:         user.Email,
		Username:      user.Username,
	}
}
