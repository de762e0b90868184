package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"fintrack/internal/modules/auth/domain"
	authdto "fintrack/internal/modules/auth/dto"
	authin "fintrack/internal/modules/auth/port/in"
	"fintrack/internal/modules/auth/service"
	"fintrack/internal/modules/auth/usecase"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/log"
)

type fakeAPI struct {
	profileUser   domain.User
	profileErr    error
	profileCalls  int
	loginUser     domain.User
	loginErr      error
	logoutErr     error
	registerErr   error
	registered    *domain.Registration
	updated       *domain.ProfileUpdate
}

func (f *fakeAPI) FetchProfile(context.Context) (domain.User, error) {
	f.profileCalls++
	return f.profileUser, f.profileErr
}

func (f *fakeAPI) Login(context.Context, string, string) (domain.User, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, reg domain.Registration) error {
	f.registered = &reg
	return f.registerErr
}

func (f *fakeAPI) Logout(context.Context) error { return f.logoutErr }

func (f *fakeAPI) UpdateProfile(_ context.Context, update domain.ProfileUpdate) error {
	f.updated = &update
	return nil
}

type harness struct {
	uc      authin.Usecase
	session *domain.Session
}

func newInteractor(api *fakeAPI, session *domain.Session) harness {
	logger := log.New(io.Discard, "error")
	return harness{
		uc:      usecase.NewInteractor(service.NewAuthService(api, logger), session),
		session: session,
	}
}

func TestBootstrapUnauthorizedResolvesAnonymousWithoutError(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileErr: apperrors.ErrNotAuthenticated}
	it := newInteractor(api, domain.NewSession())

	out, err := it.uc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("401 on bootstrap must not surface an error, got %v", err)
	}
	if out.Authenticated {
		t.Fatalf("expected anonymous session")
	}
	if it.session.State() != domain.StateAnonymous {
		t.Fatalf("expected anonymous state, got %v", it.session.State())
	}
}

func TestBootstrapAuthenticatedEchoesProfile(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileUser: domain.User{Email: "ana@example.com", Username: "ana"}}
	it := newInteractor(api, domain.NewSession())

	out, err := it.uc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if !out.Authenticated || out.Email != "ana@example.com" || out.Username != "ana" {
		t.Fatalf("expected authenticated session with profile, got %+v", out)
	}
}

func TestBootstrapRunsProfileCheckExactlyOnce(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileUser: domain.User{Email: "ana@example.com"}}
	it := newInteractor(api, domain.NewSession())

	for i := 0; i < 3; i++ {
		if _, err := it.uc.Bootstrap(context.Background()); err != nil {
			t.Fatalf("bootstrap: %v", err)
		}
	}
	if api.profileCalls != 1 {
		t.Fatalf("expected a single profile check, got %d", api.profileCalls)
	}
}

func TestBootstrapServerErrorStillResolvesAnonymous(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileErr: errors.New("boom")}
	it := newInteractor(api, domain.NewSession())

	out, err := it.uc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("bootstrap must degrade, got %v", err)
	}
	if out.Authenticated {
		t.Fatalf("expected anonymous session on server error")
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileUser: domain.User{Email: "ana@example.com"}, loginErr: errors.New("credenciales inválidas")}
	it := newInteractor(api, domain.NewSession())
	if _, err := it.uc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if _, err := it.uc.Login(context.Background(), authdto.LoginInput{Email: "ana@example.com", Password: "bad"}); err == nil {
		t.Fatalf("expected login failure")
	}
	user, ok := it.session.User()
	if !ok || user.Email != "ana@example.com" {
		t.Fatalf("failed login must not change session, got %+v ok=%t", user, ok)
	}
}

func TestLoginSuccessAuthenticates(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileErr: apperrors.ErrNotAuthenticated, loginUser: domain.User{Email: "ana@example.com", Username: "ana"}}
	it := newInteractor(api, domain.NewSession())
	if _, err := it.uc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	out, err := it.uc.Login(context.Background(), authdto.LoginInput{Email: "ana@example.com", Password: "secret@123x"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !out.Authenticated || out.Username != "ana" {
		t.Fatalf("expected authenticated output, got %+v", out)
	}
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileUser: domain.User{Email: "ana@example.com"}, logoutErr: errors.New("network down")}
	it := newInteractor(api, domain.NewSession())
	if _, err := it.uc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if err := it.uc.Logout(context.Background()); err != nil {
		t.Fatalf("logout must not fail: %v", err)
	}
	if it.session.State() != domain.StateAnonymous {
		t.Fatalf("expected anonymous after logout")
	}
}

func TestRegisterDoesNotChangeSessionState(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileErr: apperrors.ErrNotAuthenticated}
	it := newInteractor(api, domain.NewSession())
	if _, err := it.uc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	err := it.uc.Register(context.Background(), authdto.RegisterInput{Email: "new@example.com", Password: "secret@123x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if it.session.State() != domain.StateAnonymous {
		t.Fatalf("register must not authenticate")
	}
	if api.registered == nil || api.registered.Email != "new@example.com" {
		t.Fatalf("registration payload not forwarded: %+v", api.registered)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	it := newInteractor(api, domain.NewSession())

	err := it.uc.Register(context.Background(), authdto.RegisterInput{Email: "new@example.com", Password: "short"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.registered != nil {
		t.Fatalf("invalid registration must not reach the network")
	}
}

func TestUpdateProfileSendsOnlyChangedFields(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileUser: domain.User{Email: "ana@example.com", Username: "ana"}}
	it := newInteractor(api, domain.NewSession())
	if _, err := it.uc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	err := it.uc.UpdateProfile(context.Background(), authdto.UpdateProfileInput{
		Email:    "ana@example.com",
		Username: "ana2",
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if api.updated == nil || api.updated.Email != nil || api.updated.Username == nil || *api.updated.Username != "ana2" {
		t.Fatalf("expected only username in payload, got %+v", api.updated)
	}
}

func TestUpdateProfilePasswordChangeNeedsCurrentPassword(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{profileUser: domain.User{Email: "ana@example.com"}}
	it := newInteractor(api, domain.NewSession())
	if _, err := it.uc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	err := it.uc.UpdateProfile(context.Background(), authdto.UpdateProfileInput{NewPassword: "secret@123x"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected current-password requirement, got %v", err)
	}
}
