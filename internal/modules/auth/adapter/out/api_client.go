package out

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"fintrack/internal/modules/auth/domain"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/httpapi"
)

// APIClient talks to the auth endpoints of the finance service. The session
// cookie is managed by the shared httpapi client's jar.
type APIClient struct {
	client *httpapi.Client
}

func NewAPIClient(client *httpapi.Client) *APIClient {
	return &APIClient{client: client}
}

func (c *APIClient) FetchProfile(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := c.client.GetJSON(ctx, "/profile", &user)
	if err != nil {
		return domain.User{}, mapStatus(err)
	}
	return user, nil
}

// Login posts credentials as a form, OAuth2 password-flow style: the email
// travels in the `username` field.
func (c *APIClient) Login(ctx context.Context, email, password string) (domain.User, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.client.PostForm(ctx, "/login", form, &out); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

func (c *APIClient) Register(ctx context.Context, reg domain.Registration) error {
	payload := map[string]string{
		"email":    reg.Email,
		"password": reg.Password,
	}
	if reg.Username != "" {
		payload["username"] = reg.Username
	}
	return c.client.PostJSON(ctx, "/register", payload, nil)
}

func (c *APIClient) Logout(ctx context.Context) error {
	return c.client.PostJSON(ctx, "/logout", struct{}{}, nil)
}

func (c *APIClient) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	payload := map[string]string{}
	if update.Email != nil {
		payload["email"] = *update.Email
	}
	if update.Username != nil {
		payload["username"] = *update.Username
	}
	if update.Password != nil {
		payload["password"] = *update.Password
	}
	return c.client.PutJSON(ctx, "/profile", payload, nil)
}

func mapStatus(err error) error {
	switch httpapi.StatusOf(err) {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
	default:
		return err
	}
}
