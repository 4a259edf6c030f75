package skyapi

import (
	"context"
	"net/http"

	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
)

// AuthResponse is the payload of login, signup, me and password updates.
type AuthResponse struct {
	Status string   `json:"status"`
	Token  string   `json:"token,omitempty"`
	Data   AuthData `json:"data"`
}

type AuthData struct {
	User *models.User `json:"user"`
}

// User returns the account carried by the response, if any.
func (r *AuthResponse) User() *models.User {
	if r == nil {
		return nil
	}
	return r.Data.User
}

// AuthAPI groups the /users session endpoints.
type AuthAPI struct {
	c *Client
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := models.LoginRequest{Email: email, Password: password}
	if err := a.c.do(ctx, "auth.login", http.MethodPost, EndpointLogin, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := a.c.do(ctx, "auth.signup", http.MethodPost, EndpointSignup, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, "auth.logout", http.MethodPost, EndpointLogout, nil, nil)
}

// GetCurrentUser resolves the session's account; a response without a user
// is reported as ErrUnauthorized.
func (a *AuthAPI) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var resp AuthResponse
	if err := a.c.do(ctx, "auth.me", http.MethodGet, EndpointMe, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User() == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return resp.User(), nil
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var resp AuthResponse
	if err := a.c.do(ctx, "auth.update_me", http.MethodPatch, EndpointUpdateMe, update, &resp); err != nil {
		return nil, err
	}
	return resp.User(), nil
}

func (a *AuthAPI) UpdatePassword(ctx context.Context, current, password, confirm string) (*AuthResponse, error) {
	var resp AuthResponse
	body := models.PasswordUpdate{
		PasswordCurrent: current,
		Password:        password,
		PasswordConfirm: confirm,
	}
	if err := a.c.do(ctx, "auth.update_password", http.MethodPatch, EndpointUpdatePassword, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
