package skyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
)

// UsersAPI groups the admin /users endpoints.
type UsersAPI struct {
	c *Client
}

func userPath(id string) string {
	return EndpointUsers + "/" + url.PathEscape(id)
}

func (u *UsersAPI) List(ctx context.Context) ([]models.User, error) {
	var raw json.RawMessage
	if err := u.c.do(ctx, "users.list", http.MethodGet, EndpointUsers, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCollection[models.User](raw, "users")
}

func (u *UsersAPI) Get(ctx context.Context, id string) (*models.User, error) {
	var raw json.RawMessage
	if err := u.c.do(ctx, "users.get", http.MethodGet, userPath(id), nil, &raw); err != nil {
		return nil, err
	}
	user, err := decodeDocument[models.User](raw, "user")
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFoundError("user")
	}
	return user, nil
}

func (u *UsersAPI) Update(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	var raw json.RawMessage
	if err := u.c.do(ctx, "users.update", http.MethodPatch, userPath(id), update, &raw); err != nil {
		return nil, err
	}
	return decodeDocument[models.User](raw, "user")
}

func (u *UsersAPI) Delete(ctx context.Context, id string) error {
	return u.c.do(ctx, "users.delete", http.MethodDelete, userPath(id), nil, nil)
}

func (u *UsersAPI) DashboardStats(ctx context.Context) (models.Stats, error) {
	var raw json.RawMessage
	if err := u.c.do(ctx, "users.dashboard_stats", http.MethodGet, EndpointDashboardStats, nil, &raw); err != nil {
		return nil, err
	}
	return decodeStats(raw)
}
