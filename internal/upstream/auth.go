package upstream

import (
	"context"
	"errors"
	"net/http"

	"recruai-web/internal/dto"
)

var ErrNoUser = errors.New("upstream: whoami response carries no user")

// Me is the "whoami" call.
func (c *Client) Me(ctx context.Context, token string) (*dto.CurrentUser, error) {
	var res dto.MeResponse
	if err := c.do(ctx, "auth.me", http.MethodGet, "/api/auth/me", token, nil, &res); err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, ErrNoUser
	}
	return res.User, nil
}

func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var res dto.LoginResponse
	if err := c.do(ctx, "auth.login", http.MethodPost, "/api/auth/login", "", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout is best effort; callers ignore its error.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, "auth.logout", http.MethodPost, "/api/auth/logout", token, nil, nil)
}
