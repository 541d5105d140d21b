package api

import (
	"context"

	"ceybyte/terminal/internal/domain"
)

// Login authenticates with username/password and, on success, persists the
// returned access token through the session boundary.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) Result[domain.AuthResponse] {
	result := post[domain.AuthResponse](ctx, c, "/auth/login", req)
	if result.Success && result.Data.AccessToken != "" {
		if err := c.tokens.SetToken(result.Data.AccessToken); err != nil {
			c.log.Warnw("failed to persist token", "error", err)
		}
	}
	return result
}

// PinLogin authenticates with a cashier PIN, the fast path used on shared
// terminals.
func (c *Client) PinLogin(ctx context.Context, req domain.PinLoginRequest) Result[domain.AuthResponse] {
	result := post[domain.AuthResponse](ctx, c, "/auth/pin-login", req)
	if result.Success && result.Data.AccessToken != "" {
		if err := c.tokens.SetToken(result.Data.AccessToken); err != nil {
			c.log.Warnw("failed to persist token", "error", err)
		}
	}
	return result
}

func (c *Client) Me(ctx context.Context) Result[domain.UserInfo] {
	return get[domain.UserInfo](ctx, c, "/auth/me", nil)
}

func (c *Client) Logout(ctx context.Context) Result[domain.MessageResponse] {
	result := post[domain.MessageResponse](ctx, c, "/auth/logout", nil)
	c.tokens.ClearToken()
	return result
}
