// Package auth layers offline PIN login on top of the backend auth API.
// While the backend is reachable every login goes through it and the PIN
// hash is cached; during an outage cashiers can still unlock the terminal
// against the cached hash.
package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"ceybyte/terminal/internal/api"
	"ceybyte/terminal/internal/cache"
	"ceybyte/terminal/internal/domain"
)

var ErrInvalidPIN = errors.New("invalid username or PIN")

// BackendAuth is the slice of the API client login needs.
type BackendAuth interface {
	PinLogin(ctx context.Context, req domain.PinLoginRequest) api.Result[domain.AuthResponse]
}

// LoginOutcome distinguishes a backend session from an offline unlock. An
// offline unlock carries no token: protected API calls stay impossible until
// connectivity returns, but local checkout (which queues sales anyway) works.
type LoginOutcome struct {
	User    domain.UserInfo
	Offline bool
}

type Authenticator struct {
	backend BackendAuth
	cache   cache.OfflineCache
	log     *zap.SugaredLogger
}

func New(backend BackendAuth, offline cache.OfflineCache, log *zap.SugaredLogger) *Authenticator {
	return &Authenticator{backend: backend, cache: offline, log: log}
}

// PinLogin authenticates against the backend, refreshing the cached PIN hash
// on success. A transport failure falls back to the cached hash; a backend
// rejection never does, so a revoked PIN cannot be replayed offline.
func (a *Authenticator) PinLogin(ctx context.Context, username, pin string) (LoginOutcome, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	result := a.backend.PinLogin(ctx, domain.PinLoginRequest{Username: username, PIN: pin})

	if result.Success {
		a.cachePIN(ctx, result.Data.User, pin)
		return LoginOutcome{User: result.Data.User}, nil
	}
	if !result.IsNetworkError() {
		return LoginOutcome{}, errors.New(result.Error)
	}
	return a.offlineLogin(ctx, username, pin)
}

func (a *Authenticator) offlineLogin(ctx context.Context, username, pin string) (LoginOutcome, error) {
	user, err := a.cache.GetPINUser(ctx, username)
	if err != nil {
		return LoginOutcome{}, err
	}
	if user == nil || !user.VerifyPIN(pin) {
		return LoginOutcome{}, ErrInvalidPIN
	}
	a.log.Infow("offline PIN login", "username", username)
	return LoginOutcome{
		User: domain.UserInfo{
			Username: user.Username,
			Name:     user.DisplayName,
			Role:     user.Role,
		},
		Offline: true,
	}, nil
}

func (a *Authenticator) cachePIN(ctx context.Context, user domain.UserInfo, pin string) {
	hash, err := cache.HashPIN(pin)
	if err != nil {
		a.log.Warnw("failed to hash PIN for offline cache", "error", err)
		return
	}
	err = a.cache.UpsertPINUser(ctx, cache.PINUser{
		Username:    user.Username,
		DisplayName: user.Name,
		Role:        user.Role,
		PINHash:     hash,
	})
	if err != nil {
		a.log.Warnw("failed to cache PIN user", "username", user.Username, "error", err)
	}
}
