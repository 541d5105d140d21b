package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"ceybyte/terminal/internal/api"
	"ceybyte/terminal/internal/cache"
	"ceybyte/terminal/internal/domain"
)

type fakeBackend struct {
	networkDown bool
	rejectWith  string
	user        domain.UserInfo
	calls       int
}

func (f *fakeBackend) PinLogin(ctx context.Context, req domain.PinLoginRequest) api.Result[domain.AuthResponse] {
	f.calls++
	if f.networkDown {
		return api.Result[domain.AuthResponse]{Error: api.NetworkErrorMessage}
	}
	if f.rejectWith != "" {
		return api.Result[domain.AuthResponse]{Error: f.rejectWith}
	}
	return api.Result[domain.AuthResponse]{Success: true, Data: domain.AuthResponse{
		AccessToken: "tok",
		User:        f.user,
	}}
}

func newAuthenticator(backend *fakeBackend) (*Authenticator, cache.OfflineCache) {
	offline := cache.NewMemory()
	return New(backend, offline, zap.NewNop().Sugar()), offline
}

func TestOnlineLoginCachesPIN(t *testing.T) {
	backend := &fakeBackend{user: domain.UserInfo{Username: "nimal", Name: "Nimal", Role: "cashier"}}
	auth, offline := newAuthenticator(backend)

	outcome, err := auth.PinLogin(context.Background(), "Nimal", "4321")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if outcome.Offline {
		t.Error("online login flagged offline")
	}

	cached, err := offline.GetPINUser(context.Background(), "nimal")
	if err != nil || cached == nil {
		t.Fatalf("PIN user not cached: %v", err)
	}
	if !cached.VerifyPIN("4321") {
		t.Error("cached hash does not verify the PIN")
	}
}

func TestOfflineFallback(t *testing.T) {
	backend := &fakeBackend{user: domain.UserInfo{Username: "nimal", Name: "Nimal", Role: "cashier"}}
	auth, _ := newAuthenticator(backend)

	if _, err := auth.PinLogin(context.Background(), "nimal", "4321"); err != nil {
		t.Fatal(err)
	}

	backend.networkDown = true
	outcome, err := auth.PinLogin(context.Background(), "nimal", "4321")
	if err != nil {
		t.Fatalf("offline fallback failed: %v", err)
	}
	if !outcome.Offline {
		t.Error("expected offline outcome")
	}
	if outcome.User.Role != "cashier" {
		t.Errorf("user = %+v", outcome.User)
	}
}

func TestOfflineFallbackRejectsWrongPIN(t *testing.T) {
	backend := &fakeBackend{user: domain.UserInfo{Username: "nimal"}}
	auth, _ := newAuthenticator(backend)

	if _, err := auth.PinLogin(context.Background(), "nimal", "4321"); err != nil {
		t.Fatal(err)
	}

	backend.networkDown = true
	if _, err := auth.PinLogin(context.Background(), "nimal", "9999"); err != ErrInvalidPIN {
		t.Errorf("error = %v, want ErrInvalidPIN", err)
	}
}

func TestOfflineFallbackUnknownUser(t *testing.T) {
	backend := &fakeBackend{networkDown: true}
	auth, _ := newAuthenticator(backend)

	if _, err := auth.PinLogin(context.Background(), "stranger", "1234"); err != ErrInvalidPIN {
		t.Errorf("error = %v, want ErrInvalidPIN", err)
	}
}

func TestBackendRejectionDoesNotFallBack(t *testing.T) {
	backend := &fakeBackend{user: domain.UserInfo{Username: "nimal"}}
	auth, _ := newAuthenticator(backend)

	if _, err := auth.PinLogin(context.Background(), "nimal", "4321"); err != nil {
		t.Fatal(err)
	}

	// PIN revoked server-side: cached hash must not be consulted.
	backend.rejectWith = "PIN disabled"
	_, err := auth.PinLogin(context.Background(), "nimal", "4321")
	if err == nil || err.Error() != "PIN disabled" {
		t.Errorf("error = %v, want backend rejection", err)
	}
}
