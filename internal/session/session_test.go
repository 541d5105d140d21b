package session

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"ceybyte/terminal/internal/domain"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwtlib.RegisteredClaims{
		Subject:   "cashier1",
		ExpiresAt: jwtlib.NewNumericDate(expiresAt),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if store.Token() != "" {
		t.Fatalf("expected empty token in fresh store")
	}
	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	// A second store over the same dir sees the persisted token.
	reloaded, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore reload: %v", err)
	}
	if reloaded.Token() != "abc123" {
		t.Fatalf("expected persisted token, got %q", reloaded.Token())
	}

	reloaded.ClearToken()
	if reloaded.Token() != "" {
		t.Fatalf("expected cleared token")
	}
	again, _ := NewStore(dir)
	if again.Token() != "" {
		t.Fatalf("expected cleared token to stay cleared after reload, got %q", again.Token())
	}
}

func TestTokenValid(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	now := time.Now()

	if store.TokenValid(now) {
		t.Fatalf("empty store should not have a valid token")
	}

	if err := store.SetToken(signedToken(t, now.Add(time.Hour))); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if !store.TokenValid(now) {
		t.Fatalf("expected unexpired token to be valid")
	}
	if store.TokenValid(now.Add(2 * time.Hour)) {
		t.Fatalf("expected expired token to be invalid")
	}

	exp, ok := store.TokenExpiry()
	if !ok {
		t.Fatalf("expected expiry claim")
	}
	if d := exp.Sub(now.Add(time.Hour)); d > time.Second || d < -time.Second {
		t.Fatalf("unexpected expiry %v", exp)
	}
}

func TestTokenValid_OpaqueToken(t *testing.T) {
	store, _ := NewStore(t.TempDir())
	_ = store.SetToken("not-a-jwt")
	if !store.TokenValid(time.Now()) {
		t.Fatalf("opaque token without exp claim should count as valid")
	}
}

func TestTerminalConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewStore(dir)

	if _, ok := store.TerminalConfig(); ok {
		t.Fatalf("expected no config in fresh store")
	}

	cfg := domain.TerminalConfig{
		TerminalID:   "TERM-AB12CD34",
		TerminalName: "Counter 1",
		TerminalType: domain.TerminalTypeClient,
		AppVersion:   "1.0.0",
	}
	if err := store.SetTerminalConfig(cfg); err != nil {
		t.Fatalf("SetTerminalConfig: %v", err)
	}

	reloaded, _ := NewStore(dir)
	got, ok := reloaded.TerminalConfig()
	if !ok {
		t.Fatalf("expected persisted config")
	}
	if got != cfg {
		t.Fatalf("config mismatch: got %+v want %+v", got, cfg)
	}
}
