// Package session is the single read/write boundary for terminal-local state
// that the browser build kept in localStorage: the auth token and the terminal
// configuration. Every other package goes through Store rather than touching
// the files directly.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"ceybyte/terminal/internal/domain"
)

const (
	tokenFile          = "ceybyte-pos-token"
	terminalConfigFile = "ceybyte-pos-terminal-config"
)

type Store struct {
	mu      sync.RWMutex
	dataDir string
	token   string
	config  *domain.TerminalConfig
}

// NewStore loads any persisted token and terminal config from dataDir,
// creating the directory if needed.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, err
	}
	s := &Store{dataDir: dataDir}

	if raw, err := os.ReadFile(filepath.Join(dataDir, tokenFile)); err == nil {
		s.token = strings.TrimSpace(string(raw))
	}
	if raw, err := os.ReadFile(filepath.Join(dataDir, terminalConfigFile)); err == nil {
		var cfg domain.TerminalConfig
		if err := json.Unmarshal(raw, &cfg); err == nil {
			s.config = &cfg
		}
	}
	return s, nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) SetToken(token string) error {
	token = strings.TrimSpace(token)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return os.WriteFile(filepath.Join(s.dataDir, tokenFile), []byte(token), 0o600)
}

// ClearToken removes the stored token. The API layer calls this when the
// backend answers 401 so the next protected action forces re-authentication.
func (s *Store) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	_ = os.Remove(filepath.Join(s.dataDir, tokenFile))
}

// TokenExpiry reads the exp claim without verifying the signature; the
// terminal has no signing key, it only needs to know whether a re-login is
// due before issuing a protected call.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenValid reports whether a token is present and not expired at now.
// A token without an exp claim counts as valid; the server is authoritative.
func (s *Store) TokenValid(now time.Time) bool {
	if s.Token() == "" {
		return false
	}
	exp, ok := s.TokenExpiry()
	if !ok {
		return true
	}
	return now.Before(exp)
}

func (s *Store) TerminalConfig() (domain.TerminalConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return domain.TerminalConfig{}, false
	}
	return *s.config, true
}

func (s *Store) SetTerminalConfig(cfg domain.TerminalConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = &cfg
	return os.WriteFile(filepath.Join(s.dataDir, terminalConfigFile), payload, 0o600)
}
