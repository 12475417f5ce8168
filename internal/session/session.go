// Package session holds the authenticated dashboard session. It replaces an
// implicit process-wide token store with an explicit object injected at
// startup, backed by a single JSON file so the token survives restarts.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dgrijalva/jwt-go"

	"kopiadmin/internal/models"
)

// Session is the sole owner of the persisted auth token and the logged-in
// user. It is not watched for external change: another process logging out
// does not propagate until the next Load.
type Session struct {
	path  string
	token string
	user  *models.User
}

type fileState struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// New creates a Session persisted at path. Call Load to pick up a previously
// saved token.
func New(path string) *Session {
	return &Session{path: path}
}

// Load reads the persisted session, if any. A missing file is not an error.
func (s *Session) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}
	var st fileState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	s.token = st.Token
	s.user = st.User
	return nil
}

// Save stores the token and user and persists them.
func (s *Session) Save(token string, user models.User) error {
	s.token = token
	s.user = &user

	data, err := json.Marshal(fileState{Token: token, User: &user})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear forgets the session and removes the persisted file.
func (s *Session) Clear() error {
	s.token = ""
	s.user = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Token returns the stored token, or "" when none is stored or the token has
// expired. Expiry is checked on every read.
func (s *Session) Token() string {
	if s.token == "" || tokenExpired(s.token) {
		return ""
	}
	return s.token
}

// User returns the logged-in user, or nil outside an active session.
func (s *Session) User() *models.User {
	if s.Token() == "" {
		return nil
	}
	return s.user
}

// Active reports whether a usable token is stored.
func (s *Session) Active() bool { return s.Token() != "" }

// tokenExpired inspects the exp claim of a JWT without verifying its
// signature; verification is the server's job. Opaque tokens and tokens
// without an exp claim never expire client-side.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().Unix() >= int64(exp)
}
