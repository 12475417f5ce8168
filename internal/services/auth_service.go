package services

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
	"kopiadmin/internal/session"
)

// ErrAccessDenied is returned when the credential check succeeds but the
// account is not an administrator. No token is stored in that case.
var ErrAccessDenied = errors.New("access denied: administrator account required")

// AuthService handles dashboard authentication against the admin login
// endpoint and owns the session lifecycle.
type AuthService struct {
	userRepo repositories.UserRepository
	session  *session.Session
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, sess *session.Session) *AuthService {
	return &AuthService{userRepo: userRepo, session: sess}
}

// Login checks the credentials and, for administrators only, stores the
// returned token in the session. A transport-level success for a non-admin
// account is still rejected with ErrAccessDenied.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	resp, err := s.userRepo.AdminLogin(email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if !resp.User.IsAdmin {
		return nil, ErrAccessDenied
	}
	if err := s.session.Save(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	log.WithField("user", resp.User.Username).Info("administrator logged in")
	return &resp.User, nil
}

// Logout clears the stored session.
func (s *AuthService) Logout() error {
	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	log.Info("logged out")
	return nil
}

// CurrentUser returns the logged-in administrator, or nil.
func (s *AuthService) CurrentUser() *models.User { return s.session.User() }

// Authenticated reports whether an unexpired session token is present.
func (s *AuthService) Authenticated() bool { return s.session.Active() }
