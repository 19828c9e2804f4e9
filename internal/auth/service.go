package auth

import (
	"fmt"

	"github.com/grandassist/shopfront/internal/platform/httpx"
	"github.com/grandassist/shopfront/internal/shared"
)

// Service checks the admin secret and flips the session's admin flag.
// The check is a flat string comparison: no hashing, no lockout.
type Service struct {
	secret string
}

func NewService(secret string) *Service {
	return &Service{secret: secret}
}

// Login grants admin access to the session when the password matches.
func (s *Service) Login(sess *shared.Session, password string) error {
	if password != s.secret {
		return fmt.Errorf("%w: incorrect password", httpx.ErrUnauthorized)
	}
	sess.SetAdmin(true)
	return nil
}

// Logout revokes the session's admin access.
func (s *Service) Logout(sess *shared.Session) {
	sess.SetAdmin(false)
}
