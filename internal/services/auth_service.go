package services

import (
	"crypto/subtle"

	"katalog/internal/config"
)

// AuthService checks admin login credentials against the configured
// secrets and hands out the static admin bearer token. There is no
// per-session token issuance: every successful login returns the same
// token, and it never expires or rotates within a process lifetime.
type AuthService struct {
	user  string
	pass  string
	token string
}

// NewAuthService captures the admin secrets from the startup config.
func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		user:  cfg.AdminUser,
		pass:  cfg.AdminPass,
		token: cfg.AdminToken,
	}
}

// Login returns the admin bearer token iff both credentials match exactly.
func (s *AuthService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.pass)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.token, nil
}
