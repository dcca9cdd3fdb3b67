package services

import (
	"crypto/subtle"
	"log"

	"covershop/internal/models"
)

// AuthService compares presented credentials against the single configured
// admin pair. There is no session or token: every privileged request
// re-presents credentials and is checked independently.
type AuthService struct {
	adminUsername string
	adminPassword string
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login checks the presented credentials. The comparison is exact and
// case-sensitive; both halves run in constant time. Failures are logged with
// the attempted username only, never the password.
func (s *AuthService) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		log.Printf("Failed admin login attempt for username: %s", username)
		return models.ErrUnauthorized
	}
	return nil
}
