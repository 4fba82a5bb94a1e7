package service

import (
	"sync"
)

// AuthService gates the chat surface behind a shared password.
// An empty password disables the gate.
type AuthService struct {
	botPassword string

	mu         sync.RWMutex
	authorized map[int64]bool
}

// NewAuthService creates a new auth service
func NewAuthService(botPassword string) *AuthService {
	return &AuthService{
		botPassword: botPassword,
		authorized:  make(map[int64]bool),
	}
}

// Enabled reports whether a password is required
func (s *AuthService) Enabled() bool {
	return s.botPassword != ""
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return s.Enabled() && password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) bool {
	if !s.Enabled() {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized[userID]
}

// AuthorizeUser authorizes a user for the rest of the session
func (s *AuthService) AuthorizeUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authorized[userID] = true
}
