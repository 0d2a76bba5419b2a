package service

import (
	"errors"

	"github.com/aptitude-labs/aptitude-portal/config"
	"github.com/rs/zerolog/log"
)

// ErrInvalidCredentials is deliberately generic; callers must not reveal
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the authenticated user carried by a session. A nil *Identity
// means anonymous.
type Identity struct {
	Email string
	Name  string
	Role  string
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == config.RoleAdmin
}

type AuthService interface {
	Authenticate(email, password string) (*Identity, error)
}

type authService struct {
	users map[string]config.UserCredential
}

func NewAuthService(cfg *config.Config) AuthService {
	users := make(map[string]config.UserCredential, len(cfg.Users))
	for _, u := range cfg.Users {
		users[u.Email] = u
	}
	return &authService{users: users}
}

func (s *authService) Authenticate(email, password string) (*Identity, error) {
	cred, ok := s.users[email]
	if !ok || cred.Password != password {
		log.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, ErrInvalidCredentials
	}
	return &Identity{Email: cred.Email, Name: cred.Name, Role: cred.Role}, nil
}
