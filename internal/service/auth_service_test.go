package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptitude-labs/aptitude-portal/config"
	"github.com/aptitude-labs/aptitude-portal/internal/service"
)

func newAuthService() service.AuthService {
	return service.NewAuthService(&config.Config{
		Users: []config.UserCredential{
			{Email: "admin@aptitude.com", Password: "admin123", Name: "Administrator", Role: "admin"},
			{Email: "hari@aptitude.com", Password: "hari123", Name: "Hari", Role: "user"},
		},
	})
}

func TestAuthenticateKnownUser(t *testing.T) {
	svc := newAuthService()

	ident, err := svc.Authenticate("admin@aptitude.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@aptitude.com", ident.Email)
	assert.Equal(t, "Administrator", ident.Name)
	assert.Equal(t, "admin", ident.Role)
	assert.True(t, ident.IsAdmin())

	ident, err = svc.Authenticate("hari@aptitude.com", "hari123")
	require.NoError(t, err)
	assert.False(t, ident.IsAdmin())
}

func TestAuthenticateRejectsBadCombinations(t *testing.T) {
	svc := newAuthService()

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@aptitude.com", "hari123"},
		{"unknown email", "nobody@aptitude.com", "admin123"},
		{"empty credentials", "", ""},
		{"case-sensitive password", "admin@aptitude.com", "ADMIN123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ident, err := svc.Authenticate(tc.email, tc.password)
			assert.Nil(t, ident)
			assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		})
	}
}

func TestNilIdentityIsNotAdmin(t *testing.T) {
	var ident *service.Identity
	assert.False(t, ident.IsAdmin())
}
