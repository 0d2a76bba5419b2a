package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aptitude-labs/aptitude-portal/internal/service"
)

const (
	sessionKeyEmail = "user"
	sessionKeyName  = "user_name"
	sessionKeyRole  = "role"

	ctxKeyIdentity = "identity"
)

// SaveIdentity writes the authenticated identity into the session cookie.
func SaveIdentity(c *gin.Context, ident *service.Identity) error {
	sess := sessions.Default(c)
	sess.Set(sessionKeyEmail, ident.Email)
	sess.Set(sessionKeyName, ident.Name)
	sess.Set(sessionKeyRole, ident.Role)
	return sess.Save()
}

func ClearSession(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}

// LoadIdentity resolves the optional session identity once per request and
// attaches it to the gin context. Anonymous requests pass through with no
// identity set.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		email, _ := sess.Get(sessionKeyEmail).(string)
		if email != "" {
			name, _ := sess.Get(sessionKeyName).(string)
			role, _ := sess.Get(sessionKeyRole).(string)
			c.Set(ctxKeyIdentity, &service.Identity{Email: email, Name: name, Role: role})
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity set by LoadIdentity, or nil for
// anonymous requests.
func CurrentIdentity(c *gin.Context) *service.Identity {
	if v, ok := c.Get(ctxKeyIdentity); ok {
		if ident, ok := v.(*service.Identity); ok {
			return ident
		}
	}
	return nil
}

// RequireLogin redirects anonymous requests to the login form.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects non-admin sessions to the home page. Must run after
// RequireLogin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := CurrentIdentity(c)
		if !ident.IsAdmin() {
			if ident != nil {
				log.Warn().Str("email", ident.Email).Str("path", c.Request.URL.Path).
					Msg("Non-admin user blocked from admin route")
			}
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
