// Package cookies is the transport half of the credential store: it reads
// and writes the session cookies the guard consults. Cookie names and
// attributes are shared with the web frontend and must not change.
package cookies

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

// Session cookie names, one per principal kind. refreshToken is cleared on
// full reset but otherwise unused by the gateway.
const (
	NameUserToken    = "authToken"
	NameAdminToken   = "adminToken"
	NameRefreshToken = "refreshToken"
)

// MaxAge is the default session cookie lifetime: 7 days, matching the
// profile cache TTL.
const MaxAge = 604800

// Name returns the cookie name for a principal kind.
func Name(kind domain.Kind) string {
	if kind == domain.KindAdmin {
		return NameAdminToken
	}
	return NameUserToken
}

// SetToken writes the session cookie for a kind. Secure is set from the
// environment (production only); SameSite is always strict.
func SetToken(c echo.Context, kind domain.Kind, value string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     Name(kind),
		Value:    value,
		Path:     "/",
		MaxAge:   MaxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// GetToken returns the session token for a kind, or "" when the cookie is
// absent or malformed. It never fails: a missing credential is a normal
// negative answer, not an error.
func GetToken(c echo.Context, kind domain.Kind) string {
	ck, err := c.Cookie(Name(kind))
	if err != nil || ck == nil {
		return ""
	}
	return ck.Value
}

// RemoveToken expires the session cookie for a kind by rewriting it with a
// negative max-age.
func RemoveToken(c echo.Context, kind domain.Kind) {
	expire(c, Name(kind))
}

// ClearAll expires both session cookies plus the refresh token. Used on
// explicit logout and on authentication failure cleanup.
func ClearAll(c echo.Context) {
	expire(c, NameUserToken)
	expire(c, NameAdminToken)
	expire(c, NameRefreshToken)
}

func expire(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
