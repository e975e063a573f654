package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webproshub/marketplace-gateway/internal/api/cookies"
	"github.com/webproshub/marketplace-gateway/internal/api/metrics"
	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/ports"
	"github.com/webproshub/marketplace-gateway/internal/core/service"
)

// AdminGuard protects the admin area with a live validation round trip on
// every request: the general guard trusts token + profile presence, admin
// sessions additionally require the admin API to confirm the token.
//
// Fail closed: a rejected token, a network fault, and a timeout all end the
// same way — credentials cleared, 302 to the admin login page.
func AdminGuard(validator ports.TokenValidator, sessions *service.SessionRegistry, profiles ports.ProfileCache, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := cookies.GetToken(c, domain.KindAdmin)
			if token == "" {
				return c.Redirect(http.StatusFound, domain.PathAdminLogin)
			}

			start := time.Now()
			err := validator.Validate(c.Request().Context(), token)
			metrics.AdminValidationDuration.Observe(time.Since(start).Seconds())

			if err != nil {
				result := "error"
				if errors.Is(err, domain.ErrTokenInvalid) {
					result = "invalid"
				}
				metrics.AdminValidationsTotal.WithLabelValues(result).Inc()
				log.Warn().Err(err).Msg("admin session rejected, clearing credentials")

				cookies.RemoveToken(c, domain.KindAdmin)
				sessions.Delete(domain.KindAdmin, token)
				profiles.Clear(c.Request().Context(), domain.KindAdmin, token)
				return c.Redirect(http.StatusFound, domain.PathAdminLogin)
			}

			metrics.AdminValidationsTotal.WithLabelValues("valid").Inc()
			return next(c)
		}
	}
}

// AdminLoginGuard is the inverse check on the admin login page: a present
// admin token redirects straight to the admin area with no server round
// trip. Token presence alone is deliberately treated as sufficient here; a
// stale token bounces back through AdminGuard and lands on the login page
// again with the cookie cleared.
func AdminLoginGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookies.GetToken(c, domain.KindAdmin) != "" {
				return c.Redirect(http.StatusFound, domain.PathAdminHome)
			}
			return next(c)
		}
	}
}
