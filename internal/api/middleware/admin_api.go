package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webproshub/marketplace-gateway/internal/api/cookies"
	"github.com/webproshub/marketplace-gateway/internal/api/metrics"
	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/ports"
	"github.com/webproshub/marketplace-gateway/internal/infrastructure/signal"
)

// AdminAPIAuth authenticates admin data-fetch requests (/api/admin/*). API
// calls answer with JSON 401s, never redirects. When a token that looked
// authenticated turns out to be rejected, the middleware raises the
// admin-auth-failure signal so the session gets evicted everywhere without
// this call site knowing about registries or caches.
func AdminAPIAuth(validator ports.TokenValidator, bus *signal.Bus, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				token = cookies.GetToken(c, domain.KindAdmin)
			}
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing admin credentials")
			}

			if err := validator.Validate(c.Request().Context(), token); err != nil {
				log.Warn().Err(err).Str("path", c.Request().URL.Path).Msg("admin API call unauthorized")
				metrics.AuthFailureSignalsTotal.Inc()
				bus.Publish(signal.AdminAuthFailure{Token: token, Reason: "api_unauthorized"})
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired admin session")
			}

			c.Set("adminToken", token)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
