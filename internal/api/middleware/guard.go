package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webproshub/marketplace-gateway/internal/api/cookies"
	"github.com/webproshub/marketplace-gateway/internal/api/metrics"
	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/ports"
	"github.com/webproshub/marketplace-gateway/internal/core/service"
)

// Guard is the navigation guard: on every request it snapshots the
// credential state (cookies, in-memory sessions, cached profiles),
// classifies the path, and either passes the request on or issues a 302.
// It only reads credentials; cleanup belongs to the admin guard and the
// logout path.
func Guard(sessions *service.SessionRegistry, profiles ports.ProfileCache, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			ctx := c.Request().Context()

			state := service.CredentialState{
				UserToken:  cookies.GetToken(c, domain.KindUser),
				AdminToken: cookies.GetToken(c, domain.KindAdmin),
			}

			// Hydrate from the cached profile only when a token is present
			// and no in-memory principal backs it up.
			if state.UserToken != "" {
				state.UserSession = sessions.Get(domain.KindUser, state.UserToken)
				if state.UserSession == nil {
					state.UserProfile = profiles.Get(ctx, domain.KindUser, state.UserToken)
					if state.UserProfile != nil {
						log.Debug().Str("role", state.UserProfile.Role).Msg("user session hydrated from cached profile")
					}
				}
			}
			if state.AdminToken != "" {
				state.AdminSession = sessions.Get(domain.KindAdmin, state.AdminToken)
				if state.AdminSession == nil {
					state.AdminProfile = profiles.Get(ctx, domain.KindAdmin, state.AdminToken)
					if state.AdminProfile != nil {
						log.Debug().Str("role", state.AdminProfile.Role).Msg("admin session hydrated from cached profile")
					}
				}
			}

			d := service.Evaluate(path, state)

			outcome := "allow"
			if !d.Allow {
				outcome = "redirect"
			}
			metrics.GuardDecisionsTotal.WithLabelValues(outcome, string(d.Class)).Inc()

			if !d.Allow {
				log.Info().
					Str("path", path).
					Str("target", d.Target).
					Str("reason", d.Reason).
					Msg("guard redirect")
				return c.Redirect(http.StatusFound, d.Target)
			}
			return next(c)
		}
	}
}
