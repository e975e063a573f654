package service

import (
	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

// RouteClass labels which branch of the classification table decided a
// request. Exposed for metrics and logging.
type RouteClass string

const (
	RouteAuthRedirect RouteClass = "auth_redirect"
	RouteProtected    RouteClass = "protected"
	RoutePublic       RouteClass = "public"
	RouteUnclassified RouteClass = "unclassified"
)

// CredentialState is a point-in-time snapshot of everything the guard may
// consult: both session tokens, the in-memory principals registered for
// them, and the cached profile snapshots. All fields are optional; a zero
// state means an anonymous visitor.
type CredentialState struct {
	UserToken  string
	AdminToken string

	// Session* is the in-memory principal registered at login, if any.
	UserSession  *domain.Principal
	AdminSession *domain.Principal

	// Profile* is the cached snapshot hydrated from the credential store
	// when no in-memory principal exists for a present token.
	UserProfile  *domain.Principal
	AdminProfile *domain.Principal
}

// Decision is the terminal outcome of one guard evaluation: either allow the
// request through or redirect it to Target. Reason is a short machine label
// for logs and counters.
type Decision struct {
	Allow  bool
	Target string
	Class  RouteClass
	Reason string
}

func allow(class RouteClass, reason string) Decision {
	return Decision{Allow: true, Class: class, Reason: reason}
}

func redirect(class RouteClass, target, reason string) Decision {
	return Decision{Target: target, Class: class, Reason: reason}
}

// Evaluate runs the guard algorithm for one navigation. It is a pure
// function of path and state: it reads credentials, never mutates them, and
// yields the same decision for the same inputs.
//
// A principal counts as authenticated only when its token is present AND
// either an in-memory session or a cached profile backs it up. Token
// presence alone proves nothing; a profile without its token proves nothing
// either.
func Evaluate(path string, s CredentialState) Decision {
	hasUserToken := s.UserToken != ""
	hasAdminToken := s.AdminToken != ""

	userPrincipal := s.UserSession
	if userPrincipal == nil {
		userPrincipal = s.UserProfile
	}
	adminPrincipal := s.AdminSession
	if adminPrincipal == nil {
		adminPrincipal = s.AdminProfile
	}

	isUserAuthenticated := hasUserToken && userPrincipal != nil
	isAdminAuthenticated := hasAdminToken && adminPrincipal != nil
	isAnyAuthenticated := isUserAuthenticated || isAdminAuthenticated

	// Admin role wins when both principals exist.
	role := ""
	switch {
	case adminPrincipal != nil:
		role = adminPrincipal.Role
	case userPrincipal != nil:
		role = userPrincipal.Role
	}

	// Login/registration pages bounce authenticated principals to their
	// home and let everyone else through. Terminal either way.
	if domain.ShouldRedirectAuthenticated(path) {
		if isAnyAuthenticated {
			if hasAdminToken {
				return redirect(RouteAuthRedirect, domain.PathAdminHome, "already_authenticated")
			}
			return redirect(RouteAuthRedirect, domain.PathUserHome, "already_authenticated")
		}
		return allow(RouteAuthRedirect, "anonymous_on_auth_page")
	}

	if domain.IsProtected(path) {
		policy := domain.PolicyFor(path)
		if policy == nil {
			// Generically protected: authentication only, no role rule.
			if !isAnyAuthenticated {
				return redirect(RouteProtected, domain.PathLogin, "unauthenticated")
			}
			return allow(RouteProtected, "authenticated")
		}

		if !isAnyAuthenticated {
			target := policy.RedirectTo
			if target == "" {
				target = domain.PathLogin
			}
			return redirect(RouteProtected, target, "unauthenticated")
		}

		if policy.RequiredRole != "" && role != "" && !domain.HasRequiredRole(role, policy.RequiredRole) {
			return redirect(RouteProtected, domain.PathHome, "insufficient_role")
		}
		return allow(RouteProtected, "authenticated")
	}

	if domain.IsPublic(path) {
		return allow(RoutePublic, "public")
	}
	return allow(RouteUnclassified, "unclassified")
}
