package domain

import "strings"

// Redirect targets used by the guard. These paths are part of the observable
// contract shared with the web frontend and must not drift.
const (
	PathHome       = "/"
	PathLogin      = "/auth/login"
	PathRegister   = "/auth/register"
	PathAdminLogin = "/admin-login"
	PathAdminHome  = "/admin"
	PathUserHome   = "/user"
)

// RoutePolicy is the access rule attached to a protected path prefix.
// RequiredRole empty means authentication alone is sufficient. RedirectTo is
// where unauthenticated visitors are sent; empty falls back to PathLogin.
type RoutePolicy struct {
	Prefix       string
	RequiredRole string
	RedirectTo   string
}

// publicPrefixes lists paths reachable without any credential. The home path
// is matched exactly; the rest by prefix.
var publicPrefixes = []string{
	"/health",
	"/metrics",
	"/businesses",
	"/services",
}

// authRedirectPaths are the login/registration pages. Matched exactly:
// already-authenticated principals are redirected away from them.
var authRedirectPaths = []string{
	PathLogin,
	PathRegister,
	PathAdminLogin,
}

// protectedRoutes is the static policy table. Resolution is longest-prefix
// match, so /admin/admins wins over /admin for any nested path and entry
// order carries no meaning.
var protectedRoutes = []RoutePolicy{
	{Prefix: "/admin/admins", RequiredRole: RoleSuperAdmin, RedirectTo: PathAdminLogin},
	{Prefix: "/admin", RequiredRole: RoleAdmin, RedirectTo: PathAdminLogin},
	{Prefix: "/business", RequiredRole: RoleBusinessOwner, RedirectTo: PathLogin},
	{Prefix: "/user", RedirectTo: PathLogin},
	{Prefix: "/bookings", RedirectTo: PathLogin},
}

// matchesPrefix reports whether prefix covers path on a segment boundary:
// the path itself or anything nested under it. Bare string prefixing would
// let /business capture /businesses.
func matchesPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// IsPublic reports whether the path needs no credential at all.
func IsPublic(path string) bool {
	if path == PathHome {
		return true
	}
	for _, p := range publicPrefixes {
		if matchesPrefix(path, p) {
			return true
		}
	}
	return false
}

// ShouldRedirectAuthenticated reports whether the path is a login or
// registration page that authenticated principals must be bounced away from.
func ShouldRedirectAuthenticated(path string) bool {
	for _, p := range authRedirectPaths {
		if path == p {
			return true
		}
	}
	return false
}

// IsProtected reports whether any protected-route prefix covers the path.
func IsProtected(path string) bool {
	for _, e := range protectedRoutes {
		if matchesPrefix(path, e.Prefix) {
			return true
		}
	}
	return false
}

// PolicyFor returns the most specific protected-route entry covering the
// path, or nil when none matches. Longest prefix wins regardless of table
// order.
func PolicyFor(path string) *RoutePolicy {
	var best *RoutePolicy
	for i := range protectedRoutes {
		e := &protectedRoutes[i]
		if !matchesPrefix(path, e.Prefix) {
			continue
		}
		if best == nil || len(e.Prefix) > len(best.Prefix) {
			best = e
		}
	}
	return best
}
