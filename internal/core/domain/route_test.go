package domain

import "testing"

func TestPolicyFor_LongestPrefixWins(t *testing.T) {
	cases := []struct {
		path         string
		wantPrefix   string
		wantRequired string
	}{
		{"/admin", "/admin", RoleAdmin},
		{"/admin/users", "/admin", RoleAdmin},
		{"/admin/admins", "/admin/admins", RoleSuperAdmin},
		{"/admin/admins/42/edit", "/admin/admins", RoleSuperAdmin},
		{"/business/services", "/business", RoleBusinessOwner},
		{"/user/profile", "/user", ""},
		{"/bookings/123", "/bookings", ""},
	}

	for _, tc := range cases {
		got := PolicyFor(tc.path)
		if got == nil {
			t.Fatalf("PolicyFor(%q) = nil, want %q", tc.path, tc.wantPrefix)
		}
		if got.Prefix != tc.wantPrefix {
			t.Fatalf("PolicyFor(%q) matched %q, want %q", tc.path, got.Prefix, tc.wantPrefix)
		}
		if got.RequiredRole != tc.wantRequired {
			t.Fatalf("PolicyFor(%q) required role %q, want %q", tc.path, got.RequiredRole, tc.wantRequired)
		}
	}
}

func TestPolicyFor_NoMatch(t *testing.T) {
	for _, path := range []string{"/", "/businesses", "/about", "/api/admin/users"} {
		if got := PolicyFor(path); got != nil {
			t.Fatalf("PolicyFor(%q) = %+v, want nil", path, got)
		}
	}
}

func TestIsProtected(t *testing.T) {
	protected := []string{"/admin", "/admin/anything", "/user", "/bookings/5", "/business"}
	for _, path := range protected {
		if !IsProtected(path) {
			t.Fatalf("expected %q to be protected", path)
		}
	}
	open := []string{"/", "/auth/login", "/businesses", "/health"}
	for _, path := range open {
		if IsProtected(path) {
			t.Fatalf("expected %q not to be protected", path)
		}
	}
}

func TestRouteMatching_SegmentBoundaries(t *testing.T) {
	// A protected prefix must only cover its own segment and nested paths,
	// never a sibling path that happens to share leading characters.
	for _, path := range []string{"/businesses", "/businesses/7", "/users-export", "/bookingsx"} {
		if IsProtected(path) {
			t.Fatalf("expected %q not to be protected", path)
		}
		if got := PolicyFor(path); got != nil {
			t.Fatalf("PolicyFor(%q) = %+v, want nil", path, got)
		}
	}

	// Same rule for the public table: /servicesX is not /services.
	for _, path := range []string{"/servicesX", "/healthz", "/metricsdump"} {
		if IsPublic(path) {
			t.Fatalf("expected %q not to be public", path)
		}
	}
}

func TestShouldRedirectAuthenticated_ExactMatchOnly(t *testing.T) {
	for _, path := range []string{PathLogin, PathRegister, PathAdminLogin} {
		if !ShouldRedirectAuthenticated(path) {
			t.Fatalf("expected %q to be an auth-redirect page", path)
		}
	}
	for _, path := range []string{"/auth/login/reset", "/admin-login2", "/auth", "/"} {
		if ShouldRedirectAuthenticated(path) {
			t.Fatalf("expected %q not to be an auth-redirect page", path)
		}
	}
}

func TestIsPublic(t *testing.T) {
	public := []string{"/", "/health", "/health/ready", "/metrics", "/businesses/7", "/services"}
	for _, path := range public {
		if !IsPublic(path) {
			t.Fatalf("expected %q to be public", path)
		}
	}
	private := []string{"/user", "/admin", "/home"}
	for _, path := range private {
		if IsPublic(path) {
			t.Fatalf("expected %q not to be public", path)
		}
	}
}
