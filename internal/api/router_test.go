package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
	"github.com/webproshub/marketplace-gateway/internal/core/service"
	"github.com/webproshub/marketplace-gateway/internal/infrastructure/config"
	"github.com/webproshub/marketplace-gateway/internal/infrastructure/signal"
)

type fakeProfiles struct {
	data map[string]*domain.Principal
}

func (s *fakeProfiles) Save(_ context.Context, kind domain.Kind, token string, p *domain.Principal) {
	if s.data == nil {
		s.data = make(map[string]*domain.Principal)
	}
	s.data[string(kind)+"/"+token] = p
}

func (s *fakeProfiles) Get(_ context.Context, kind domain.Kind, token string) *domain.Principal {
	return s.data[string(kind)+"/"+token]
}

func (s *fakeProfiles) Clear(_ context.Context, kind domain.Kind, token string) {
	delete(s.data, string(kind)+"/"+token)
}

type fakeValidator struct {
	err error
}

func (f *fakeValidator) Validate(context.Context, string) error { return f.err }

func newTestRouter(t *testing.T, profiles *fakeProfiles, validator *fakeValidator, sessions *service.SessionRegistry) *echo.Echo {
	t.Helper()
	cfg := &config.Config{Port: "0", Env: "test", JWTSecret: "secret"}
	bus := signal.NewBus(zerolog.Nop())
	return NewRouter(nil, nil, cfg, sessions, profiles, validator, bus, zerolog.Nop())
}

func TestRouter_AnonymousAdminNavigationRedirects(t *testing.T) {
	e := newTestRouter(t, &fakeProfiles{}, &fakeValidator{}, service.NewSessionRegistry())

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathAdminLogin {
		t.Fatalf("expected redirect to %s, got %s", domain.PathAdminLogin, loc)
	}
}

func TestRouter_SuperAdminReachesAdminAdmins(t *testing.T) {
	profiles := &fakeProfiles{}
	profiles.Save(context.Background(), domain.KindAdmin, "tok-root", &domain.Principal{Role: domain.RoleSuperAdmin})
	e := newTestRouter(t, profiles, &fakeValidator{}, service.NewSessionRegistry())

	req := httptest.NewRequest(http.MethodGet, "/admin/admins", nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "tok-root"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (location %s)", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestRouter_UserTokenOnAdminAreaGoesHome(t *testing.T) {
	sessions := service.NewSessionRegistry()
	sessions.Put(domain.KindUser, "tok-u", &domain.Principal{Role: domain.RoleCustomer})
	e := newTestRouter(t, &fakeProfiles{}, &fakeValidator{}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: "tok-u"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathHome {
		t.Fatalf("expected redirect to %s, got %s", domain.PathHome, loc)
	}
}

func TestRouter_AdminTokenBouncedFromAdminLogin(t *testing.T) {
	e := newTestRouter(t, &fakeProfiles{}, &fakeValidator{}, service.NewSessionRegistry())

	req := httptest.NewRequest(http.MethodGet, "/admin-login", nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "tok-a"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathAdminHome {
		t.Fatalf("expected redirect to %s, got %s", domain.PathAdminHome, loc)
	}
}

func TestRouter_RejectedAdminSessionClearedAndRedirected(t *testing.T) {
	profiles := &fakeProfiles{}
	profiles.Save(context.Background(), domain.KindAdmin, "tok-stale", &domain.Principal{Role: domain.RoleAdmin})
	e := newTestRouter(t, profiles, &fakeValidator{err: domain.ErrTokenInvalid}, service.NewSessionRegistry())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "tok-stale"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != domain.PathAdminLogin {
		t.Fatalf("expected redirect to %s, got %s", domain.PathAdminLogin, loc)
	}
	if profiles.Get(context.Background(), domain.KindAdmin, "tok-stale") != nil {
		t.Fatalf("expected cached profile cleared on rejection")
	}
}

func TestRouter_RepeatedConstruction(t *testing.T) {
	// Each router carries its own metrics registry; building several in one
	// process must not trip duplicate-collector registration, and every
	// instance must still serve /metrics.
	for i := 0; i < 3; i++ {
		e := newTestRouter(t, &fakeProfiles{}, &fakeValidator{}, service.NewSessionRegistry())

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("instance %d: expected 200 from /metrics, got %d", i, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "gateway_") {
			t.Fatalf("instance %d: expected gateway metrics in exposition", i)
		}
	}
}

func TestRouter_PublicStorefrontRenders(t *testing.T) {
	e := newTestRouter(t, &fakeProfiles{}, &fakeValidator{}, service.NewSessionRegistry())

	for _, path := range []string{"/", "/businesses", "/services", "/auth/login", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("path %s: expected 200, got %d", path, rec.Code)
		}
	}
}
