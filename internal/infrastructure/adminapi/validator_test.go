package adminapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

func TestValidator_Accepts2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	v := NewValidator(srv.URL, time.Second, zerolog.Nop())
	if err := v.Validate(context.Background(), "tok-1"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidator_RejectsNon2xx(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		v := NewValidator(srv.URL, time.Second, zerolog.Nop())
		err := v.Validate(context.Background(), "tok")
		srv.Close()

		if !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("status %d: expected ErrTokenInvalid, got %v", status, err)
		}
	}
}

func TestValidator_NetworkErrorFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	v := NewValidator(srv.URL, time.Second, zerolog.Nop())
	if err := v.Validate(context.Background(), "tok"); err == nil {
		t.Fatalf("expected error for unreachable validator")
	}
}

func TestValidator_TimeoutFailsClosed(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	v := NewValidator(srv.URL, 50*time.Millisecond, zerolog.Nop())
	if err := v.Validate(context.Background(), "tok"); err == nil {
		t.Fatalf("expected timeout to be treated as a validation failure")
	}
}
