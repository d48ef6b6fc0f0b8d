package memberauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pitchside/clubadmin/internal/platform/logging"
	"github.com/pitchside/clubadmin/internal/platform/resilience"
	"github.com/pitchside/clubadmin/internal/usecase"
)

func TestVerifyAccessToken_SendsAdminKeyAndParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "admin-secret" {
			t.Fatalf("unexpected x-admin-key: %s", got)
		}

		var req map[string]string
		if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Fatalf("unexpected token value: %s", req["token"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"active":  true,
			"user_id": "member-123",
			"email":   "coach@example.com",
		})
	}))
	defer srv.Close()

	client := NewClient(
		srv.Client(),
		srv.URL,
		"/v1/auth/introspect",
		"admin-secret",
		resilience.CircuitBreakerConfig{Enabled: false},
		0,
		logging.NewNop(),
	)

	principal, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if principal.UserID != "member-123" {
		t.Fatalf("unexpected user id: %s", principal.UserID)
	}
	if principal.Email != "coach@example.com" {
		t.Fatalf("unexpected email: %s", principal.Email)
	}
}

func TestVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{"active": false})
	}))
	defer srv.Close()

	client := NewClient(
		srv.Client(),
		srv.URL,
		"/v1/auth/introspect",
		"",
		resilience.CircuitBreakerConfig{Enabled: false},
		0,
		logging.NewNop(),
	)

	_, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifyAccessToken_CachesByTokenHash(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = jsoniter.NewEncoder(w).Encode(map[string]any{
			"active":  true,
			"user_id": "member-123",
		})
	}))
	defer srv.Close()

	client := NewClient(
		srv.Client(),
		srv.URL,
		"/v1/auth/introspect",
		"",
		resilience.CircuitBreakerConfig{Enabled: false},
		time.Minute,
		logging.NewNop(),
	)

	for range 3 {
		if _, err := client.VerifyAccessToken(context.Background(), "token-abc"); err != nil {
			t.Fatalf("verify access token: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 introspection call, got %d", got)
	}
}

func TestVerifyAccessToken_BreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(
		srv.Client(),
		srv.URL,
		"/v1/auth/introspect",
		"",
		resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
		0,
		logging.NewNop(),
	)

	for range 2 {
		if _, err := client.VerifyAccessToken(context.Background(), "token-abc"); err == nil {
			t.Fatal("expected error from failing introspection")
		}
	}

	_, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once breaker is open, got %v", err)
	}
}

func TestVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(
		nil,
		"http://localhost:0",
		"/v1/auth/introspect",
		"",
		resilience.CircuitBreakerConfig{Enabled: false},
		0,
		logging.NewNop(),
	)

	_, err := client.VerifyAccessToken(context.Background(), "   ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
