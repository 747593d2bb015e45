package middleware_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rescueops/internal/domain"
	"rescueops/internal/middleware"
	"rescueops/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	v := middleware.NewVerifier("secret", "rescueops")
	admin, err := v.Sign(domain.Identity{UserID: 7, Role: domain.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	expired, err := v.Sign(domain.Identity{UserID: 7, Role: domain.RoleAdmin}, -time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	foreign, err := middleware.NewVerifier("other", "rescueops").Sign(domain.Identity{UserID: 7, Role: domain.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + admin, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got domain.Identity
			h := middleware.Authenticate(v, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = middleware.IdentityFrom(r.Context())
				okHandler(w, r)
			}))

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d, body=%s", tc.want, rr.Code, rr.Body.String())
			}
			if tc.want == http.StatusNoContent && (got.UserID != 7 || !got.IsAdmin()) {
				t.Fatalf("unexpected identity: %+v", got)
			}
			if tc.want == http.StatusUnauthorized && !strings.Contains(rr.Body.String(), e.CodeUnauthorized) {
				t.Fatalf("expected %s in body, got %s", e.CodeUnauthorized, rr.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	h := middleware.RequireRole(domain.RoleAdmin)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: 3, Role: domain.RoleOperator}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: 3, Role: domain.RoleAdmin}))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}

func TestLimit_PerIP(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := middleware.Limit(ctx, 0.001, 2, time.Minute, newTestLogger())(http.HandlerFunc(okHandler))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if got := do("10.0.0.1:1000"); got != http.StatusNoContent {
		t.Fatalf("first request: %d", got)
	}
	if got := do("10.0.0.1:2000"); got != http.StatusNoContent {
		t.Fatalf("second request: %d", got)
	}
	if got := do("10.0.0.1"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for the third request, got %d", got)
	}
	if got := do("10.0.0.2:1000"); got != http.StatusNoContent {
		t.Fatalf("other ip should pass, got %d", got)
	}
}

func TestClientIP_IgnoresForwardingHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", nil)
	req.RemoteAddr = "10.0.0.1:53211"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("X-Real-IP", "203.0.113.9")

	if got := middleware.ClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected 10.0.0.1 got %s", got)
	}
}

type submitBody struct {
	Description string `json:"description" validate:"required,min=10"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
	}{
		{"ok", `{"description":"a long enough text"}`, false, ""},
		{"empty", ``, true, ""},
		{"bad json", `{bad`, true, ""},
		{"unknown field", `{"description":"a long enough text","x":1}`, true, ""},
		{"two objects", `{"description":"a long enough text"}{}`, true, ""},
		{"too short", `{"description":"short"}`, true, "description"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			var dst submitBody
			err := middleware.DecodeJSON(httptest.NewRecorder(), req, &dst)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if err == nil {
				return
			}
			if e.CodeOf(err) != e.CodeValidation {
				t.Fatalf("expected %s got %s", e.CodeValidation, e.CodeOf(err))
			}
			if tc.wantField != "" && !strings.Contains(err.Error(), tc.wantField) {
				t.Fatalf("expected field %s in %v", tc.wantField, err)
			}
		})
	}
}
