package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yamsoo/internal/security"
)

func TestCSRFProtect(t *testing.T) {
	csrf := security.NewCSRFGenerator("test-secret")
	m := NewMiddleware(nil, csrf)

	called := false
	handler := m.CSRFProtect(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	sessionID := "session-abc"
	token, err := csrf.GenerateToken(sessionID)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Run("GET passes without token", func(t *testing.T) {
		called = false
		r := httptest.NewRequest(http.MethodGet, "/api/relationships", nil)
		w := httptest.NewRecorder()
		handler(w, r)
		if !called {
			t.Error("GET should pass through without a token")
		}
	})

	t.Run("POST without token rejected", func(t *testing.T) {
		called = false
		r := httptest.NewRequest(http.MethodPost, "/api/relationships/requests", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
		w := httptest.NewRecorder()
		handler(w, r)
		if called {
			t.Error("POST without token should be rejected")
		}
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("POST with wrong token rejected", func(t *testing.T) {
		called = false
		r := httptest.NewRequest(http.MethodPost, "/api/relationships/requests", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
		r.Header.Set("X-CSRF-Token", "forged")
		w := httptest.NewRecorder()
		handler(w, r)
		if called {
			t.Error("POST with wrong token should be rejected")
		}
	})

	t.Run("POST with valid token passes", func(t *testing.T) {
		called = false
		r := httptest.NewRequest(http.MethodPost, "/api/relationships/requests", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: sessionID})
		r.Header.Set("X-CSRF-Token", token)
		w := httptest.NewRecorder()
		handler(w, r)
		if !called {
			t.Error("POST with valid token should pass")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := security.NewRateLimiter(2, time.Minute)

	handler := RateLimit(limiter, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler(w, r)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("first two requests should pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %d", statuses[2])
	}

	// A different client is unaffected
	r := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("other client should pass, got %d", w.Code)
	}
}
