package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"yamsoo/internal/models"
	"yamsoo/internal/security"
	"yamsoo/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const UserContextKey ContextKey = "user"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService *service.AuthService
	csrf        *security.CSRFGenerator
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, csrf *security.CSRFGenerator) *Middleware {
	return &Middleware{
		authService: authService,
		csrf:        csrf,
	}
}

// RequireAuth is middleware that requires a valid session
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := m.authService.ValidateSession(cookie.Value)
		if err != nil {
			// Clear invalid cookie
			http.SetCookie(w, security.CreateDeleteCookie(r, "session_id"))
			respondWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin requires a valid session belonging to an admin user
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil || !user.IsAdmin {
			respondWithError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	})
}

// CSRFProtect validates the X-CSRF-Token header on state-changing
// requests. Tokens are HMAC-derived from the session ID, so the check
// is stateless.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next(w, r)
			return
		}

		cookie, err := r.Cookie("session_id")
		if err != nil {
			respondWithError(w, http.StatusForbidden, "invalid CSRF token")
			return
		}
		token := r.Header.Get("X-CSRF-Token")
		if !m.csrf.ValidateToken(cookie.Value, token) {
			respondWithError(w, http.StatusForbidden, "invalid CSRF token")
			return
		}
		next(w, r)
	}
}

// RateLimit rejects requests from clients that exceed the limiter's
// allowance. Used on login and registration to slow brute force.
func RateLimit(limiter *security.RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !limiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetUserFromContext retrieves the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
