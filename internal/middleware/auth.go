package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"inventory-api/internal/model"
)

type tokenVerifier interface {
	Verify(token string) (userID string, err error)
}

type contextKey string

const userIDContextKey contextKey = "auth_user_id"

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth guards a route with the session token. A cookie-carried token
// is promoted to the Authorization header first, so cookie-based web clients
// and header-based API clients share one verification path. Failures answer
// 401 with the taxonomy message and expire the cookie.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil && r.Header.Get("Authorization") == "" {
			r.Header.Set("Authorization", "Bearer "+cookie.Value)
		}

		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthorized(w, "Token is missing or invalid")
			return
		}

		userID, err := m.verifier.Verify(strings.TrimSpace(header[7:]))
		if err != nil {
			switch {
			case errors.Is(err, model.ErrTokenExpired):
				writeUnauthorized(w, "Token Expired")
			case errors.Is(err, model.ErrTokenMissing):
				writeUnauthorized(w, "Token is missing or invalid")
			default:
				writeUnauthorized(w, "Token Invalid")
			}
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user ID attached by RequireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}

// writeUnauthorized answers 401 and expires the session cookie. The cookie is
// cleared on every failure, not only expiry, so a stale or tampered cookie
// never sticks around on the client.
func writeUnauthorized(w http.ResponseWriter, message string) {
	http.SetCookie(w, ExpiredSessionCookie())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	_ = jsonEncode(w, model.APIResponse{
		Status:  http.StatusUnauthorized,
		Success: false,
		Errors:  map[string][]string{"general": {message}},
	})
}
