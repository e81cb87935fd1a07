package middleware

import (
	"net/http"
	"time"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "access_token"

// SessionCookie builds the cookie set on register and login. HTTP-only and
// SameSite=Lax; the TTL matches the token's own expiry.
func SessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie instructs the client to delete the session cookie.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
