package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"inventory-api/internal/model"
)

type stubVerifier struct {
	userID string
	err    error
}

func (v stubVerifier) Verify(string) (string, error) {
	return v.userID, v.err
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(userID))
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()
	var envelope model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func expiredCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", SessionCookieName)
	return nil
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	t.Run("valid bearer token passes the user id through", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{userID: "user-1"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set("Authorization", "Bearer sometoken")

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", rec.Body.String())
	})

	t.Run("cookie token is promoted to the Authorization header", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{userID: "user-2"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookietoken"})

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-2", rec.Body.String())
	})

	t.Run("an existing Authorization header wins over the cookie", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{userID: "user-3"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set("Authorization", "Bearer headertoken")
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookietoken"})

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, "Bearer headertoken", req.Header.Get("Authorization"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no token at all", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{userID: "user-1"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.Equal(t, []string{"Token is missing or invalid"}, envelope.Errors["general"])
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{userID: "user-1"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.Equal(t, []string{"Token is missing or invalid"}, envelope.Errors["general"])
	})

	t.Run("expired token", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{err: model.ErrTokenExpired})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set("Authorization", "Bearer expired")

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.Equal(t, []string{"Token Expired"}, envelope.Errors["general"])
	})

	t.Run("invalid token", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{err: model.ErrTokenInvalid})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.Equal(t, []string{"Token Invalid"}, envelope.Errors["general"])
	})

	t.Run("every failure clears the session cookie", func(t *testing.T) {
		mw := NewAuthMiddleware(stubVerifier{err: model.ErrTokenInvalid})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		mw.RequireAuth(protectedEcho(t)).ServeHTTP(rec, req)

		cookie := expiredCookie(t, rec)
		require.Empty(t, cookie.Value)
		require.Equal(t, -1, cookie.MaxAge)
		require.True(t, cookie.HttpOnly)
	})
}

func TestUserIDFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	require.False(t, ok)
}
