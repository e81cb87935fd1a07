//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	server := newServer(t)
	client := newClient(t)

	t.Run("register sets the session cookie", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/auth/register", map[string]string{
			"username": "warehouseguy",
			"email":    "wg@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.True(t, parsed.Success)
		require.Equal(t, "User registered successfully", parsed.Message)
		require.NotEmpty(t, client.Jar.Cookies(mustParseURL(t, server.URL)))
	})

	t.Run("the cookie authenticates protected routes", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/user/me", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, "User details retrieved successfully", parsed.Message)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodDelete, server.URL+"/api/v1/auth/logout", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, "Logged out successfully", parsed.Message)
		require.Empty(t, client.Jar.Cookies(mustParseURL(t, server.URL)))
	})

	t.Run("protected routes reject the logged-out client", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/user/me", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, []string{"Token is missing or invalid"}, parsed.Errors["general"])
	})

	t.Run("login restores access", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/auth/login", map[string]string{
			"username": "warehouseguy",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, "Login successful", parsed.Message)

		me := doJSON(t, client, http.MethodGet, server.URL+"/api/v1/user/me", nil)
		require.Equal(t, http.StatusOK, me.StatusCode)
		me.Body.Close()
	})
}

func TestLoginFailures(t *testing.T) {
	server := newServer(t)
	client := newClient(t)
	registerUser(t, client, server.URL, "warehouseguy", "wg@example.com")

	t.Run("unknown user", func(t *testing.T) {
		resp := doJSON(t, newClient(t), http.MethodPost, server.URL+"/api/v1/auth/login", map[string]string{
			"username": "nobodyhere123",
			"password": "secret123",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, []string{"User not found"}, parsed.Errors["general"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, newClient(t), http.MethodPost, server.URL+"/api/v1/auth/login", map[string]string{
			"username": "warehouseguy",
			"password": "wrongpass1",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, []string{"Invalid credentials"}, parsed.Errors["general"])
	})

	t.Run("duplicate registration", func(t *testing.T) {
		resp := doJSON(t, newClient(t), http.MethodPost, server.URL+"/api/v1/auth/register", map[string]string{
			"username": "warehouseguy",
			"email":    "other@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		parsed := parseBody(t, resp)
		require.Equal(t, []string{"The username has already been taken."}, parsed.Errors["username"])
	})
}
