package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"inventory-api/internal/middleware"
	"inventory-api/internal/model"
	"inventory-api/internal/service"
	"inventory-api/internal/validate"
	"inventory-api/pkg/apierror"
)

type AuthHandler struct {
	service  *service.AuthService
	tokenTTL time.Duration
}

func NewAuthHandler(service *service.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, tokenTTL: tokenTTL}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("Invalid JSON body", http.StatusBadRequest))
		return
	}

	if fields := validate.RegisterSchema().Validate(map[string]string{
		"username": payload.Username,
		"email":    payload.Email,
		"password": payload.Password,
	}); fields != nil {
		writeValidationFailure(w, fields)
		return
	}

	token, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, middleware.SessionCookie(token, h.tokenTTL))
	writeSuccess(w, http.StatusCreated, "User registered successfully", []any{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("Invalid JSON body", http.StatusBadRequest))
		return
	}

	if fields := validate.LoginSchema().Validate(map[string]string{
		"username": payload.Username,
		"password": payload.Password,
	}); fields != nil {
		writeValidationFailure(w, fields)
		return
	}

	token, err := h.service.Login(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, middleware.SessionCookie(token, h.tokenTTL))
	writeSuccess(w, http.StatusOK, "Login successful", []any{})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, middleware.ExpiredSessionCookie())
	writeSuccess(w, http.StatusOK, "Logged out successfully", nil)
}
