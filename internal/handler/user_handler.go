package handler

import (
	"net/http"

	"inventory-api/internal/middleware"
	"inventory-api/internal/service"
	"inventory-api/pkg/apierror"
)

type UserHandler struct {
	dashboard *service.DashboardService
}

func NewUserHandler(dashboard *service.DashboardService) *UserHandler {
	return &UserHandler{dashboard: dashboard}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthenticated", http.StatusUnauthorized))
		return
	}

	overview, err := h.dashboard.Overview(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "User details retrieved successfully", overview)
}
