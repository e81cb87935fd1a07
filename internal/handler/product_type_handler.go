package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inventory-api/internal/middleware"
	"inventory-api/internal/model"
	"inventory-api/internal/service"
	"inventory-api/internal/validate"
	"inventory-api/pkg/apierror"
)

type ProductTypeHandler struct {
	service   *service.ProductTypeService
	maxUpload int64
}

func NewProductTypeHandler(service *service.ProductTypeService, maxUpload int64) *ProductTypeHandler {
	return &ProductTypeHandler{service: service, maxUpload: maxUpload}
}

func (h *ProductTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthenticated", http.StatusUnauthorized))
		return
	}

	input, ok := h.parseInput(w, r)
	if !ok {
		return
	}
	if input.Image != nil {
		defer input.Image.File.Close()
	}

	if err := h.service.Create(r.Context(), actorID, input); err != nil {
		writeOperationError(w, err, "Failed to add product type")
		return
	}

	writeSuccess(w, http.StatusCreated, "Product type added successfully", []any{})
}

func (h *ProductTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthenticated", http.StatusUnauthorized))
		return
	}

	types, err := h.service.List(r.Context(), actorID)
	if err != nil {
		writeOperationError(w, err, "Failed to retrieve product types")
		return
	}

	writeSuccess(w, http.StatusOK, "Product Types retrieved successfully", types)
}

func (h *ProductTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthenticated", http.StatusUnauthorized))
		return
	}

	id := chi.URLParam(r, "id")

	input, ok := h.parseInput(w, r)
	if !ok {
		return
	}
	if input.Image != nil {
		defer input.Image.File.Close()
	}

	if err := h.service.Update(r.Context(), actorID, id, input); err != nil {
		writeOperationError(w, err, "Failed to update product type")
		return
	}

	writeSuccess(w, http.StatusOK, "Product Type updated successfully", map[string]string{"productTypeId": id})
}

func (h *ProductTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthenticated", http.StatusUnauthorized))
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), actorID, id); err != nil {
		writeOperationError(w, err, "Failed to delete product type")
		return
	}

	writeSuccess(w, http.StatusOK, "Product type deleted successfully", map[string]string{"productTypeId": id})
}

// parseInput validates the multipart form and assembles the service input.
// On failure the response has already been written.
func (h *ProductTypeHandler) parseInput(w http.ResponseWriter, r *http.Request) (model.ProductTypeInput, bool) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		writeError(w, apierror.New("Invalid form data", http.StatusBadRequest))
		return model.ProductTypeInput{}, false
	}

	values := map[string]string{
		"name":        r.FormValue("name"),
		"description": r.FormValue("description"),
	}
	if fields := validate.ProductTypeSchema().Validate(values); fields != nil {
		writeValidationFailure(w, fields)
		return model.ProductTypeInput{}, false
	}

	image, fields := formImage(r)
	if fields != nil {
		writeValidationFailure(w, fields)
		return model.ProductTypeInput{}, false
	}

	return model.ProductTypeInput{
		Name:        values["name"],
		Description: values["description"],
		Image:       image,
	}, true
}
