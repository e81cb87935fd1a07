package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inventory-api/internal/middleware"
	"inventory-api/internal/model"
	"inventory-api/internal/service"
	"inventory-api/internal/validate"
	"inventory-api/pkg/apierror"
)

type ProductHandler struct {
	service   *service.ProductService
	maxUpload int64
}

func NewProductHandler(service *service.ProductService, maxUpload int64) *ProductHandler {
	return &ProductHandler{service: service, maxUpload: maxUpload}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
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
		writeOperationError(w, err, "Failed to add new product")
		return
	}

	writeSuccess(w, http.StatusCreated, "Product item added successfully", []any{})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthenticated", http.StatusUnauthorized))
		return
	}

	products, err := h.service.List(r.Context(), actorID)
	if err != nil {
		writeOperationError(w, err, "Failed to retrieve products")
		return
	}

	writeSuccess(w, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
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
		writeOperationError(w, err, "Failed to update product")
		return
	}

	writeSuccess(w, http.StatusOK, "Product updated successfully", map[string]string{"productId": id})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("Unauthenticated", http.StatusUnauthorized))
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), actorID, id); err != nil {
		writeOperationError(w, err, "Failed to delete product")
		return
	}

	writeSuccess(w, http.StatusOK, "Product deleted successfully", map[string]string{"productId": id})
}

func (h *ProductHandler) parseInput(w http.ResponseWriter, r *http.Request) (model.ProductInput, bool) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		writeError(w, apierror.New("Invalid form data", http.StatusBadRequest))
		return model.ProductInput{}, false
	}

	values := map[string]string{
		"name":            r.FormValue("name"),
		"quantity":        r.FormValue("quantity"),
		"description":     r.FormValue("description"),
		"serial_number":   r.FormValue("serial_number"),
		"has_sold":        r.FormValue("has_sold"),
		"product_type_id": r.FormValue("product_type_id"),
	}
	if fields := validate.ProductSchema().Validate(values); fields != nil {
		writeValidationFailure(w, fields)
		return model.ProductInput{}, false
	}

	image, fields := formImage(r)
	if fields != nil {
		writeValidationFailure(w, fields)
		return model.ProductInput{}, false
	}

	// Safe after schema validation.
	quantity, _ := strconv.Atoi(values["quantity"])

	return model.ProductInput{
		Name:          values["name"],
		Quantity:      quantity,
		Description:   values["description"],
		SerialNumber:  values["serial_number"],
		HasSold:       values["has_sold"] == "true",
		ProductTypeID: values["product_type_id"],
		Image:         image,
	}, true
}
