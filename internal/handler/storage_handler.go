package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inventory-api/internal/storage"
	"inventory-api/pkg/apierror"
)

// StorageHandler serves the uploaded images under /storage/. An optional
// ?thumb=<size> query returns a cached JPEG thumbnail instead of the
// original.
type StorageHandler struct {
	store *storage.Store
}

func NewStorageHandler(store *storage.Store) *StorageHandler {
	return &StorageHandler{store: store}
}

func (h *StorageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	publicPath := storage.PublicPrefix + chi.URLParam(r, "*")

	if raw := r.URL.Query().Get("thumb"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, apierror.New("Invalid thumbnail size", http.StatusBadRequest))
			return
		}

		thumbPath, err := h.store.Thumbnail(publicPath, size)
		if err != nil {
			writeError(w, apierror.New("Image not found", http.StatusNotFound))
			return
		}

		http.ServeFile(w, r, thumbPath)
		return
	}

	resolved, err := h.store.Resolve(publicPath)
	if err != nil {
		writeError(w, apierror.New("Image not found", http.StatusNotFound))
		return
	}

	http.ServeFile(w, r, resolved)
}
