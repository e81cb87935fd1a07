package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"inventory-api/internal/model"
	"inventory-api/internal/validate"
	"inventory-api/pkg/apierror"
)

// formImage pulls the optional "image" file out of a multipart form and runs
// the shared type/size rules. Returns (nil, nil) when no file was sent.
func formImage(r *http.Request) (*model.ImageUpload, map[string][]string) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, map[string][]string{"image": {"The image failed to upload."}}
	}

	if fields := validate.Image(header); fields != nil {
		_ = file.Close()
		return nil, fields
	}

	return &model.ImageUpload{File: file, Header: header}, nil
}

// writeOperationError keeps the endpoint-specific 500 message for unexpected
// failures while letting apierrors through untouched.
func writeOperationError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeError(w, err)
		return
	}

	slog.Error("operation failed", "error", err.Error())
	writeError(w, apierror.New(fallback, http.StatusInternalServerError))
}
