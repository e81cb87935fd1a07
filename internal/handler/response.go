package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inventory-api/internal/model"
	"inventory-api/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeError renders an apierror as the failure envelope. Anything else is an
// unexpected failure: logged in full, reported generically.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	fields := map[string][]string{"general": {"An unexpected error occurred."}}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		fields = apiErr.Errors
	} else {
		slog.Error("unhandled error", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Status:  status,
		Success: false,
		Errors:  fields,
	})
}

// writeValidationFailure renders schema output as a 422 envelope.
func writeValidationFailure(w http.ResponseWriter, fields map[string][]string) {
	writeError(w, apierror.WithFields(fields, http.StatusUnprocessableEntity))
}
