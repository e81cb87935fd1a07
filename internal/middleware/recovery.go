package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"inventory-api/internal/model"
)

// Recovery converts panics into a generic 500 envelope. The panic value goes
// to the log, never to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				slog.Error("panic recovered", "error", fmt.Sprintf("%v", recovered), "stack", string(debug.Stack()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = jsonEncode(w, model.APIResponse{
					Status:  http.StatusInternalServerError,
					Success: false,
					Errors:  map[string][]string{"general": {"An unexpected error occurred."}},
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
