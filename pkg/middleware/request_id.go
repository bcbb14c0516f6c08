package middleware

import (
	"net/http"

	"user-management/pkg/utils"

	"github.com/google/uuid"
)

// RequestID assigns each request a unique ID, reusing the client's
// X-Request-Id header when present
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set("X-Request-Id", requestID)

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
