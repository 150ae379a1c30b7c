package middleware

import (
	"net/http"

	"agro-marketplace/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an ID. A client supplied UUID is kept,
// anything else is replaced.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if !utils.IsUUID(requestID) {
				requestID = utils.GenerateUUIDString()
			}

			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(utils.SetRequestID(r.Context(), requestID)))
		})
	}
}
