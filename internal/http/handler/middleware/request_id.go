package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const (
	RequestIDKey    ctxKey = "request_id"
	RequestIDHeader        = "X-Request-ID"
)

type requestIDMiddleware struct{}

func NewRequestIDMiddleware() *requestIDMiddleware {
	return &requestIDMiddleware{}
}

// RequestID reuses the X-Request-ID header of the request or generates a new
// id, stores it in the request context and echoes it in the response.
func (m *requestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id stored by RequestID or an empty string.
func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDKey).(string)
	return requestID
}
