package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type loggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *loggingMiddleware {
	return &loggingMiddleware{
		logs: logger,
	}
}

func (m *loggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
			"request_id", GetRequestID(r.Context()),
		}

		if status >= http.StatusInternalServerError {
			m.logs.Errorw("request completed", fields...)
			return
		}
		m.logs.Infow("request completed", fields...)
	})
}
