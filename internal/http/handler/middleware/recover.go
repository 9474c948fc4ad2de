package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

const panicBody = `{"message":"Internal server error","error":"Oops! Something went wrong. Please try again later."}` + "\n"

type recoverMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoverMiddleware(logger *zap.SugaredLogger) *recoverMiddleware {
	return &recoverMiddleware{
		logs: logger,
	}
}

func (m *recoverMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logs.Errorw("panic while serving request",
				"panic", rec,
				"stack", string(debug.Stack()),
				"path", r.URL.Path,
				"request_id", GetRequestID(r.Context()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(panicBody))
		}()

		next.ServeHTTP(w, r)
	})
}
