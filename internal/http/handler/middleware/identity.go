package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"loopdrop/pkg/jwt"

	"go.uber.org/zap"
)

const IdentityKey ctxKey = "identity"

type identityMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewIdentityMiddleware(validator TokenValidator, logger *zap.SugaredLogger) *identityMiddleware {
	return &identityMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Identity stores the subject of a valid bearer token in the request
// context. Requests without an Authorization header pass through untouched;
// requests with an invalid token are rejected with 401.
func (m *identityMiddleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			m.unauthorized(w, r, "authorization header must be a bearer token", nil)
			return
		}

		claims, err := m.validator.Validate(strings.TrimSpace(token))
		if err != nil {
			m.unauthorized(w, r, "invalid or expired token", err)
			return
		}

		subject, err := jwt.Subject(claims)
		if err != nil {
			m.unauthorized(w, r, "token has no subject", err)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *identityMiddleware) unauthorized(w http.ResponseWriter, r *http.Request, msg string, err error) {
	m.logs.Warnw("request rejected",
		"reason", msg,
		"error", err,
		"path", r.URL.Path,
		"request_id", GetRequestID(r.Context()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Unauthorized",
		"error":   msg,
	})
}

// Identity returns the authenticated subject of the request, if any.
func Identity(ctx context.Context) string {
	subject, _ := ctx.Value(IdentityKey).(string)
	return subject
}
