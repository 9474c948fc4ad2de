package handler

import (
	"net/http"
	"time"

	"loopdrop/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var Health = "GET /health"

const serviceName = "LoopDrop Distribution API"

type HealthHandler struct {
	responder
	now func() time.Time
}

func NewHealthHandler(logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{
		responder: responder{logs: logger},
		now:       time.Now,
	}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	}, http.StatusOK, middleware.GetRequestID(r.Context()))
}
