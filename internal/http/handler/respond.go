package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"loopdrop/internal/core"
	"loopdrop/internal/csvingest"
	"loopdrop/internal/http/payload"
	"loopdrop/internal/safe"

	"go.uber.org/zap"
)

type responder struct {
	logs *zap.SugaredLogger
}

func (h responder) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// respondError maps err to a status code and response body. Details of
// unexpected errors are only logged.
func (h responder) respondError(w http.ResponseWriter, err error, message, route, requestId string) {
	resp := Response{Message: message}
	code := http.StatusInternalServerError

	var (
		validationErr *core.ValidationError
		ingestErr     *csvingest.Error
		stateErr      *core.InvalidStateError
		gatewayErr    *core.GatewayError
	)

	switch {
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		resp.Error = "Validation failed"
		resp.Errors = validationErr.Errors
	case errors.As(err, &ingestErr):
		code = http.StatusBadRequest
		resp.Error = ingestErr.Message
		if ingestErr.Cause != "" {
			resp.Error = ingestErr.Message + ": " + ingestErr.Cause
		}
		resp.Errors = ingestErr.Errors
		resp.Data = map[string]int{"parsedEntries": ingestErr.ParsedEntries}
	case errors.Is(err, core.ErrNotFound):
		code = http.StatusNotFound
		resp.Error = "Distribution not found"
	case errors.As(err, &stateErr):
		code = http.StatusConflict
		resp.Error = stateErr.Error()
	case errors.Is(err, safe.ErrThresholdNotMet):
		code = http.StatusConflict
		resp.Error = err.Error()
	case errors.As(err, &gatewayErr):
		code = http.StatusBadGateway
		resp.Error = gatewayErr.Error()
	case errors.Is(err, payload.ErrInvalidPagination):
		code = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		resp.Error = oopsErr
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

// respondDecodeError answers a body that could not be decoded or validated.
func (h responder) respondDecodeError(w http.ResponseWriter, err error, route, requestId string) {
	resp := Response{
		Message: "Invalid request payload",
		Error:   err.Error(),
	}
	if fieldErrs := payload.FieldErrors(err); fieldErrs != nil {
		resp.Error = "Validation failed"
		resp.Errors = fieldErrs
	}

	h.respond(w, resp, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}
