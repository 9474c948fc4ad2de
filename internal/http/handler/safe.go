package handler

import (
	"net/http"

	"loopdrop/internal/http/handler/middleware"
	"loopdrop/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetSafeInfo            = "GET /api/safe/info"
	ConfirmSafeTransaction = "POST /api/safe/confirm/{safeTxHash}"
	ExecuteSafeTransaction = "POST /api/safe/execute/{safeTxHash}"
)

type SafeHandler struct {
	responder
	requestDecoder RequestDecoder
	safe           SafeService
}

func NewSafeHandler(logger *zap.SugaredLogger, requestDecoder RequestDecoder, safeService SafeService) *SafeHandler {
	return &SafeHandler{
		responder:      responder{logs: logger},
		requestDecoder: requestDecoder,
		safe:           safeService,
	}
}

func (h *SafeHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	info, err := h.safe.SafeInfo(r.Context())
	if err != nil {
		h.respondError(w, err, "Could not read safe info", GetSafeInfo, requestId)
		return
	}

	h.respond(w, Response{Success: true, Data: info}, http.StatusOK, requestId)
}

func (h *SafeHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var body payload.ConfirmRequest
	if err := h.requestDecoder.DecodeJSONPayload(r, &body); err != nil {
		h.respondDecodeError(w, err, ConfirmSafeTransaction, requestId)
		return
	}

	signature, err := body.SignatureBytes()
	if err != nil {
		h.respondDecodeError(w, err, ConfirmSafeTransaction, requestId)
		return
	}

	confirmation, err := h.safe.ConfirmSafeTransaction(r.Context(), r.PathValue("safeTxHash"), signature)
	if err != nil {
		h.respondError(w, err, "Could not confirm transaction", ConfirmSafeTransaction, requestId)
		return
	}

	h.logs.Infow("safe transaction confirmed",
		"safe_tx_hash", confirmation.SafeTxHash,
		"owner", confirmation.Owner,
		"confirmations", confirmation.Confirmations,
		"handler", ConfirmSafeTransaction,
		"request_id", requestId)

	h.respond(w, Response{Success: true, Data: confirmation}, http.StatusOK, requestId)
}

func (h *SafeHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var body payload.ExecuteRequest
	if err := h.requestDecoder.DecodeJSONPayload(r, &body); err != nil {
		h.respondDecodeError(w, err, ExecuteSafeTransaction, requestId)
		return
	}

	result, err := h.safe.ExecuteBySafeTxHash(r.Context(), r.PathValue("safeTxHash"), body.Actor(middleware.Identity(r.Context())))
	if err != nil {
		h.respondError(w, err, "Could not execute transaction", ExecuteSafeTransaction, requestId)
		return
	}

	h.respond(w, Response{Success: true, Data: result}, http.StatusOK, requestId)
}
