package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"loopdrop/internal/csvingest"
	"loopdrop/internal/http/handler/middleware"
	"loopdrop/internal/http/payload"
	"loopdrop/internal/validator"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var (
	ListDistributions     = "GET /api/distributions"
	GetDistribution       = "GET /api/distributions/{id}"
	DistributionStats     = "GET /api/distributions/stats"
	CreateDistribution    = "POST /api/distributions/create"
	UploadDistributionCSV = "POST /api/distributions/upload-csv"
	ProposeDistribution   = "POST /api/distributions/{id}/propose"
	ExecuteDistribution   = "POST /api/distributions/{id}/execute"
	FailDistribution      = "POST /api/distributions/{id}/fail"
	DistributionTemplate  = "GET /api/distributions/template/csv"
	ListAuditLogs         = "GET /api/distributions/audit/logs"
)

const (
	MaxUploadSize = 5 << 20

	templateFilename = "distribution-template.csv"
	msgMissingFields = "Missing required fields: name, type, tokenAddress, tokenSymbol"
	msgCSVOnly       = "Only CSV files are allowed"
)

type DistributionHandler struct {
	responder
	requestDecoder RequestDecoder
	distributions  DistributionService
}

func NewDistributionHandler(logger *zap.SugaredLogger, requestDecoder RequestDecoder, distributionService DistributionService) *DistributionHandler {
	return &DistributionHandler{
		responder:      responder{logs: logger},
		requestDecoder: requestDecoder,
		distributions:  distributionService,
	}
}

func (h *DistributionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	page, err := payload.ParsePagination(r.URL.Query(), payload.DefaultDistributionsLimit)
	if err != nil {
		h.respondError(w, err, "Could not list distributions", ListDistributions, requestId)
		return
	}

	distributions, total, err := h.distributions.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		h.respondError(w, err, "Could not list distributions", ListDistributions, requestId)
		return
	}

	h.respond(w, Response{
		Success:    true,
		Data:       distributions,
		Pagination: &Pagination{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, http.StatusOK, requestId)
}

func (h *DistributionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	details, err := h.distributions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, err, "Could not get distribution", GetDistribution, requestId)
		return
	}

	h.respond(w, Response{Success: true, Data: details}, http.StatusOK, requestId)
}

func (h *DistributionHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	stats, err := h.distributions.Stats(r.Context())
	if err != nil {
		h.respondError(w, err, "Could not compute statistics", DistributionStats, requestId)
		return
	}

	h.respond(w, Response{Success: true, Data: stats}, http.StatusOK, requestId)
}

func (h *DistributionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var body payload.CreateDistributionRequest
	if err := h.requestDecoder.DecodeJSONPayload(r, &body); err != nil {
		h.respondDecodeError(w, err, CreateDistribution, requestId)
		return
	}

	distribution, err := h.distributions.Create(r.Context(), body.ToCore(middleware.Identity(r.Context())))
	if err != nil {
		h.respondError(w, err, "Could not create distribution", CreateDistribution, requestId)
		return
	}

	h.logs.Infow("distribution created",
		"distribution_id", distribution.ID,
		"recipients", distribution.TotalRecipients,
		"handler", CreateDistribution,
		"request_id", requestId)

	h.respond(w, Response{Success: true, Data: distribution}, http.StatusCreated, requestId)
}

func (h *DistributionHandler) HandleUploadCSV(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		code := http.StatusBadRequest
		msg := "Invalid multipart form"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
			msg = fmt.Sprintf("File exceeds the %d MB limit", MaxUploadSize>>20)
		}
		h.respond(w, Response{Message: "Upload failed", Error: msg}, code, requestId)
		h.logs.Errorw("failed to parse multipart form", "error", err, "handler", UploadDistributionCSV, "request_id", requestId)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respond(w, Response{Message: "Upload failed", Error: "No file uploaded"}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing upload file", "error", err, "handler", UploadDistributionCSV, "request_id", requestId)
		return
	}
	defer file.Close()

	meta := payload.UploadMetadata{
		Name:         r.FormValue("name"),
		Type:         r.FormValue("type"),
		TokenAddress: r.FormValue("tokenAddress"),
		TokenSymbol:  r.FormValue("tokenSymbol"),
		CreatedBy:    r.FormValue("createdBy"),
	}
	if missing := meta.MissingFields(); len(missing) > 0 {
		fieldErrs := make([]validator.FieldError, len(missing))
		for i, field := range missing {
			fieldErrs[i] = validator.FieldError{Field: field, Code: "any.required", Message: fmt.Sprintf("%q is required", field)}
		}
		h.respond(w, Response{Message: "Upload failed", Error: msgMissingFields, Errors: fieldErrs}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing upload metadata", "fields", missing, "handler", UploadDistributionCSV, "request_id", requestId)
		return
	}

	if ok, err := isCSV(file, header); err != nil || !ok {
		h.respond(w, Response{Message: "Upload failed", Error: msgCSVOnly}, http.StatusBadRequest, requestId)
		h.logs.Errorw("rejected upload file",
			"error", err,
			"filename", header.Filename,
			"handler", UploadDistributionCSV,
			"request_id", requestId)
		return
	}

	distribution, err := h.distributions.CreateFromCSV(r.Context(), file, meta.ToCore(middleware.Identity(r.Context())))
	if err != nil {
		h.respondError(w, err, "Could not create distribution", UploadDistributionCSV, requestId)
		return
	}

	h.logs.Infow("distribution created from csv",
		"distribution_id", distribution.ID,
		"recipients", distribution.TotalRecipients,
		"filename", header.Filename,
		"handler", UploadDistributionCSV,
		"request_id", requestId)

	h.respond(w, Response{Success: true, Data: distribution}, http.StatusCreated, requestId)
}

func (h *DistributionHandler) HandlePropose(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var body payload.ProposeRequest
	if err := h.requestDecoder.DecodeJSONPayload(r, &body); err != nil {
		h.respondDecodeError(w, err, ProposeDistribution, requestId)
		return
	}

	result, err := h.distributions.Propose(r.Context(), r.PathValue("id"), body.Actor(middleware.Identity(r.Context())))
	if err != nil {
		h.respondError(w, err, "Could not propose distribution", ProposeDistribution, requestId)
		return
	}

	h.logs.Infow("distribution proposed",
		"distribution_id", result.DistributionID,
		"safe_tx_hash", result.SafeTxHash,
		"handler", ProposeDistribution,
		"request_id", requestId)

	h.respond(w, Response{
		Success: true,
		Message: "Transaction proposed to Safe multisig",
		Data:    result,
	}, http.StatusOK, requestId)
}

func (h *DistributionHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var body payload.ExecuteRequest
	if err := h.requestDecoder.DecodeJSONPayload(r, &body); err != nil {
		h.respondDecodeError(w, err, ExecuteDistribution, requestId)
		return
	}

	result, err := h.distributions.Execute(r.Context(), r.PathValue("id"), body.Actor(middleware.Identity(r.Context())))
	if err != nil {
		h.respondError(w, err, "Could not execute distribution", ExecuteDistribution, requestId)
		return
	}

	h.logs.Infow("distribution transaction submitted",
		"distribution_id", result.DistributionID,
		"tx_hash", result.TxHash,
		"handler", ExecuteDistribution,
		"request_id", requestId)

	h.respond(w, Response{
		Success: true,
		Message: "Transaction submitted",
		Data:    result,
	}, http.StatusOK, requestId)
}

func (h *DistributionHandler) HandleFail(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var body payload.FailRequest
	if err := h.requestDecoder.DecodeJSONPayload(r, &body); err != nil {
		h.respondDecodeError(w, err, FailDistribution, requestId)
		return
	}

	distribution, err := h.distributions.Fail(r.Context(), r.PathValue("id"), body.Reason, body.Actor(middleware.Identity(r.Context())))
	if err != nil {
		h.respondError(w, err, "Could not fail distribution", FailDistribution, requestId)
		return
	}

	h.respond(w, Response{Success: true, Data: distribution}, http.StatusOK, requestId)
}

func (h *DistributionHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+templateFilename)
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, csvingest.Template()); err != nil {
		h.logs.Errorw("failed to write csv template",
			"error", err,
			"handler", DistributionTemplate,
			"request_id", middleware.GetRequestID(r.Context()))
	}
}

func (h *DistributionHandler) HandleAuditLogs(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	page, err := payload.ParsePagination(r.URL.Query(), payload.DefaultAuditLogsLimit)
	if err != nil {
		h.respondError(w, err, "Could not list audit logs", ListAuditLogs, requestId)
		return
	}

	logs, total, err := h.distributions.AuditLogs(r.Context(), page.Limit, page.Offset)
	if err != nil {
		h.respondError(w, err, "Could not list audit logs", ListAuditLogs, requestId)
		return
	}

	h.respond(w, Response{
		Success:    true,
		Data:       logs,
		Pagination: &Pagination{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, http.StatusOK, requestId)
}

// isCSV accepts a file declared as text/csv or named *.csv whose content
// sniffs as text. The file is rewound before returning.
func isCSV(file multipart.File, header *multipart.FileHeader) (bool, error) {
	declared := header.Header.Get("Content-Type") == "text/csv" ||
		strings.HasSuffix(strings.ToLower(header.Filename), ".csv")
	if !declared {
		return false, nil
	}
	if header.Size == 0 {
		return true, nil
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return false, fmt.Errorf("detect content type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("rewind upload: %w", err)
	}

	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true, nil
		}
	}
	return false, nil
}
