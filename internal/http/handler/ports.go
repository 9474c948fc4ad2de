package handler

import (
	"context"
	"io"
	"net/http"

	"loopdrop/internal/core"
	"loopdrop/internal/repository"
	"loopdrop/internal/safe"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name DistributionService . DistributionService
type DistributionService interface {
	Create(ctx context.Context, req core.CreateRequest) (repository.Distribution, error)
	CreateFromCSV(ctx context.Context, r io.Reader, meta core.Metadata) (repository.Distribution, error)
	Propose(ctx context.Context, id, proposer string) (core.ProposalResult, error)
	Execute(ctx context.Context, id, executor string) (core.ExecutionResult, error)
	Fail(ctx context.Context, id, reason, actorName string) (repository.Distribution, error)
	Get(ctx context.Context, id string) (core.DistributionDetails, error)
	List(ctx context.Context, limit, offset int) ([]repository.Distribution, int, error)
	AuditLogs(ctx context.Context, limit, offset int) ([]repository.AuditLog, int, error)
	Stats(ctx context.Context) (core.Stats, error)
}

//counterfeiter:generate -o fake -fake-name SafeService . SafeService
type SafeService interface {
	SafeInfo(ctx context.Context) (safe.Info, error)
	ConfirmSafeTransaction(ctx context.Context, safeTxHash string, signature []byte) (safe.Confirmation, error)
	ExecuteBySafeTxHash(ctx context.Context, safeTxHash, executor string) (core.ExecutionResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
