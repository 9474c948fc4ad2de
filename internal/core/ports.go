package core

import (
	"context"
	"math/big"

	"loopdrop/internal/ethereum"
	"loopdrop/internal/repository"
	"loopdrop/internal/safe"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateDistribution(ctx context.Context, d repository.Distribution, entries []repository.Entry, audit *repository.AuditLog) ([]repository.Entry, error)
	UpdateStatus(ctx context.Context, u repository.StatusUpdate) (repository.Distribution, error)
	InsertAuditLog(ctx context.Context, a repository.AuditLog) (repository.AuditLog, error)
	GetDistribution(ctx context.Context, id string) (repository.Distribution, error)
	GetDistributionBySafeTxHash(ctx context.Context, hash string) (repository.Distribution, error)
	ListDistributions(ctx context.Context, limit, offset int) ([]repository.Distribution, int, error)
	AllDistributions(ctx context.Context) ([]repository.Distribution, error)
	ListDistributionsByStatus(ctx context.Context, status string) ([]repository.Distribution, error)
	ListEntries(ctx context.Context, distributionID string) ([]repository.Entry, error)
	ListAuditLog(ctx context.Context, distributionID string) ([]repository.AuditLog, error)
	ListAllAuditLogs(ctx context.Context, limit, offset int) ([]repository.AuditLog, int, error)
}

//counterfeiter:generate -o fake -fake-name MultisigGateway . MultisigGateway
type MultisigGateway interface {
	EncodeBatchTransfer(token string, transfers []safe.TransferRequest, distributionType string) ([]byte, error)
	TotalAmount(transfers []safe.TransferRequest) (*big.Int, error)
	CreateAndSignTransaction(ctx context.Context, data []byte, target string) (safe.SignedTransaction, error)
	GetInfo(ctx context.Context) (safe.Info, error)
	Confirm(ctx context.Context, safeTxHash string, signature []byte) (safe.Confirmation, error)
	Execute(ctx context.Context, safeTxHash string) (safe.ExecutionResult, error)
	Discard(safeTxHash string)
}

//counterfeiter:generate -o fake -fake-name ReceiptFetcher . ReceiptFetcher
type ReceiptFetcher interface {
	FetchReceipts(ctx context.Context, hashes []string) ([]*ethereum.Receipt, error)
}
