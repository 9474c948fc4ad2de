package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"loopdrop/internal/csvingest"
	"loopdrop/internal/repository"
	"loopdrop/internal/safe"
	"loopdrop/internal/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Distributor drives distributions through their lifecycle and records every
// transition in the audit log.
type Distributor struct {
	logs     *zap.SugaredLogger
	repo     Repository
	gateway  MultisigGateway
	receipts ReceiptFetcher
	target   string
	now      func() time.Time
}

// NewDistributor is a constructor function for the Distributor type. Safe
// transactions are addressed to the target contract.
func NewDistributor(logger *zap.SugaredLogger, repo Repository, gateway MultisigGateway, receipts ReceiptFetcher, target string) *Distributor {
	return &Distributor{
		logs:     logger,
		repo:     repo,
		gateway:  gateway,
		receipts: receipts,
		target:   target,
		now:      time.Now,
	}
}

// Create validates the request and stores the distribution, its entries and
// the creation audit entry in one step.
func (d *Distributor) Create(ctx context.Context, req CreateRequest) (repository.Distribution, error) {
	return d.create(ctx, req, "Distribution created: %d recipients")
}

// CreateFromCSV reads the entries from a CSV document and creates the
// distribution described by meta.
func (d *Distributor) CreateFromCSV(ctx context.Context, r io.Reader, meta Metadata) (repository.Distribution, error) {
	rows, err := csvingest.Parse(r)
	if err != nil {
		return repository.Distribution{}, err
	}

	entries := make([]validator.EntryCandidate, len(rows))
	for i, row := range rows {
		entries[i] = validator.EntryCandidate{Address: row.Address, Amount: row.Amount}
	}

	return d.create(ctx, CreateRequest{
		Name:         meta.Name,
		Type:         meta.Type,
		TokenAddress: meta.TokenAddress,
		TokenSymbol:  meta.TokenSymbol,
		Entries:      entries,
		CreatedBy:    meta.CreatedBy,
	}, "Distribution created from CSV upload: %d recipients")
}

func (d *Distributor) create(ctx context.Context, req CreateRequest, details string) (repository.Distribution, error) {
	result := validator.Validate(validator.Candidate{
		Name:         req.Name,
		Type:         req.Type,
		TokenAddress: req.TokenAddress,
		TokenSymbol:  req.TokenSymbol,
		Entries:      req.Entries,
	})
	if !result.Valid {
		return repository.Distribution{}, &ValidationError{Errors: result.Errors}
	}
	normalized := result.Normalized

	amounts := make([]string, len(normalized.Entries))
	entries := make([]repository.Entry, len(normalized.Entries))
	for i, e := range normalized.Entries {
		amounts[i] = e.Amount
		entries[i] = repository.Entry{
			RecipientAddress: e.Address,
			Amount:           e.Amount,
			Status:           repository.EntryStatusPending,
		}
	}

	total, err := validator.SumAmounts(amounts)
	if err != nil {
		return repository.Distribution{}, fmt.Errorf("sum amounts: %w", err)
	}

	createdBy := actor(req.CreatedBy)
	distribution := repository.Distribution{
		ID:              uuid.NewString(),
		Name:            normalized.Name,
		Type:            normalized.Type,
		TokenAddress:    normalized.TokenAddress,
		TokenSymbol:     normalized.TokenSymbol,
		TotalRecipients: len(entries),
		TotalAmount:     total.String(),
		Status:          StatusPending,
		CreatedAt:       d.now().UTC(),
		CreatedBy:       createdBy,
	}

	_, err = d.repo.CreateDistribution(ctx, distribution, entries, &repository.AuditLog{
		Action:      ActionCreated,
		Details:     fmt.Sprintf(details, len(entries)),
		UserAddress: createdBy,
	})
	if err != nil {
		return repository.Distribution{}, fmt.Errorf("create distribution: %w", err)
	}

	distributionsCreated.WithLabelValues(distribution.Type).Inc()
	d.logs.Infow("distribution created",
		"distribution_id", distribution.ID,
		"type", distribution.Type,
		"recipients", distribution.TotalRecipients,
		"total_amount", distribution.TotalAmount,
	)

	return distribution, nil
}

// Propose creates and signs the Safe transaction paying out a pending
// distribution and moves it to proposed.
func (d *Distributor) Propose(ctx context.Context, id, proposer string) (ProposalResult, error) {
	distribution, err := d.get(ctx, id)
	if err != nil {
		return ProposalResult{}, err
	}

	if distribution.Status != StatusPending {
		return ProposalResult{}, &InvalidStateError{Operation: "propose", Status: distribution.Status}
	}

	entries, err := d.repo.ListEntries(ctx, id)
	if err != nil {
		return ProposalResult{}, fmt.Errorf("list entries: %w", err)
	}

	transfers := make([]safe.TransferRequest, len(entries))
	for i, e := range entries {
		transfers[i] = safe.TransferRequest{Recipient: e.RecipientAddress, Amount: e.Amount}
	}

	total, err := d.gateway.TotalAmount(transfers)
	if err != nil {
		return ProposalResult{}, fmt.Errorf("total amount: %w", err)
	}
	if total.String() != distribution.TotalAmount {
		return ProposalResult{}, fmt.Errorf("%w: entries sum to %s, distribution total is %s",
			ErrTotalMismatch, total.String(), distribution.TotalAmount)
	}

	data, err := d.gateway.EncodeBatchTransfer(distribution.TokenAddress, transfers, distribution.Type)
	if err != nil {
		return ProposalResult{}, &GatewayError{Op: "transaction encoding", Err: err}
	}

	signed, err := d.gateway.CreateAndSignTransaction(ctx, data, d.target)
	if err != nil {
		return ProposalResult{}, &GatewayError{Op: "transaction creation", Err: err}
	}

	_, err = d.transition(ctx, repository.StatusUpdate{
		ID:         id,
		From:       StatusPending,
		To:         StatusProposed,
		SafeTxHash: &signed.Hash,
		Audit: &repository.AuditLog{
			Action:      ActionProposed,
			Details:     fmt.Sprintf("Safe transaction created: %s", signed.Hash),
			UserAddress: actor(proposer),
		},
	}, "propose")
	if err != nil {
		d.gateway.Discard(signed.Hash)
		return ProposalResult{}, err
	}

	d.logs.Infow("distribution proposed", "distribution_id", id, "safe_tx_hash", signed.Hash)

	return ProposalResult{
		DistributionID: id,
		SafeTxHash:     signed.Hash,
		Status:         StatusProposed,
	}, nil
}

// Execute submits the Safe transaction of a proposed distribution.
func (d *Distributor) Execute(ctx context.Context, id, executor string) (ExecutionResult, error) {
	distribution, err := d.get(ctx, id)
	if err != nil {
		return ExecutionResult{}, err
	}
	return d.execute(ctx, distribution, executor)
}

// ExecuteBySafeTxHash is Execute for the distribution proposed under safeTxHash.
func (d *Distributor) ExecuteBySafeTxHash(ctx context.Context, safeTxHash, executor string) (ExecutionResult, error) {
	distribution, err := d.getBySafeTxHash(ctx, safeTxHash)
	if err != nil {
		return ExecutionResult{}, err
	}
	return d.execute(ctx, distribution, executor)
}

func (d *Distributor) execute(ctx context.Context, distribution repository.Distribution, executor string) (ExecutionResult, error) {
	if distribution.Status != StatusProposed || distribution.SafeTxHash == nil {
		return ExecutionResult{}, &InvalidStateError{Operation: "execute", Status: distribution.Status}
	}
	safeTxHash := *distribution.SafeTxHash
	user := actor(executor)

	_, err := d.transition(ctx, repository.StatusUpdate{
		ID:   distribution.ID,
		From: StatusProposed,
		To:   StatusExecuting,
		Audit: &repository.AuditLog{
			Action:      ActionExecuting,
			Details:     fmt.Sprintf("Executing Safe transaction: %s", safeTxHash),
			UserAddress: user,
		},
	}, "execute")
	if err != nil {
		return ExecutionResult{}, err
	}

	res, err := d.gateway.Execute(ctx, safeTxHash)
	if errors.Is(err, safe.ErrNotSubmitted) {
		_, revertErr := d.transition(ctx, repository.StatusUpdate{
			ID:   distribution.ID,
			From: StatusExecuting,
			To:   StatusProposed,
			Audit: &repository.AuditLog{
				Action:      ActionExecutionDeferred,
				Details:     fmt.Sprintf("Transaction not submitted: %s", err.Error()),
				UserAddress: user,
			},
		}, "defer")
		if revertErr != nil {
			d.logs.Errorw("restoring proposed status", "error", revertErr, "distribution_id", distribution.ID)
		}
		return ExecutionResult{}, &GatewayError{Op: "transaction execution", Err: err}
	}
	if err != nil {
		_, failErr := d.transition(ctx, repository.StatusUpdate{
			ID:   distribution.ID,
			From: StatusExecuting,
			To:   StatusFailed,
			Audit: &repository.AuditLog{
				Action:      ActionExecutionFailed,
				Details:     fmt.Sprintf("Transaction execution failed: %s", err.Error()),
				UserAddress: user,
			},
		}, "fail")
		if failErr != nil {
			d.logs.Errorw("recording failed execution", "error", failErr, "distribution_id", distribution.ID)
		}
		return ExecutionResult{}, &GatewayError{Op: "transaction execution", Err: err}
	}

	_, err = d.repo.UpdateStatus(ctx, repository.StatusUpdate{
		ID:             distribution.ID,
		From:           StatusExecuting,
		To:             StatusExecuting,
		ExecutedTxHash: &res.TxHash,
		Audit: &repository.AuditLog{
			Action:      ActionSubmitted,
			Details:     fmt.Sprintf("Transaction submitted: %s", res.TxHash),
			UserAddress: user,
		},
	})
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("record executed transaction %s: %w", res.TxHash, err)
	}

	d.logs.Infow("distribution submitted", "distribution_id", distribution.ID, "safe_tx_hash", safeTxHash, "tx_hash", res.TxHash)

	return ExecutionResult{
		DistributionID: distribution.ID,
		SafeTxHash:     safeTxHash,
		TxHash:         res.TxHash,
		Status:         StatusExecuting,
	}, nil
}

// Fail moves a distribution that is not yet settled to failed.
func (d *Distributor) Fail(ctx context.Context, id, reason, actorName string) (repository.Distribution, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return repository.Distribution{}, &ValidationError{Errors: []validator.FieldError{{
			Field:   "reason",
			Code:    "string.empty",
			Message: `"reason" is not allowed to be empty`,
		}}}
	}

	distribution, err := d.get(ctx, id)
	if err != nil {
		return repository.Distribution{}, err
	}
	if !CanTransition(distribution.Status, StatusFailed) {
		return repository.Distribution{}, &InvalidStateError{Operation: "fail", Status: distribution.Status}
	}

	updated, err := d.transition(ctx, repository.StatusUpdate{
		ID:   id,
		From: distribution.Status,
		To:   StatusFailed,
		Audit: &repository.AuditLog{
			Action:      ActionFailed,
			Details:     reason,
			UserAddress: actor(actorName),
		},
	}, "fail")
	if err != nil {
		return repository.Distribution{}, err
	}

	d.logs.Infow("distribution failed", "distribution_id", id, "previous_status", distribution.Status)
	return updated, nil
}

// Reconcile settles executing distributions whose transaction has been mined.
// Distributions without a receipt yet stay executing.
func (d *Distributor) Reconcile(ctx context.Context) (ReconcileResult, error) {
	executing, err := d.repo.ListDistributionsByStatus(ctx, StatusExecuting)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("list executing distributions: %w", err)
	}

	byTxHash := make(map[string]repository.Distribution, len(executing))
	hashes := make([]string, 0, len(executing))
	for _, dist := range executing {
		if dist.ExecutedTxHash == nil {
			continue
		}
		byTxHash[strings.ToLower(*dist.ExecutedTxHash)] = dist
		hashes = append(hashes, *dist.ExecutedTxHash)
	}

	result := ReconcileResult{Checked: len(hashes)}
	if len(hashes) == 0 {
		return result, nil
	}

	receipts, fetchErr := d.receipts.FetchReceipts(ctx, hashes)
	if fetchErr != nil {
		d.logs.Warnw("some receipts could not be fetched", "error", fetchErr)
	}

	var errs error
	for _, receipt := range receipts {
		dist, ok := byTxHash[strings.ToLower(receipt.TransactionHash)]
		if !ok {
			continue
		}

		update := repository.StatusUpdate{
			ID:   dist.ID,
			From: StatusExecuting,
			To:   StatusExecuted,
			Audit: &repository.AuditLog{
				Action:  ActionExecuted,
				Details: fmt.Sprintf("Transaction %s confirmed in block %d", receipt.TransactionHash, receipt.BlockNumber),
			},
		}
		if !receipt.Succeeded() {
			update.To = StatusFailed
			update.Audit.Action = ActionExecutionReverted
			update.Audit.Details = fmt.Sprintf("Transaction %s reverted in block %d", receipt.TransactionHash, receipt.BlockNumber)
		}

		if _, err := d.transition(ctx, update, "reconcile"); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if update.To == StatusExecuted {
			result.Executed++
		} else {
			result.Reverted++
		}
		d.logs.Infow("distribution settled", "distribution_id", dist.ID, "status", update.To, "tx_hash", receipt.TransactionHash)
	}

	return result, errors.Join(fetchErr, errs)
}

// Get returns a distribution with its entries and audit trail.
func (d *Distributor) Get(ctx context.Context, id string) (DistributionDetails, error) {
	distribution, err := d.get(ctx, id)
	if err != nil {
		return DistributionDetails{}, err
	}

	entries, err := d.repo.ListEntries(ctx, id)
	if err != nil {
		return DistributionDetails{}, fmt.Errorf("list entries: %w", err)
	}

	auditLog, err := d.repo.ListAuditLog(ctx, id)
	if err != nil {
		return DistributionDetails{}, fmt.Errorf("list audit log: %w", err)
	}

	return DistributionDetails{
		Distribution: distribution,
		Entries:      entries,
		AuditLog:     auditLog,
	}, nil
}

// List returns a page of distributions, newest first, and the total count.
func (d *Distributor) List(ctx context.Context, limit, offset int) ([]repository.Distribution, int, error) {
	distributions, total, err := d.repo.ListDistributions(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list distributions: %w", err)
	}
	return distributions, total, nil
}

func (d *Distributor) AuditLogs(ctx context.Context, limit, offset int) ([]repository.AuditLog, int, error) {
	logs, total, err := d.repo.ListAllAuditLogs(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, total, nil
}

// Stats aggregates all distributions by status and type.
func (d *Distributor) Stats(ctx context.Context) (Stats, error) {
	distributions, err := d.repo.AllDistributions(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("all distributions: %w", err)
	}

	stats := Stats{
		TotalDistributions: len(distributions),
		ByStatus: map[string]int{
			StatusPending:   0,
			StatusProposed:  0,
			StatusExecuting: 0,
			StatusExecuted:  0,
			StatusFailed:    0,
		},
		ByType: map[string]int{
			validator.TypeLoopDrop: 0,
			validator.TypeLoyalty:  0,
		},
	}
	for _, dist := range distributions {
		stats.ByStatus[dist.Status]++
		stats.ByType[dist.Type]++
		stats.TotalRecipients += dist.TotalRecipients
	}
	return stats, nil
}

func (d *Distributor) SafeInfo(ctx context.Context) (safe.Info, error) {
	info, err := d.gateway.GetInfo(ctx)
	if err != nil {
		return safe.Info{}, &GatewayError{Op: "safe info", Err: err}
	}
	return info, nil
}

// ConfirmSafeTransaction adds an owner signature to the Safe transaction of a
// proposed distribution.
func (d *Distributor) ConfirmSafeTransaction(ctx context.Context, safeTxHash string, signature []byte) (safe.Confirmation, error) {
	distribution, err := d.getBySafeTxHash(ctx, safeTxHash)
	if err != nil {
		return safe.Confirmation{}, err
	}
	if distribution.Status != StatusProposed {
		return safe.Confirmation{}, &InvalidStateError{Operation: "confirm", Status: distribution.Status}
	}

	confirmation, err := d.gateway.Confirm(ctx, safeTxHash, signature)
	switch {
	case errors.Is(err, safe.ErrNotOwner), errors.Is(err, safe.ErrInvalidSignature):
		return safe.Confirmation{}, &ValidationError{Errors: []validator.FieldError{{
			Field:   "signature",
			Code:    validator.CodeInvalid,
			Message: err.Error(),
		}}}
	case err != nil:
		return safe.Confirmation{}, &GatewayError{Op: "transaction confirmation", Err: err}
	}

	_, err = d.repo.InsertAuditLog(ctx, repository.AuditLog{
		DistributionID: &distribution.ID,
		Action:         ActionConfirmed,
		Details:        fmt.Sprintf("Signature added by %s (%d confirmations)", confirmation.Owner, confirmation.Confirmations),
		UserAddress:    confirmation.Owner,
	})
	if err != nil {
		return safe.Confirmation{}, fmt.Errorf("insert audit log: %w", err)
	}

	return confirmation, nil
}

// transition applies a status update and maps a lost compare-and-swap to
// InvalidStateError with the status seen at commit time.
func (d *Distributor) transition(ctx context.Context, u repository.StatusUpdate, op string) (repository.Distribution, error) {
	updated, err := d.repo.UpdateStatus(ctx, u)
	if err != nil {
		var conflict *repository.StatusConflictError
		if errors.As(err, &conflict) {
			return repository.Distribution{}, &InvalidStateError{Operation: op, Status: conflict.Actual}
		}
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Distribution{}, ErrNotFound
		}
		return repository.Distribution{}, fmt.Errorf("update status: %w", err)
	}

	statusTransitions.WithLabelValues(u.From, u.To).Inc()
	return updated, nil
}

func (d *Distributor) get(ctx context.Context, id string) (repository.Distribution, error) {
	distribution, err := d.repo.GetDistribution(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Distribution{}, ErrNotFound
	}
	if err != nil {
		return repository.Distribution{}, fmt.Errorf("get distribution: %w", err)
	}
	return distribution, nil
}

func (d *Distributor) getBySafeTxHash(ctx context.Context, hash string) (repository.Distribution, error) {
	distribution, err := d.repo.GetDistributionBySafeTxHash(ctx, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Distribution{}, ErrNotFound
	}
	if err != nil {
		return repository.Distribution{}, fmt.Errorf("get distribution by safe tx hash: %w", err)
	}
	return distribution, nil
}

func actor(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return repository.SystemUser
}
