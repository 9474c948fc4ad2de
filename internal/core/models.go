package core

import (
	"loopdrop/internal/repository"
	"loopdrop/internal/validator"
)

const (
	StatusPending   = "pending"
	StatusProposed  = "proposed"
	StatusExecuting = "executing"
	StatusExecuted  = "executed"
	StatusFailed    = "failed"
)

// Audit log actions.
const (
	ActionCreated           = "CREATED"
	ActionProposed          = "PROPOSED"
	ActionConfirmed         = "CONFIRMED"
	ActionExecuting         = "EXECUTING"
	ActionSubmitted         = "SUBMITTED"
	ActionExecutionFailed   = "EXECUTION_FAILED"
	ActionExecutionDeferred = "EXECUTION_DEFERRED"
	ActionExecuted          = "EXECUTED"
	ActionExecutionReverted = "EXECUTION_REVERTED"
	ActionFailed            = "FAILED"
)

var transitions = map[string][]string{
	StatusPending:   {StatusProposed, StatusFailed},
	StatusProposed:  {StatusExecuting, StatusFailed},
	StatusExecuting: {StatusExecuted, StatusFailed, StatusProposed},
}

// CanTransition reports whether a distribution may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

type CreateRequest struct {
	Name         string
	Type         string
	TokenAddress string
	TokenSymbol  string
	Entries      []validator.EntryCandidate
	CreatedBy    string
}

// Metadata describes a distribution whose entries come from a CSV upload.
type Metadata struct {
	Name         string
	Type         string
	TokenAddress string
	TokenSymbol  string
	CreatedBy    string
}

type DistributionDetails struct {
	repository.Distribution
	Entries  []repository.Entry    `json:"entries"`
	AuditLog []repository.AuditLog `json:"auditLog"`
}

type ProposalResult struct {
	DistributionID string `json:"distributionId"`
	SafeTxHash     string `json:"safeTxHash"`
	Status         string `json:"status"`
}

type ExecutionResult struct {
	DistributionID string `json:"distributionId"`
	SafeTxHash     string `json:"safeTxHash"`
	TxHash         string `json:"txHash"`
	Status         string `json:"status"`
}

type ReconcileResult struct {
	Checked  int `json:"checked"`
	Executed int `json:"executed"`
	Reverted int `json:"reverted"`
}

type Stats struct {
	TotalDistributions int            `json:"totalDistributions"`
	TotalRecipients    int            `json:"totalRecipients"`
	ByStatus           map[string]int `json:"byStatus"`
	ByType             map[string]int `json:"byType"`
}
