package repository

import "time"

const (
	EntryStatusPending = "pending"
	EntryStatusSuccess = "success"
	EntryStatusFailed  = "failed"

	SystemUser = "system"
)

type Distribution struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	TokenAddress    string    `json:"token_address"`
	TokenSymbol     string    `json:"token_symbol"`
	TotalRecipients int       `json:"total_recipients"`
	TotalAmount     string    `json:"total_amount"` // decimal, smallest token unit
	Status          string    `json:"status"`
	Version         uint64    `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedBy       string    `json:"created_by"`
	SafeTxHash      *string   `json:"safe_tx_hash"`
	ExecutedTxHash  *string   `json:"executed_tx_hash"`
}

type Entry struct {
	ID               uint64  `json:"id"`
	DistributionID   string  `json:"distribution_id"`
	RecipientAddress string  `json:"recipient_address"`
	Amount           string  `json:"amount"`
	Status           string  `json:"status"`
	TxHash           *string `json:"tx_hash"`
	Error            *string `json:"error"`
}

type AuditLog struct {
	ID             uint64    `json:"id"`
	DistributionID *string   `json:"distribution_id"`
	Action         string    `json:"action"`
	Details        string    `json:"details"`
	Timestamp      time.Time `json:"timestamp"`
	UserAddress    string    `json:"user_address"`
}

// StatusUpdate moves a distribution from one status to another. The update
// is rejected when the stored status is not From. Hash fields are only
// written when set and can never be changed once stored.
type StatusUpdate struct {
	ID             string
	From           string
	To             string
	SafeTxHash     *string
	ExecutedTxHash *string
	Audit          *AuditLog
}
