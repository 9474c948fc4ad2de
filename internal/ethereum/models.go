package ethereum

const (
	ReceiptStatusFailed     uint64 = 0
	ReceiptStatusSuccessful uint64 = 1
)

type ReceiptResult struct {
	Receipt *Receipt
	Error   error
}

// Receipt is the mined outcome of a transaction.
type Receipt struct {
	TransactionHash string
	Status          uint64
	BlockHash       string
	BlockNumber     uint64
	GasUsed         uint64
	LogsCount       int
}

func (r *Receipt) Succeeded() bool {
	return r.Status == ReceiptStatusSuccessful
}
