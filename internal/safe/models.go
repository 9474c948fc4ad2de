package safe

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	OperationCall         uint8 = 0
	OperationDelegateCall uint8 = 1
)

type TransferRequest struct {
	Recipient string
	Amount    string
}

// transfer mirrors the (address recipient, uint256 amount) tuple of batchDistribute.
type transfer struct {
	Recipient common.Address
	Amount    *big.Int
}

// Transaction is a Safe transaction before execution.
type Transaction struct {
	To             common.Address `json:"to"`
	Value          *big.Int       `json:"value"`
	Data           []byte         `json:"data"`
	Operation      uint8          `json:"operation"`
	SafeTxGas      *big.Int       `json:"safeTxGas"`
	BaseGas        *big.Int       `json:"baseGas"`
	GasPrice       *big.Int       `json:"gasPrice"`
	GasToken       common.Address `json:"gasToken"`
	RefundReceiver common.Address `json:"refundReceiver"`
	Nonce          *big.Int       `json:"nonce"`
}

type SignedTransaction struct {
	Transaction Transaction
	Hash        string
	Signature   []byte
}

type Info struct {
	Address   string   `json:"address"`
	Owners    []string `json:"owners"`
	Threshold uint64   `json:"threshold"`
	Nonce     uint64   `json:"nonce"`
}

type Confirmation struct {
	SafeTxHash    string `json:"safeTxHash"`
	Owner         string `json:"owner"`
	Confirmations int    `json:"confirmations"`
}

type ExecutionResult struct {
	TxHash string `json:"txHash"`
}

type pendingTx struct {
	tx         Transaction
	signatures map[common.Address][]byte
}
