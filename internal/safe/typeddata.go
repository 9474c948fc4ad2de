package safe

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

var safeTxTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"SafeTx": {
		{Name: "to", Type: "address"},
		{Name: "value", Type: "uint256"},
		{Name: "data", Type: "bytes"},
		{Name: "operation", Type: "uint8"},
		{Name: "safeTxGas", Type: "uint256"},
		{Name: "baseGas", Type: "uint256"},
		{Name: "gasPrice", Type: "uint256"},
		{Name: "gasToken", Type: "address"},
		{Name: "refundReceiver", Type: "address"},
		{Name: "nonce", Type: "uint256"},
	},
}

// TransactionHash computes the EIP-712 hash a Safe owner signs for tx.
func TransactionHash(chainID *big.Int, safeAddress common.Address, tx Transaction) (common.Hash, error) {
	data := tx.Data
	if data == nil {
		data = []byte{}
	}

	typedData := apitypes.TypedData{
		Types:       safeTxTypes,
		PrimaryType: "SafeTx",
		Domain: apitypes.TypedDataDomain{
			ChainId:           (*math.HexOrDecimal256)(chainID),
			VerifyingContract: safeAddress.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"to":             tx.To.Hex(),
			"value":          orZero(tx.Value),
			"data":           data,
			"operation":      new(big.Int).SetUint64(uint64(tx.Operation)),
			"safeTxGas":      orZero(tx.SafeTxGas),
			"baseGas":        orZero(tx.BaseGas),
			"gasPrice":       orZero(tx.GasPrice),
			"gasToken":       tx.GasToken.Hex(),
			"refundReceiver": tx.RefundReceiver.Hex(),
			"nonce":          orZero(tx.Nonce),
		},
	}

	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return common.Hash{}, fmt.Errorf("hash safe transaction: %w", err)
	}
	return common.BytesToHash(hash), nil
}

func orZero(n *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return n
}
