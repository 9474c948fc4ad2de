package safe

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const distributorABIJSON = `[
	{
		"type": "function",
		"name": "batchDistribute",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "token", "type": "address"},
			{"name": "transfers", "type": "tuple[]", "components": [
				{"name": "recipient", "type": "address"},
				{"name": "amount", "type": "uint256"}
			]},
			{"name": "distributionType", "type": "string"}
		],
		"outputs": [{"name": "", "type": "bytes32"}]
	}
]`

const safeABIJSON = `[
	{
		"type": "function",
		"name": "getOwners",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "address[]"}]
	},
	{
		"type": "function",
		"name": "getThreshold",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "nonce",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "execTransaction",
		"stateMutability": "payable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "value", "type": "uint256"},
			{"name": "data", "type": "bytes"},
			{"name": "operation", "type": "uint8"},
			{"name": "safeTxGas", "type": "uint256"},
			{"name": "baseGas", "type": "uint256"},
			{"name": "gasPrice", "type": "uint256"},
			{"name": "gasToken", "type": "address"},
			{"name": "refundReceiver", "type": "address"},
			{"name": "signatures", "type": "bytes"}
		],
		"outputs": [{"name": "success", "type": "bool"}]
	}
]`

var (
	// DistributorABI describes the batch distributor contract the Safe calls.
	DistributorABI = mustParseABI(distributorABIJSON)
	// SafeABI is the subset of the Safe contract used by the gateway.
	SafeABI = mustParseABI(safeABIJSON)
)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}
