package safe

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"

	"loopdrop/internal/validator"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrUnknownTransaction error = errors.New("unknown safe transaction")
	ErrThresholdNotMet    error = errors.New("signature threshold not met")
	ErrNotOwner           error = errors.New("signer is not a safe owner")
	ErrInvalidSignature   error = errors.New("invalid signature")
	ErrNotSubmitted       error = errors.New("transaction not submitted")
)

type Config struct {
	SafeAddress common.Address
	ChainID     *big.Int
	PrivateKey  *ecdsa.PrivateKey
}

// Gateway builds, signs and executes Safe multisig transactions. Signed
// transactions are kept in memory until they are executed.
type Gateway struct {
	client ChainClient
	safe   common.Address
	chain  *big.Int
	key    *ecdsa.PrivateKey
	signer common.Address

	mu      sync.Mutex
	pending map[common.Hash]*pendingTx
}

func NewGateway(client ChainClient, cfg Config) *Gateway {
	return &Gateway{
		client:  client,
		safe:    cfg.SafeAddress,
		chain:   cfg.ChainID,
		key:     cfg.PrivateKey,
		signer:  crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
		pending: make(map[common.Hash]*pendingTx),
	}
}

// SignerAddress is the owner address of the configured key.
func (g *Gateway) SignerAddress() string {
	return g.signer.Hex()
}

// EncodeBatchTransfer packs the batchDistribute call for the distributor contract.
func (g *Gateway) EncodeBatchTransfer(token string, transfers []TransferRequest, distributionType string) ([]byte, error) {
	if !validator.IsValidAddress(token) {
		return nil, fmt.Errorf("token %q: %w", token, validator.ErrInvalidAddress)
	}

	args := make([]transfer, 0, len(transfers))
	for i, t := range transfers {
		if !validator.IsValidAddress(t.Recipient) {
			return nil, fmt.Errorf("transfer %d recipient %q: %w", i, t.Recipient, validator.ErrInvalidAddress)
		}
		amount, err := validator.ParseAmount(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transfer %d amount: %w", i, err)
		}
		args = append(args, transfer{
			Recipient: common.HexToAddress(t.Recipient),
			Amount:    amount,
		})
	}

	data, err := DistributorABI.Pack("batchDistribute", common.HexToAddress(token), args, distributionType)
	if err != nil {
		return nil, fmt.Errorf("pack batchDistribute: %w", err)
	}
	return data, nil
}

// TotalAmount is the exact sum of all transfer amounts.
func (g *Gateway) TotalAmount(transfers []TransferRequest) (*big.Int, error) {
	amounts := make([]string, len(transfers))
	for i, t := range transfers {
		amounts[i] = t.Amount
	}
	return validator.SumAmounts(amounts)
}

// CreateAndSignTransaction wraps calldata for target into a Safe transaction
// at the current Safe nonce and signs its hash with the configured owner key.
func (g *Gateway) CreateAndSignTransaction(ctx context.Context, data []byte, target string) (SignedTransaction, error) {
	if !validator.IsValidAddress(target) {
		return SignedTransaction{}, fmt.Errorf("target %q: %w", target, validator.ErrInvalidAddress)
	}

	nonce, err := g.callUint(ctx, "nonce")
	if err != nil {
		return SignedTransaction{}, err
	}

	tx := Transaction{
		To:        common.HexToAddress(target),
		Value:     new(big.Int),
		Data:      data,
		Operation: OperationCall,
		SafeTxGas: new(big.Int),
		BaseGas:   new(big.Int),
		GasPrice:  new(big.Int),
		Nonce:     nonce,
	}

	hash, err := TransactionHash(g.chain, g.safe, tx)
	if err != nil {
		return SignedTransaction{}, err
	}

	signature, err := crypto.Sign(hash.Bytes(), g.key)
	if err != nil {
		return SignedTransaction{}, fmt.Errorf("sign safe transaction: %w", err)
	}
	signature[crypto.RecoveryIDOffset] += 27

	g.mu.Lock()
	g.pending[hash] = &pendingTx{
		tx:         tx,
		signatures: map[common.Address][]byte{g.signer: signature},
	}
	g.mu.Unlock()

	return SignedTransaction{
		Transaction: tx,
		Hash:        hash.Hex(),
		Signature:   slices.Clone(signature),
	}, nil
}

// Confirm adds an owner signature to a pending transaction.
func (g *Gateway) Confirm(ctx context.Context, safeTxHash string, signature []byte) (Confirmation, error) {
	hash := common.HexToHash(safeTxHash)

	g.mu.Lock()
	_, ok := g.pending[hash]
	g.mu.Unlock()
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrUnknownTransaction, safeTxHash)
	}

	signer, sig, err := recoverSigner(hash, signature)
	if err != nil {
		return Confirmation{}, err
	}

	owners, err := g.owners(ctx)
	if err != nil {
		return Confirmation{}, err
	}
	if !slices.Contains(owners, signer) {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrNotOwner, signer.Hex())
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.pending[hash]
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrUnknownTransaction, safeTxHash)
	}
	p.signatures[signer] = sig

	return Confirmation{
		SafeTxHash:    hash.Hex(),
		Owner:         signer.Hex(),
		Confirmations: len(p.signatures),
	}, nil
}

func (g *Gateway) GetInfo(ctx context.Context) (Info, error) {
	owners, err := g.owners(ctx)
	if err != nil {
		return Info{}, err
	}
	threshold, err := g.callUint(ctx, "getThreshold")
	if err != nil {
		return Info{}, err
	}
	nonce, err := g.callUint(ctx, "nonce")
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Address:   g.safe.Hex(),
		Owners:    make([]string, len(owners)),
		Threshold: threshold.Uint64(),
		Nonce:     nonce.Uint64(),
	}
	for i, o := range owners {
		info.Owners[i] = o.Hex()
	}
	return info, nil
}

// Execute submits execTransaction for a pending transaction once enough
// owners have signed it. Errors raised before anything is broadcast wrap
// ErrNotSubmitted and leave the transaction pending.
func (g *Gateway) Execute(ctx context.Context, safeTxHash string) (ExecutionResult, error) {
	hash := common.HexToHash(safeTxHash)

	data, err := g.prepareExecution(ctx, hash)
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("%w: %w", ErrNotSubmitted, err)
	}

	txHash, err := g.send(ctx, data)
	if err != nil {
		return ExecutionResult{}, err
	}

	g.mu.Lock()
	delete(g.pending, hash)
	g.mu.Unlock()

	return ExecutionResult{TxHash: txHash}, nil
}

// Discard forgets a pending transaction and its signatures.
func (g *Gateway) Discard(safeTxHash string) {
	g.mu.Lock()
	delete(g.pending, common.HexToHash(safeTxHash))
	g.mu.Unlock()
}

func (g *Gateway) prepareExecution(ctx context.Context, hash common.Hash) ([]byte, error) {
	g.mu.Lock()
	p, ok := g.pending[hash]
	var (
		tx         Transaction
		signatures map[common.Address][]byte
	)
	if ok {
		tx = p.tx
		signatures = make(map[common.Address][]byte, len(p.signatures))
		for owner, sig := range p.signatures {
			signatures[owner] = sig
		}
	}
	g.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransaction, hash.Hex())
	}

	owners, err := g.owners(ctx)
	if err != nil {
		return nil, err
	}
	threshold, err := g.callUint(ctx, "getThreshold")
	if err != nil {
		return nil, err
	}

	packed := packSignatures(owners, signatures)
	signed := uint64(len(packed) / crypto.SignatureLength)
	if signed < threshold.Uint64() {
		return nil, fmt.Errorf("%w: %d of %d", ErrThresholdNotMet, signed, threshold.Uint64())
	}

	data, err := SafeABI.Pack("execTransaction",
		tx.To, orZero(tx.Value), tx.Data, tx.Operation,
		orZero(tx.SafeTxGas), orZero(tx.BaseGas), orZero(tx.GasPrice),
		tx.GasToken, tx.RefundReceiver, packed,
	)
	if err != nil {
		return nil, fmt.Errorf("pack execTransaction: %w", err)
	}
	return data, nil
}

func (g *Gateway) send(ctx context.Context, data []byte) (string, error) {
	nonce, err := g.client.PendingNonceAt(ctx, g.signer)
	if err != nil {
		return "", fmt.Errorf("pending nonce: %w", err)
	}
	gasPrice, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}
	gas, err := g.client.EstimateGas(ctx, geth.CallMsg{
		From: g.signer,
		To:   &g.safe,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &g.safe,
		Value:    new(big.Int),
		Data:     data,
	})
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(g.chain), g.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := g.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return signedTx.Hash().Hex(), nil
}

func (g *Gateway) owners(ctx context.Context) ([]common.Address, error) {
	out, err := g.call(ctx, "getOwners")
	if err != nil {
		return nil, err
	}
	owners, ok := out[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("getOwners: unexpected output %T", out[0])
	}
	return owners, nil
}

func (g *Gateway) callUint(ctx context.Context, method string) (*big.Int, error) {
	out, err := g.call(ctx, method)
	if err != nil {
		return nil, err
	}
	n, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output %T", method, out[0])
	}
	return n, nil
}

func (g *Gateway) call(ctx context.Context, method string) ([]any, error) {
	data, err := SafeABI.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	raw, err := g.client.CallContract(ctx, geth.CallMsg{To: &g.safe, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	out, err := SafeABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty output", method)
	}
	return out, nil
}

// recoverSigner returns the address that produced a 65 byte signature over
// hash, together with the signature normalized to v in {27, 28}.
func recoverSigner(hash common.Hash, signature []byte) (common.Address, []byte, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, crypto.SignatureLength, len(signature))
	}

	sig := slices.Clone(signature)
	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}

	recoverable := slices.Clone(sig)
	recoverable[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(hash.Bytes(), recoverable)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), sig, nil
}

// packSignatures concatenates the signatures of current owners in ascending
// owner address order, the order execTransaction checks them in.
func packSignatures(owners []common.Address, signatures map[common.Address][]byte) []byte {
	signers := make([]common.Address, 0, len(signatures))
	for owner := range signatures {
		if slices.Contains(owners, owner) {
			signers = append(signers, owner)
		}
	}
	slices.SortFunc(signers, func(a, b common.Address) int {
		return bytes.Compare(a.Bytes(), b.Bytes())
	})

	packed := make([]byte, 0, len(signers)*crypto.SignatureLength)
	for _, s := range signers {
		packed = append(packed, signatures[s]...)
	}
	return packed
}
