package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

const DefaultReceiptWorkers = 8

type ReceiptService struct {
	client EthClient
	pool   pond.ResultPool[*ReceiptResult]
}

func NewReceiptService(ethClient EthClient, workers int) *ReceiptService {
	if workers <= 0 {
		workers = DefaultReceiptWorkers
	}
	return &ReceiptService{
		client: ethClient,
		pool:   pond.NewResultPool[*ReceiptResult](workers),
	}
}

// FetchReceipts looks up the receipts of the given transactions on the worker
// pool. Results keep the order of hashes. Transactions that are not mined yet
// are left out without an error. Lookup failures are joined into the returned
// error next to the receipts that could be fetched.
func (s *ReceiptService) FetchReceipts(ctx context.Context, hashes []string) ([]*Receipt, error) {
	tasks := make([]pond.Result[*ReceiptResult], 0, len(hashes))
	for _, hashStr := range hashes {
		tasks = append(tasks, s.pool.Submit(func() *ReceiptResult {
			res := s.getReceipt(ctx, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching receipt %q: %w", hashStr, res.Error)
			}
			return res
		}))
	}

	var receipts []*Receipt
	var aggrErr error
	for _, task := range tasks {
		result, err := task.Wait()
		if err != nil {
			aggrErr = errors.Join(aggrErr, err)
			continue
		}
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		if result.Receipt != nil {
			receipts = append(receipts, result.Receipt)
		}
	}

	return receipts, aggrErr
}

// Stop waits for running lookups and releases the workers.
func (s *ReceiptService) Stop() {
	s.pool.StopAndWait()
}

func (s *ReceiptService) getReceipt(ctx context.Context, hash common.Hash) *ReceiptResult {
	if err := ctx.Err(); err != nil {
		return &ReceiptResult{nil, err}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if errors.Is(err, geth.NotFound) {
		return &ReceiptResult{nil, nil}
	}
	if err != nil {
		return &ReceiptResult{nil, err}
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &ReceiptResult{
		Receipt: &Receipt{
			TransactionHash: hash.Hex(),
			Status:          receipt.Status,
			BlockHash:       receipt.BlockHash.Hex(),
			BlockNumber:     blockNumber,
			GasUsed:         receipt.GasUsed,
			LogsCount:       len(receipt.Logs),
		},
		Error: nil,
	}
}
