package validator

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
)

var (
	ErrInvalidAmount     error = errors.New("invalid integer")
	ErrNonPositiveAmount error = errors.New("amount must be greater than zero")
	ErrAmountOverflow    error = errors.New("amount exceeds uint256 range")
)

const maxAmountBits = 256

var amountPattern = regexp.MustCompile(`^-?[0-9]+$`)

// ParseAmount parses a base-10 token amount in its smallest unit. Only ASCII
// digits are accepted; a leading minus is parsed so that it can be reported
// as non-positive.
func ParseAmount(amount string) (*big.Int, error) {
	if !amountPattern.MatchString(amount) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	n, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	if n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNonPositiveAmount, n.String())
	}

	if n.BitLen() > maxAmountBits {
		return nil, ErrAmountOverflow
	}

	return n, nil
}

// SumAmounts adds up decimal amounts without loss of precision.
func SumAmounts(amounts []string) (*big.Int, error) {
	total := new(big.Int)
	for i, amount := range amounts {
		n, err := ParseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("amount at index %d: %w", i, err)
		}
		total.Add(total, n)
	}
	return total, nil
}
