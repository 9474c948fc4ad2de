package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAddress error = errors.New("invalid ethereum address")

var addressPattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{40}$`)

// IsValidAddress reports whether address is 40 hex digits with an optional 0x prefix.
// All-lower and all-upper digits are accepted as is; mixed case must carry a valid
// EIP-55 checksum.
func IsValidAddress(address string) bool {
	if !addressPattern.MatchString(address) {
		return false
	}

	digits := strings.TrimPrefix(address, "0x")
	mixed := strings.ContainsAny(digits, "abcdef") && strings.ContainsAny(digits, "ABCDEF")
	if !mixed {
		return true
	}

	return common.HexToAddress(digits).Hex() == "0x"+digits
}

// NormalizeAddress returns the checksummed form of a well-formed address.
func NormalizeAddress(address string) (string, error) {
	if !IsValidAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address).Hex(), nil
}
