package payload

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const (
	DefaultDistributionsLimit = 20
	DefaultAuditLogsLimit     = 50
	MaxLimit                  = 500
)

var ErrInvalidPagination error = errors.New("pagination parameters must be non-negative integers")

type Pagination struct {
	Limit  int
	Offset int
}

// ParsePagination reads limit and offset from the query. A missing or zero
// limit falls back to defaultLimit and limits above MaxLimit are capped.
func ParsePagination(values url.Values, defaultLimit int) (Pagination, error) {
	limit, err := nonNegative(values, "limit")
	if err != nil {
		return Pagination{}, err
	}
	offset, err := nonNegative(values, "offset")
	if err != nil {
		return Pagination{}, err
	}

	if limit == 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Pagination{Limit: limit, Offset: offset}, nil
}

func nonNegative(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPagination, key, raw)
	}
	return n, nil
}
