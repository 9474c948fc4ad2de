package db

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrReadOnly = errors.New("write in read-only transaction")
)

// Txn is a view over the ordered key space. Writes made through it become
// visible to other transactions only once the surrounding Update returns nil.
type Txn interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	// Scan calls fn for every key with the given prefix in ascending byte order.
	Scan(prefix string, fn func(key string, value []byte) error) error
}
