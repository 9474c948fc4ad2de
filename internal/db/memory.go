package db

import (
	"context"
	"strings"
	"sync"

	"github.com/google/btree"
)

const btreeDegree = 32

type record struct {
	key   string
	value []byte
}

var _ btree.Item = record{}

func (r record) Less(than btree.Item) bool {
	return r.key < than.(record).key
}

// MemoryDB keeps records in an ordered B-tree. Updates run against a
// copy-on-write clone that replaces the live tree only when fn succeeds.
type MemoryDB struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		tree: btree.New(btreeDegree),
	}
}

func (m *MemoryDB) View(ctx context.Context, fn func(Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(&memTxn{tree: m.tree, readOnly: true})
}

func (m *MemoryDB) Update(ctx context.Context, fn func(Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	staged := m.tree.Clone()
	if err := fn(&memTxn{tree: staged}); err != nil {
		return err
	}

	m.tree = staged
	return nil
}

type memTxn struct {
	tree     *btree.BTree
	readOnly bool
}

func (t *memTxn) Get(key string) ([]byte, error) {
	item := t.tree.Get(record{key: key})
	if item == nil {
		return nil, ErrNotFound
	}
	return clone(item.(record).value), nil
}

func (t *memTxn) Put(key string, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.tree.ReplaceOrInsert(record{key: key, value: clone(value)})
	return nil
}

func (t *memTxn) Delete(key string) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.tree.Delete(record{key: key})
	return nil
}

func (t *memTxn) Scan(prefix string, fn func(key string, value []byte) error) error {
	var matched []record
	t.tree.AscendGreaterOrEqual(record{key: prefix}, func(item btree.Item) bool {
		r := item.(record)
		if !strings.HasPrefix(r.key, prefix) {
			return false
		}
		matched = append(matched, r)
		return true
	})

	for _, r := range matched {
		if err := fn(r.key, clone(r.value)); err != nil {
			return err
		}
	}
	return nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
