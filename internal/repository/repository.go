package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"loopdrop/internal/db"
)

var (
	ErrNotFound           error = errors.New("record not found")
	ErrAlreadyExists      error = errors.New("record already exists")
	ErrDuplicateRecipient error = errors.New("duplicate recipient")
	ErrImmutableField     error = errors.New("field is already set")
)

// StatusConflictError is returned when a status transition observes a
// status other than the expected one.
type StatusConflictError struct {
	ID       string
	Expected string
	Actual   string
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("distribution %s has status %q, expected %q", e.ID, e.Actual, e.Expected)
}

const (
	prefixDistribution = "dist/"
	prefixCreatedAt    = "dist-time/"
	prefixStatus       = "dist-status/"
	prefixSafeTxHash   = "dist-safe/"
	prefixExecTxHash   = "dist-exec/"
	prefixEntry        = "entry/"
	prefixEntryAddress = "entry-addr/"
	prefixAudit        = "audit/"
	prefixAuditByDist  = "audit-dist/"

	seqEntry = "seq/entry"
	seqAudit = "seq/audit"
)

// Counters lists the sequence keys a storage backend should create up front.
func Counters() []string {
	return []string{seqEntry, seqAudit}
}

type DistributionRepository struct {
	db  Storage
	now func() time.Time
}

func NewDistributionRepository(storage Storage) *DistributionRepository {
	return &DistributionRepository{
		db:  storage,
		now: time.Now,
	}
}

// WithClock replaces the clock used for audit timestamps.
func (r *DistributionRepository) WithClock(now func() time.Time) *DistributionRepository {
	r.now = now
	return r
}

// CreateDistribution writes the distribution, its entries and an optional
// audit record in one transaction.
func (r *DistributionRepository) CreateDistribution(ctx context.Context, d Distribution, entries []Entry, audit *AuditLog) ([]Entry, error) {
	stored := make([]Entry, 0, len(entries))
	err := r.db.Update(ctx, func(txn db.Txn) error {
		stored = stored[:0]
		if err := insertDistribution(txn, d); err != nil {
			return err
		}

		for _, e := range entries {
			e.DistributionID = d.ID
			saved, err := insertEntry(txn, e)
			if err != nil {
				return err
			}
			stored = append(stored, saved)
		}

		if audit != nil {
			a := *audit
			a.DistributionID = &d.ID
			if _, err := r.insertAuditLog(txn, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create distribution: %w", err)
	}

	return stored, nil
}

func (r *DistributionRepository) InsertDistribution(ctx context.Context, d Distribution) error {
	err := r.db.Update(ctx, func(txn db.Txn) error {
		return insertDistribution(txn, d)
	})
	if err != nil {
		return fmt.Errorf("insert distribution: %w", err)
	}
	return nil
}

// InsertEntry assigns the next store-wide entry id.
func (r *DistributionRepository) InsertEntry(ctx context.Context, e Entry) (Entry, error) {
	var saved Entry
	err := r.db.Update(ctx, func(txn db.Txn) error {
		var err error
		saved, err = insertEntry(txn, e)
		return err
	})
	if err != nil {
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return saved, nil
}

func (r *DistributionRepository) InsertAuditLog(ctx context.Context, a AuditLog) (AuditLog, error) {
	var saved AuditLog
	err := r.db.Update(ctx, func(txn db.Txn) error {
		var err error
		saved, err = r.insertAuditLog(txn, a)
		return err
	})
	if err != nil {
		return AuditLog{}, fmt.Errorf("insert audit log: %w", err)
	}
	return saved, nil
}

func (r *DistributionRepository) UpdateStatus(ctx context.Context, u StatusUpdate) (Distribution, error) {
	var updated Distribution
	err := r.db.Update(ctx, func(txn db.Txn) error {
		d, err := getDistribution(txn, u.ID)
		if err != nil {
			return err
		}

		if d.Status != u.From {
			return &StatusConflictError{ID: d.ID, Expected: u.From, Actual: d.Status}
		}

		if u.SafeTxHash != nil {
			if err := setHashOnce(txn, prefixSafeTxHash, d.ID, &d.SafeTxHash, *u.SafeTxHash); err != nil {
				return fmt.Errorf("safe_tx_hash: %w", err)
			}
		}

		if u.ExecutedTxHash != nil {
			if err := setHashOnce(txn, prefixExecTxHash, d.ID, &d.ExecutedTxHash, *u.ExecutedTxHash); err != nil {
				return fmt.Errorf("executed_tx_hash: %w", err)
			}
		}

		if d.Status != u.To {
			if err := txn.Delete(statusKey(d.Status, d.ID)); err != nil {
				return err
			}
			if err := txn.Put(statusKey(u.To, d.ID), []byte(d.ID)); err != nil {
				return err
			}
			d.Status = u.To
		}

		d.Version++
		if err := putJSON(txn, prefixDistribution+d.ID, d); err != nil {
			return err
		}

		if u.Audit != nil {
			a := *u.Audit
			a.DistributionID = &d.ID
			if _, err := r.insertAuditLog(txn, a); err != nil {
				return err
			}
		}

		updated = d
		return nil
	})
	if err != nil {
		return Distribution{}, fmt.Errorf("update status: %w", err)
	}
	return updated, nil
}

func (r *DistributionRepository) GetDistribution(ctx context.Context, id string) (Distribution, error) {
	var d Distribution
	err := r.db.View(ctx, func(txn db.Txn) error {
		var err error
		d, err = getDistribution(txn, id)
		return err
	})
	if err != nil {
		return Distribution{}, fmt.Errorf("get distribution: %w", err)
	}
	return d, nil
}

func (r *DistributionRepository) GetDistributionBySafeTxHash(ctx context.Context, hash string) (Distribution, error) {
	var d Distribution
	err := r.db.View(ctx, func(txn db.Txn) error {
		id, err := txn.Get(prefixSafeTxHash + strings.ToLower(hash))
		if err != nil {
			return notFound(err)
		}
		d, err = getDistribution(txn, string(id))
		return err
	})
	if err != nil {
		return Distribution{}, fmt.Errorf("get distribution by safe tx hash: %w", err)
	}
	return d, nil
}

// ListDistributions sorts by creation time, newest first, and then applies
// offset and limit. It also returns the total count.
func (r *DistributionRepository) ListDistributions(ctx context.Context, limit, offset int) ([]Distribution, int, error) {
	var (
		page  []Distribution
		total int
	)
	err := r.db.View(ctx, func(txn db.Txn) error {
		ids, err := scanValues(txn, prefixCreatedAt)
		if err != nil {
			return err
		}
		slices.Reverse(ids)
		total = len(ids)

		page, err = loadDistributions(txn, paginate(ids, limit, offset))
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list distributions: %w", err)
	}
	return page, total, nil
}

// AllDistributions returns every distribution, newest first.
func (r *DistributionRepository) AllDistributions(ctx context.Context) ([]Distribution, error) {
	distributions, _, err := r.ListDistributions(ctx, -1, 0)
	return distributions, err
}

func (r *DistributionRepository) ListDistributionsByStatus(ctx context.Context, status string) ([]Distribution, error) {
	var distributions []Distribution
	err := r.db.View(ctx, func(txn db.Txn) error {
		ids, err := scanValues(txn, prefixStatus+status+"/")
		if err != nil {
			return err
		}
		distributions, err = loadDistributions(txn, ids)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list distributions by status: %w", err)
	}
	return distributions, nil
}

// ListEntries returns the entries of a distribution in insertion order.
func (r *DistributionRepository) ListEntries(ctx context.Context, distributionID string) ([]Entry, error) {
	entries := []Entry{}
	err := r.db.View(ctx, func(txn db.Txn) error {
		return txn.Scan(prefixEntry+distributionID+"/", func(_ string, value []byte) error {
			var e Entry
			if err := json.Unmarshal(value, &e); err != nil {
				return fmt.Errorf("decode entry: %w", err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListAuditLog returns the audit trail of one distribution, newest first.
func (r *DistributionRepository) ListAuditLog(ctx context.Context, distributionID string) ([]AuditLog, error) {
	var logs []AuditLog
	err := r.db.View(ctx, func(txn db.Txn) error {
		ids, err := scanValues(txn, prefixAuditByDist+distributionID+"/")
		if err != nil {
			return err
		}
		slices.Reverse(ids)
		logs, err = loadAuditLogs(txn, ids)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return logs, nil
}

// ListAllAuditLogs pages through the global audit log, newest first.
func (r *DistributionRepository) ListAllAuditLogs(ctx context.Context, limit, offset int) ([]AuditLog, int, error) {
	var (
		logs  []AuditLog
		total int
	)
	err := r.db.View(ctx, func(txn db.Txn) error {
		var ids []string
		err := txn.Scan(prefixAudit, func(key string, _ []byte) error {
			ids = append(ids, strings.TrimPrefix(key, prefixAudit))
			return nil
		})
		if err != nil {
			return err
		}
		slices.Reverse(ids)
		total = len(ids)

		logs, err = loadAuditLogs(txn, paginate(ids, limit, offset))
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list all audit logs: %w", err)
	}
	return logs, total, nil
}

func insertDistribution(txn db.Txn, d Distribution) error {
	if d.ID == "" {
		return errors.New("distribution id is empty")
	}

	_, err := txn.Get(prefixDistribution + d.ID)
	if err == nil {
		return fmt.Errorf("distribution %s: %w", d.ID, ErrAlreadyExists)
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	d.CreatedAt = d.CreatedAt.UTC()
	if err := putJSON(txn, prefixDistribution+d.ID, d); err != nil {
		return err
	}
	if err := txn.Put(createdAtKey(d.CreatedAt, d.ID), []byte(d.ID)); err != nil {
		return err
	}
	return txn.Put(statusKey(d.Status, d.ID), []byte(d.ID))
}

func insertEntry(txn db.Txn, e Entry) (Entry, error) {
	if _, err := getDistribution(txn, e.DistributionID); err != nil {
		return Entry{}, fmt.Errorf("entry references distribution %q: %w", e.DistributionID, err)
	}

	addrKey := prefixEntryAddress + e.DistributionID + "/" + strings.ToLower(e.RecipientAddress)
	_, err := txn.Get(addrKey)
	if err == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrDuplicateRecipient, e.RecipientAddress)
	}
	if !errors.Is(err, db.ErrNotFound) {
		return Entry{}, err
	}

	id, err := nextSequence(txn, seqEntry)
	if err != nil {
		return Entry{}, err
	}
	e.ID = id
	if e.Status == "" {
		e.Status = EntryStatusPending
	}

	if err := putJSON(txn, prefixEntry+e.DistributionID+"/"+sequenceKey(id), e); err != nil {
		return Entry{}, err
	}
	if err := txn.Put(addrKey, []byte(sequenceKey(id))); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (r *DistributionRepository) insertAuditLog(txn db.Txn, a AuditLog) (AuditLog, error) {
	if a.DistributionID != nil {
		if _, err := getDistribution(txn, *a.DistributionID); err != nil {
			return AuditLog{}, fmt.Errorf("audit log references distribution %q: %w", *a.DistributionID, err)
		}
	}

	id, err := nextSequence(txn, seqAudit)
	if err != nil {
		return AuditLog{}, err
	}
	a.ID = id
	a.Timestamp = r.now().UTC()
	if a.UserAddress == "" {
		a.UserAddress = SystemUser
	}

	if err := putJSON(txn, prefixAudit+sequenceKey(id), a); err != nil {
		return AuditLog{}, err
	}
	if a.DistributionID != nil {
		key := prefixAuditByDist + *a.DistributionID + "/" + sequenceKey(id)
		if err := txn.Put(key, []byte(sequenceKey(id))); err != nil {
			return AuditLog{}, err
		}
	}
	return a, nil
}

func getDistribution(txn db.Txn, id string) (Distribution, error) {
	var d Distribution
	value, err := txn.Get(prefixDistribution + id)
	if err != nil {
		return d, notFound(err)
	}
	if err := json.Unmarshal(value, &d); err != nil {
		return d, fmt.Errorf("decode distribution %s: %w", id, err)
	}
	return d, nil
}

func loadDistributions(txn db.Txn, ids []string) ([]Distribution, error) {
	distributions := make([]Distribution, 0, len(ids))
	for _, id := range ids {
		d, err := getDistribution(txn, id)
		if err != nil {
			return nil, err
		}
		distributions = append(distributions, d)
	}
	return distributions, nil
}

func loadAuditLogs(txn db.Txn, ids []string) ([]AuditLog, error) {
	logs := make([]AuditLog, 0, len(ids))
	for _, id := range ids {
		value, err := txn.Get(prefixAudit + id)
		if err != nil {
			return nil, notFound(err)
		}
		var a AuditLog
		if err := json.Unmarshal(value, &a); err != nil {
			return nil, fmt.Errorf("decode audit log %s: %w", id, err)
		}
		logs = append(logs, a)
	}
	return logs, nil
}

// setHashOnce stores a transaction hash on the distribution and in the
// lookup index under prefix. A hash that is already set may only be written
// again with the same value.
func setHashOnce(txn db.Txn, prefix, id string, field **string, hash string) error {
	if *field != nil {
		if strings.EqualFold(**field, hash) {
			return nil
		}
		return ErrImmutableField
	}

	key := prefix + strings.ToLower(hash)
	owner, err := txn.Get(key)
	if err == nil && string(owner) != id {
		return fmt.Errorf("hash %s: %w", hash, ErrAlreadyExists)
	}
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return err
	}

	if err := txn.Put(key, []byte(id)); err != nil {
		return err
	}
	*field = &hash
	return nil
}

func nextSequence(txn db.Txn, key string) (uint64, error) {
	var current uint64
	value, err := txn.Get(key)
	switch {
	case err == nil:
		current, err = strconv.ParseUint(string(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse sequence %s: %w", key, err)
		}
	case !errors.Is(err, db.ErrNotFound):
		return 0, err
	}

	next := current + 1
	if err := txn.Put(key, []byte(strconv.FormatUint(next, 10))); err != nil {
		return 0, err
	}
	return next, nil
}

func scanValues(txn db.Txn, prefix string) ([]string, error) {
	var values []string
	err := txn.Scan(prefix, func(_ string, value []byte) error {
		values = append(values, string(value))
		return nil
	})
	return values, err
}

func putJSON(txn db.Txn, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return txn.Put(key, value)
}

func notFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// paginate returns ids[offset:offset+limit]. A negative limit means no limit.
func paginate(ids []string, limit, offset int) []string {
	offset = max(offset, 0)
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit >= 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}

func sequenceKey(n uint64) string {
	return fmt.Sprintf("%020d", n)
}

func createdAtKey(t time.Time, id string) string {
	return fmt.Sprintf("%s%020d/%s", prefixCreatedAt, t.UnixNano(), id)
}

func statusKey(status, id string) string {
	return prefixStatus + status + "/" + id
}
