package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is a single key-value row.
type Record struct {
	Key   string `gorm:"column:record_key;primaryKey;size:512"`
	Value []byte `gorm:"column:value;not null"`
}

func (Record) TableName() string {
	return "kv_records"
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Migrate creates the key-value table and seeds each counter key with "0"
// unless it already exists. Locking reads of a seeded counter serialize
// writers that would otherwise all observe a missing row.
func (p *PostgresDB) Migrate(counters ...string) error {
	if err := p.MigrateTable(&Record{}); err != nil {
		return err
	}
	if len(counters) == 0 {
		return nil
	}

	seeds := make([]Record, len(counters))
	for i, key := range counters {
		seeds[i] = Record{Key: key, Value: []byte("0")}
	}

	err := p.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoNothing: true,
	}).Create(&seeds).Error
	if err != nil {
		return fmt.Errorf("failed to seed counters: %w", err)
	}
	return nil
}

func (p *PostgresDB) View(ctx context.Context, fn func(Txn) error) error {
	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgTxn{db: tx, readOnly: true})
	})
}

// Update runs fn in a database transaction. Reads inside it lock the rows
// they touch until commit.
func (p *PostgresDB) Update(ctx context.Context, fn func(Txn) error) error {
	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgTxn{db: tx})
	})
}

type pgTxn struct {
	db       *gorm.DB
	readOnly bool
}

func (t *pgTxn) Get(key string) ([]byte, error) {
	query := t.db
	if !t.readOnly {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rec Record
	err := query.Where("record_key = ?", key).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting record %q: %w", key, err)
	}
	return rec.Value, nil
}

func (t *pgTxn) Put(key string, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}

	err := t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Record{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("putting record %q: %w", key, err)
	}
	return nil
}

func (t *pgTxn) Delete(key string) error {
	if t.readOnly {
		return ErrReadOnly
	}

	err := t.db.Where("record_key = ?", key).Delete(&Record{}).Error
	if err != nil {
		return fmt.Errorf("deleting record %q: %w", key, err)
	}
	return nil
}

func (t *pgTxn) Scan(prefix string, fn func(key string, value []byte) error) error {
	var recs []Record
	err := t.db.
		Where("record_key LIKE ?", escapeLike(prefix)+"%").
		Order(`record_key COLLATE "C"`).
		Find(&recs).Error
	if err != nil {
		return fmt.Errorf("scanning prefix %q: %w", prefix, err)
	}

	for _, rec := range recs {
		if err := fn(rec.Key, rec.Value); err != nil {
			return err
		}
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
