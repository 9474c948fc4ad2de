package repository

import (
	"context"

	"loopdrop/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	View(ctx context.Context, fn func(db.Txn) error) error
	Update(ctx context.Context, fn func(db.Txn) error) error
}
