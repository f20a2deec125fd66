package database

import (
	"context"

	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Transactor runs a function inside one database transaction.
type Transactor struct {
	db     *sqlx.DB
	logger logger.ZapLogger
}

func NewTransactor(db *sqlx.DB, log logger.ZapLogger) *Transactor {
	return &Transactor{db: db, logger: log}
}

// Execute begins a transaction, runs fn and commits. If fn fails the
// transaction is rolled back and fn's error is returned as is. A panic in fn
// also rolls back before it propagates.
func (t *Transactor) Execute(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			t.logger.Error("Failed to roll back transaction", zap.Error(rbErr), zap.NamedError("cause", err))
		} else {
			t.logger.Warn("Transaction rolled back", zap.Error(err))
		}
		return err
	}

	return tx.Commit()
}
