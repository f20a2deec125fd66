package database

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
)

// TableLocker takes an exclusive lock on a whole table for the lifetime of tx.
type TableLocker interface {
	LockTable(ctx context.Context, tx *sqlx.Tx, table string) error
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// TabLockX locks with a SQL Server TABLOCKX hint. The lock is held until the
// transaction commits or rolls back.
type TabLockX struct{}

func (TabLockX) LockTable(ctx context.Context, tx *sqlx.Tx, table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	rows, err := tx.QueryContext(ctx, "SELECT TOP 1 * FROM "+table+" WITH (TABLOCKX)")
	if err != nil {
		return fmt.Errorf("lock table %s: %w", table, err)
	}
	return rows.Close()
}
