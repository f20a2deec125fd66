// Package systemid hands out surrogate keys for tables that have no native
// auto-numbering. The last issued key lives in one AUTO_KEYS row per
// namespace; a writer reads it, inserts its record with last+1 and advances
// the counter, all inside the same transaction.
//
// Concurrent writers are serialized by exclusive table locks taken before the
// counter is read, so the issued keys are consecutive with no duplicates.
package systemid

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const (
	// DefaultNamespace is shared by work order resources and catalog items.
	DefaultNamespace = "SRISYSID"

	CounterTable = "AUTO_KEYS"
)

type Allocator struct {
	namespace string
	locker    database.TableLocker
}

func NewAllocator(locker database.TableLocker) *Allocator {
	return NewNamespaceAllocator(DefaultNamespace, locker)
}

func NewNamespaceAllocator(namespace string, locker database.TableLocker) *Allocator {
	return &Allocator{namespace: namespace, locker: locker}
}

func (a *Allocator) Namespace() string {
	return a.namespace
}

// LastSystemID returns the last issued id. ok is false when the counter row
// for the namespace does not exist.
func (a *Allocator) LastSystemID(ctx context.Context, tx *sqlx.Tx) (id string, ok bool, err error) {
	err = tx.GetContext(ctx, &id,
		`select Last_Id as systemId from AUTO_KEYS where Table_Id = @tableId`,
		sql.Named("tableId", a.namespace))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return strings.TrimSpace(id), true, nil
}

// IncrementLastSystemID advances the counter by one. It must be the last
// statement before commit in any writer that used LastSystemID.
func (a *Allocator) IncrementLastSystemID(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE AUTO_KEYS SET LAST_ID = LAST_ID + 1 WHERE TABLE_ID = @tableId`,
		sql.Named("tableId", a.namespace))
	return err
}

// Next locks the destination table and the counter table, then returns the id
// the new record in table should use. The counter itself is not advanced.
func (a *Allocator) Next(ctx context.Context, tx *sqlx.Tx, table string) (string, error) {
	if err := a.locker.LockTable(ctx, tx, table); err != nil {
		return "", err
	}
	if err := a.locker.LockTable(ctx, tx, CounterTable); err != nil {
		return "", err
	}

	last, ok, err := a.LastSystemID(ctx, tx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", model.ErrAllocationUnavailable, a.namespace)
	}

	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse last system id %q: %w", last, err)
	}
	return strconv.FormatInt(n+1, 10), nil
}
