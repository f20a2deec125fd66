// Package dbtest provides an in-memory SQLite database for transactional tests.
package dbtest

import (
	"context"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// NewDB opens a private in-memory database seeded with an AUTO_KEYS counter
// table. The pool is limited to one connection, so every transaction runs
// alone, the way table locks serialize writers on the real server.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	t.Cleanup(func() { db.Close() })

	db.MustExec(`CREATE TABLE AUTO_KEYS (Table_Id TEXT PRIMARY KEY, Last_Id INTEGER NOT NULL)`)
	return db
}

// SeedCounter sets the last issued id for a namespace.
func SeedCounter(t *testing.T, db *sqlx.DB, namespace string, lastID int64) {
	t.Helper()
	db.MustExec(`INSERT INTO AUTO_KEYS (Table_Id, Last_Id) VALUES (?, ?)`, namespace, lastID)
}

// Counter reads the last issued id for a namespace.
func Counter(t *testing.T, db *sqlx.DB, namespace string) int64 {
	t.Helper()
	var last int64
	require.NoError(t, db.Get(&last, `SELECT Last_Id FROM AUTO_KEYS WHERE Table_Id = ?`, namespace))
	return last
}

// Locker records lock requests instead of issuing SQL Server hints. Err, when
// set, is returned for every request.
type Locker struct {
	mu     sync.Mutex
	Tables []string
	Err    error
}

func (l *Locker) LockTable(_ context.Context, _ *sqlx.Tx, table string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Err != nil {
		return l.Err
	}
	l.Tables = append(l.Tables, table)
	return nil
}

func (l *Locker) Locked() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.Tables...)
}
