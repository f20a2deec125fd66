package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/dbtest"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransactor(t *testing.T) (*database.Transactor, *sqlx.DB) {
	db := dbtest.NewDB(t)
	dbtest.SeedCounter(t, db, "SRISYSID", 10)
	return database.NewTransactor(db, logger.NewNop()), db
}

func bump(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, `UPDATE AUTO_KEYS SET Last_Id = Last_Id + 1 WHERE Table_Id = 'SRISYSID'`)
	return err
}

func TestExecute_Commits(t *testing.T) {
	txr, db := newTestTransactor(t)
	ctx := context.Background()

	require.NoError(t, txr.Execute(ctx, func(tx *sqlx.Tx) error { return bump(ctx, tx) }))
	assert.Equal(t, int64(11), dbtest.Counter(t, db, "SRISYSID"))
}

func TestExecute_ErrorRollsBackAndIsReturnedUnchanged(t *testing.T) {
	txr, db := newTestTransactor(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := txr.Execute(ctx, func(tx *sqlx.Tx) error {
		require.NoError(t, bump(ctx, tx))
		return boom
	})

	assert.Same(t, boom, err)
	assert.Equal(t, int64(10), dbtest.Counter(t, db, "SRISYSID"))
}

func TestExecute_PanicRollsBackAndReleasesConnection(t *testing.T) {
	txr, db := newTestTransactor(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = txr.Execute(ctx, func(tx *sqlx.Tx) error {
			require.NoError(t, bump(ctx, tx))
			var m map[string]int
			m["x"] = 1
			return nil
		})
	})

	// The pool holds one connection; a leaked transaction would block here.
	deadline, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, txr.Execute(deadline, func(tx *sqlx.Tx) error { return nil }))

	assert.Equal(t, int64(10), dbtest.Counter(t, db, "SRISYSID"))
	assert.Equal(t, 0, db.Stats().InUse)
}
