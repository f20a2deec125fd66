package systemid_test

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/dbtest"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/systemid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAllocator(t *testing.T, lastID int64) (*systemid.Allocator, *database.Transactor, *sqlx.DB, *dbtest.Locker) {
	db := dbtest.NewDB(t)
	dbtest.SeedCounter(t, db, systemid.DefaultNamespace, lastID)
	db.MustExec(`CREATE TABLE AMSRI (SRISysID INTEGER PRIMARY KEY)`)

	locker := &dbtest.Locker{}
	return systemid.NewAllocator(locker), database.NewTransactor(db, logger.NewNop()), db, locker
}

func TestAllocator_NextLocksDestinationThenCounter(t *testing.T) {
	alloc, txr, _, locker := newTestAllocator(t, 41)

	var id string
	err := txr.Execute(context.Background(), func(tx *sqlx.Tx) error {
		var err error
		id, err = alloc.Next(context.Background(), tx, "AMSRI")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, []string{"AMSRI", systemid.CounterTable}, locker.Locked())
}

func TestAllocator_NextDoesNotAdvanceCounter(t *testing.T) {
	alloc, txr, db, _ := newTestAllocator(t, 100)
	ctx := context.Background()

	err := txr.Execute(ctx, func(tx *sqlx.Tx) error {
		_, err := alloc.Next(ctx, tx, "AMSRI")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), dbtest.Counter(t, db, systemid.DefaultNamespace))
}

func TestAllocator_MissingCounterRow(t *testing.T) {
	db := dbtest.NewDB(t)
	alloc := systemid.NewNamespaceAllocator("NOSUCHKEY", &dbtest.Locker{})
	txr := database.NewTransactor(db, logger.NewNop())
	ctx := context.Background()

	err := txr.Execute(ctx, func(tx *sqlx.Tx) error {
		_, ok, err := alloc.LastSystemID(ctx, tx)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = alloc.Next(ctx, tx, "AMSRI")
		return err
	})

	assert.ErrorIs(t, err, model.ErrAllocationUnavailable)
}

func TestAllocator_LockFailureStopsAllocation(t *testing.T) {
	alloc, txr, db, locker := newTestAllocator(t, 7)
	locker.Err = errors.New("lock timeout")
	ctx := context.Background()

	err := txr.Execute(ctx, func(tx *sqlx.Tx) error {
		if _, err := alloc.Next(ctx, tx, "AMSRI"); err != nil {
			return err
		}
		return alloc.IncrementLastSystemID(ctx, tx)
	})

	assert.EqualError(t, err, "lock timeout")
	assert.Equal(t, int64(7), dbtest.Counter(t, db, systemid.DefaultNamespace))
}

func TestAllocator_RollbackLeavesCounterUnchanged(t *testing.T) {
	alloc, txr, db, _ := newTestAllocator(t, 500)
	ctx := context.Background()
	insertErr := errors.New("insert failed")

	err := txr.Execute(ctx, func(tx *sqlx.Tx) error {
		if _, err := alloc.Next(ctx, tx, "AMSRI"); err != nil {
			return err
		}
		if err := alloc.IncrementLastSystemID(ctx, tx); err != nil {
			return err
		}
		return insertErr
	})

	assert.Same(t, insertErr, err, "the original error is returned unchanged")
	assert.Equal(t, int64(500), dbtest.Counter(t, db, systemid.DefaultNamespace))
}

func TestAllocator_ConcurrentWritersGetConsecutiveIDs(t *testing.T) {
	const (
		lastID  = 1000
		writers = 25
	)
	alloc, txr, db, _ := newTestAllocator(t, lastID)
	ctx := context.Background()

	var (
		mu     sync.Mutex
		issued []int
		wg     sync.WaitGroup
	)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := txr.Execute(ctx, func(tx *sqlx.Tx) error {
				id, err := alloc.Next(ctx, tx, "AMSRI")
				if err != nil {
					return err
				}
				if _, err := tx.ExecContext(ctx, `INSERT INTO AMSRI (SRISysID) VALUES (?)`, id); err != nil {
					return err
				}
				if err := alloc.IncrementLastSystemID(ctx, tx); err != nil {
					return err
				}

				n, _ := strconv.Atoi(id)
				mu.Lock()
				issued = append(issued, n)
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sort.Ints(issued)
	expected := make([]int, writers)
	for i := range expected {
		expected[i] = lastID + 1 + i
	}
	assert.Equal(t, expected, issued)
	assert.Equal(t, int64(lastID+writers), dbtest.Counter(t, db, systemid.DefaultNamespace))

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT count(*) FROM AMSRI`))
	assert.Equal(t, writers, rows)
}
