package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/worktech-api/internal/auth"
	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/dbtest"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/stock"
	"github.com/fekuna/worktech-api/internal/stock/dto"
	"github.com/fekuna/worktech-api/internal/stock/usecase"
	"github.com/fekuna/worktech-api/internal/workorder"
	workorderdto "github.com/fekuna/worktech-api/internal/workorder/dto"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stockState is shared by a fake repository and its transaction-scoped copies.
type stockState struct {
	batches         []model.StockTransactionBatch
	entries         []model.StockTransactionBatchEntry
	locations       map[string]string
	locationLookups map[string]int
	entryErr        error
}

type fakeRepo struct {
	state *stockState
	tx    *sqlx.Tx
}

func (f *fakeRepo) WithTx(tx *sqlx.Tx) stock.Repository {
	return &fakeRepo{state: f.state, tx: tx}
}

// InsertBatch also writes a header row through the transaction so rollback is
// observable.
func (f *fakeRepo) InsertBatch(ctx context.Context, batch *model.StockTransactionBatch) (int64, error) {
	if _, err := f.tx.ExecContext(ctx, `INSERT INTO WMBAC (BatchDesc) VALUES (?)`, batch.BatchDescription); err != nil {
		return 0, err
	}
	f.state.batches = append(f.state.batches, *batch)
	return 42, nil
}

func (f *fakeRepo) InsertBatchEntry(_ context.Context, entry *model.StockTransactionBatchEntry) error {
	if f.state.entryErr != nil {
		return f.state.entryErr
	}
	f.state.entries = append(f.state.entries, *entry)
	return nil
}

func (f *fakeRepo) FindDefaultLocationCode(_ context.Context, itemNumber string) (string, bool, error) {
	f.state.locationLookups[itemNumber]++
	code, ok := f.state.locations[itemNumber]
	return code, ok, nil
}

type fakeWorkOrders struct {
	workOrders map[string]model.WorkOrder
	lookups    int
}

func (f *fakeWorkOrders) WithTx(*sqlx.Tx) workorder.Repository { return f }

func (f *fakeWorkOrders) FindWorkOrderByNumber(_ context.Context, number string) (*model.WorkOrder, error) {
	f.lookups++
	wo, ok := f.workOrders[number]
	if !ok {
		return nil, nil
	}
	return &wo, nil
}

func (f *fakeWorkOrders) FindResourcesByWorkOrderNumber(context.Context, string) ([]model.WorkOrderResource, error) {
	return nil, nil
}

func (f *fakeWorkOrders) FindResourcesByStartDateTimeRange(context.Context, string, string) ([]model.WorkOrderResource, error) {
	return nil, nil
}

func (f *fakeWorkOrders) InsertResource(context.Context, *model.WorkOrderResource) error { return nil }

func (f *fakeWorkOrders) UpdateResource(context.Context, *workorderdto.UpdateResourceInput) error {
	return nil
}

func (f *fakeWorkOrders) DeleteResource(context.Context, string) error { return nil }

type fixture struct {
	uc         stock.UseCase
	state      *stockState
	workOrders *fakeWorkOrders
	locker     *dbtest.Locker
	db         *sqlx.DB
}

func newFixture(t *testing.T) *fixture {
	db := dbtest.NewDB(t)
	db.MustExec(`CREATE TABLE WMBAC (BatchDesc TEXT)`)

	state := &stockState{
		locations:       map[string]string{"SALT": "YARD-1", "SAND": "YARD-2"},
		locationLookups: map[string]int{},
	}
	workOrders := &fakeWorkOrders{workOrders: map[string]model.WorkOrder{
		"WO-1": {WorkOrderNumber: "WO-1", JobID: "J1", ActivityID: "A1", ObjectCode: "O1"},
	}}
	locker := &dbtest.Locker{}
	log := logger.NewNop()

	uc := usecase.NewStockUseCase(&fakeRepo{state: state}, workOrders,
		database.NewTransactor(db, log), locker, "worktech-api", log)

	return &fixture{uc: uc, state: state, workOrders: workOrders, locker: locker, db: db}
}

func ptr[T any](v T) *T { return &v }

func TestCreateStockTransactionBatch(t *testing.T) {
	f := newFixture(t)

	id, err := f.uc.CreateStockTransactionBatch(context.Background(), &dto.CreateBatchInput{
		BatchDate: ptr("2024-01-15"),
		Entries: []dto.CreateBatchEntryInput{
			{WorkOrderNumber: "WO-1", ItemNumber: "SALT", Quantity: decimal.NewFromInt(2)},
			{WorkOrderNumber: "WO-1", ItemNumber: "SALT", Quantity: decimal.NewFromInt(3), EntryDate: ptr("2024-01-16")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, []string{stock.BatchTable, stock.BatchEntryTable}, f.locker.Locked())

	require.Len(t, f.state.batches, 1)
	assert.Equal(t, model.StockTransactionBatch{
		BatchType:        "Stock Transactions",
		BatchDescription: "2024-01-15 - Stock Transactions",
		UserID:           "worktech-api",
		BatchDate:        "2024-01-15",
	}, f.state.batches[0])

	require.Len(t, f.state.entries, 2)
	first := f.state.entries[0]
	assert.Equal(t, int64(42), first.BatchSystemID)
	assert.Equal(t, "2024-01-15", first.EntryDate)
	assert.Equal(t, "J1", first.JobID)
	assert.Equal(t, "A1", first.ActivityID)
	assert.Equal(t, "O1", first.ObjectCode)
	assert.Equal(t, "YARD-1", first.LocationCode)
	assert.Equal(t, "Stock Usage", first.TransactionType)
	assert.Equal(t, "2024-01-16", f.state.entries[1].EntryDate)
	assert.Equal(t, "YARD-1", f.state.entries[1].LocationCode)

	assert.Equal(t, 1, f.state.locationLookups["SALT"])
}

func TestCreateStockTransactionBatch_SuppliedFieldsSkipLookups(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateStockTransactionBatch(context.Background(), &dto.CreateBatchInput{
		Entries: []dto.CreateBatchEntryInput{{
			WorkOrderNumber: "WO-1",
			ItemNumber:      "SAND",
			JobID:           ptr("J2"),
			ActivityID:      ptr("A2"),
			ObjectCode:      ptr("O2"),
			LocationCode:    ptr("SHED"),
			Quantity:        decimal.NewFromInt(1),
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, f.workOrders.lookups)
	assert.Empty(t, f.state.locationLookups)
	assert.Equal(t, "J2", f.state.entries[0].JobID)
	assert.Equal(t, "SHED", f.state.entries[0].LocationCode)
}

func TestCreateStockTransactionBatch_PartialCodesBackfilled(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateStockTransactionBatch(context.Background(), &dto.CreateBatchInput{
		Entries: []dto.CreateBatchEntryInput{{
			WorkOrderNumber: "WO-1",
			ItemNumber:      "SAND",
			JobID:           ptr("J2"),
			Quantity:        decimal.NewFromInt(1),
		}},
	})

	require.NoError(t, err)
	entry := f.state.entries[0]
	assert.Equal(t, "J2", entry.JobID)
	assert.Equal(t, "A1", entry.ActivityID)
	assert.Equal(t, "O1", entry.ObjectCode)
}

func TestCreateStockTransactionBatch_UserAndDescription(t *testing.T) {
	f := newFixture(t)
	ctx := auth.WithUserID(context.Background(), "jdoe")
	long := "A description that is certainly longer than fifty characters in total"

	_, err := f.uc.CreateStockTransactionBatch(ctx, &dto.CreateBatchInput{
		BatchDescription: &long,
		Entries:          []dto.CreateBatchEntryInput{{WorkOrderNumber: "WO-1", ItemNumber: "SALT"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "jdoe", f.state.batches[0].UserID)
	assert.Equal(t, long[:50], f.state.batches[0].BatchDescription)
	assert.Equal(t, "jdoe", f.state.entries[0].UserID)

	_, err = f.uc.CreateStockTransactionBatch(ctx, &dto.CreateBatchInput{
		UserID:  "explicit",
		Entries: []dto.CreateBatchEntryInput{{WorkOrderNumber: "WO-1", ItemNumber: "SALT"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "explicit", f.state.batches[1].UserID)
}

func TestCreateStockTransactionBatch_RollbackOnEntryFailure(t *testing.T) {
	f := newFixture(t)
	f.state.entryErr = errors.New("procedure failed")

	id, err := f.uc.CreateStockTransactionBatch(context.Background(), &dto.CreateBatchInput{
		Entries: []dto.CreateBatchEntryInput{{WorkOrderNumber: "WO-1", ItemNumber: "SALT"}},
	})

	assert.Same(t, f.state.entryErr, err)
	assert.Zero(t, id)

	var headers int
	require.NoError(t, f.db.Get(&headers, `SELECT count(*) FROM WMBAC`))
	assert.Zero(t, headers)
}

func TestCreateStockTransactionBatch_Invalid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreateStockTransactionBatch(ctx, &dto.CreateBatchInput{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.uc.CreateStockTransactionBatch(ctx, &dto.CreateBatchInput{
		BatchDate: ptr("15/01/2024"),
		Entries:   []dto.CreateBatchEntryInput{{WorkOrderNumber: "WO-1", ItemNumber: "SALT"}},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.uc.CreateStockTransactionBatch(ctx, &dto.CreateBatchInput{
		Entries: []dto.CreateBatchEntryInput{{WorkOrderNumber: "WO-1"}},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	assert.Empty(t, f.locker.Locked())
}
