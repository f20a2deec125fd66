package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/stock"
	"github.com/jmoiron/sqlx"
	mssql "github.com/microsoft/go-mssqldb"
)

const (
	insertBatchProc      = "WT_INSERT_WMBAC"
	insertBatchEntryProc = "WT_INSERT_WMTSI"
)

type MSSQLRepository struct {
	db sqlx.ExtContext
}

func NewMSSQLRepository(db *sqlx.DB) *MSSQLRepository {
	return &MSSQLRepository{db: db}
}

func (r *MSSQLRepository) WithTx(tx *sqlx.Tx) stock.Repository {
	return &MSSQLRepository{db: tx}
}

// InsertBatch runs the header procedure. Its return status is the batch id.
func (r *MSSQLRepository) InsertBatch(ctx context.Context, batch *model.StockTransactionBatch) (int64, error) {
	var status mssql.ReturnStatus
	_, err := r.db.ExecContext(ctx, insertBatchProc,
		sql.Named("Type", batch.BatchType),
		sql.Named("Desc", batch.BatchDescription),
		sql.Named("UserID", batch.UserID),
		sql.Named("Date", batch.BatchDate),
		&status)
	if err != nil {
		return 0, err
	}
	return int64(status), nil
}

func (r *MSSQLRepository) InsertBatchEntry(ctx context.Context, entry *model.StockTransactionBatchEntry) error {
	_, err := r.db.ExecContext(ctx, insertBatchEntryProc,
		sql.Named("BatchSysID", entry.BatchSystemID),
		sql.Named("Date", entry.EntryDate),
		sql.Named("SItem_ID", entry.ItemNumber),
		sql.Named("ExJob_ID", nullable(entry.JobID)),
		sql.Named("ExActv_ID", nullable(entry.ActivityID)),
		// WT_INSERT_WMTSI has no object code parameter; entry.ObjectCode is not sent.
		sql.Named("WONOs", entry.WorkOrderNumber),
		sql.Named("Accomp", nil),
		sql.Named("TC_ID", nil),
		sql.Named("Qty", entry.Quantity),
		sql.Named("Units", nil),
		sql.Named("POS_ID", nil),
		sql.Named("VehUsed", nil),
		sql.Named("VehUsedQty", nil),
		sql.Named("StockItem_ID", entry.ItemNumber),
		sql.Named("Stock", nil),
		sql.Named("TransType", entry.TransactionType),
		sql.Named("UserName", entry.UserID),
		sql.Named("LocationCode", nullable(entry.LocationCode)))
	return err
}

func (r *MSSQLRepository) FindDefaultLocationCode(ctx context.Context, itemNumber string) (string, bool, error) {
	var locationCode string
	err := sqlx.GetContext(ctx, r.db, &locationCode, `select top 1 LocationCode
    from WMILN WITH (NOLOCK)
    where Item_ID = @itemNumber
    order by DefaulLoc desc`,
		sql.Named("itemNumber", itemNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return locationCode, true, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
