package stock

import (
	"context"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const (
	BatchTable      = "WMBAC"
	BatchEntryTable = "WMTSI"
)

type Repository interface {
	WithTx(tx *sqlx.Tx) Repository
	// InsertBatch creates the batch header and returns the id generated for it.
	InsertBatch(ctx context.Context, batch *model.StockTransactionBatch) (int64, error)
	InsertBatchEntry(ctx context.Context, entry *model.StockTransactionBatchEntry) error
	// FindDefaultLocationCode returns the item's preferred stock location.
	FindDefaultLocationCode(ctx context.Context, itemNumber string) (string, bool, error)
}
