package stock

import (
	"context"

	"github.com/fekuna/worktech-api/internal/stock/dto"
)

type UseCase interface {
	// CreateStockTransactionBatch writes a batch header and all of its entries
	// in one transaction and returns the batch id.
	CreateStockTransactionBatch(ctx context.Context, input *dto.CreateBatchInput) (int64, error)
}
