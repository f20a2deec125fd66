package item

import (
	"context"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// Table is the catalog table shared by resource items, equipment and employees.
const Table = "WMITM"

type Repository interface {
	WithTx(tx *sqlx.Tx) Repository
	FindItemByID(ctx context.Context, itemID string) (*model.ResourceItem, error)
	// InsertItem writes a new catalog row. modelYear fills the item's year column.
	InsertItem(ctx context.Context, item *model.ResourceItem, modelYear int) error
}
