package workorder

import (
	"context"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/workorder/dto"
	"github.com/jmoiron/sqlx"
)

// ResourceTable is the destination table of work order resources.
const ResourceTable = "AMSRI"

type Repository interface {
	// WithTx returns a repository whose statements run inside tx.
	WithTx(tx *sqlx.Tx) Repository

	FindWorkOrderByNumber(ctx context.Context, workOrderNumber string) (*model.WorkOrder, error)

	// Resources
	FindResourcesByWorkOrderNumber(ctx context.Context, workOrderNumber string) ([]model.WorkOrderResource, error)
	FindResourcesByStartDateTimeRange(ctx context.Context, from, to string) ([]model.WorkOrderResource, error)
	InsertResource(ctx context.Context, resource *model.WorkOrderResource) error
	UpdateResource(ctx context.Context, input *dto.UpdateResourceInput) error
	DeleteResource(ctx context.Context, serviceRequestItemSystemID string) error
}
