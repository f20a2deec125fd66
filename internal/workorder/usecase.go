package workorder

import (
	"context"
	"time"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/workorder/dto"
)

type UseCase interface {
	GetWorkOrderByWorkOrderNumber(ctx context.Context, workOrderNumber string) (*model.WorkOrder, error)

	GetResourcesByWorkOrderNumber(ctx context.Context, workOrderNumber string) ([]model.WorkOrderResource, error)
	GetResourcesByStartDateTimeRange(ctx context.Context, from, to time.Time) ([]model.WorkOrderResource, error)
	// GetResourcesByStartDate takes a date formatted as model.DateLayout.
	GetResourcesByStartDate(ctx context.Context, startDate string) ([]model.WorkOrderResource, error)

	AddResource(ctx context.Context, input *dto.AddResourceInput) (string, error)
	UpdateResource(ctx context.Context, input *dto.UpdateResourceInput) error
	DeleteResource(ctx context.Context, serviceRequestItemSystemID string) error
}
