package usecase

import (
	"context"
	"time"

	"github.com/fekuna/worktech-api/internal/cache"
	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/item"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/systemid"
	"github.com/fekuna/worktech-api/internal/validation"
	"github.com/fekuna/worktech-api/internal/workorder"
	"github.com/fekuna/worktech-api/internal/workorder/dto"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type workOrderUseCase struct {
	repo       workorder.Repository
	items      item.Repository
	txr        *database.Transactor
	allocator  *systemid.Allocator
	workOrders cache.Cache[model.WorkOrder]
	logger     logger.ZapLogger
	now        func() time.Time
}

func NewWorkOrderUseCase(
	repo workorder.Repository,
	items item.Repository,
	txr *database.Transactor,
	allocator *systemid.Allocator,
	cacheOpts *cache.Options,
	log logger.ZapLogger,
) workorder.UseCase {
	return &workOrderUseCase{
		repo:       repo,
		items:      items,
		txr:        txr,
		allocator:  allocator,
		workOrders: cache.New[model.WorkOrder]("workOrders", cacheOpts),
		logger:     log,
		now:        time.Now,
	}
}

func (uc *workOrderUseCase) GetWorkOrderByWorkOrderNumber(ctx context.Context, workOrderNumber string) (*model.WorkOrder, error) {
	if cached, ok := uc.workOrders.Get(ctx, workOrderNumber); ok {
		return &cached, nil
	}

	wo, err := uc.repo.FindWorkOrderByNumber(ctx, workOrderNumber)
	if err != nil {
		uc.logger.Error("Failed to get work order", zap.String("work_order_number", workOrderNumber), zap.Error(err))
		return nil, err
	}
	if wo == nil {
		return nil, nil
	}

	uc.workOrders.Set(ctx, workOrderNumber, *wo)
	return wo, nil
}

func (uc *workOrderUseCase) GetResourcesByWorkOrderNumber(ctx context.Context, workOrderNumber string) ([]model.WorkOrderResource, error) {
	return uc.repo.FindResourcesByWorkOrderNumber(ctx, workOrderNumber)
}

func (uc *workOrderUseCase) GetResourcesByStartDateTimeRange(ctx context.Context, from, to time.Time) ([]model.WorkOrderResource, error) {
	return uc.repo.FindResourcesByStartDateTimeRange(ctx, model.FormatDateTime(from), model.FormatDateTime(to))
}

func (uc *workOrderUseCase) GetResourcesByStartDate(ctx context.Context, startDate string) ([]model.WorkOrderResource, error) {
	if _, err := time.Parse(model.DateLayout, startDate); err != nil {
		return nil, model.NewInvalidInput("startDate", "expected "+model.DateLayout)
	}
	return uc.repo.FindResourcesByStartDateTimeRange(ctx, startDate, startDate+model.EndOfDay)
}

// AddResource attaches an item to a work order and returns the new resource's
// system id. The work order and item are read uncached inside the same
// transaction as the allocation, insert and counter increment.
func (uc *workOrderUseCase) AddResource(ctx context.Context, input *dto.AddResourceInput) (string, error) {
	if err := validation.Struct(input); err != nil {
		return "", err
	}

	log := uc.logger.With(
		zap.String("operation_id", uuid.NewString()),
		zap.String("work_order_number", input.WorkOrderNumber),
		zap.String("item_id", input.ItemID),
	)

	log.Debug("Adding work order resource")

	var resource *model.WorkOrderResource
	err := uc.txr.Execute(ctx, func(tx *sqlx.Tx) error {
		repo := uc.repo.WithTx(tx)

		wo, err := repo.FindWorkOrderByNumber(ctx, input.WorkOrderNumber)
		if err != nil {
			return err
		}
		if wo == nil {
			return model.NewNotFound("work order", input.WorkOrderNumber)
		}

		it, err := uc.items.WithTx(tx).FindItemByID(ctx, input.ItemID)
		if err != nil {
			return err
		}
		if it == nil {
			return model.NewNotFound("item", input.ItemID)
		}

		resource = uc.resolveResource(input, wo, it)

		id, err := uc.allocator.Next(ctx, tx, workorder.ResourceTable)
		if err != nil {
			return err
		}
		resource.ServiceRequestItemSystemID = id

		if err := repo.InsertResource(ctx, resource); err != nil {
			return err
		}
		return uc.allocator.IncrementLastSystemID(ctx, tx)
	})
	if err != nil {
		log.Error("Failed to add work order resource", zap.Error(err))
		return "", err
	}

	log.Info("Work order resource added", zap.String("system_id", resource.ServiceRequestItemSystemID))
	return resource.ServiceRequestItemSystemID, nil
}

func (uc *workOrderUseCase) resolveResource(input *dto.AddResourceInput, wo *model.WorkOrder, it *model.ResourceItem) *model.WorkOrderResource {
	serviceRequestSystemID := wo.ServiceRequestSystemID
	if input.ServiceRequestSystemID != nil {
		serviceRequestSystemID = *input.ServiceRequestSystemID
	}

	itemSystemID := it.ItemSystemID
	if input.ItemSystemID != nil {
		itemSystemID = *input.ItemSystemID
	}

	startDateTime := uc.now()
	if input.StartDateTime != nil {
		startDateTime = *input.StartDateTime
	}

	quantity := decimal.Zero
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	unitPrice := it.UnitCost
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}

	baseAmount := quantity.Mul(unitPrice)
	if input.BaseAmount != nil {
		baseAmount = *input.BaseAmount
	}

	workDescription := it.ItemDescription
	if input.WorkDescription != nil {
		workDescription = *input.WorkDescription
	}

	return &model.WorkOrderResource{
		ServiceRequestSystemID: serviceRequestSystemID,
		WorkOrderNumber:        input.WorkOrderNumber,
		Step:                   input.Step,
		StartDateTime:          startDateTime,
		EndDateTime:            input.EndDateTime,
		ItemSystemID:           itemSystemID,
		ItemID:                 input.ItemID,
		WorkDescription:        workDescription,
		Quantity:               quantity,
		UnitPrice:              unitPrice,
		BaseAmount:             baseAmount,
		LockUnitPrice:          input.LockUnitPrice,
		LockMargin:             input.LockMargin,
	}
}

func (uc *workOrderUseCase) UpdateResource(ctx context.Context, input *dto.UpdateResourceInput) error {
	if err := validation.Struct(input); err != nil {
		return err
	}

	err := uc.txr.Execute(ctx, func(tx *sqlx.Tx) error {
		return uc.repo.WithTx(tx).UpdateResource(ctx, input)
	})
	if err != nil {
		uc.logger.Error("Failed to update work order resource",
			zap.String("system_id", input.ServiceRequestItemSystemID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteResource removes the resource row. A missing row is not an error.
func (uc *workOrderUseCase) DeleteResource(ctx context.Context, serviceRequestItemSystemID string) error {
	if err := uc.repo.DeleteResource(ctx, serviceRequestItemSystemID); err != nil {
		uc.logger.Error("Failed to delete work order resource",
			zap.String("system_id", serviceRequestItemSystemID), zap.Error(err))
		return err
	}
	return nil
}
