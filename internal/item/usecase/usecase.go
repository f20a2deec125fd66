package usecase

import (
	"context"
	"time"

	"github.com/fekuna/worktech-api/internal/cache"
	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/item"
	"github.com/fekuna/worktech-api/internal/item/dto"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/systemid"
	"github.com/fekuna/worktech-api/internal/validation"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultItemStatus is written when a new item has no status.
const DefaultItemStatus = "EstOnly"

type itemUseCase struct {
	repo      item.Repository
	txr       *database.Transactor
	allocator *systemid.Allocator
	items     cache.Cache[model.ResourceItem]
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewItemUseCase(repo item.Repository, txr *database.Transactor, allocator *systemid.Allocator, cacheOpts *cache.Options, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:      repo,
		txr:       txr,
		allocator: allocator,
		items:     cache.New[model.ResourceItem]("items", cacheOpts),
		logger:    log,
		now:       time.Now,
	}
}

func (uc *itemUseCase) GetItemByItemID(ctx context.Context, itemID string) (*model.ResourceItem, error) {
	if cached, ok := uc.items.Get(ctx, itemID); ok {
		return &cached, nil
	}

	it, err := uc.repo.FindItemByID(ctx, itemID)
	if err != nil {
		uc.logger.Error("Failed to get item", zap.String("item_id", itemID), zap.Error(err))
		return nil, err
	}
	if it == nil {
		return nil, nil
	}

	uc.items.Set(ctx, itemID, *it)
	return it, nil
}

// AddResourceItem creates a catalog item and returns its system id.
func (uc *itemUseCase) AddResourceItem(ctx context.Context, input *dto.AddResourceItemInput) (string, error) {
	if err := validation.Struct(input); err != nil {
		return "", err
	}

	log := uc.logger.With(
		zap.String("operation_id", uuid.NewString()),
		zap.String("item_id", input.ItemID),
	)

	it := &model.ResourceItem{
		ItemID:          input.ItemID,
		ItemDescription: input.ItemDescription,
		ItemClass:       input.ItemClass,
		ItemType:        input.ItemType,
		ItemModel:       input.ItemModel,
		ItemStatus:      input.ItemStatus,
		Location:        input.Location,
		Department:      input.Department,
		Division:        input.Division,
		Company:         input.Company,
		Stock:           input.Stock,
		Unit:            input.Unit,
		UnitCost:        decimal.Zero,
		QuantityOnHand:  decimal.Zero,
		ExternalItemID:  input.ExternalItemID,
		Comments:        input.Comments,
	}
	if it.ItemStatus == "" {
		it.ItemStatus = DefaultItemStatus
	}
	if input.UnitCost != nil {
		it.UnitCost = *input.UnitCost
	}
	if input.QuantityOnHand != nil {
		it.QuantityOnHand = *input.QuantityOnHand
	}

	err := uc.txr.Execute(ctx, func(tx *sqlx.Tx) error {
		id, err := uc.allocator.Next(ctx, tx, item.Table)
		if err != nil {
			return err
		}
		it.ItemSystemID = id

		if err := uc.repo.WithTx(tx).InsertItem(ctx, it, uc.now().Year()); err != nil {
			return err
		}
		return uc.allocator.IncrementLastSystemID(ctx, tx)
	})
	if err != nil {
		log.Error("Failed to add item", zap.Error(err))
		return "", err
	}

	uc.items.Delete(ctx, input.ItemID)

	log.Info("Item added", zap.String("system_id", it.ItemSystemID))
	return it.ItemSystemID, nil
}
