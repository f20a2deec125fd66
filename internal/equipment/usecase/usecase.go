package usecase

import (
	"context"

	"github.com/fekuna/worktech-api/internal/cache"
	"github.com/fekuna/worktech-api/internal/equipment"
	"github.com/fekuna/worktech-api/internal/equipment/dto"
	itemdto "github.com/fekuna/worktech-api/internal/item/dto"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/validation"
	"go.uber.org/zap"
)

type equipmentUseCase struct {
	repo      equipment.Repository
	items     equipment.ItemAdder
	equipment cache.Cache[model.EquipmentItem]
	logger    logger.ZapLogger
}

func NewEquipmentUseCase(repo equipment.Repository, items equipment.ItemAdder, cacheOpts *cache.Options, log logger.ZapLogger) equipment.UseCase {
	return &equipmentUseCase{
		repo:      repo,
		items:     items,
		equipment: cache.New[model.EquipmentItem]("equipment", cacheOpts),
		logger:    log,
	}
}

func (uc *equipmentUseCase) GetEquipment(ctx context.Context, filters *dto.EquipmentFilters) ([]model.EquipmentItem, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *equipmentUseCase) GetEquipmentByEquipmentID(ctx context.Context, equipmentID string, bypassCache bool) (*model.EquipmentItem, error) {
	if !bypassCache {
		if cached, ok := uc.equipment.Get(ctx, equipmentID); ok {
			return &cached, nil
		}
	}

	list, err := uc.repo.FindAll(ctx, &dto.EquipmentFilters{EquipmentIDs: []string{equipmentID}})
	if err != nil {
		uc.logger.Error("Failed to get equipment", zap.String("equipment_id", equipmentID), zap.Error(err))
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	eq := list[0]
	uc.equipment.Set(ctx, equipmentID, eq)
	return &eq, nil
}

func (uc *equipmentUseCase) AddEquipment(ctx context.Context, input *dto.AddEquipmentInput) (string, error) {
	if err := validation.Struct(input); err != nil {
		return "", err
	}

	id, err := uc.items.AddResourceItem(ctx, &itemdto.AddResourceItemInput{
		ItemID:          input.EquipmentID,
		ItemClass:       input.EquipmentClass,
		ItemDescription: input.EquipmentDescription,
		ItemType:        model.EquipmentItemType,
		ItemStatus:      equipment.DefaultStatus,
		Unit:            equipment.DefaultUnit,
	})
	if err != nil {
		return "", err
	}

	uc.equipment.Delete(ctx, input.EquipmentID)
	return id, nil
}

// UpdateEquipmentFields writes the set fields and then flushes the whole
// equipment cache.
func (uc *equipmentUseCase) UpdateEquipmentFields(ctx context.Context, equipmentID string, fields *dto.UpdateEquipmentFields) error {
	if err := uc.repo.UpdateFields(ctx, equipmentID, fields); err != nil {
		uc.logger.Error("Failed to update equipment", zap.String("equipment_id", equipmentID), zap.Error(err))
		return err
	}

	uc.ClearCache(ctx)
	uc.logger.Info("Equipment updated", zap.String("equipment_id", equipmentID))
	return nil
}

func (uc *equipmentUseCase) ClearCache(ctx context.Context) {
	uc.equipment.Flush(ctx)
}
