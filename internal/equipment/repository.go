package equipment

import (
	"context"

	"github.com/fekuna/worktech-api/internal/equipment/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context, filters *dto.EquipmentFilters) ([]model.EquipmentItem, error)
	// UpdateFields writes the set fields of an equipment item.
	UpdateFields(ctx context.Context, equipmentID string, fields *dto.UpdateEquipmentFields) error
}
