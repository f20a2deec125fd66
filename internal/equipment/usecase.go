package equipment

import (
	"context"

	"github.com/fekuna/worktech-api/internal/equipment/dto"
	itemdto "github.com/fekuna/worktech-api/internal/item/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

const (
	DefaultStatus = "Active"
	DefaultUnit   = "km"
)

type UseCase interface {
	GetEquipment(ctx context.Context, filters *dto.EquipmentFilters) ([]model.EquipmentItem, error)
	GetEquipmentByEquipmentID(ctx context.Context, equipmentID string, bypassCache bool) (*model.EquipmentItem, error)
	AddEquipment(ctx context.Context, input *dto.AddEquipmentInput) (string, error)
	UpdateEquipmentFields(ctx context.Context, equipmentID string, fields *dto.UpdateEquipmentFields) error
	// ClearCache drops every cached equipment item.
	ClearCache(ctx context.Context)
}

// ItemAdder creates the catalog row behind a new piece of equipment.
type ItemAdder interface {
	AddResourceItem(ctx context.Context, input *itemdto.AddResourceItemInput) (string, error)
}
