package item

import (
	"context"

	"github.com/fekuna/worktech-api/internal/item/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

type UseCase interface {
	GetItemByItemID(ctx context.Context, itemID string) (*model.ResourceItem, error)
	AddResourceItem(ctx context.Context, input *dto.AddResourceItemInput) (string, error)
}
