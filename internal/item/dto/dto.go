package dto

import (
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/shopspring/decimal"
)

type AddResourceItemInput struct {
	ItemID          string `validate:"required,max=15"`
	ItemClass       string `validate:"required"`
	ItemType        string `validate:"required"`
	Unit            string `validate:"required"`
	ItemDescription string
	ItemStatus      string
	ItemModel       string
	ExternalItemID  string
	Department      string
	Division        string
	Company         string
	Comments        string
	Location        string
	Stock           model.ResourceItemStock
	UnitCost        *decimal.Decimal
	QuantityOnHand  *decimal.Decimal
}
