package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddResourceInput describes a new work order resource. Nil fields are
// derived from the work order and the item.
type AddResourceInput struct {
	WorkOrderNumber        string `validate:"required"`
	ItemID                 string `validate:"required,max=15"`
	ServiceRequestSystemID *string
	ItemSystemID           *string
	WorkDescription        *string
	StartDateTime          *time.Time
	EndDateTime            *time.Time
	Quantity               *decimal.Decimal
	UnitPrice              *decimal.Decimal
	BaseAmount             *decimal.Decimal
	LockUnitPrice          bool
	LockMargin             bool
	Step                   string
}

// UpdateResourceInput changes fields on an existing resource. Fields are
// applied in groups and a group is skipped unless every field in it is set:
//   - WorkDescription
//   - ServiceRequestSystemID and WorkOrderNumber
//   - StartDateTime
//   - EndDateTime
//   - Quantity, UnitPrice and BaseAmount
type UpdateResourceInput struct {
	ServiceRequestItemSystemID string `validate:"required"`
	WorkDescription            *string
	ServiceRequestSystemID     *string
	WorkOrderNumber            *string
	StartDateTime              *time.Time
	EndDateTime                *time.Time
	Quantity                   *decimal.Decimal
	UnitPrice                  *decimal.Decimal
	BaseAmount                 *decimal.Decimal
}
