package dto

import "github.com/shopspring/decimal"

// CreateBatchInput describes a stock transaction batch. Dates are formatted as
// model.DateLayout.
type CreateBatchInput struct {
	BatchDescription *string
	BatchDate        *string `validate:"omitempty,datetime=2006-01-02"`
	UserID           string
	Entries          []CreateBatchEntryInput `validate:"min=1,dive"`
}

// CreateBatchEntryInput is one line of a batch. Missing codes are taken from
// the work order; a missing location code is the item's default location.
type CreateBatchEntryInput struct {
	EntryDate       *string `validate:"omitempty,datetime=2006-01-02"`
	WorkOrderNumber string  `validate:"required"`
	JobID           *string
	ActivityID      *string
	ObjectCode      *string
	ItemNumber      string `validate:"required"`
	LocationCode    *string
	Quantity        decimal.Decimal
}
