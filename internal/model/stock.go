package model

import "github.com/shopspring/decimal"

const (
	StockTransactionBatchType = "Stock Transactions"
	StockUsageTransactionType = "Stock Usage"

	BatchDescriptionMaxLength = 50
)

// StockTransactionBatch is the header row written before any entry.
type StockTransactionBatch struct {
	BatchType        string
	BatchDescription string
	UserID           string
	BatchDate        string
}

// StockTransactionBatchEntry is one resolved line of a batch. Empty optional
// codes are written as NULL.
type StockTransactionBatchEntry struct {
	BatchSystemID   int64
	EntryDate       string
	WorkOrderNumber string
	JobID           string
	ActivityID      string
	ObjectCode      string
	ItemNumber      string
	LocationCode    string
	Quantity        decimal.Decimal
	TransactionType string
	UserID          string
}
