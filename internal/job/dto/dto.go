package dto

type JobActivityObjectCodeKeys struct {
	JobID      string
	ActivityID string
	ObjectCode string
	FiscalYear string
}
