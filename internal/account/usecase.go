package account

import (
	"context"

	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

// Separator joins a job account segment and an object code account segment.
const Separator = "-"

type UseCase interface {
	// ResolveAccountNumber returns the billing account number for a work
	// order. An empty optionalObjectCode falls back to the work order's own.
	ResolveAccountNumber(ctx context.Context, workOrderNumber, optionalObjectCode string) (*model.AccountNumber, error)
}

// WorkOrderGetter is the work order lookup the resolver depends on.
type WorkOrderGetter interface {
	GetWorkOrderByWorkOrderNumber(ctx context.Context, workOrderNumber string) (*model.WorkOrder, error)
}

// CodeGetter is the set of job and object code lookups the resolver depends on.
type CodeGetter interface {
	GetJobByJobID(ctx context.Context, jobID string) (*model.Job, error)
	GetObjectCodeByObjectCode(ctx context.Context, objectCode string, bypassCache bool) (*model.ObjectCode, error)
	GetObjectCodeAssignedToJobByObjectCodeAndFiscalYear(ctx context.Context, jobID, objectCode, fiscalYear string) (*model.JobAssignedObjectCode, error)
	GetJobActivityObjectCodeByKeys(ctx context.Context, keys dto.JobActivityObjectCodeKeys) (*model.JobActivityObjectCode, error)
}
