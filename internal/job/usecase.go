package job

import (
	"context"

	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

type UseCase interface {
	GetJobByJobID(ctx context.Context, jobID string) (*model.Job, error)
	GetActivityByActivityID(ctx context.Context, activityID string) (*model.Activity, error)
	GetActivitiesAssignedToJobByFiscalYear(ctx context.Context, jobID, fiscalYear string) ([]model.Activity, error)
	GetActivityAssignedToJobByActivityIDAndFiscalYear(ctx context.Context, jobID, activityID, fiscalYear string) (*model.Activity, error)
	GetObjectCodeByObjectCode(ctx context.Context, objectCode string, bypassCache bool) (*model.ObjectCode, error)
	GetObjectCodesAssignedToJobByFiscalYear(ctx context.Context, jobID, fiscalYear string) ([]model.JobAssignedObjectCode, error)
	GetObjectCodeAssignedToJobByObjectCodeAndFiscalYear(ctx context.Context, jobID, objectCode, fiscalYear string) (*model.JobAssignedObjectCode, error)
	GetJobActivityObjectCodeByKeys(ctx context.Context, keys dto.JobActivityObjectCodeKeys) (*model.JobActivityObjectCode, error)
}
