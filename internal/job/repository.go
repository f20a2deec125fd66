package job

import (
	"context"

	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

// Repository reads the job, activity and object code tables. Finders return
// nil, nil when no row matches.
type Repository interface {
	FindJobByID(ctx context.Context, jobID string) (*model.Job, error)

	// Activities
	FindActivityByID(ctx context.Context, activityID string) (*model.Activity, error)
	FindActivitiesAssignedToJob(ctx context.Context, jobID, fiscalYear string) ([]model.Activity, error)
	FindActivityAssignedToJob(ctx context.Context, jobID, activityID, fiscalYear string) (*model.Activity, error)

	// Object codes
	FindObjectCodeByCode(ctx context.Context, objectCode string) (*model.ObjectCode, error)
	FindObjectCodesAssignedToJob(ctx context.Context, jobID, fiscalYear string) ([]model.JobAssignedObjectCode, error)
	FindObjectCodeAssignedToJob(ctx context.Context, jobID, objectCode, fiscalYear string) (*model.JobAssignedObjectCode, error)
	FindJobActivityObjectCode(ctx context.Context, keys dto.JobActivityObjectCodeKeys) (*model.JobActivityObjectCode, error)
}
