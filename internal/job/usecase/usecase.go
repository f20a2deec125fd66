package usecase

import (
	"context"

	"github.com/fekuna/worktech-api/internal/cache"
	"github.com/fekuna/worktech-api/internal/job"
	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"go.uber.org/zap"
)

type jobUseCase struct {
	repo        job.Repository
	jobs        cache.Cache[model.Job]
	activities  cache.Cache[model.Activity]
	objectCodes cache.Cache[model.ObjectCode]
	logger      logger.ZapLogger
}

func NewJobUseCase(repo job.Repository, cacheOpts *cache.Options, log logger.ZapLogger) job.UseCase {
	return &jobUseCase{
		repo:        repo,
		jobs:        cache.New[model.Job]("jobs", cacheOpts),
		activities:  cache.New[model.Activity]("activities", cacheOpts),
		objectCodes: cache.New[model.ObjectCode]("objectCodes", cacheOpts),
		logger:      log,
	}
}

func (uc *jobUseCase) GetJobByJobID(ctx context.Context, jobID string) (*model.Job, error) {
	if cached, ok := uc.jobs.Get(ctx, jobID); ok {
		return &cached, nil
	}

	j, err := uc.repo.FindJobByID(ctx, jobID)
	if err != nil {
		uc.logger.Error("Failed to get job", zap.String("job_id", jobID), zap.Error(err))
		return nil, err
	}
	if j == nil {
		return nil, nil
	}

	uc.jobs.Set(ctx, jobID, *j)
	return j, nil
}

func (uc *jobUseCase) GetActivityByActivityID(ctx context.Context, activityID string) (*model.Activity, error) {
	if cached, ok := uc.activities.Get(ctx, activityID); ok {
		return &cached, nil
	}

	a, err := uc.repo.FindActivityByID(ctx, activityID)
	if err != nil {
		uc.logger.Error("Failed to get activity", zap.String("activity_id", activityID), zap.Error(err))
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	uc.activities.Set(ctx, activityID, *a)
	return a, nil
}

func (uc *jobUseCase) GetActivitiesAssignedToJobByFiscalYear(ctx context.Context, jobID, fiscalYear string) ([]model.Activity, error) {
	return uc.repo.FindActivitiesAssignedToJob(ctx, jobID, fiscalYear)
}

func (uc *jobUseCase) GetActivityAssignedToJobByActivityIDAndFiscalYear(ctx context.Context, jobID, activityID, fiscalYear string) (*model.Activity, error) {
	return uc.repo.FindActivityAssignedToJob(ctx, jobID, activityID, fiscalYear)
}

// GetObjectCodeByObjectCode reads through the object code cache. With
// bypassCache set the row is always fetched and the cache entry refreshed.
func (uc *jobUseCase) GetObjectCodeByObjectCode(ctx context.Context, objectCode string, bypassCache bool) (*model.ObjectCode, error) {
	if !bypassCache {
		if cached, ok := uc.objectCodes.Get(ctx, objectCode); ok {
			return &cached, nil
		}
	}

	code, err := uc.repo.FindObjectCodeByCode(ctx, objectCode)
	if err != nil {
		uc.logger.Error("Failed to get object code", zap.String("object_code", objectCode), zap.Error(err))
		return nil, err
	}
	if code == nil {
		return nil, nil
	}

	uc.objectCodes.Set(ctx, objectCode, *code)
	return code, nil
}

func (uc *jobUseCase) GetObjectCodesAssignedToJobByFiscalYear(ctx context.Context, jobID, fiscalYear string) ([]model.JobAssignedObjectCode, error) {
	return uc.repo.FindObjectCodesAssignedToJob(ctx, jobID, fiscalYear)
}

func (uc *jobUseCase) GetObjectCodeAssignedToJobByObjectCodeAndFiscalYear(ctx context.Context, jobID, objectCode, fiscalYear string) (*model.JobAssignedObjectCode, error) {
	return uc.repo.FindObjectCodeAssignedToJob(ctx, jobID, objectCode, fiscalYear)
}

func (uc *jobUseCase) GetJobActivityObjectCodeByKeys(ctx context.Context, keys dto.JobActivityObjectCodeKeys) (*model.JobActivityObjectCode, error) {
	return uc.repo.FindJobActivityObjectCode(ctx, keys)
}
