package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/worktech-api/internal/cache"
	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/job/usecase"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	jobs        map[string]model.Job
	objectCodes map[string]model.ObjectCode
	jobCalls    int
	codeCalls   int
}

func (f *fakeRepo) FindJobByID(_ context.Context, jobID string) (*model.Job, error) {
	f.jobCalls++
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (f *fakeRepo) FindActivityByID(context.Context, string) (*model.Activity, error) {
	return nil, nil
}

func (f *fakeRepo) FindActivitiesAssignedToJob(context.Context, string, string) ([]model.Activity, error) {
	return []model.Activity{}, nil
}

func (f *fakeRepo) FindActivityAssignedToJob(context.Context, string, string, string) (*model.Activity, error) {
	return nil, nil
}

func (f *fakeRepo) FindObjectCodeByCode(_ context.Context, objectCode string) (*model.ObjectCode, error) {
	f.codeCalls++
	c, ok := f.objectCodes[objectCode]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeRepo) FindObjectCodesAssignedToJob(context.Context, string, string) ([]model.JobAssignedObjectCode, error) {
	return []model.JobAssignedObjectCode{}, nil
}

func (f *fakeRepo) FindObjectCodeAssignedToJob(context.Context, string, string, string) (*model.JobAssignedObjectCode, error) {
	return nil, nil
}

func (f *fakeRepo) FindJobActivityObjectCode(context.Context, dto.JobActivityObjectCodeKeys) (*model.JobActivityObjectCode, error) {
	return nil, nil
}

func newRepo() *fakeRepo {
	return &fakeRepo{
		jobs:        map[string]model.Job{"J1": {JobID: "J1", AccountSegment: "40"}},
		objectCodes: map[string]model.ObjectCode{"O1": {ObjectCode: "O1", AccountSegment: "50"}},
	}
}

func TestGetJobByJobID_Cached(t *testing.T) {
	repo := newRepo()
	uc := usecase.NewJobUseCase(repo, &cache.Options{TTL: time.Minute}, logger.NewNop())
	ctx := context.Background()

	j, err := uc.GetJobByJobID(ctx, "J1")
	require.NoError(t, err)
	require.NotNil(t, j)
	assert.Equal(t, "40", j.AccountSegment)

	_, err = uc.GetJobByJobID(ctx, "J1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.jobCalls)
}

func TestGetJobByJobID_MissNotCached(t *testing.T) {
	repo := newRepo()
	uc := usecase.NewJobUseCase(repo, &cache.Options{TTL: time.Minute}, logger.NewNop())

	for i := 0; i < 2; i++ {
		j, err := uc.GetJobByJobID(context.Background(), "NOPE")
		require.NoError(t, err)
		assert.Nil(t, j)
	}
	assert.Equal(t, 2, repo.jobCalls)
}

func TestGetJobByJobID_RefetchAfterTTL(t *testing.T) {
	repo := newRepo()
	uc := usecase.NewJobUseCase(repo, &cache.Options{TTL: 50 * time.Millisecond}, logger.NewNop())
	ctx := context.Background()

	_, err := uc.GetJobByJobID(ctx, "J1")
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	_, err = uc.GetJobByJobID(ctx, "J1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.jobCalls)
}

func TestGetObjectCodeByObjectCode_Bypass(t *testing.T) {
	repo := newRepo()
	uc := usecase.NewJobUseCase(repo, &cache.Options{TTL: time.Minute}, logger.NewNop())
	ctx := context.Background()

	_, err := uc.GetObjectCodeByObjectCode(ctx, "O1", false)
	require.NoError(t, err)
	_, err = uc.GetObjectCodeByObjectCode(ctx, "O1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.codeCalls)

	repo.objectCodes["O1"] = model.ObjectCode{ObjectCode: "O1", AccountSegment: "51"}

	code, err := uc.GetObjectCodeByObjectCode(ctx, "O1", true)
	require.NoError(t, err)
	assert.Equal(t, "51", code.AccountSegment)
	assert.Equal(t, 2, repo.codeCalls)

	// bypass refreshed the entry
	code, err = uc.GetObjectCodeByObjectCode(ctx, "O1", false)
	require.NoError(t, err)
	assert.Equal(t, "51", code.AccountSegment)
	assert.Equal(t, 2, repo.codeCalls)
}
