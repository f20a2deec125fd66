package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/worktech-api/internal/account/usecase"
	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkOrders struct {
	workOrders map[string]model.WorkOrder
	calls      int
}

func (f *fakeWorkOrders) GetWorkOrderByWorkOrderNumber(_ context.Context, number string) (*model.WorkOrder, error) {
	f.calls++
	wo, ok := f.workOrders[number]
	if !ok {
		return nil, nil
	}
	return &wo, nil
}

type fakeCodes struct {
	jobs            map[string]model.Job
	objectCodes     map[string]model.ObjectCode
	jobObjectCodes  map[string]model.JobAssignedObjectCode
	jobActivityCode map[dto.JobActivityObjectCodeKeys]model.JobActivityObjectCode
	err             error
	calls           int
}

func (f *fakeCodes) GetJobByJobID(_ context.Context, jobID string) (*model.Job, error) {
	f.calls++
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (f *fakeCodes) GetObjectCodeByObjectCode(_ context.Context, objectCode string, _ bool) (*model.ObjectCode, error) {
	f.calls++
	c, ok := f.objectCodes[objectCode]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCodes) GetObjectCodeAssignedToJobByObjectCodeAndFiscalYear(_ context.Context, jobID, objectCode, fiscalYear string) (*model.JobAssignedObjectCode, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.jobObjectCodes[jobID+"|"+objectCode+"|"+fiscalYear]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCodes) GetJobActivityObjectCodeByKeys(_ context.Context, keys dto.JobActivityObjectCodeKeys) (*model.JobActivityObjectCode, error) {
	f.calls++
	c, ok := f.jobActivityCode[keys]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func fixtures() (*fakeWorkOrders, *fakeCodes) {
	workOrders := &fakeWorkOrders{workOrders: map[string]model.WorkOrder{
		"WO-1": {WorkOrderNumber: "WO-1", JobID: "J1", ActivityID: "A1", ObjectCode: "O1", FiscalYear: "2024"},
		"WO-2": {WorkOrderNumber: "WO-2", JobID: "J1", ObjectCode: ""},
		"WO-3": {WorkOrderNumber: "WO-3", JobID: "J9", ObjectCode: "O1", FiscalYear: "2024"},
	}}

	codes := &fakeCodes{
		jobs: map[string]model.Job{
			"J1": {JobID: "J1", AccountSegment: "40"},
			"J9": {JobID: "J9", AccountSegment: ""},
		},
		objectCodes: map[string]model.ObjectCode{
			"O1": {ObjectCode: "O1", AccountSegment: "50"},
			"O2": {ObjectCode: "O2", AccountSegment: "60"},
		},
		jobObjectCodes: map[string]model.JobAssignedObjectCode{
			"J1|O1|2024": {ObjectCode: model.ObjectCode{ObjectCode: "O1"}, AccountNumber: "2000-300"},
		},
		jobActivityCode: map[dto.JobActivityObjectCodeKeys]model.JobActivityObjectCode{
			{JobID: "J1", ActivityID: "A1", ObjectCode: "O1", FiscalYear: "2024"}: {AccountNumber: "1000-200"},
		},
	}
	return workOrders, codes
}

func TestResolveAccountNumber_Precedence(t *testing.T) {
	ctx := context.Background()
	workOrders, codes := fixtures()
	uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

	// activity-level override wins even with a job-level override present
	got, err := uc.ResolveAccountNumber(ctx, "WO-1", "")
	require.NoError(t, err)
	assert.Equal(t, &model.AccountNumber{
		AccountNumber:       "1000-200",
		AccountNumberSource: model.AccountNumberSourceJobActivityObjectCode,
	}, got)

	codes.jobActivityCode = nil

	got, err = uc.ResolveAccountNumber(ctx, "WO-1", "")
	require.NoError(t, err)
	assert.Equal(t, "2000-300", got.AccountNumber)
	assert.Equal(t, model.AccountNumberSourceJobObjectCode, got.AccountNumberSource)

	codes.jobObjectCodes = nil

	got, err = uc.ResolveAccountNumber(ctx, "WO-1", "")
	require.NoError(t, err)
	assert.Equal(t, "40-50", got.AccountNumber)
	assert.Equal(t, model.AccountNumberSourceSegments, got.AccountNumberSource)
}

func TestResolveAccountNumber_EmptyOverrideFallsThrough(t *testing.T) {
	workOrders, codes := fixtures()
	codes.jobActivityCode = map[dto.JobActivityObjectCodeKeys]model.JobActivityObjectCode{
		{JobID: "J1", ActivityID: "A1", ObjectCode: "O1", FiscalYear: "2024"}: {AccountNumber: ""},
	}
	uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

	got, err := uc.ResolveAccountNumber(context.Background(), "WO-1", "")
	require.NoError(t, err)
	assert.Equal(t, model.AccountNumberSourceJobObjectCode, got.AccountNumberSource)
}

func TestResolveAccountNumber_OptionalObjectCode(t *testing.T) {
	workOrders, codes := fixtures()
	uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

	got, err := uc.ResolveAccountNumber(context.Background(), "WO-1", "O2")
	require.NoError(t, err)
	assert.Equal(t, "40-60", got.AccountNumber)
	assert.Equal(t, model.AccountNumberSourceSegments, got.AccountNumberSource)
}

func TestResolveAccountNumber_EmptyObjectCode(t *testing.T) {
	workOrders, codes := fixtures()
	uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

	_, err := uc.ResolveAccountNumber(context.Background(), "WO-2", "")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, 0, codes.calls)
}

func TestResolveAccountNumber_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("work order not found", func(t *testing.T) {
		workOrders, codes := fixtures()
		uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

		_, err := uc.ResolveAccountNumber(ctx, "WO-404", "")
		var nf *model.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "WO-404", nf.Key)
	})

	t.Run("empty job segment", func(t *testing.T) {
		workOrders, codes := fixtures()
		uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

		_, err := uc.ResolveAccountNumber(ctx, "WO-3", "")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("object code not found", func(t *testing.T) {
		workOrders, codes := fixtures()
		uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

		_, err := uc.ResolveAccountNumber(ctx, "WO-1", "O404")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("lookup error is returned unchanged", func(t *testing.T) {
		workOrders, codes := fixtures()
		codes.jobActivityCode = nil
		codes.err = errors.New("connection reset")
		uc := usecase.NewAccountUseCase(workOrders, codes, logger.NewNop())

		_, err := uc.ResolveAccountNumber(ctx, "WO-1", "")
		assert.Same(t, codes.err, err)
	})
}
