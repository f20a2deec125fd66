package usecase

import (
	"context"

	"github.com/fekuna/worktech-api/internal/account"
	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"go.uber.org/zap"
)

type accountUseCase struct {
	workOrders account.WorkOrderGetter
	codes      account.CodeGetter
	logger     logger.ZapLogger
}

func NewAccountUseCase(workOrders account.WorkOrderGetter, codes account.CodeGetter, log logger.ZapLogger) account.UseCase {
	return &accountUseCase{
		workOrders: workOrders,
		codes:      codes,
		logger:     log,
	}
}

// ResolveAccountNumber tries, in order, the job-activity-object code override,
// the job-object code override and finally the job and object code segments.
func (uc *accountUseCase) ResolveAccountNumber(ctx context.Context, workOrderNumber, optionalObjectCode string) (*model.AccountNumber, error) {
	workOrder, err := uc.workOrders.GetWorkOrderByWorkOrderNumber(ctx, workOrderNumber)
	if err != nil {
		return nil, err
	}
	if workOrder == nil {
		return nil, model.NewNotFound("work order", workOrderNumber)
	}

	objectCode := optionalObjectCode
	if objectCode == "" {
		objectCode = workOrder.ObjectCode
	}
	if objectCode == "" {
		return nil, model.NewInvalidInput("objectCode", "no object code available for lookup")
	}

	log := uc.logger.With(
		zap.String("work_order_number", workOrderNumber),
		zap.String("object_code", objectCode),
	)

	if workOrder.ActivityID != "" {
		code, err := uc.codes.GetJobActivityObjectCodeByKeys(ctx, dto.JobActivityObjectCodeKeys{
			JobID:      workOrder.JobID,
			ActivityID: workOrder.ActivityID,
			ObjectCode: objectCode,
			FiscalYear: workOrder.FiscalYear,
		})
		if err != nil {
			return nil, err
		}
		if code != nil && code.AccountNumber != "" {
			log.Debug("Account number resolved", zap.String("source", string(model.AccountNumberSourceJobActivityObjectCode)))
			return &model.AccountNumber{
				AccountNumber:       code.AccountNumber,
				AccountNumberSource: model.AccountNumberSourceJobActivityObjectCode,
			}, nil
		}
	}

	assigned, err := uc.codes.GetObjectCodeAssignedToJobByObjectCodeAndFiscalYear(ctx, workOrder.JobID, objectCode, workOrder.FiscalYear)
	if err != nil {
		return nil, err
	}
	if assigned != nil && assigned.AccountNumber != "" {
		log.Debug("Account number resolved", zap.String("source", string(model.AccountNumberSourceJobObjectCode)))
		return &model.AccountNumber{
			AccountNumber:       assigned.AccountNumber,
			AccountNumberSource: model.AccountNumberSourceJobObjectCode,
		}, nil
	}

	job, err := uc.codes.GetJobByJobID(ctx, workOrder.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, model.NewNotFound("job", workOrder.JobID)
	}
	if job.AccountSegment == "" {
		return nil, model.NewInvalidInput("job.accountSegment", "empty for job "+job.JobID)
	}

	code, err := uc.codes.GetObjectCodeByObjectCode(ctx, objectCode, false)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, model.NewNotFound("object code", objectCode)
	}
	if code.AccountSegment == "" {
		return nil, model.NewInvalidInput("objectCode.accountSegment", "empty for object code "+code.ObjectCode)
	}

	log.Debug("Account number resolved", zap.String("source", string(model.AccountNumberSourceSegments)))
	return &model.AccountNumber{
		AccountNumber:       job.AccountSegment + account.Separator + code.AccountSegment,
		AccountNumberSource: model.AccountNumberSourceSegments,
	}, nil
}
