package usecase

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/fekuna/worktech-api/internal/cache"
	"github.com/fekuna/worktech-api/internal/employee"
	"github.com/fekuna/worktech-api/internal/employee/dto"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/validation"
	"go.uber.org/zap"
)

type employeeUseCase struct {
	repo      employee.Repository
	payCodes  cache.Cache[[]model.EmployeePayCode]
	timeCodes cache.Cache[[]model.TimeCode]
	logger    logger.ZapLogger
}

func NewEmployeeUseCase(repo employee.Repository, cacheOpts *cache.Options, log logger.ZapLogger) employee.UseCase {
	return &employeeUseCase{
		repo:      repo,
		payCodes:  cache.New[[]model.EmployeePayCode]("employeePayCodes", cacheOpts),
		timeCodes: cache.New[[]model.TimeCode]("employeeTimeCodes", cacheOpts),
		logger:    log,
	}
}

func (uc *employeeUseCase) GetEmployees(ctx context.Context, filters *dto.EmployeeFilters) ([]model.EmployeeItem, error) {
	return uc.repo.FindEmployees(ctx, filters)
}

func (uc *employeeUseCase) GetEmployeePayCodes(ctx context.Context, employeeNumber string, effectiveDate *time.Time) ([]model.EmployeePayCode, error) {
	key := employeeNumber + "-all"
	if effectiveDate != nil {
		key = employeeNumber + "-" + effectiveDate.UTC().Format(time.RFC3339)
	}

	if cached, ok := uc.payCodes.Get(ctx, key); ok {
		return slices.Clone(cached), nil
	}

	payCodes, err := uc.repo.FindEmployeePayCodes(ctx, employeeNumber, effectiveDate)
	if err != nil {
		uc.logger.Error("Failed to get employee pay codes", zap.String("employee_number", employeeNumber), zap.Error(err))
		return nil, err
	}

	uc.payCodes.Set(ctx, key, slices.Clone(payCodes))
	return payCodes, nil
}

func (uc *employeeUseCase) GetTimeCodes(ctx context.Context) ([]model.TimeCode, error) {
	return uc.repo.FindTimeCodes(ctx)
}

func (uc *employeeUseCase) GetEmployeeTimeCodes(ctx context.Context, employeeNumber string, timesheetMaxAgeDays int, bypassCache bool) ([]model.TimeCode, error) {
	key := employeeNumber + "-" + strconv.Itoa(timesheetMaxAgeDays)

	if !bypassCache {
		if cached, ok := uc.timeCodes.Get(ctx, key); ok {
			return slices.Clone(cached), nil
		}
	}

	timeCodes, err := uc.repo.FindEmployeeTimeCodes(ctx, employeeNumber, timesheetMaxAgeDays)
	if err != nil {
		uc.logger.Error("Failed to get employee time codes", zap.String("employee_number", employeeNumber), zap.Error(err))
		return nil, err
	}

	uc.timeCodes.Set(ctx, key, slices.Clone(timeCodes))
	return timeCodes, nil
}

func (uc *employeeUseCase) GetTimesheetBatchEntries(ctx context.Context, filters *dto.TimesheetBatchEntryFilters) ([]model.TimesheetBatchEntry, error) {
	if filters == nil {
		filters = &dto.TimesheetBatchEntryFilters{}
	}
	if err := validation.Struct(filters); err != nil {
		return nil, err
	}
	return uc.repo.FindTimesheetBatchEntries(ctx, filters)
}
