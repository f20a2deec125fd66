package employee

import (
	"context"
	"time"

	"github.com/fekuna/worktech-api/internal/employee/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

type UseCase interface {
	GetEmployees(ctx context.Context, filters *dto.EmployeeFilters) ([]model.EmployeeItem, error)
	GetEmployeePayCodes(ctx context.Context, employeeNumber string, effectiveDate *time.Time) ([]model.EmployeePayCode, error)
	GetTimeCodes(ctx context.Context) ([]model.TimeCode, error)
	// GetEmployeeTimeCodes returns the time codes the employee used on
	// timesheets in the last timesheetMaxAgeDays days.
	GetEmployeeTimeCodes(ctx context.Context, employeeNumber string, timesheetMaxAgeDays int, bypassCache bool) ([]model.TimeCode, error)
	GetTimesheetBatchEntries(ctx context.Context, filters *dto.TimesheetBatchEntryFilters) ([]model.TimesheetBatchEntry, error)
}
