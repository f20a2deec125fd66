package employee

import (
	"context"
	"time"

	"github.com/fekuna/worktech-api/internal/employee/dto"
	"github.com/fekuna/worktech-api/internal/model"
)

// TimesheetBatchEntriesLimit caps the rows returned by one timesheet query.
const TimesheetBatchEntriesLimit = 2000

type Repository interface {
	FindEmployees(ctx context.Context, filters *dto.EmployeeFilters) ([]model.EmployeeItem, error)
	// FindEmployeePayCodes returns pay codes effective on or before
	// effectiveDate, or all of them when effectiveDate is nil.
	FindEmployeePayCodes(ctx context.Context, employeeNumber string, effectiveDate *time.Time) ([]model.EmployeePayCode, error)
	FindTimeCodes(ctx context.Context) ([]model.TimeCode, error)
	FindEmployeeTimeCodes(ctx context.Context, employeeNumber string, timesheetMaxAgeDays int) ([]model.TimeCode, error)
	FindTimesheetBatchEntries(ctx context.Context, filters *dto.TimesheetBatchEntryFilters) ([]model.TimesheetBatchEntry, error)
}
