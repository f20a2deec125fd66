package dto

type EmployeeFilters struct {
	// IsActive limits results to active (true) or inactive (false) employees.
	IsActive *bool

	Departments        []string
	NotDepartments     []string
	EmployeeNumbers    []string
	NotEmployeeNumbers []string
	PositionIDs        []string
	NotPositionIDs     []string
}

// TimesheetBatchEntryFilters narrows timesheet entries. TimesheetDate is
// formatted as model.DateLayout.
type TimesheetBatchEntryFilters struct {
	EmployeeNumber  *string
	TimesheetDate   *string `validate:"omitempty,datetime=2006-01-02"`
	JobID           *string
	ActivityID      *string
	WorkOrderNumber *string
}
