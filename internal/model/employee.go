package model

import "time"

type EmployeeItem struct {
	ItemSystemID       string     `db:"itemSystemId"`
	EmployeeNumber     string     `db:"employeeNumber"`
	EmployeeName       string     `db:"employeeName"`
	EmployeeClass      string     `db:"employeeClass"`
	EmployeeStatus     string     `db:"employeeStatus"`
	Department         string     `db:"department"`
	StartDate          *time.Time `db:"startDate"`
	Address1           string     `db:"address1"`
	Address2           string     `db:"address2"`
	Address3           string     `db:"address3"`
	Address4           string     `db:"address4"`
	BirthDate          *time.Time `db:"birthDate"`
	PhoneNumber1       string     `db:"phoneNumber1"`
	PhoneNumberType1   string     `db:"phoneNumberType1"`
	EmailAddress       string     `db:"emailAddress"`
	PositionID         string     `db:"positionId"`
	HoursPerPayPeriod  float64    `db:"hoursPerPayPeriod"`
	PayOvertime        bool       `db:"payOvertime"`
	BankOvertime       bool       `db:"bankOvertime"`
	DefaultEquipmentID string     `db:"defaultEquipmentId"`
	Patrol             string     `db:"patrol"`
}

type EmployeePayCode struct {
	EmployeeNumber string    `db:"employeeNumber"`
	PayCode        string    `db:"payCode"`
	Level          int       `db:"level"`
	Position       *string   `db:"position"`
	PositionID     *string   `db:"positionId"`
	EffectiveDate  time.Time `db:"effectiveDate"`
	IsPrimary      bool      `db:"isPrimary"`
}

type TimeCode struct {
	TimeCode            string  `db:"timeCode"`
	TimeCodeDescription string  `db:"timeCodeDescription"`
	ExternalCode        *string `db:"externalCode"`
}

type TimesheetBatchEntry struct {
	BatchSystemID       string     `db:"batchSystemId"`
	BatchID             string     `db:"batchId"`
	BatchEntryNumber    int        `db:"batchEntryNumber"`
	TimesheetDate       *time.Time `db:"timesheetDate"`
	TimesheetDateString *string    `db:"timesheetDateString"`
	EmployeeNumber      *string    `db:"employeeNumber"`
	PositionID          *string    `db:"positionId"`
	PayCode             *string    `db:"payCode"`
	TimeCode            *string    `db:"timeCode"`
	JobID               *string    `db:"jobId"`
	ActivityID          *string    `db:"activityId"`
	WorkOrderNumber     *string    `db:"workOrderNumber"`
	ObjectCode          *string    `db:"objectCode"`
	TimesheetHours      float64    `db:"timesheetHours"`
}
