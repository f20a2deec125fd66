package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkOrder struct {
	ServiceRequestSystemID string     `db:"serviceRequestSystemId"`
	WorkOrderNumber        string     `db:"workOrderNumber"`
	Project                string     `db:"project"`
	RequestDateTime        *time.Time `db:"requestDateTime"`
	DueDateTime            *time.Time `db:"dueDateTime"`
	ScheduledDateTime      *time.Time `db:"scheduledDateTime"`
	DoneDateTime           *time.Time `db:"doneDateTime"`
	ClosedDateTime         *time.Time `db:"closedDateTime"`
	RequestedBy            string     `db:"requestedBy"`
	RequestedByPhoneNumber string     `db:"requestedByPhoneNumber"`
	Address1               string     `db:"address1"`
	WorkOrderType          string     `db:"workOrderType"` // General or Equipment
	WorkOrderSeries        string     `db:"workOrderSeries"`
	WorkOrderSubType       string     `db:"workOrderSubType"`
	Subject                string     `db:"subject"`
	Details                string     `db:"details"`
	Priority               string     `db:"priority"`
	JobID                  string     `db:"jobId"`
	ActivityID             string     `db:"activityId"`
	ObjectCode             string     `db:"objectCode"`
	ServiceClass           string     `db:"serviceClass"`
	ServiceType            string     `db:"serviceType"`
	FiscalYear             string     `db:"fiscalYear"`
	EvaluatedBy            string     `db:"evaluatedBy"`
	AssignedTo             string     `db:"assignedTo"`
	Action                 string     `db:"action"`
	ResponseNotes          string     `db:"responseNotes"`
	BillingName            string     `db:"billingName"`
	UserDefined1           string     `db:"userDefined1"`
	UserDefined2           string     `db:"userDefined2"`
	UserDefined3           string     `db:"userDefined3"`
	UserDefined4           string     `db:"userDefined4"`
	UserDefined5           string     `db:"userDefined5"`
}

// WorkOrderResource is a line item on a work order. BaseAmount equals
// Quantity * UnitPrice unless it was supplied explicitly.
type WorkOrderResource struct {
	ServiceRequestItemSystemID string          `db:"serviceRequestItemSystemId"`
	ServiceRequestSystemID     string          `db:"serviceRequestSystemId"`
	WorkOrderNumber            string          `db:"workOrderNumber"`
	Step                       string          `db:"step"`
	StartDateTime              time.Time       `db:"startDateTime"`
	EndDateTime                *time.Time      `db:"endDateTime"`
	ItemSystemID               string          `db:"itemSystemId"`
	ItemID                     string          `db:"itemId"`
	WorkDescription            string          `db:"workDescription"`
	Quantity                   decimal.Decimal `db:"quantity"`
	UnitPrice                  decimal.Decimal `db:"unitPrice"`
	BaseAmount                 decimal.Decimal `db:"baseAmount"`
	LockUnitPrice              bool            `db:"lockUnitPrice"`
	LockMargin                 bool            `db:"lockMargin"`
}
