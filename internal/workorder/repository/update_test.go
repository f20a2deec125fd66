package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/fekuna/worktech-api/internal/workorder/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestBuildResourceUpdate(t *testing.T) {
	start := time.Date(2024, 3, 9, 8, 5, 33, 0, time.Local)

	tests := []struct {
		name    string
		input   dto.UpdateResourceInput
		query   string
		applied []string
		args    int
	}{
		{
			name:    "nothing set",
			input:   dto.UpdateResourceInput{ServiceRequestItemSystemID: "7"},
			query:   "update AMSRI set SRISysID = @serviceRequestItemSystemId where SRISysID = @serviceRequestItemSystemId",
			applied: []string{},
			args:    1,
		},
		{
			name:    "partial amounts ignored",
			input:   dto.UpdateResourceInput{ServiceRequestItemSystemID: "7", Quantity: ptr(decimal.NewFromInt(5))},
			query:   "update AMSRI set SRISysID = @serviceRequestItemSystemId where SRISysID = @serviceRequestItemSystemId",
			applied: []string{},
			args:    1,
		},
		{
			name:    "work order number without system id ignored",
			input:   dto.UpdateResourceInput{ServiceRequestItemSystemID: "7", WorkOrderNumber: ptr("WO-2")},
			query:   "update AMSRI set SRISysID = @serviceRequestItemSystemId where SRISysID = @serviceRequestItemSystemId",
			applied: []string{},
			args:    1,
		},
		{
			name: "full amounts",
			input: dto.UpdateResourceInput{
				ServiceRequestItemSystemID: "7",
				Quantity:                   ptr(decimal.NewFromInt(5)),
				UnitPrice:                  ptr(decimal.RequireFromString("10.00")),
				BaseAmount:                 ptr(decimal.RequireFromString("50.00")),
			},
			query:   "update AMSRI set SRISysID = @serviceRequestItemSystemId, QTY = @quantity, UNITPRICE = @unitPrice, AMT = @baseAmount where SRISysID = @serviceRequestItemSystemId",
			applied: []string{"amounts"},
			args:    4,
		},
		{
			name: "every group",
			input: dto.UpdateResourceInput{
				ServiceRequestItemSystemID: "7",
				WorkDescription:            ptr("Patch"),
				ServiceRequestSystemID:     ptr("88"),
				WorkOrderNumber:            ptr("WO-2"),
				StartDateTime:              &start,
				EndDateTime:                &start,
				Quantity:                   ptr(decimal.NewFromInt(1)),
				UnitPrice:                  ptr(decimal.NewFromInt(2)),
				BaseAmount:                 ptr(decimal.NewFromInt(2)),
			},
			query: "update AMSRI set SRISysID = @serviceRequestItemSystemId" +
				", WORKDESC = @workDescription" +
				", SRQISYSID = @serviceRequestSystemId, WONOS = @workOrderNumber" +
				", SCHEDDATETIME = @startDateTime" +
				", ENDDATETIME = @endDateTime" +
				", QTY = @quantity, UNITPRICE = @unitPrice, AMT = @baseAmount" +
				" where SRISysID = @serviceRequestItemSystemId",
			applied: []string{"workDescription", "workOrder", "startDateTime", "endDateTime", "amounts"},
			args:    9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, applied := buildResourceUpdate(&tt.input)
			assert.Equal(t, tt.query, query)
			assert.Equal(t, tt.applied, applied)
			assert.Len(t, args, tt.args)
		})
	}
}

func TestBuildResourceUpdate_FormatsDateTime(t *testing.T) {
	start := time.Date(2024, 3, 9, 8, 5, 33, 0, time.Local)

	_, args, _ := buildResourceUpdate(&dto.UpdateResourceInput{ServiceRequestItemSystemID: "7", StartDateTime: &start})

	assert.Contains(t, args, sql.Named("startDateTime", "2024-03-09 08:05"))
}
