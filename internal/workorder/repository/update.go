package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/workorder/dto"
)

type updateField struct {
	column string
	param  string
	value  func(in *dto.UpdateResourceInput) (interface{}, bool)
}

// updateGroup is written only when every one of its fields is set.
type updateGroup struct {
	name   string
	fields []updateField
}

var resourceUpdateGroups = []updateGroup{
	{
		name: "workDescription",
		fields: []updateField{
			{"WORKDESC", "workDescription", func(in *dto.UpdateResourceInput) (interface{}, bool) { return present(in.WorkDescription) }},
		},
	},
	{
		name: "workOrder",
		fields: []updateField{
			{"SRQISYSID", "serviceRequestSystemId", func(in *dto.UpdateResourceInput) (interface{}, bool) { return present(in.ServiceRequestSystemID) }},
			{"WONOS", "workOrderNumber", func(in *dto.UpdateResourceInput) (interface{}, bool) { return present(in.WorkOrderNumber) }},
		},
	},
	{
		name: "startDateTime",
		fields: []updateField{
			{"SCHEDDATETIME", "startDateTime", func(in *dto.UpdateResourceInput) (interface{}, bool) { return presentDateTime(in.StartDateTime) }},
		},
	},
	{
		name: "endDateTime",
		fields: []updateField{
			{"ENDDATETIME", "endDateTime", func(in *dto.UpdateResourceInput) (interface{}, bool) { return presentDateTime(in.EndDateTime) }},
		},
	},
	{
		name: "amounts",
		fields: []updateField{
			{"QTY", "quantity", func(in *dto.UpdateResourceInput) (interface{}, bool) { return present(in.Quantity) }},
			{"UNITPRICE", "unitPrice", func(in *dto.UpdateResourceInput) (interface{}, bool) { return present(in.UnitPrice) }},
			{"AMT", "baseAmount", func(in *dto.UpdateResourceInput) (interface{}, bool) { return present(in.BaseAmount) }},
		},
	},
}

func present[T any](p *T) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func presentDateTime(t *time.Time) (interface{}, bool) {
	if t == nil {
		return nil, false
	}
	return model.FormatDateTime(*t), true
}

// buildResourceUpdate returns the update statement for in, its arguments and
// the names of the groups it writes. With no complete group the statement
// still runs and touches nothing but the key.
func buildResourceUpdate(in *dto.UpdateResourceInput) (string, []interface{}, []string) {
	var sb strings.Builder
	sb.WriteString("update AMSRI set SRISysID = @serviceRequestItemSystemId")

	args := []interface{}{sql.Named("serviceRequestItemSystemId", in.ServiceRequestItemSystemID)}
	applied := []string{}

	for _, group := range resourceUpdateGroups {
		values := make([]interface{}, 0, len(group.fields))
		for _, field := range group.fields {
			v, ok := field.value(in)
			if !ok {
				break
			}
			values = append(values, v)
		}
		if len(values) != len(group.fields) {
			continue
		}

		for i, field := range group.fields {
			sb.WriteString(", " + field.column + " = @" + field.param)
			args = append(args, sql.Named(field.param, values[i]))
		}
		applied = append(applied, group.name)
	}

	sb.WriteString(" where SRISysID = @serviceRequestItemSystemId")
	return sb.String(), args, applied
}
