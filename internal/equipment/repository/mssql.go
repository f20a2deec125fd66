package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/equipment/dto"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const equipmentSQL = `SELECT [ITMSysID] as equipmentSystemId,
  [Item_ID] as equipmentId,
  coalesce([DESC], '') as equipmentDescription,
  coalesce([ItemClass], '') as equipmentClass,
  coalesce([Brand], '') as equipmentBrand,
  coalesce([Model], '') as equipmentModel,
  coalesce([Year], 0) as equipmentModelYear,
  coalesce([Serial], '') as serialNumber,
  coalesce([Plate], '') as plate,
  coalesce([FlType], '') as fuelType,
  coalesce([Status], '') as equipmentStatus,
  coalesce([Comments], '') as comments,
  coalesce([Location], '') as location,
  coalesce([Dept], '') as departmentOwned,
  coalesce([Division], '') as departmentManaged,
  coalesce([ExJob_ID], '') as expenseJobId,
  coalesce([ExActv_ID], '') as expenseActivityId,
  coalesce([ExObjCode], '') as expenseObjectCode,
  coalesce([RevJob_ID], '') as revenueJobId,
  coalesce([RevActv_ID], '') as revenueActivityId,
  coalesce([RevObjCode], '') as revenueObjectCode,
  coalesce([Odom], 0) as odometer,
  coalesce([Hours], 0) as jobCostHours,
  coalesce([RunHrs], 0) as hourMeter
  FROM [WMITM] WITH (NOLOCK)`

type MSSQLRepository struct {
	DB *sqlx.DB
}

func NewMSSQLRepository(db *sqlx.DB) *MSSQLRepository {
	return &MSSQLRepository{DB: db}
}

func (r *MSSQLRepository) FindAll(ctx context.Context, f *dto.EquipmentFilters) ([]model.EquipmentItem, error) {
	var c database.Conditions
	c.Add("[Type] in (@equipmentType)", sql.Named("equipmentType", model.EquipmentItemType))

	if f != nil {
		c.In("[Status]", "equipmentStatus", f.EquipmentStatuses)
		c.NotIn("[Status]", "notEquipmentStatus", f.NotEquipmentStatuses)
		c.In("[Item_ID]", "equipmentId", f.EquipmentIDs)
		c.NotIn("[Item_ID]", "notEquipmentId", f.NotEquipmentIDs)
		c.In("[ItemClass]", "equipmentClass", f.EquipmentClasses)
		c.NotIn("[ItemClass]", "notEquipmentClass", f.NotEquipmentClasses)
		c.In("[Dept]", "departmentOwned", f.DepartmentsOwned)
		c.NotIn("[Dept]", "notDepartmentOwned", f.NotDepartmentsOwned)
	}

	equipment := []model.EquipmentItem{}
	err := r.DB.SelectContext(ctx, &equipment, equipmentSQL+c.Where(), c.Args()...)
	return equipment, err
}

type equipmentColumn struct {
	column string
	param  string
	value  func(f *dto.UpdateEquipmentFields) (interface{}, bool)
}

var equipmentColumns = []equipmentColumn{
	{"DESC", "equipmentDescription", func(f *dto.UpdateEquipmentFields) (interface{}, bool) { return deref(f.EquipmentDescription) }},
	{"ItemClass", "equipmentClass", func(f *dto.UpdateEquipmentFields) (interface{}, bool) { return deref(f.EquipmentClass) }},
	{"Status", "equipmentStatus", func(f *dto.UpdateEquipmentFields) (interface{}, bool) { return deref(f.EquipmentStatus) }},
	{"Plate", "plate", func(f *dto.UpdateEquipmentFields) (interface{}, bool) { return deref(f.Plate) }},
	{"Odom", "odometer", func(f *dto.UpdateEquipmentFields) (interface{}, bool) { return deref(f.Odometer) }},
}

func deref[T any](p *T) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

// buildEquipmentUpdate returns an empty query when no field is set.
func buildEquipmentUpdate(equipmentID string, f *dto.UpdateEquipmentFields) (string, []interface{}) {
	sets := []string{}
	args := []interface{}{}

	for _, col := range equipmentColumns {
		v, ok := col.value(f)
		if !ok {
			continue
		}
		sets = append(sets, "["+col.column+"] = @"+col.param)
		args = append(args, sql.Named(col.param, v))
	}
	if len(sets) == 0 {
		return "", nil
	}

	args = append(args, sql.Named("equipmentId", equipmentID))
	return "update WMITM set " + strings.Join(sets, ", ") + " where Item_ID = @equipmentId", args
}

func (r *MSSQLRepository) UpdateFields(ctx context.Context, equipmentID string, fields *dto.UpdateEquipmentFields) error {
	query, args := buildEquipmentUpdate(equipmentID, fields)
	if query == "" {
		return model.NewInvalidInput("fields", "no equipment fields to update")
	}
	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}
