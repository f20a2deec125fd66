package repository

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/employee"
	"github.com/fekuna/worktech-api/internal/employee/dto"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const employeeSQL = `SELECT ITM.ITMSYSID as itemSystemId,
  ITM.ITEM_ID as employeeNumber,
  coalesce(ITM.[DESC], '') as employeeName,
  coalesce(ITM.ITEMCLASS, '') as employeeClass,
  coalesce(ITM.STATUS, '') as employeeStatus,
  coalesce(ITM.DEPT, '') as department,
  ITM.DATEIN as startDate,
  coalesce(ITM.ADDRESS, '') as address1,
  coalesce(ITM.ADDRESS2, '') as address2,
  coalesce(ITM.ADDRESS3, '') as address3,
  coalesce(ITM.ADDRESS4, '') as address4,
  ITM.BIRTHD as birthDate,
  coalesce(ITM.PHONE1, '') as phoneNumber1,
  coalesce(ITM.PHONEDESC1, '') as phoneNumberType1,
  coalesce(ITM.EMAIL, '') as emailAddress,
  coalesce(ITM.[POSITION], '') as positionId,
  coalesce(ITM.HRSPERPP, 0) as hoursPerPayPeriod,
  cast(coalesce(ITM.PAYOT, 0) as bit) as payOvertime,
  cast(coalesce(ITM.BANKOT, 0) as bit) as bankOvertime,
  coalesce(ITM.DEFVEH_ID, '') as defaultEquipmentId,
  coalesce(ITM.PATROL, '') as patrol
  FROM dbo.WMITM ITM WITH (NOLOCK)
  WHERE ( TYPE = 'Employee' AND Status <> 'EstOnly' )`

const employeePayCodeSQL = `SELECT
  Item_ID AS employeeNumber,
  rtrim(epc.EPCode) AS payCode,
  isnull(pc.level, epc.level) AS level,
  rtrim(epc.POS_ID) AS positionId,
  p.[Desc] AS position,
  isnull(pc.effectiveDateTime, epc.effectiveDate) AS effectiveDate,
  cast([Primary] AS BIT) AS isPrimary
  FROM WMEPCI epc WITH (NOLOCK)
  LEFT JOIN WMEPD pc WITH (NOLOCK) ON epc.EPCode = pc.EPCode
    AND (pc.EffectiveDateTime IS NULL OR pc.EffectiveDateTime >= epc.EffectiveDate)
    AND pc.NotUsedForOverride = 0
  LEFT JOIN WMPOD p WITH (NOLOCK) ON epc.POS_ID = p.POS_ID
    AND p.Status <> 1
    AND (p.EndDateTime IS NULL OR p.EndDateTime >= epc.EffectiveDate)
  WHERE epc.Item_ID = @employeeNumber`

const timeCodeSQL = `SELECT
  TC_ID as timeCode,
  coalesce(DESCRIPTION, '') as timeCodeDescription,
  EXTCODE as externalCode
  FROM WMTCD WITH (NOLOCK)
  WHERE Inactive = 0 and AdminOnly = 0`

const employeeTimeCodeFilter = ` AND TC_ID IN (
  SELECT TC_ID FROM WMTSI WITH (NOLOCK)
  WHERE transType = 'Time Sheets'
    AND TYPE = 'Employee'
    AND Item_ID = @employeeNumber
    AND DateTime >= dateadd(day, -1 * @timesheetMaxAgeDays, getdate()))`

var timesheetBatchEntrySQL = `SELECT TOP (` + strconv.Itoa(employee.TimesheetBatchEntriesLimit) + `)
  [BatchSysID] as batchSystemId,
  [Batch_ID] as batchId,
  [SeqNo] as batchEntryNumber,
  [DateTime] as timesheetDate,
  format([DateTime], 'yyyy-MM-dd') as timesheetDateString,
  [Item_ID] as employeeNumber,
  rtrim([POS_ID]) as positionId,
  rtrim([EPCode]) as payCode,
  [TC_ID] as timeCode,
  [ExJob_ID] as jobId,
  [ExActv_ID] as activityId,
  [WONOS] as workOrderNumber,
  [ExObjCode] as objectCode,
  coalesce([Qty], 0) as timesheetHours
  FROM [WMTSI]
  where transType = 'Time Sheets'
    and type = 'Employee'`

type MSSQLRepository struct {
	DB *sqlx.DB
}

func NewMSSQLRepository(db *sqlx.DB) *MSSQLRepository {
	return &MSSQLRepository{DB: db}
}

func employeeConditions(f *dto.EmployeeFilters) *database.Conditions {
	c := &database.Conditions{}
	if f == nil {
		return c
	}

	if f.IsActive != nil {
		if *f.IsActive {
			c.Add("ITM.STATUS = 'Active'")
		} else {
			c.Add("ITM.STATUS <> 'Active'")
		}
	}
	c.In("ITM.DEPT", "department", f.Departments)
	c.NotIn("ITM.DEPT", "notDepartment", f.NotDepartments)
	c.In("ITM.ITEM_ID", "employeeNumber", f.EmployeeNumbers)
	c.NotIn("ITM.ITEM_ID", "notEmployeeNumber", f.NotEmployeeNumbers)
	c.In("ITM.[POSITION]", "positionId", f.PositionIDs)
	c.NotIn("ITM.[POSITION]", "notPositionId", f.NotPositionIDs)
	return c
}

func (r *MSSQLRepository) FindEmployees(ctx context.Context, filters *dto.EmployeeFilters) ([]model.EmployeeItem, error) {
	c := employeeConditions(filters)

	query := employeeSQL
	if c.Len() > 0 {
		query += " AND " + c.And()
	}

	employees := []model.EmployeeItem{}
	err := r.DB.SelectContext(ctx, &employees, query, c.Args()...)
	return employees, err
}

func (r *MSSQLRepository) FindEmployeePayCodes(ctx context.Context, employeeNumber string, effectiveDate *time.Time) ([]model.EmployeePayCode, error) {
	query := employeePayCodeSQL
	args := []interface{}{sql.Named("employeeNumber", employeeNumber)}

	if effectiveDate != nil {
		query += " AND epc.effectiveDate <= @effectiveDate"
		args = append(args, sql.Named("effectiveDate", *effectiveDate))
	}
	query += " ORDER BY isPrimary DESC, effectiveDate DESC"

	payCodes := []model.EmployeePayCode{}
	err := r.DB.SelectContext(ctx, &payCodes, query, args...)
	return payCodes, err
}

func (r *MSSQLRepository) FindTimeCodes(ctx context.Context) ([]model.TimeCode, error) {
	timeCodes := []model.TimeCode{}
	err := r.DB.SelectContext(ctx, &timeCodes, timeCodeSQL+" ORDER BY TC_ID")
	return timeCodes, err
}

func (r *MSSQLRepository) FindEmployeeTimeCodes(ctx context.Context, employeeNumber string, timesheetMaxAgeDays int) ([]model.TimeCode, error) {
	timeCodes := []model.TimeCode{}
	err := r.DB.SelectContext(ctx, &timeCodes, timeCodeSQL+employeeTimeCodeFilter+" ORDER BY TC_ID",
		sql.Named("employeeNumber", employeeNumber),
		sql.Named("timesheetMaxAgeDays", timesheetMaxAgeDays))
	return timeCodes, err
}

func (r *MSSQLRepository) FindTimesheetBatchEntries(ctx context.Context, f *dto.TimesheetBatchEntryFilters) ([]model.TimesheetBatchEntry, error) {
	var c database.Conditions
	if f.EmployeeNumber != nil {
		c.Add("[Item_ID] = @employeeNumber", sql.Named("employeeNumber", *f.EmployeeNumber))
	}
	if f.TimesheetDate != nil {
		c.Add("[DateTime] = @timesheetDate", sql.Named("timesheetDate", *f.TimesheetDate))
	}
	if f.JobID != nil {
		c.Add("[ExJob_ID] = @jobId", sql.Named("jobId", *f.JobID))
	}
	if f.ActivityID != nil {
		c.Add("[ExActv_ID] = @activityId", sql.Named("activityId", *f.ActivityID))
	}
	if f.WorkOrderNumber != nil {
		c.Add("[WONOS] = @workOrderNumber", sql.Named("workOrderNumber", *f.WorkOrderNumber))
	}

	query := timesheetBatchEntrySQL
	if c.Len() > 0 {
		query += " AND " + c.And()
	}
	query += " order by [BatchSysID] desc, [SeqNo]"

	entries := []model.TimesheetBatchEntry{}
	err := r.DB.SelectContext(ctx, &entries, query, c.Args()...)
	return entries, err
}
