package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/worktech-api/internal/job/dto"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const jobSQL = `SELECT [JobSysID] as jobSystemId,
  [Job_ID] as jobId,
  coalesce([Location], '') as location,
  rtrim(coalesce([DESC], '')) as jobDescription,
  coalesce([ShortDesc], '') as jobShortDescription,
  coalesce([Status], '') as status,
  coalesce([Prog_ID], '') as program,
  coalesce([JobGroup_ID], '') as jobGroup,
  rtrim(coalesce([Start_Year], '')) as startYear,
  rtrim(coalesce([Last_Year], '')) as lastYear,
  coalesce([AcctSeg], '') as accountSegment,
  coalesce([Actv_ID], '') as defaultActivityId,
  rtrim(coalesce([DefVeh_ID], '')) as defaultVehicleId,
  coalesce([DefProj_ID], '') as defaultProjectId,
  coalesce([Asset_ID], '') as defaultAssetId
  FROM [WMJOM] WITH (NOLOCK)`

const activitySQL = `SELECT [ActvSysID] as activitySystemId,
  [Actv_ID] as activityId,
  coalesce([ActvType], '') as activityType,
  coalesce([DESC], '') as activityDescription,
  coalesce([ShortDesc], '') as activityShortDescription,
  coalesce([ActvClass], '') as activityClass,
  coalesce([AcctSeg], '') as accountSegment
  FROM [WMACD] WITH (NOLOCK)`

const objectCodeSQL = `SELECT [OCSysID] as objectCodeSystemId,
  [CodeID] as objectCode,
  coalesce([DESC], '') as objectCodeDescription,
  coalesce([AcctSeg], '') as accountSegment
  FROM [WMOCD] WITH (NOLOCK)`

const jobAssignedObjectCodeSQL = `SELECT o.[OCSysID] as objectCodeSystemId,
  o.[CodeID] as objectCode,
  coalesce(o.[DESC], '') as objectCodeDescription,
  coalesce(o.[AcctSeg], '') as accountSegment,
  coalesce(j.[Acct], '') as accountNumber
  FROM [WMOCD] o WITH (NOLOCK)
  left join WMJOCA j WITH (NOLOCK) on o.OCSysID = j.OCSysID`

const jobActivityObjectCodeSQL = `SELECT [Job_ID] as jobId,
  [Actv_ID] as activityId,
  [ObjCode] as objectCode,
  rtrim([Year]) as fiscalYear,
  coalesce([AcctSeg], '') as accountNumber
  FROM [WMABCA] WITH (NOLOCK)`

const assignedActivityFilter = `Actv_ID in (select Actv_ID from WMJACA with (nolock) where Job_ID = @jobId and Year = @fiscalYear)`

type MSSQLRepository struct {
	DB *sqlx.DB
}

func NewMSSQLRepository(db *sqlx.DB) *MSSQLRepository {
	return &MSSQLRepository{DB: db}
}

func (r *MSSQLRepository) FindJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	var job model.Job
	err := r.DB.GetContext(ctx, &job, jobSQL+` where Job_ID = @jobId`, sql.Named("jobId", jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *MSSQLRepository) FindActivityByID(ctx context.Context, activityID string) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.GetContext(ctx, &activity, activitySQL+` where Actv_ID = @activityId`, sql.Named("activityId", activityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *MSSQLRepository) FindActivitiesAssignedToJob(ctx context.Context, jobID, fiscalYear string) ([]model.Activity, error) {
	activities := []model.Activity{}
	err := r.DB.SelectContext(ctx, &activities, activitySQL+` where `+assignedActivityFilter,
		sql.Named("jobId", jobID),
		sql.Named("fiscalYear", fiscalYear))
	return activities, err
}

func (r *MSSQLRepository) FindActivityAssignedToJob(ctx context.Context, jobID, activityID, fiscalYear string) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.GetContext(ctx, &activity, activitySQL+` where Actv_ID = @activityId and `+assignedActivityFilter,
		sql.Named("jobId", jobID),
		sql.Named("activityId", activityID),
		sql.Named("fiscalYear", fiscalYear))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *MSSQLRepository) FindObjectCodeByCode(ctx context.Context, objectCode string) (*model.ObjectCode, error) {
	var code model.ObjectCode
	err := r.DB.GetContext(ctx, &code, objectCodeSQL+` where CodeID = @objectCode`, sql.Named("objectCode", objectCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *MSSQLRepository) FindObjectCodesAssignedToJob(ctx context.Context, jobID, fiscalYear string) ([]model.JobAssignedObjectCode, error) {
	codes := []model.JobAssignedObjectCode{}
	err := r.DB.SelectContext(ctx, &codes, jobAssignedObjectCodeSQL+` where j.Job_ID = @jobId and j.Year = @fiscalYear`,
		sql.Named("jobId", jobID),
		sql.Named("fiscalYear", fiscalYear))
	return codes, err
}

func (r *MSSQLRepository) FindObjectCodeAssignedToJob(ctx context.Context, jobID, objectCode, fiscalYear string) (*model.JobAssignedObjectCode, error) {
	var code model.JobAssignedObjectCode
	err := r.DB.GetContext(ctx, &code, jobAssignedObjectCodeSQL+`
      where o.CodeID = @objectCode
      and j.Job_ID = @jobId and j.Year = @fiscalYear`,
		sql.Named("jobId", jobID),
		sql.Named("objectCode", objectCode),
		sql.Named("fiscalYear", fiscalYear))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *MSSQLRepository) FindJobActivityObjectCode(ctx context.Context, keys dto.JobActivityObjectCodeKeys) (*model.JobActivityObjectCode, error) {
	var code model.JobActivityObjectCode
	err := r.DB.GetContext(ctx, &code, jobActivityObjectCodeSQL+`
      where Job_ID = @jobId
      and Actv_ID = @activityId
      and ObjCode = @objectCode
      and Year = @fiscalYear`,
		sql.Named("jobId", keys.JobID),
		sql.Named("activityId", keys.ActivityID),
		sql.Named("objectCode", keys.ObjectCode),
		sql.Named("fiscalYear", keys.FiscalYear))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}
