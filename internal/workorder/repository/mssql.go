package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/workorder"
	"github.com/fekuna/worktech-api/internal/workorder/dto"
	"github.com/jmoiron/sqlx"
)

const workOrderSQL = `SELECT [SRQISysID] as serviceRequestSystemId,
  [WONOs] as workOrderNumber,
  coalesce([Proj_ID], '') as project,
  [DateTime] as requestDateTime,
  [DueDate] as dueDateTime,
  [ScheduleDate] as scheduledDateTime,
  [DoneDateTime] as doneDateTime,
  [ClosedDateTime] as closedDateTime,
  coalesce([ReqBy], '') as requestedBy,
  coalesce([ReqPhone], '') as requestedByPhoneNumber,
  coalesce([Add1], '') as address1,
  coalesce([WOType], '') as workOrderType,
  coalesce([Series], '') as workOrderSeries,
  coalesce([SubType], '') as workOrderSubType,
  coalesce([Subject], '') as subject,
  coalesce([Details], '') as details,
  coalesce([Priority], '') as priority,
  coalesce([ExJob_ID], '') as jobId,
  coalesce([Actv_ID], '') as activityId,
  coalesce([ObjCode], '') as objectCode,
  coalesce([ServiceClass], '') as serviceClass,
  coalesce([ServiceType], '') as serviceType,
  rtrim(coalesce([Year], '')) as fiscalYear,
  coalesce([EvaluatedBy], '') as evaluatedBy,
  coalesce([AssignTo], '') as assignedTo,
  coalesce([Action], '') as action,
  coalesce([ResponseNotes], '') as responseNotes,
  coalesce([BillName], '') as billingName,
  coalesce([UserDef1], '') as userDefined1,
  coalesce([UserDef2], '') as userDefined2,
  coalesce([UserDef3], '') as userDefined3,
  coalesce([UserDef4], '') as userDefined4,
  coalesce([UserDef5], '') as userDefined5
  FROM [AMSRQI] WITH (NOLOCK)`

const resourceSQL = `SELECT [SRISysID] as serviceRequestItemSystemId,
  [SRQISysID] as serviceRequestSystemId,
  [WONOS] as workOrderNumber,
  [SchedDateTime] as startDateTime,
  [ITMSysID] as itemSystemId,
  [Item_ID] as itemId,
  [Qty] as quantity,
  [UnitPrice] as unitPrice,
  [Amt] as baseAmount,
  [LockEst] as lockUnitPrice,
  [LocMargin] as lockMargin,
  coalesce([WorkDesc], '') as workDescription,
  [EndDateTime] as endDateTime,
  coalesce([Step], '') as step
  FROM [AMSRI] WITH (NOLOCK)`

// Columns not carried by model.WorkOrderResource are written with the
// schema's neutral values.
const insertResourceSQL = `INSERT INTO AMSRI (
  SRISYSID, SRQISYSID,
  PPSYSID, PROJ_ID, P_ID, PMD_TASK, WORKSOURCE,
  SCHEDDATETIME,
  ITMSYSID,
  ITEM_ID,
  QTY,
  UNITPRICE,
  AMT,
  LOCKEST, LOCMARGIN,
  WONOS,
  SYSID,
  WORKDESC,
  ENDDATETIME,
  STEP,
  ACTV_ID, RPTCODE, DONE,
  OVERHEAD_PER, OVERHEAD_AMT,
  TAXCODE, MOD_USER,
  WOPRIMARY,
  DIM1, DIM2, DIM3,
  TSISYSID,
  LOCKSCHEDDATE, KIT_ID, LOCKKIT,
  REASONFORCHANGE,
  EXTAX1, EXTAX2, EXPAYABLE,
  MULT, QTY2,
  ACTAMT,
  EXT_ID, ASSIGNTO,
  ACTQTY, PROCESSEDQTY,
  SRAISYSID, OBJCODE, LOCATION)
VALUES (
  @serviceRequestItemSystemId,
  @serviceRequestSystemId,
  0, '', 0, '', '',
  @startDateTime,
  @itemSystemId,
  @itemId,
  @quantity,
  @unitPrice,
  @baseAmount,
  @lockUnitPrice, @lockMargin,
  @workOrderNumber,
  0,
  @workDescription,
  @endDateTime,
  @step,
  '', '', 0,
  0.00, 0.00,
  '', '',
  0,
  0.00, 0.00, 0.00,
  0,
  0, '', 0,
  '',
  0.00, 0.00, 0.00,
  0.00, 1.00,
  0.00,
  '', '',
  0.00, 0.00,
  0, '', '')`

type MSSQLRepository struct {
	db sqlx.ExtContext
}

func NewMSSQLRepository(db *sqlx.DB) *MSSQLRepository {
	return &MSSQLRepository{db: db}
}

func (r *MSSQLRepository) WithTx(tx *sqlx.Tx) workorder.Repository {
	return &MSSQLRepository{db: tx}
}

func (r *MSSQLRepository) FindWorkOrderByNumber(ctx context.Context, workOrderNumber string) (*model.WorkOrder, error) {
	var wo model.WorkOrder
	err := sqlx.GetContext(ctx, r.db, &wo, workOrderSQL+` where WONOs = @workOrderNumber`,
		sql.Named("workOrderNumber", workOrderNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &wo, nil
}

func (r *MSSQLRepository) FindResourcesByWorkOrderNumber(ctx context.Context, workOrderNumber string) ([]model.WorkOrderResource, error) {
	resources := []model.WorkOrderResource{}
	err := sqlx.SelectContext(ctx, r.db, &resources, resourceSQL+` where WONOs = @workOrderNumber`,
		sql.Named("workOrderNumber", workOrderNumber))
	return resources, err
}

func (r *MSSQLRepository) FindResourcesByStartDateTimeRange(ctx context.Context, from, to string) ([]model.WorkOrderResource, error) {
	resources := []model.WorkOrderResource{}
	err := sqlx.SelectContext(ctx, r.db, &resources, resourceSQL+` where SchedDateTime between @startDateFrom and @startDateTo`,
		sql.Named("startDateFrom", from),
		sql.Named("startDateTo", to))
	return resources, err
}

func (r *MSSQLRepository) InsertResource(ctx context.Context, resource *model.WorkOrderResource) error {
	var endDateTime interface{}
	if resource.EndDateTime != nil {
		endDateTime = model.FormatDateTime(*resource.EndDateTime)
	}

	_, err := r.db.ExecContext(ctx, insertResourceSQL,
		sql.Named("serviceRequestItemSystemId", resource.ServiceRequestItemSystemID),
		sql.Named("serviceRequestSystemId", resource.ServiceRequestSystemID),
		sql.Named("startDateTime", model.FormatDateTime(resource.StartDateTime)),
		sql.Named("itemSystemId", resource.ItemSystemID),
		sql.Named("itemId", resource.ItemID),
		sql.Named("quantity", resource.Quantity),
		sql.Named("unitPrice", resource.UnitPrice),
		sql.Named("baseAmount", resource.BaseAmount),
		sql.Named("lockUnitPrice", resource.LockUnitPrice),
		sql.Named("lockMargin", resource.LockMargin),
		sql.Named("workOrderNumber", resource.WorkOrderNumber),
		sql.Named("workDescription", resource.WorkDescription),
		sql.Named("endDateTime", endDateTime),
		sql.Named("step", resource.Step))
	return err
}

func (r *MSSQLRepository) UpdateResource(ctx context.Context, input *dto.UpdateResourceInput) error {
	query, args, _ := buildResourceUpdate(input)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *MSSQLRepository) DeleteResource(ctx context.Context, serviceRequestItemSystemID string) error {
	_, err := r.db.ExecContext(ctx, `delete from AMSRI where SRISysID = @serviceRequestItemSystemId`,
		sql.Named("serviceRequestItemSystemId", serviceRequestItemSystemID))
	return err
}
