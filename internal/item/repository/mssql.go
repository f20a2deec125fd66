package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/worktech-api/internal/item"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/jmoiron/sqlx"
)

const itemSQL = `SELECT [ITMSysID] as itemSystemId,
  [Item_ID] as itemId,
  coalesce([DESC], '') as itemDescription,
  coalesce([ItemClass], '') as itemClass,
  coalesce([Type], '') as itemType,
  coalesce([Brand], '') as itemBrand,
  coalesce([Model], '') as itemModel,
  coalesce([Serial], '') as serialNumber,
  coalesce([Status], '') as itemStatus,
  coalesce([Location], '') as location,
  coalesce([Dept], '') as department,
  coalesce([Division], '') as division,
  coalesce([Company], '') as company,
  coalesce([FlType], '') as fuelType,
  coalesce([ExJob_ID], '') as expenseJobId,
  coalesce([ExActv_ID], '') as expenseActivityId,
  coalesce([ExObjCode], '') as expenseObjectCode,
  coalesce([RevJob_ID], '') as revenueJobId,
  coalesce([RevActv_ID], '') as revenueActivityId,
  coalesce([RevObjCode], '') as revenueObjectCode,
  coalesce([Stock], 0) as stock,
  coalesce([Units], '') as unit,
  coalesce([UnitCost], 0) as unitCost,
  coalesce([QtyHand], 0) as quantityOnHand,
  coalesce([ExtItem_ID], '') as externalItemId,
  coalesce([Comments], '') as comments
  FROM [WMITM] WITH (NOLOCK)`

// Columns without a counterpart on model.ResourceItem take the values the
// WorkTech client writes for a new estimate-only item.
const insertItemSQL = `INSERT INTO WMITM (
  ITMSYSID, ITEM_ID, [DESC], RESLIST, EXTITEM_ID,
  ITEMCLASS, CLASSITEM, TYPE, STATUS,
  DEPT, DIVISION, COMPANY, FLTYPE, COMMENTS,
  EXJOB_ID, EXJOBSYSID, EXACTV_ID, EXOBJCODE, EXOCSYSID,
  REVJOBSYSID, REVJOB_ID, REVACTV_ID, REVOBJCODE, REVOCSYSID,
  VEHSYS, STOCK, UNITS, UNITCOST, UNITS2, UNITS3, UNITS4,
  QTYHAND, MINLEVEL, ORDERQTY,
  ORDVEND_ID, VEND_ID, VENDSYSID,
  IREMPURGE, VREMPURGED, VARIANCE, [VALUE],
  VARWARN, VARDOWN, VARUP,
  TAXCODE,
  PAYGROUP, PGSYSID,
  INSTALLVENDOR, DATEINST,
  MEAS_UNITS, SHAPE, LENGTH, DIAMETER, HEIGHT, WIDTH,
  CAPACITY, TANK, QTYHANDCHECK, TANKUSAGECHOICE, CAPACITYFLAG, BRAND,
  DATEIN, CREW, HOURS, HRCOST, INITVAL,
  LOCATION, MODEL,
  ODOM, RUNHRS, ORGODOM, ORGHOURS, PLATE, SERIAL,
  PURCHDATE, PURCHFRM, REPLCOST, REPLYR, RESVAL, REVTD,
  TOTCOST, PURCHPRICE, USELIFE, [YEAR], TRADEIN,
  ODOMUPDATECHECK, HRMETERUPDATECHECK,
  CARDNUMBER,
  ADDRESS, ADDRESS2, ADDRESS3, ADDRESS4,
  BIRTHD, EMAIL,
  PHONE1, PHONE2, PHONE3, PHONEDESC1, PHONEDESC2, PHONEDESC3,
  [POSITION],
  HRSPERPP, PAYOT, BANKOT,
  EBCHOICE, EBPERCENT, EBDOBJCODE, EBDOCSYSID, EBRJOBSYSID, EBRJOB_ID, EBROBJCODE, EBROCSYSID, EBRACTV_ID,
  DEFVEH_ID, EBGROUP, STOCKPILE, PROCESSCOST, ROYALTYCOST, ROYALTYTO, HAULER, DAYS2REORDER,
  FUELCONRATE, FUELOVERLAST, OILCONRATE, OILOVERLAST,
  PAYMETHOD, FIXEDRECRATE, ESTRATE, ESTITEM,
  CVOR, PATROL, UNITP, HASODOMETER, CHARGEOUT, DAILYHRS,
  REVCAPJOB_ID, REVCAPJOBSYSID, REVCAPACTV_ID, REVCAPOBJCODE, REVCAPOCSYSID, OTCHECKTYPE,
  EXTITMSYSID, DEFTC_ID, EMPLSTATUS, EXTARITEM_ID,
  EXTRA1, EXTRA2, DATE1, DATE2, DATE3, PIL,
  ASSET_ID, ASSETSYSID, EXTRAD1, EXTRAC1, STK_MKUP, ORGPOS_ID,
  FEATURE_ID, ACISYSID, SYSTEM, MOD_USER, ROOM_ID, PITEM_ID,
  MEASURE1, MEASURE2, MEASURE3, MEASURE4,
  EXTRAC2, PORT, DIALS, CELLPHONE, FIR_ID, EXTRA3)
VALUES (
  @itemSystemId, @itemId, @itemDescription, 1, @externalItemId,
  @itemClass, 0, @itemType, @itemStatus,
  @department, @division, @company, NULL, @comments,
  NULL, 0, NULL, '', 0,
  0, '', NULL, '', 0,
  NULL, @stock, @unit, @unitCost, NULL, '', '',
  @quantityOnHand, 0.00, 0.00,
  NULL, NULL, 0,
  0, 0, 0.00, 0.00,
  0, 0.00, 0.00,
  NULL,
  NULL, 0,
  NULL, NULL,
  'Metres', 'Rectangle', 0.00, 0.00, 0.00, 0.00,
  0.00, 0, 0, 'Vehicle ID', 0, NULL,
  NULL, NULL, 0.0, 0.00, 0.00,
  @location, @itemModel,
  0.0, 0.00, 0.0, 0.0, NULL, NULL,
  NULL, NULL, 0.00, 0, 0.00, 0.00,
  0.00, 0.00, 0, @modelYear, 0.00,
  0, 0,
  NULL,
  NULL, NULL, NULL, NULL,
  NULL, NULL,
  NULL, NULL, NULL, NULL, NULL, NULL,
  NULL,
  80.00, 0, 0,
  0, 0.000, NULL, 0, 0, NULL, NULL, 0, NULL,
  NULL, NULL, 0, 0.0000, 0.0000, NULL, 0, 0,
  0.00, 0, 0.00, 0,
  'Hourly', 0.00, 0.00, 0,
  0, '', 0.00, 0, 0, 0.00,
  NULL, 0, NULL, NULL, 0, NULL,
  0, NULL, NULL, NULL,
  NULL, NULL, NULL, NULL, NULL, NULL,
  NULL, 0, 0.00, 0, 0.00, NULL,
  NULL, 0, NULL, '', NULL, NULL,
  0.00, 0.00, 0.00, 0.00,
  0, 0, 0, NULL, NULL, NULL)`

type MSSQLRepository struct {
	db sqlx.ExtContext
}

func NewMSSQLRepository(db *sqlx.DB) *MSSQLRepository {
	return &MSSQLRepository{db: db}
}

func (r *MSSQLRepository) WithTx(tx *sqlx.Tx) item.Repository {
	return &MSSQLRepository{db: tx}
}

func (r *MSSQLRepository) FindItemByID(ctx context.Context, itemID string) (*model.ResourceItem, error) {
	var it model.ResourceItem
	err := sqlx.GetContext(ctx, r.db, &it, itemSQL+` where Item_ID = @itemId`, sql.Named("itemId", itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *MSSQLRepository) InsertItem(ctx context.Context, it *model.ResourceItem, modelYear int) error {
	_, err := r.db.ExecContext(ctx, insertItemSQL,
		sql.Named("itemSystemId", it.ItemSystemID),
		sql.Named("itemId", it.ItemID),
		sql.Named("itemDescription", it.ItemDescription),
		sql.Named("externalItemId", it.ExternalItemID),
		sql.Named("itemClass", it.ItemClass),
		sql.Named("itemType", it.ItemType),
		sql.Named("itemStatus", it.ItemStatus),
		sql.Named("department", it.Department),
		sql.Named("division", it.Division),
		sql.Named("company", it.Company),
		sql.Named("comments", it.Comments),
		sql.Named("stock", int(it.Stock)),
		sql.Named("unit", it.Unit),
		sql.Named("unitCost", it.UnitCost),
		sql.Named("quantityOnHand", it.QuantityOnHand),
		sql.Named("location", it.Location),
		sql.Named("itemModel", it.ItemModel),
		sql.Named("modelYear", modelYear))
	return err
}
