// Package worktech is a typed data-access client for the WorkTech work
// management database. It reads work orders, jobs, items, equipment and
// employees, and writes work order resources, resource items, equipment and
// stock transaction batches.
package worktech

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/worktech-api/config"
	"github.com/fekuna/worktech-api/internal/account"
	accountUC "github.com/fekuna/worktech-api/internal/account/usecase"
	"github.com/fekuna/worktech-api/internal/cache"
	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/employee"
	employeeDTO "github.com/fekuna/worktech-api/internal/employee/dto"
	employeeRepo "github.com/fekuna/worktech-api/internal/employee/repository"
	employeeUC "github.com/fekuna/worktech-api/internal/employee/usecase"
	"github.com/fekuna/worktech-api/internal/equipment"
	equipmentDTO "github.com/fekuna/worktech-api/internal/equipment/dto"
	equipmentRepo "github.com/fekuna/worktech-api/internal/equipment/repository"
	equipmentUC "github.com/fekuna/worktech-api/internal/equipment/usecase"
	"github.com/fekuna/worktech-api/internal/item"
	itemDTO "github.com/fekuna/worktech-api/internal/item/dto"
	itemRepo "github.com/fekuna/worktech-api/internal/item/repository"
	itemUC "github.com/fekuna/worktech-api/internal/item/usecase"
	"github.com/fekuna/worktech-api/internal/job"
	jobDTO "github.com/fekuna/worktech-api/internal/job/dto"
	jobRepo "github.com/fekuna/worktech-api/internal/job/repository"
	jobUC "github.com/fekuna/worktech-api/internal/job/usecase"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/stock"
	stockDTO "github.com/fekuna/worktech-api/internal/stock/dto"
	stockRepo "github.com/fekuna/worktech-api/internal/stock/repository"
	stockUC "github.com/fekuna/worktech-api/internal/stock/usecase"
	"github.com/fekuna/worktech-api/internal/systemid"
	"github.com/fekuna/worktech-api/internal/workorder"
	workorderDTO "github.com/fekuna/worktech-api/internal/workorder/dto"
	workorderRepo "github.com/fekuna/worktech-api/internal/workorder/repository"
	workorderUC "github.com/fekuna/worktech-api/internal/workorder/usecase"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	WorkOrder             = model.WorkOrder
	WorkOrderResource     = model.WorkOrderResource
	Job                   = model.Job
	Activity              = model.Activity
	ObjectCode            = model.ObjectCode
	JobAssignedObjectCode = model.JobAssignedObjectCode
	JobActivityObjectCode = model.JobActivityObjectCode
	AccountNumber         = model.AccountNumber
	ResourceItem          = model.ResourceItem
	EquipmentItem         = model.EquipmentItem
	EmployeeItem          = model.EmployeeItem
	EmployeePayCode       = model.EmployeePayCode
	TimeCode              = model.TimeCode
	TimesheetBatchEntry   = model.TimesheetBatchEntry

	AddResourceInput           = workorderDTO.AddResourceInput
	UpdateResourceInput        = workorderDTO.UpdateResourceInput
	AddResourceItemInput       = itemDTO.AddResourceItemInput
	JobActivityObjectCodeKeys  = jobDTO.JobActivityObjectCodeKeys
	EquipmentFilters           = equipmentDTO.EquipmentFilters
	AddEquipmentInput          = equipmentDTO.AddEquipmentInput
	UpdateEquipmentFields      = equipmentDTO.UpdateEquipmentFields
	CreateBatchInput           = stockDTO.CreateBatchInput
	CreateBatchEntryInput      = stockDTO.CreateBatchEntryInput
	EmployeeFilters            = employeeDTO.EmployeeFilters
	TimesheetBatchEntryFilters = employeeDTO.TimesheetBatchEntryFilters

	NotFoundError     = model.NotFoundError
	InvalidInputError = model.InvalidInputError
)

var (
	ErrNotFound              = model.ErrNotFound
	ErrInvalidInput          = model.ErrInvalidInput
	ErrAllocationUnavailable = model.ErrAllocationUnavailable
)

// DefaultUserID is the batch user when Options.DefaultUserID is empty.
const DefaultUserID = "worktech-api"

type Options struct {
	Logger logger.ZapLogger
	// Cache configures the lookup caches. Nil means in-memory with the
	// default ttl.
	Cache *cache.Options
	// DefaultUserID is recorded on stock transaction batches when neither the
	// input nor the context carries a user. Empty means DefaultUserID.
	DefaultUserID string
	// Locker takes the exclusive table locks used while allocating ids and
	// writing batches. Nil means SQL Server TABLOCKX hints.
	Locker database.TableLocker
}

// withDefaults fills in unset options on a copy. opts and its Cache are
// never modified.
func (opts *Options) withDefaults() Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}

	c := cache.Options{Backend: cache.BackendMemory, TTL: cache.DefaultTTL}
	if o.Cache != nil {
		c = *o.Cache
	}
	if c.Logger == nil {
		c.Logger = o.Logger
	}
	o.Cache = &c

	if o.DefaultUserID == "" {
		o.DefaultUserID = DefaultUserID
	}
	if o.Locker == nil {
		o.Locker = database.TabLockX{}
	}
	return o
}

// Client is the entry point for every read and write against the database.
type Client struct {
	db     *sqlx.DB
	redis  *redis.Client
	owned  bool
	logger logger.ZapLogger

	txr       *database.Transactor
	allocator *systemid.Allocator

	workOrders workorder.UseCase
	jobs       job.UseCase
	accounts   account.UseCase
	items      item.UseCase
	equipment  equipment.UseCase
	stock      stock.UseCase
	employees  employee.UseCase
}

// New wires a client around an open connection pool. The caller keeps
// ownership of db.
func New(db *sqlx.DB, opts *Options) *Client {
	o := opts.withDefaults()
	log, cacheOpts, locker := o.Logger, o.Cache, o.Locker

	// 1. Repositories
	woRepo := workorderRepo.NewMSSQLRepository(db)
	jRepo := jobRepo.NewMSSQLRepository(db)
	iRepo := itemRepo.NewMSSQLRepository(db)
	eqRepo := equipmentRepo.NewMSSQLRepository(db)
	stRepo := stockRepo.NewMSSQLRepository(db)
	empRepo := employeeRepo.NewMSSQLRepository(db)

	// 2. Shared write infrastructure
	txr := database.NewTransactor(db, log)
	allocator := systemid.NewAllocator(locker)

	// 3. Use cases
	jobs := jobUC.NewJobUseCase(jRepo, cacheOpts, log)
	items := itemUC.NewItemUseCase(iRepo, txr, allocator, cacheOpts, log)
	workOrders := workorderUC.NewWorkOrderUseCase(woRepo, iRepo, txr, allocator, cacheOpts, log)

	return &Client{
		db:         db,
		logger:     log,
		txr:        txr,
		allocator:  allocator,
		workOrders: workOrders,
		jobs:       jobs,
		accounts:   accountUC.NewAccountUseCase(workOrders, jobs, log),
		items:      items,
		equipment:  equipmentUC.NewEquipmentUseCase(eqRepo, items, cacheOpts, log),
		stock:      stockUC.NewStockUseCase(stRepo, woRepo, txr, locker, o.DefaultUserID, log),
		employees:  employeeUC.NewEmployeeUseCase(empRepo, cacheOpts, log),
	}
}

// Open connects to SQL Server, and to Redis when the cache backend asks for
// it, using cfg. Close releases both.
func Open(cfg *config.Config, log logger.ZapLogger) (*Client, error) {
	if log == nil {
		log = logger.NewNop()
	}

	db, err := database.NewMSSQL(&database.Config{
		Host:            cfg.MSSQL.Host,
		Port:            cfg.MSSQL.Port,
		Instance:        cfg.MSSQL.Instance,
		User:            cfg.MSSQL.User,
		Password:        cfg.MSSQL.Password,
		Database:        cfg.MSSQL.Database,
		Encrypt:         cfg.MSSQL.Encrypt,
		MaxOpenConns:    cfg.MSSQL.MaxOpenConns,
		MaxIdleConns:    cfg.MSSQL.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.MSSQL.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.MSSQL.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	log.Info("Connected to SQL Server", zap.String("host", cfg.MSSQL.Host), zap.String("database", cfg.MSSQL.Database))

	cacheOpts := &cache.Options{
		Backend: cfg.Cache.Backend,
		TTL:     time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		Size:    cfg.Cache.Size,
		Logger:  log,
	}

	var rdb *redis.Client
	if cfg.Cache.Backend == cache.BackendRedis {
		rdb, err = cache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		cacheOpts.Redis = rdb
	}

	c := New(db, &Options{
		Logger:        log,
		Cache:         cacheOpts,
		DefaultUserID: cfg.WorkTech.UserID,
	})
	c.redis = rdb
	c.owned = true
	return c, nil
}

// Close releases connections opened by Open. Clients built with New leave
// the pool to the caller.
func (c *Client) Close() error {
	if !c.owned {
		return nil
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.logger.Warn("Failed to close redis", zap.Error(err))
		}
	}
	return c.db.Close()
}

// Transact runs fn in one transaction. fn's error is returned unchanged after
// rollback.
func (c *Client) Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return c.txr.Execute(ctx, fn)
}

// LastSystemID reads the shared system id counter inside tx. ok is false when
// the counter row is missing.
func (c *Client) LastSystemID(ctx context.Context, tx *sqlx.Tx) (id string, ok bool, err error) {
	return c.allocator.LastSystemID(ctx, tx)
}

// IncrementLastSystemID must be the last statement before commit in a writer
// that used LastSystemID or NextSystemID.
func (c *Client) IncrementLastSystemID(ctx context.Context, tx *sqlx.Tx) error {
	return c.allocator.IncrementLastSystemID(ctx, tx)
}

// NextSystemID locks table and the counter, then returns the id a new row in
// table should use.
func (c *Client) NextSystemID(ctx context.Context, tx *sqlx.Tx, table string) (string, error) {
	return c.allocator.Next(ctx, tx, table)
}

func (c *Client) GetWorkOrderByWorkOrderNumber(ctx context.Context, workOrderNumber string) (*WorkOrder, error) {
	return c.workOrders.GetWorkOrderByWorkOrderNumber(ctx, workOrderNumber)
}

func (c *Client) GetWorkOrderResourcesByWorkOrderNumber(ctx context.Context, workOrderNumber string) ([]WorkOrderResource, error) {
	return c.workOrders.GetResourcesByWorkOrderNumber(ctx, workOrderNumber)
}

func (c *Client) GetWorkOrderResourcesByStartDateTimeRange(ctx context.Context, from, to time.Time) ([]WorkOrderResource, error) {
	return c.workOrders.GetResourcesByStartDateTimeRange(ctx, from, to)
}

// GetWorkOrderResourcesByStartDate takes a date such as "2024-03-01".
func (c *Client) GetWorkOrderResourcesByStartDate(ctx context.Context, startDate string) ([]WorkOrderResource, error) {
	return c.workOrders.GetResourcesByStartDate(ctx, startDate)
}

// AddWorkOrderResource returns the new resource's system id.
func (c *Client) AddWorkOrderResource(ctx context.Context, input *AddResourceInput) (string, error) {
	return c.workOrders.AddResource(ctx, input)
}

func (c *Client) UpdateWorkOrderResource(ctx context.Context, input *UpdateResourceInput) error {
	return c.workOrders.UpdateResource(ctx, input)
}

func (c *Client) DeleteWorkOrderResource(ctx context.Context, serviceRequestItemSystemID string) error {
	return c.workOrders.DeleteResource(ctx, serviceRequestItemSystemID)
}

// ResolveAccountNumber returns the account number a work order bills to. An
// empty objectCode uses the work order's own object code.
func (c *Client) ResolveAccountNumber(ctx context.Context, workOrderNumber, objectCode string) (*AccountNumber, error) {
	return c.accounts.ResolveAccountNumber(ctx, workOrderNumber, objectCode)
}

func (c *Client) GetJobByJobID(ctx context.Context, jobID string) (*Job, error) {
	return c.jobs.GetJobByJobID(ctx, jobID)
}

func (c *Client) GetActivityByActivityID(ctx context.Context, activityID string) (*Activity, error) {
	return c.jobs.GetActivityByActivityID(ctx, activityID)
}

func (c *Client) GetActivitiesAssignedToJobByFiscalYear(ctx context.Context, jobID, fiscalYear string) ([]Activity, error) {
	return c.jobs.GetActivitiesAssignedToJobByFiscalYear(ctx, jobID, fiscalYear)
}

func (c *Client) GetActivityAssignedToJobByActivityIDAndFiscalYear(ctx context.Context, jobID, activityID, fiscalYear string) (*Activity, error) {
	return c.jobs.GetActivityAssignedToJobByActivityIDAndFiscalYear(ctx, jobID, activityID, fiscalYear)
}

func (c *Client) GetObjectCodeByObjectCode(ctx context.Context, objectCode string, bypassCache bool) (*ObjectCode, error) {
	return c.jobs.GetObjectCodeByObjectCode(ctx, objectCode, bypassCache)
}

func (c *Client) GetObjectCodesAssignedToJobByFiscalYear(ctx context.Context, jobID, fiscalYear string) ([]JobAssignedObjectCode, error) {
	return c.jobs.GetObjectCodesAssignedToJobByFiscalYear(ctx, jobID, fiscalYear)
}

func (c *Client) GetObjectCodeAssignedToJobByObjectCodeAndFiscalYear(ctx context.Context, jobID, objectCode, fiscalYear string) (*JobAssignedObjectCode, error) {
	return c.jobs.GetObjectCodeAssignedToJobByObjectCodeAndFiscalYear(ctx, jobID, objectCode, fiscalYear)
}

func (c *Client) GetJobActivityObjectCodeByKeys(ctx context.Context, keys JobActivityObjectCodeKeys) (*JobActivityObjectCode, error) {
	return c.jobs.GetJobActivityObjectCodeByKeys(ctx, keys)
}

func (c *Client) GetResourceItemByItemID(ctx context.Context, itemID string) (*ResourceItem, error) {
	return c.items.GetItemByItemID(ctx, itemID)
}

// AddResourceItem returns the new item's system id.
func (c *Client) AddResourceItem(ctx context.Context, input *AddResourceItemInput) (string, error) {
	return c.items.AddResourceItem(ctx, input)
}

func (c *Client) GetEquipment(ctx context.Context, filters *EquipmentFilters) ([]EquipmentItem, error) {
	return c.equipment.GetEquipment(ctx, filters)
}

func (c *Client) GetEquipmentByEquipmentID(ctx context.Context, equipmentID string, bypassCache bool) (*EquipmentItem, error) {
	return c.equipment.GetEquipmentByEquipmentID(ctx, equipmentID, bypassCache)
}

func (c *Client) AddEquipment(ctx context.Context, input *AddEquipmentInput) (string, error) {
	return c.equipment.AddEquipment(ctx, input)
}

func (c *Client) UpdateEquipmentFields(ctx context.Context, equipmentID string, fields *UpdateEquipmentFields) error {
	return c.equipment.UpdateEquipmentFields(ctx, equipmentID, fields)
}

func (c *Client) ClearEquipmentCache(ctx context.Context) {
	c.equipment.ClearCache(ctx)
}

// CreateStockTransactionBatch returns the new batch's system id.
func (c *Client) CreateStockTransactionBatch(ctx context.Context, input *CreateBatchInput) (int64, error) {
	return c.stock.CreateStockTransactionBatch(ctx, input)
}

func (c *Client) GetEmployees(ctx context.Context, filters *EmployeeFilters) ([]EmployeeItem, error) {
	return c.employees.GetEmployees(ctx, filters)
}

// GetEmployeePayCodes lists pay codes in effect on effectiveDate, or all of
// them when effectiveDate is nil.
func (c *Client) GetEmployeePayCodes(ctx context.Context, employeeNumber string, effectiveDate *time.Time) ([]EmployeePayCode, error) {
	return c.employees.GetEmployeePayCodes(ctx, employeeNumber, effectiveDate)
}

func (c *Client) GetTimeCodes(ctx context.Context) ([]TimeCode, error) {
	return c.employees.GetTimeCodes(ctx)
}

func (c *Client) GetEmployeeTimeCodes(ctx context.Context, employeeNumber string, timesheetMaxAgeDays int, bypassCache bool) ([]TimeCode, error) {
	return c.employees.GetEmployeeTimeCodes(ctx, employeeNumber, timesheetMaxAgeDays, bypassCache)
}

func (c *Client) GetTimesheetBatchEntries(ctx context.Context, filters *TimesheetBatchEntryFilters) ([]TimesheetBatchEntry, error) {
	return c.employees.GetTimesheetBatchEntries(ctx, filters)
}
