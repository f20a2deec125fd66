package usecase

import (
	"context"
	"time"

	"github.com/fekuna/worktech-api/internal/auth"
	"github.com/fekuna/worktech-api/internal/database"
	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/stock"
	"github.com/fekuna/worktech-api/internal/stock/dto"
	"github.com/fekuna/worktech-api/internal/validation"
	"github.com/fekuna/worktech-api/internal/workorder"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type stockUseCase struct {
	repo          stock.Repository
	workOrders    workorder.Repository
	txr           *database.Transactor
	locker        database.TableLocker
	defaultUserID string
	logger        logger.ZapLogger
	now           func() time.Time
}

func NewStockUseCase(
	repo stock.Repository,
	workOrders workorder.Repository,
	txr *database.Transactor,
	locker database.TableLocker,
	defaultUserID string,
	log logger.ZapLogger,
) stock.UseCase {
	return &stockUseCase{
		repo:          repo,
		workOrders:    workOrders,
		txr:           txr,
		locker:        locker,
		defaultUserID: defaultUserID,
		logger:        log,
		now:           time.Now,
	}
}

func (uc *stockUseCase) CreateStockTransactionBatch(ctx context.Context, input *dto.CreateBatchInput) (int64, error) {
	if err := validation.Struct(input); err != nil {
		return 0, err
	}

	userID := input.UserID
	if userID == "" {
		userID = auth.GetUserID(ctx)
	}
	if userID == "" {
		userID = uc.defaultUserID
	}

	batchDate := model.FormatDate(uc.now())
	if input.BatchDate != nil {
		batchDate = *input.BatchDate
	}

	description := batchDate + " - " + model.StockTransactionBatchType
	if input.BatchDescription != nil {
		description = *input.BatchDescription
	}
	if r := []rune(description); len(r) > model.BatchDescriptionMaxLength {
		description = string(r[:model.BatchDescriptionMaxLength])
	}

	log := uc.logger.With(
		zap.String("operation_id", uuid.NewString()),
		zap.String("user_id", userID),
		zap.Int("entries", len(input.Entries)),
	)

	var batchID int64
	err := uc.txr.Execute(ctx, func(tx *sqlx.Tx) error {
		if err := uc.locker.LockTable(ctx, tx, stock.BatchTable); err != nil {
			return err
		}
		if err := uc.locker.LockTable(ctx, tx, stock.BatchEntryTable); err != nil {
			return err
		}

		repo := uc.repo.WithTx(tx)

		id, err := repo.InsertBatch(ctx, &model.StockTransactionBatch{
			BatchType:        model.StockTransactionBatchType,
			BatchDescription: description,
			UserID:           userID,
			BatchDate:        batchDate,
		})
		if err != nil {
			return err
		}

		b := &batchResolver{
			repo:          repo,
			workOrders:    uc.workOrders.WithTx(tx),
			locationCodes: map[string]string{},
		}

		for i := range input.Entries {
			entry, err := b.resolve(ctx, &input.Entries[i])
			if err != nil {
				return err
			}
			entry.BatchSystemID = id
			entry.UserID = userID
			if entry.EntryDate == "" {
				entry.EntryDate = batchDate
			}

			if err := repo.InsertBatchEntry(ctx, entry); err != nil {
				return err
			}
		}

		batchID = id
		return nil
	})
	if err != nil {
		log.Error("Failed to create stock transaction batch", zap.Error(err))
		return 0, err
	}

	log.Info("Stock transaction batch created", zap.Int64("batch_id", batchID))
	return batchID, nil
}

// batchResolver fills in the missing fields of batch entries. Location codes
// are remembered per item for the life of one batch.
type batchResolver struct {
	repo          stock.Repository
	workOrders    workorder.Repository
	locationCodes map[string]string
}

func (b *batchResolver) resolve(ctx context.Context, in *dto.CreateBatchEntryInput) (*model.StockTransactionBatchEntry, error) {
	entry := &model.StockTransactionBatchEntry{
		WorkOrderNumber: in.WorkOrderNumber,
		ItemNumber:      in.ItemNumber,
		Quantity:        in.Quantity,
		TransactionType: model.StockUsageTransactionType,
	}
	if in.EntryDate != nil {
		entry.EntryDate = *in.EntryDate
	}

	if in.JobID == nil || in.ActivityID == nil || in.ObjectCode == nil {
		wo, err := b.workOrders.FindWorkOrderByNumber(ctx, in.WorkOrderNumber)
		if err != nil {
			return nil, err
		}
		if wo != nil {
			entry.JobID = wo.JobID
			entry.ActivityID = wo.ActivityID
			entry.ObjectCode = wo.ObjectCode
		}
	}
	if in.JobID != nil {
		entry.JobID = *in.JobID
	}
	if in.ActivityID != nil {
		entry.ActivityID = *in.ActivityID
	}
	if in.ObjectCode != nil {
		entry.ObjectCode = *in.ObjectCode
	}

	if in.LocationCode != nil {
		entry.LocationCode = *in.LocationCode
		return entry, nil
	}

	locationCode, ok := b.locationCodes[in.ItemNumber]
	if !ok {
		found, _, err := b.repo.FindDefaultLocationCode(ctx, in.ItemNumber)
		if err != nil {
			return nil, err
		}
		locationCode = found
		b.locationCodes[in.ItemNumber] = locationCode
	}
	entry.LocationCode = locationCode

	return entry, nil
}
