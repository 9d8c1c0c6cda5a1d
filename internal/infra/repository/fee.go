package repository

import (
	"context"
	"time"

	"canteen-backoffice/internal/domain/fee"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/infra/repository/converter"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FeeWriteQueries interface {
	CreateFeeRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFeeRecordParams) error
	MarkFeeRecordPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkFeeRecordPaidParams) (int64, error)
}

type FeeRepository struct {
	queries FeeWriteQueries
}

func NewFeeRepository(queries FeeWriteQueries) *FeeRepository {
	return &FeeRepository{
		queries: queries,
	}
}

func (r *FeeRepository) Create(ctx context.Context, tx sqlc.DBTX, rec *fee.Record) error {
	err := r.queries.CreateFeeRecord(ctx, tx, converter.FeeRecordToCreateParams(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to create fee record", err)
	}
	return nil
}

// MarkPaid reports false when the record was not pending.
func (r *FeeRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paidAt time.Time) (bool, error) {
	n, err := r.queries.MarkFeeRecordPaid(ctx, tx, sqlc.MarkFeeRecordPaidParams{
		ID:     id,
		PaidAt: pgconv.TimeToPgtype(paidAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark fee record paid", err)
	}
	return n > 0, nil
}
