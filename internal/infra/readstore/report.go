package readstore

import (
	"context"
	"time"

	"canteen-backoffice/internal/infra"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/pgconv"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReportQueries interface {
	MealReportByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.MealReportByDayParams) ([]sqlc.MealReportByDayRow, error)
	MealReportByMealType(ctx context.Context, db sqlc.DBTX, arg sqlc.MealReportByMealTypeParams) ([]sqlc.MealReportByMealTypeRow, error)
	MealReportByBucket(ctx context.Context, db sqlc.DBTX, arg sqlc.MealReportByBucketParams) ([]sqlc.MealReportByBucketRow, error)
	FeeReportByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.FeeReportByDayParams) ([]sqlc.FeeReportByDayRow, error)
	FeeReportByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.FeeReportByStatusParams) ([]sqlc.FeeReportByStatusRow, error)
	PendingFeeTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.PendingFeeTotalsParams) (sqlc.PendingFeeTotalsRow, error)
	CountDistinctCollectors(ctx context.Context, db sqlc.DBTX, arg sqlc.CountDistinctCollectorsParams) (int64, error)
}

// ReportReadStore expects an already narrowed scope.
type ReportReadStore struct {
	queries ReportQueries
	db      sqlc.DBTX
}

func NewReportReadStore(queries ReportQueries, db sqlc.DBTX) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
	}
}

type scopeArgs struct {
	company, place, location pgtype.UUID
}

func toScopeArgs(s queries.Scope) scopeArgs {
	return scopeArgs{
		company:  pgconv.UUIDPtrToPgtype(s.CompanyID),
		place:    pgconv.UUIDPtrToPgtype(s.PlaceID),
		location: pgconv.UUIDPtrToPgtype(s.LocationID),
	}
}

func (r *ReportReadStore) MealsByDay(ctx context.Context, scope queries.Scope, tr queries.TimeRange) ([]queries.MealReportRow, error) {
	sa := toScopeArgs(scope)
	rows, err := r.queries.MealReportByDay(ctx, r.db, sqlc.MealReportByDayParams{
		FromAt:     pgconv.TimeToPgtype(tr.From),
		ToAt:       pgconv.TimeToPgtype(tr.To),
		CompanyID:  sa.company,
		PlaceID:    sa.place,
		LocationID: sa.location,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate meals by day", err)
	}

	out := make([]queries.MealReportRow, 0, len(rows))
	for _, row := range rows {
		day := pgconv.DateFromPgtype(row.CivilDay)
		out = append(out, queries.MealReportRow{
			Key:        day.Format(civil.DateLayout),
			MealCounts: queries.MealCounts{Face: row.FaceCount, Card: row.CardCount, Total: row.Total},
		})
	}
	return out, nil
}

func (r *ReportReadStore) MealsByMealType(ctx context.Context, scope queries.Scope, tr queries.TimeRange) ([]queries.MealReportRow, error) {
	sa := toScopeArgs(scope)
	rows, err := r.queries.MealReportByMealType(ctx, r.db, sqlc.MealReportByMealTypeParams{
		FromAt:     pgconv.TimeToPgtype(tr.From),
		ToAt:       pgconv.TimeToPgtype(tr.To),
		CompanyID:  sa.company,
		PlaceID:    sa.place,
		LocationID: sa.location,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate meals by meal type", err)
	}

	out := make([]queries.MealReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.MealReportRow{
			Key:        row.MealType,
			MealCounts: queries.MealCounts{Face: row.FaceCount, Card: row.CardCount, Total: row.Total},
		})
	}
	return out, nil
}

func (r *ReportReadStore) MealsByBucket(ctx context.Context, scope queries.Scope, tr queries.TimeRange, bucket time.Duration, offsetSeconds int) ([]queries.MealReportRow, error) {
	sa := toScopeArgs(scope)
	rows, err := r.queries.MealReportByBucket(ctx, r.db, sqlc.MealReportByBucketParams{
		OffsetSeconds: int64(offsetSeconds),
		BucketSeconds: int64(bucket / time.Second),
		FromAt:        pgconv.TimeToPgtype(tr.From),
		ToAt:          pgconv.TimeToPgtype(tr.To),
		CompanyID:     sa.company,
		PlaceID:       sa.place,
		LocationID:    sa.location,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate meals by bucket", err)
	}

	out := make([]queries.MealReportRow, 0, len(rows))
	for _, row := range rows {
		start := pgconv.TimeFromPgtype(row.BucketStart)
		out = append(out, queries.MealReportRow{
			Start:      &start,
			MealCounts: queries.MealCounts{Face: row.FaceCount, Card: row.CardCount, Total: row.Total},
		})
	}
	return out, nil
}

func (r *ReportReadStore) FeesByDay(ctx context.Context, scope queries.Scope, tr queries.TimeRange, offsetSeconds int) ([]queries.FeeReportRow, error) {
	sa := toScopeArgs(scope)
	rows, err := r.queries.FeeReportByDay(ctx, r.db, sqlc.FeeReportByDayParams{
		OffsetSeconds: int64(offsetSeconds),
		FromAt:        pgconv.TimeToPgtype(tr.From),
		ToAt:          pgconv.TimeToPgtype(tr.To),
		CompanyID:     sa.company,
		PlaceID:       sa.place,
		LocationID:    sa.location,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate fees by day", err)
	}

	out := make([]queries.FeeReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.FeeReportRow{
			Key:                pgconv.DateFromPgtype(row.Day).Format(civil.DateLayout),
			RecordCount:        row.RecordCount,
			AmountMinor:        row.AmountMinor,
			PendingCount:       row.PendingCount,
			PendingAmountMinor: row.PendingAmountMinor,
		})
	}
	return out, nil
}

func (r *ReportReadStore) FeesByStatus(ctx context.Context, scope queries.Scope, tr queries.TimeRange) ([]queries.FeeReportRow, error) {
	sa := toScopeArgs(scope)
	rows, err := r.queries.FeeReportByStatus(ctx, r.db, sqlc.FeeReportByStatusParams{
		FromAt:     pgconv.TimeToPgtype(tr.From),
		ToAt:       pgconv.TimeToPgtype(tr.To),
		CompanyID:  sa.company,
		PlaceID:    sa.place,
		LocationID: sa.location,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate fees by status", err)
	}

	out := make([]queries.FeeReportRow, 0, len(rows))
	for _, row := range rows {
		fr := queries.FeeReportRow{
			Key:         row.Status,
			RecordCount: row.RecordCount,
			AmountMinor: row.AmountMinor,
		}
		if row.Status == "pending" {
			fr.PendingCount = row.RecordCount
			fr.PendingAmountMinor = row.AmountMinor
		}
		out = append(out, fr)
	}
	return out, nil
}

func (r *ReportReadStore) PendingFees(ctx context.Context, scope queries.Scope) (queries.PendingFees, error) {
	sa := toScopeArgs(scope)
	row, err := r.queries.PendingFeeTotals(ctx, r.db, sqlc.PendingFeeTotalsParams{
		CompanyID:  sa.company,
		PlaceID:    sa.place,
		LocationID: sa.location,
	})
	if err != nil {
		return queries.PendingFees{}, infra.WrapRepoErr("failed to total pending fees", err)
	}
	return queries.PendingFees{Count: row.PendingCount, AmountMinor: row.PendingAmountMinor}, nil
}

func (r *ReportReadStore) DistinctCollectors(ctx context.Context, scope queries.Scope, tr queries.TimeRange) (int64, error) {
	sa := toScopeArgs(scope)
	n, err := r.queries.CountDistinctCollectors(ctx, r.db, sqlc.CountDistinctCollectorsParams{
		FromAt:     pgconv.TimeToPgtype(tr.From),
		ToAt:       pgconv.TimeToPgtype(tr.To),
		CompanyID:  sa.company,
		PlaceID:    sa.place,
		LocationID: sa.location,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count collectors", err)
	}
	return n, nil
}
