package readstore

import (
	"context"
	"time"

	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/domain/mealpackage"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/infra/repository/converter"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/pgconv"
	"canteen-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// LookupQueries are the single-row checks commands run inside their transaction.
type LookupQueries interface {
	HasPendingFee(ctx context.Context, db sqlc.DBTX, memberID uuid.UUID) (bool, error)
	CountPendingFeesByMember(ctx context.Context, db sqlc.DBTX, memberID uuid.UUID) (int64, error)
	HasSuccessfulMealBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.HasSuccessfulMealBetweenParams) (bool, error)
	FindPackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MealPackages, error)
	ListWindowsByPackageIDs(ctx context.Context, db sqlc.DBTX, packageIds []uuid.UUID) ([]sqlc.MealWindows, error)
	FindCompanyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Companies, error)
	FindPlaceCompany(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	FindLocationPlace(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	FindFeeRecordForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FeeRecords, error)
}

type LookupReadStore struct {
	queries LookupQueries
	db      sqlc.DBTX
}

func NewLookupReadStore(queries LookupQueries, db sqlc.DBTX) *LookupReadStore {
	return &LookupReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LookupReadStore) HasPendingFee(ctx context.Context, memberID uuid.UUID) (bool, error) {
	pending, err := r.queries.HasPendingFee(ctx, r.db, memberID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending fees", err)
	}
	return pending, nil
}

func (r *LookupReadStore) PendingFeeCount(ctx context.Context, memberID uuid.UUID) (int64, error) {
	n, err := r.queries.CountPendingFeesByMember(ctx, r.db, memberID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending fees", err)
	}
	return n, nil
}

func (r *LookupReadStore) MealCollectedBetween(ctx context.Context, memberID uuid.UUID, mealType meal.MealType, from, to time.Time) (bool, error) {
	found, err := r.queries.HasSuccessfulMealBetween(ctx, r.db, sqlc.HasSuccessfulMealBetweenParams{
		MemberID: memberID,
		MealType: mealType.String(),
		FromAt:   pgconv.TimeToPgtype(from),
		ToAt:     pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check meal ledger", err)
	}
	return found, nil
}

func (r *LookupReadStore) PackageByID(ctx context.Context, id uuid.UUID) (*mealpackage.Package, error) {
	row, err := r.queries.FindPackageByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}
	windows, err := r.queries.ListWindowsByPackageIDs(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meal windows", err)
	}
	pkg, err := converter.ToPackage(row, windows)
	if err != nil {
		return nil, infra.WrapRepoErr("stored package is inconsistent", err, infra.KindDBFailure)
	}
	return pkg, nil
}

func (r *LookupReadStore) CompanyByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	row, err := r.queries.FindCompanyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find company", err)
	}
	co, err := converter.ToCompany(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored company is inconsistent", err, infra.KindDBFailure)
	}
	return co, nil
}

func (r *LookupReadStore) PlaceCompany(ctx context.Context, placeID uuid.UUID) (uuid.UUID, error) {
	companyID, err := r.queries.FindPlaceCompany(ctx, r.db, placeID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("place not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find place", err)
	}
	return companyID, nil
}

func (r *LookupReadStore) LocationPlace(ctx context.Context, locationID uuid.UUID) (uuid.UUID, error) {
	placeID, err := r.queries.FindLocationPlace(ctx, r.db, locationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find location", err)
	}
	return placeID, nil
}

// FeeRecordForUpdate locks the row until the surrounding transaction ends.
func (r *LookupReadStore) FeeRecordForUpdate(ctx context.Context, id uuid.UUID) (*shared.FeeSnapshot, error) {
	row, err := r.queries.FindFeeRecordForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("fee record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find fee record", err)
	}
	return &shared.FeeSnapshot{
		ID:          row.ID,
		MemberID:    row.MemberID,
		AmountMinor: row.AmountMinor,
		Status:      row.Status,
		PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
	}, nil
}
