package readstore

import (
	"context"
	"time"

	"canteen-backoffice/internal/infra"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/pgconv"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type MealEntryReadQueries interface {
	ListMemberMealEntries(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMemberMealEntriesParams) ([]sqlc.MealEntries, error)
}

type MealEntryReadStore struct {
	queries MealEntryReadQueries
	db      sqlc.DBTX
}

func NewMealEntryReadStore(queries MealEntryReadQueries, db sqlc.DBTX) *MealEntryReadStore {
	return &MealEntryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MealEntryReadStore) ListByMember(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]queries.MealEntryView, error) {
	rows, err := r.queries.ListMemberMealEntries(ctx, r.db, sqlc.ListMemberMealEntriesParams{
		MemberID: memberID,
		FromAt:   pgconv.TimeToPgtype(from),
		ToAt:     pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meal entries", err)
	}

	views := make([]queries.MealEntryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.MealEntryView{
			ID:         row.ID,
			MemberID:   row.MemberID,
			CompanyID:  row.CompanyID,
			PlaceID:    pgconv.UUIDPtrFromPgtype(row.PlaceID),
			LocationID: pgconv.UUIDPtrFromPgtype(row.LocationID),
			PackageID:  pgconv.UUIDPtrFromPgtype(row.PackageID),
			MealType:   row.MealType,
			Method:     row.Method,
			Status:     row.Status,
			RecordedAt: pgconv.TimeFromPgtype(row.RecordedAt),
			CivilDay:   pgconv.DateFromPgtype(row.CivilDay).Format(civil.DateLayout),
		})
	}
	return views, nil
}
