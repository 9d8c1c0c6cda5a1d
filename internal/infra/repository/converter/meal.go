package converter

import (
	"canteen-backoffice/internal/domain/fee"
	"canteen-backoffice/internal/domain/meal"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/pgconv"
)

func MealEntryToInsertParams(e *meal.Entry) sqlc.InsertMealEntryParams {
	return sqlc.InsertMealEntryParams{
		ID:         e.ID(),
		MemberID:   e.MemberID(),
		CompanyID:  e.CompanyID(),
		PlaceID:    pgconv.UUIDPtrToPgtype(e.PlaceID()),
		LocationID: pgconv.UUIDPtrToPgtype(e.LocationID()),
		PackageID:  pgconv.UUIDToPgtype(e.PackageID()),
		MealType:   e.MealType().String(),
		Method:     e.Method().String(),
		Status:     e.Status().String(),
		RecordedAt: pgconv.TimeToPgtype(e.RecordedAt()),
		CivilDay:   pgconv.DateToPgtype(e.CivilDay()),
	}
}

func FeeRecordToCreateParams(r *fee.Record) sqlc.CreateFeeRecordParams {
	return sqlc.CreateFeeRecordParams{
		ID:          r.ID(),
		MemberID:    r.MemberID(),
		AmountMinor: r.AmountMinor(),
		Status:      r.Status().String(),
		Note:        r.Note(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
