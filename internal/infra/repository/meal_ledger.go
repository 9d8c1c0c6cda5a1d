package repository

import (
	"context"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/infra/repository/converter"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
)

// OneSuccessPerDayIndex is the partial unique index guarding the meal ledger.
const OneSuccessPerDayIndex = "meal_entries_one_success_per_day_uq"

type MealLedgerWriteQueries interface {
	InsertMealEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMealEntryParams) error
}

type MealLedgerRepository struct {
	queries MealLedgerWriteQueries
}

func NewMealLedgerRepository(queries MealLedgerWriteQueries) *MealLedgerRepository {
	return &MealLedgerRepository{
		queries: queries,
	}
}

// Record appends an entry. A second success for the same member, meal type and civil
// day surfaces as KindDuplicateKey on OneSuccessPerDayIndex.
func (r *MealLedgerRepository) Record(ctx context.Context, tx sqlc.DBTX, entry *meal.Entry) error {
	err := r.queries.InsertMealEntry(ctx, tx, converter.MealEntryToInsertParams(entry))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to insert meal entry", err)
		if infra.IsConstraint(wrapped, OneSuccessPerDayIndex) {
			return infra.WrapRepoErr("meal already recorded for this civil day", err, infra.KindDuplicateKey)
		}
		return wrapped
	}
	return nil
}
