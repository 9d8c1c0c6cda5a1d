//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/infra"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMealLedgerWriteQueries struct {
	mock.Mock
}

func (m *MockMealLedgerWriteQueries) InsertMealEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMealEntryParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestMealLedgerRecord(t *testing.T) {
	at := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	entry, err := meal.NewSuccessEntry(meal.EntryRefs{
		MemberID:  uuid.New(),
		CompanyID: uuid.New(),
		PackageID: uuid.New(),
	}, meal.MealTypeLunch, meal.MethodFace, at, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
		},
		{
			name:      "second success on the same civil day",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: OneSuccessPerDayIndex},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "other unique violation is still a duplicate key",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "meal_entries_pkey"},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "missing member",
			mockError: &pgconn.PgError{Code: "23503", ConstraintName: "meal_entries_member_id_fkey"},
			wantKind:  infra.KindForeignKeyViolated,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockMealLedgerWriteQueries)
			mockQueries.On("InsertMealEntry", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.InsertMealEntryParams) bool {
				return arg.ID == entry.ID() && arg.MealType == "lunch" && arg.Status == "success"
			})).Return(tt.mockError)

			repo := NewMealLedgerRepository(mockQueries)
			err := repo.Record(context.Background(), new(mockDBTX), entry)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
