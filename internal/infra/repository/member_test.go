//go:build unit

package repository

import (
	"context"
	"testing"

	"canteen-backoffice/internal/infra"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMemberWriteQueries struct {
	mock.Mock
}

func (m *MockMemberWriteQueries) LockMemberForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockMemberWriteQueries) SetMemberFeePaid(ctx context.Context, db sqlc.DBTX, arg sqlc.SetMemberFeePaidParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestMemberLock(t *testing.T) {
	memberID := uuid.New()

	tests := []struct {
		name      string
		mockID    uuid.UUID
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:   "lock acquired",
			mockID: memberID,
		},
		{
			name:      "member deleted",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockMemberWriteQueries)
			mockQueries.On("LockMemberForUpdate", mock.Anything, mock.Anything, memberID).Return(tt.mockID, tt.mockError)

			repo := NewMemberRepository(mockQueries)
			err := repo.Lock(context.Background(), new(mockDBTX), memberID)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSetFeePaid(t *testing.T) {
	memberID := uuid.New()

	t.Run("writes the flag for the member", func(t *testing.T) {
		mockQueries := new(MockMemberWriteQueries)
		mockQueries.On("SetMemberFeePaid", mock.Anything, mock.Anything, sqlc.SetMemberFeePaidParams{ID: memberID, IsFeePaid: true}).Return(nil)

		err := NewMemberRepository(mockQueries).SetFeePaid(context.Background(), new(mockDBTX), memberID, true)
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockMemberWriteQueries)
		mockQueries.On("SetMemberFeePaid", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		err := NewMemberRepository(mockQueries).SetFeePaid(context.Background(), new(mockDBTX), memberID, false)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}
