package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

import (
	"context"

	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAdminNotFound = errs.New("admin not found")
	ErrAdminInactive = errs.New("admin inactive")
)

type AdminQueries interface {
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error)
}

type AdminReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdminView, error)
	FindByEmail(ctx context.Context, email string) (*AdminView, string, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{
		readStore: readStore,
	}
}

func (q *adminQueriesImpl) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error) {
	a, err := q.readStore.FindByID(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if !a.IsActive {
		return nil, ErrAdminInactive
	}

	return a, nil
}
