package repository

import (
	"context"

	"canteen-backoffice/internal/infra"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type MemberWriteQueries interface {
	LockMemberForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	SetMemberFeePaid(ctx context.Context, db sqlc.DBTX, arg sqlc.SetMemberFeePaidParams) error
}

type MemberRepository struct {
	queries MemberWriteQueries
}

func NewMemberRepository(queries MemberWriteQueries) *MemberRepository {
	return &MemberRepository{
		queries: queries,
	}
}

// Lock holds the member row until the transaction ends. Fee writers take it before
// counting pending records so the last writer of is_fee_paid sees every settled fee.
func (r *MemberRepository) Lock(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID) error {
	if _, err := r.queries.LockMemberForUpdate(ctx, tx, memberID); err != nil {
		return infra.WrapRepoErr("failed to lock member", err)
	}
	return nil
}

func (r *MemberRepository) SetFeePaid(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID, paid bool) error {
	err := r.queries.SetMemberFeePaid(ctx, tx, sqlc.SetMemberFeePaidParams{ID: memberID, IsFeePaid: paid})
	if err != nil {
		return infra.WrapRepoErr("failed to update member fee flag", err)
	}
	return nil
}
