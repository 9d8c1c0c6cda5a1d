package repository

import (
	"context"

	"canteen-backoffice/internal/domain/member"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/infra/repository/converter"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AssignmentWriteQueries interface {
	CreateAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAssignmentParams) error
	CancelAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelAssignmentParams) (int64, error)
	DeleteAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteAssignmentParams) (int64, error)
}

type AssignmentRepository struct {
	queries AssignmentWriteQueries
}

func NewAssignmentRepository(queries AssignmentWriteQueries) *AssignmentRepository {
	return &AssignmentRepository{
		queries: queries,
	}
}

func (r *AssignmentRepository) Create(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID, a *member.Assignment) error {
	err := r.queries.CreateAssignment(ctx, tx, converter.AssignmentToCreateParams(memberID, a))
	if err != nil {
		return infra.WrapRepoErr("failed to create assignment", err)
	}
	return nil
}

// Cancel reports false when there is no live assignment with that id for the member.
func (r *AssignmentRepository) Cancel(ctx context.Context, tx sqlc.DBTX, memberID, assignmentID uuid.UUID) (bool, error) {
	n, err := r.queries.CancelAssignment(ctx, tx, sqlc.CancelAssignmentParams{ID: assignmentID, MemberID: memberID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel assignment", err)
	}
	return n > 0, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, memberID, assignmentID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteAssignment(ctx, tx, sqlc.DeleteAssignmentParams{ID: assignmentID, MemberID: memberID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete assignment", err)
	}
	return n > 0, nil
}
