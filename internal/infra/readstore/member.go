package readstore

import (
	"context"

	"canteen-backoffice/internal/domain/member"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/infra/repository/converter"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/pgconv"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type MemberReadQueries interface {
	FindMemberByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Members, error)
	ListMemberAssignments(ctx context.Context, db sqlc.DBTX, memberID uuid.UUID) ([]sqlc.ListMemberAssignmentsRow, error)
	ListWindowsByPackageIDs(ctx context.Context, db sqlc.DBTX, packageIds []uuid.UUID) ([]sqlc.MealWindows, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      sqlc.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db sqlc.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberReadStore) FindSummary(ctx context.Context, id uuid.UUID) (*queries.MemberSummary, error) {
	row, err := r.queries.FindMemberByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by ID", err)
	}
	return &queries.MemberSummary{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		Name:      row.Name,
		IsFeePaid: row.IsFeePaid,
		IsActive:  row.IsActive,
	}, nil
}

// FindWithAssignments loads the aggregate in three round trips: member, assignments
// joined to company and package, then the windows of every referenced package.
func (r *MemberReadStore) FindWithAssignments(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	row, err := r.queries.FindMemberByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by ID", err)
	}

	assignmentRows, err := r.queries.ListMemberAssignments(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member assignments", err)
	}

	var windows []sqlc.MealWindows
	if packageIDs := converter.PackageIDs(assignmentRows); len(packageIDs) > 0 {
		windows, err = r.queries.ListWindowsByPackageIDs(ctx, r.db, packageIDs)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list meal windows", err)
		}
	}

	m, err := converter.ToMember(row, assignmentRows, windows)
	if err != nil {
		return nil, infra.WrapRepoErr("stored member is inconsistent", err, infra.KindDBFailure)
	}
	return m, nil
}
