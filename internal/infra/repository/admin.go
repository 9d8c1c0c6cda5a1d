package repository

import (
	"context"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/infra"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AdminWriteQueries interface {
	UpdateAdminLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	CreateAdmin(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdminParams) (uuid.UUID, error)
}

type AdminRepository struct {
	queries AdminWriteQueries
}

func NewAdminRepository(queries AdminWriteQueries) *AdminRepository {
	return &AdminRepository{
		queries: queries,
	}
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, adminID uuid.UUID) error {
	err := r.queries.UpdateAdminLastLogin(ctx, tx, adminID)
	if err != nil {
		return infra.WrapRepoErr("failed to update admin last login", err)
	}
	return nil
}

func (r *AdminRepository) Create(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (uuid.UUID, error) {
	id, err := r.queries.CreateAdmin(ctx, tx, sqlc.CreateAdminParams{
		ID:           a.ID(),
		Email:        a.Email().Value(),
		Name:         a.Name(),
		PasswordHash: a.PasswordHash(),
		Kind:         a.Kind().String(),
		CompanyID:    pgconv.UUIDPtrToPgtype(a.CompanyID()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create admin", err)
	}
	return id, nil
}
