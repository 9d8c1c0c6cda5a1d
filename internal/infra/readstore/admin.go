package readstore

import (
	"context"

	"canteen-backoffice/internal/infra"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/pgconv"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminReadQueries interface {
	FindAdminByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindAdminByIDRow, error)
	FindAdminByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Admins, error)
}

type AdminReadStore struct {
	queries AdminReadQueries
	db      sqlc.DBTX
}

func NewAdminReadStore(queries AdminReadQueries, db sqlc.DBTX) *AdminReadStore {
	return &AdminReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminView, error) {
	row, err := r.queries.FindAdminByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}

	return &queries.AdminView{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Kind:      row.Kind,
		CompanyID: pgconv.UUIDPtrFromPgtype(row.CompanyID),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *AdminReadStore) FindByEmail(ctx context.Context, email string) (*queries.AdminView, string, error) {
	row, err := r.queries.FindAdminByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find admin by email", err)
	}

	return &queries.AdminView{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Kind:      row.Kind,
		CompanyID: pgconv.UUIDPtrFromPgtype(row.CompanyID),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}, row.PasswordHash, nil
}
