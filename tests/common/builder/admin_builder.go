//go:build unit || e2e

package builder

import (
	"time"

	"canteen-backoffice/internal/domain/admin"
	reqdto "canteen-backoffice/internal/handler/dto/request"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdminBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	// Password is the plain text behind dbtest.TestPasswordHash.
	Password  string
	Kind      admin.Kind
	CompanyID *uuid.UUID
	IsActive  bool
}

func NewAdminBuilder() *AdminBuilder {
	companyID := uuid.New()
	return &AdminBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test Admin",
		PasswordHash: "hashed_password",
		Password:     "password123",
		Kind:         admin.KindAdmin,
		CompanyID:    &companyID,
		IsActive:     true,
	}
}

func (a *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AdminBuilder) BuildDomain() (*admin.Admin, error) {
	email, err := admin.NewEmail(a.Email)
	if err != nil {
		return nil, err
	}
	return admin.NewAdmin(email, a.Name, a.PasswordHash, a.Kind, a.CompanyID)
}

func (a *AdminBuilder) BuildInfra() sqlc.Admins {
	now := time.Now()
	var companyID pgtype.UUID
	if a.CompanyID != nil {
		companyID = pgtype.UUID{Bytes: *a.CompanyID, Valid: true}
	}

	return sqlc.Admins{
		ID:           a.ID,
		Email:        a.Email,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
		Kind:         a.Kind.String(),
		CompanyID:    companyID,
		IsActive:     a.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (a *AdminBuilder) BuildReadModel() *queries.AdminView {
	return &queries.AdminView{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Kind:      a.Kind.String(),
		CompanyID: a.CompanyID,
		IsActive:  a.IsActive,
	}
}

func (a *AdminBuilder) BuildLoginRequest() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}

func (a *AdminBuilder) BuildPrincipal() admin.Principal {
	return admin.Principal{ID: a.ID, Kind: a.Kind, CompanyID: a.CompanyID}
}

// Fluent builder methods
func (a *AdminBuilder) WithEmail(email string) *AdminBuilder {
	a.Email = email
	return a
}

func (a *AdminBuilder) WithKind(kind admin.Kind) *AdminBuilder {
	a.Kind = kind
	return a
}

func (a *AdminBuilder) WithPasswordHash(hash string) *AdminBuilder {
	a.PasswordHash = hash
	return a
}

func (a *AdminBuilder) WithCompanyID(companyID *uuid.UUID) *AdminBuilder {
	a.CompanyID = companyID
	return a
}

func (a *AdminBuilder) WithoutCompany() *AdminBuilder {
	a.CompanyID = nil
	return a
}

func (a *AdminBuilder) AsInactive() *AdminBuilder {
	a.IsActive = false
	return a
}
