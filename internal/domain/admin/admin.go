package admin

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	kind         Kind
	companyID    *uuid.UUID
	lastLogin    *time.Time
	isActive     bool
}

func NewAdmin(email Email, name, passwordHash string, kind Kind, companyID *uuid.UUID) (*Admin, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Admin{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		kind:         kind,
		companyID:    companyID,
		isActive:     true,
	}, nil
}

func (a *Admin) ID() uuid.UUID         { return a.id }
func (a *Admin) Email() Email          { return a.email }
func (a *Admin) Name() string          { return a.name }
func (a *Admin) PasswordHash() string  { return a.passwordHash }
func (a *Admin) Kind() Kind            { return a.kind }
func (a *Admin) CompanyID() *uuid.UUID { return a.companyID }
func (a *Admin) LastLogin() *time.Time { return a.lastLogin }
func (a *Admin) IsActive() bool        { return a.isActive }

// Principal is the authenticated caller as seen by use cases.
type Principal struct {
	ID        uuid.UUID
	Kind      Kind
	CompanyID *uuid.UUID
}

// CanAccessCompany confines everyone but superadmins to their own company.
func (p Principal) CanAccessCompany(companyID uuid.UUID) bool {
	if p.Kind == KindSuperadmin {
		return true
	}
	return p.CompanyID != nil && *p.CompanyID == companyID
}
