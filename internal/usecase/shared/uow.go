package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/fee"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/domain/mealpackage"
	"canteen-backoffice/internal/domain/member"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Meals() MealLedgerRepository
	Assignments() AssignmentRepository
	Fees() FeeRepository
	Members() MemberRepository
	Admins() AdminRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	// MemberByID loads the member with every assignment resolved to its company and package.
	MemberByID(ctx context.Context, id uuid.UUID) (*member.Member, error)
	HasPendingFee(ctx context.Context, memberID uuid.UUID) (bool, error)
	PendingFeeCount(ctx context.Context, memberID uuid.UUID) (int64, error)
	MealCollectedBetween(ctx context.Context, memberID uuid.UUID, mealType meal.MealType, from, to time.Time) (bool, error)
	PackageByID(ctx context.Context, id uuid.UUID) (*mealpackage.Package, error)
	CompanyByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
	PlaceCompany(ctx context.Context, placeID uuid.UUID) (uuid.UUID, error)
	LocationPlace(ctx context.Context, locationID uuid.UUID) (uuid.UUID, error)
	FeeRecordForUpdate(ctx context.Context, id uuid.UUID) (*FeeSnapshot, error)
}

type MealLedgerRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, entry *meal.Entry) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID, a *member.Assignment) error
	Cancel(ctx context.Context, tx sqlc.DBTX, memberID, assignmentID uuid.UUID) (bool, error)
	Delete(ctx context.Context, tx sqlc.DBTX, memberID, assignmentID uuid.UUID) (bool, error)
}

type FeeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rec *fee.Record) error
	MarkPaid(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paidAt time.Time) (bool, error)
}

type MemberRepository interface {
	Lock(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID) error
	SetFeePaid(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID, paid bool) error
}

type AdminRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, adminID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (uuid.UUID, error)
}
