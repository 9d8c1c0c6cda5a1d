package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/domain/mealpackage"
	"canteen-backoffice/internal/domain/member"
	"canteen-backoffice/internal/infra/readstore"
	"canteen-backoffice/internal/infra/repository"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough for meal recording: the per-day partial unique index
// arbitrates concurrent inserts, not the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Each attempt rolls back inline so retries never stack deferred rollbacks.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	policy := shared.DefaultRetryPolicy

	for attempt := 0; ; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, shared.ErrTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, shared.ErrTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
		}

		if !policy.ShouldRetry(err, attempt) {
			if shared.IsRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, shared.ErrMaxRetriesExceeded)
			}
			return err
		}

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"error", err.Error())

		if err := policy.Wait(ctx, attempt); err != nil {
			return err
		}
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	mealRepo       shared.MealLedgerRepository
	assignmentRepo shared.AssignmentRepository
	feeRepo        shared.FeeRepository
	memberRepo     shared.MemberRepository
	adminRepo      shared.AdminRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Meals() shared.MealLedgerRepository {
	if t.mealRepo == nil {
		t.mealRepo = repository.NewMealLedgerRepository(t.uow.q)
	}
	return t.mealRepo
}

func (t *pgTx) Assignments() shared.AssignmentRepository {
	if t.assignmentRepo == nil {
		t.assignmentRepo = repository.NewAssignmentRepository(t.uow.q)
	}
	return t.assignmentRepo
}

func (t *pgTx) Fees() shared.FeeRepository {
	if t.feeRepo == nil {
		t.feeRepo = repository.NewFeeRepository(t.uow.q)
	}
	return t.feeRepo
}

func (t *pgTx) Members() shared.MemberRepository {
	if t.memberRepo == nil {
		t.memberRepo = repository.NewMemberRepository(t.uow.q)
	}
	return t.memberRepo
}

func (t *pgTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.uow.q)
	}
	return t.adminRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	memberStore *readstore.MemberReadStore
	lookupStore *readstore.LookupReadStore
}

func (r *commandReads) lookups() *readstore.LookupReadStore {
	if r.lookupStore == nil {
		r.lookupStore = readstore.NewLookupReadStore(r.uow.q, r.dbtx)
	}
	return r.lookupStore
}

func (r *commandReads) MemberByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	if r.memberStore == nil {
		r.memberStore = readstore.NewMemberReadStore(r.uow.q, r.dbtx)
	}
	return r.memberStore.FindWithAssignments(ctx, id)
}

func (r *commandReads) HasPendingFee(ctx context.Context, memberID uuid.UUID) (bool, error) {
	return r.lookups().HasPendingFee(ctx, memberID)
}

func (r *commandReads) PendingFeeCount(ctx context.Context, memberID uuid.UUID) (int64, error) {
	return r.lookups().PendingFeeCount(ctx, memberID)
}

func (r *commandReads) MealCollectedBetween(ctx context.Context, memberID uuid.UUID, mealType meal.MealType, from, to time.Time) (bool, error) {
	return r.lookups().MealCollectedBetween(ctx, memberID, mealType, from, to)
}

func (r *commandReads) PackageByID(ctx context.Context, id uuid.UUID) (*mealpackage.Package, error) {
	return r.lookups().PackageByID(ctx, id)
}

func (r *commandReads) CompanyByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	return r.lookups().CompanyByID(ctx, id)
}

func (r *commandReads) PlaceCompany(ctx context.Context, placeID uuid.UUID) (uuid.UUID, error) {
	return r.lookups().PlaceCompany(ctx, placeID)
}

func (r *commandReads) LocationPlace(ctx context.Context, locationID uuid.UUID) (uuid.UUID, error) {
	return r.lookups().LocationPlace(ctx, locationID)
}

func (r *commandReads) FeeRecordForUpdate(ctx context.Context, id uuid.UUID) (*shared.FeeSnapshot, error) {
	return r.lookups().FeeRecordForUpdate(ctx, id)
}
