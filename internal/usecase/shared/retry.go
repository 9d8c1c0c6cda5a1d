package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction is replayed after a serialization
// failure or deadlock. Business failures are never replayed.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

func (p RetryPolicy) ShouldRetry(err error, attempt int) bool {
	return attempt < p.MaxRetries && IsRetryableError(err)
}

// Backoff doubles per attempt and adds up to 20% jitter.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.Base
	return wait + time.Duration(jitter(int64(wait/5)))
}

// Wait sleeps for the attempt's backoff unless ctx ends first.
func (p RetryPolicy) Wait(ctx context.Context, attempt int) error {
	t := time.NewTimer(p.Backoff(attempt))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsRetryableError matches serialization failures (40001) and deadlocks (40P01).
// Neither can leave a committed write behind.
func IsRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func jitter(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked off
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}

// TxStarter is satisfied by *pgxpool.Pool and *pgx.Conn.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RunInTx is for maintenance commands that hold a bare pool instead of the
// fx-wired UnitOfWork.
func RunInTx[T any](ctx context.Context, db TxStarter, policy RetryPolicy, fn func(tx sqlc.DBTX) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		result, err := runOnce(ctx, db, fn)
		if err == nil {
			return result, nil
		}
		if !policy.ShouldRetry(err, attempt) {
			if IsRetryableError(err) {
				return zero, errs.Mark(err, ErrMaxRetriesExceeded)
			}
			return zero, err
		}
		slog.Warn("retrying maintenance transaction", "attempt", attempt+1, "error", err.Error())
		if err := policy.Wait(ctx, attempt); err != nil {
			return zero, err
		}
	}
}

func runOnce[T any](ctx context.Context, db TxStarter, fn func(tx sqlc.DBTX) (T, error)) (T, error) {
	var zero T
	tx, err := db.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rbErr.Error())
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}
	return result, nil
}
