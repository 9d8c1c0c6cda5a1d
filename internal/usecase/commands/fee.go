package commands

//go:generate mockgen -source=fee.go -destination=../../../tests/mock/commands/fee.go -package=commandsmock

import (
	"context"
	"log/slog"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/fee"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrFeeRecordNotFound = errs.New("fee record not found")
	ErrInvalidFeeRecord  = errs.New("invalid fee record")
)

type CreateFeeInput struct {
	MemberID    uuid.UUID
	AmountMinor int64
	Note        string
	Principal   admin.Principal
}

type FeeResult struct {
	FeeID     uuid.UUID
	MemberID  uuid.UUID
	Status    fee.Status
	IsFeePaid bool
}

type FeeCommands interface {
	CreateFee(ctx context.Context, in CreateFeeInput) (*FeeResult, error)
	PayFee(ctx context.Context, feeID uuid.UUID, principal admin.Principal) (*FeeResult, error)
}

type feeCommandsImpl struct {
	uow      shared.UnitOfWork
	calendar *civil.Calendar
}

func NewFeeCommands(uow shared.UnitOfWork, calendar *civil.Calendar) FeeCommands {
	return &feeCommandsImpl{uow: uow, calendar: calendar}
}

// CreateFee adds a pending record and clears the member's fee-paid flag in the same
// transaction.
func (uc *feeCommandsImpl) CreateFee(ctx context.Context, in CreateFeeInput) (*FeeResult, error) {
	var result *FeeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := loadMemberForWrite(ctx, tx, in.MemberID, in.Principal)
		if err != nil {
			return err
		}

		rec, err := fee.NewPendingRecord(m.ID(), in.AmountMinor, in.Note, uc.calendar.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidFeeRecord)
		}
		if err := tx.Members().Lock(ctx, tx.DB(), m.ID()); err != nil {
			return err
		}
		if err := tx.Fees().Create(ctx, tx.DB(), rec); err != nil {
			return err
		}

		paid, err := uc.syncFeePaid(ctx, tx, m.ID())
		if err != nil {
			return err
		}
		result = &FeeResult{FeeID: rec.ID(), MemberID: m.ID(), Status: rec.Status(), IsFeePaid: paid}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PayFee marks a pending record paid. The member is fee-paid again once no pending
// record remains.
func (uc *feeCommandsImpl) PayFee(ctx context.Context, feeID uuid.UUID, principal admin.Principal) (*FeeResult, error) {
	var result *FeeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().FeeRecordForUpdate(ctx, feeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrFeeRecordNotFound
			}
			return err
		}
		if _, err := loadMemberForWrite(ctx, tx, snap.MemberID, principal); err != nil {
			return err
		}
		if snap.Status == fee.StatusPaid.String() {
			return fee.ErrAlreadyPaid
		}
		if err := tx.Members().Lock(ctx, tx.DB(), snap.MemberID); err != nil {
			return err
		}

		updated, err := tx.Fees().MarkPaid(ctx, tx.DB(), feeID, uc.calendar.Now())
		if err != nil {
			return err
		}
		if !updated {
			return fee.ErrAlreadyPaid
		}

		paid, err := uc.syncFeePaid(ctx, tx, snap.MemberID)
		if err != nil {
			return err
		}
		result = &FeeResult{FeeID: feeID, MemberID: snap.MemberID, Status: fee.StatusPaid, IsFeePaid: paid}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("fee paid", "fee_id", feeID, "member_id", result.MemberID, "is_fee_paid", result.IsFeePaid)
	return result, nil
}

// syncFeePaid recomputes is_fee_paid. The caller must hold the member row lock, so the
// last writer of the flag counts every settlement committed before it.
func (uc *feeCommandsImpl) syncFeePaid(ctx context.Context, tx shared.Tx, memberID uuid.UUID) (bool, error) {
	pending, err := tx.Reads().PendingFeeCount(ctx, memberID)
	if err != nil {
		return false, err
	}
	paid := fee.FeePaidFlag(pending)
	if err := tx.Members().SetFeePaid(ctx, tx.DB(), memberID, paid); err != nil {
		return false, err
	}
	return paid, nil
}
