package commands

//go:generate mockgen -source=assignment.go -destination=../../../tests/mock/commands/assignment.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/member"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFoundWrite   = errs.New("member not found for write")
	ErrPackageNotFound       = errs.New("package not found")
	ErrPlaceNotFound         = errs.New("place not found")
	ErrLocationNotFound      = errs.New("location not found")
	ErrAssignmentNotFound    = errs.New("assignment not found for member")
	ErrAssignmentOutOfScope  = errs.New("package, place or location belongs to another company")
	ErrAssignmentForbidden   = errs.New("member belongs to another company")
	ErrInvalidAssignmentSpec = errs.New("invalid assignment")
)

type AssignPackageInput struct {
	MemberID   uuid.UUID
	PackageID  uuid.UUID
	PlaceID    *uuid.UUID
	LocationID *uuid.UUID
	Start      time.Time
	End        time.Time
	Principal  admin.Principal
}

type AssignPackageResult struct {
	AssignmentID uuid.UUID
	Status       member.AssignmentStatus
}

type AssignmentCommands interface {
	AssignPackage(ctx context.Context, in AssignPackageInput) (*AssignPackageResult, error)
	// RemoveAssignment cancels the assignment, or purges it when hard is set.
	RemoveAssignment(ctx context.Context, memberID, assignmentID uuid.UUID, hard bool, principal admin.Principal) error
}

type assignmentCommandsImpl struct {
	uow      shared.UnitOfWork
	calendar *civil.Calendar
}

func NewAssignmentCommands(uow shared.UnitOfWork, calendar *civil.Calendar) AssignmentCommands {
	return &assignmentCommandsImpl{uow: uow, calendar: calendar}
}

func (uc *assignmentCommandsImpl) AssignPackage(ctx context.Context, in AssignPackageInput) (*AssignPackageResult, error) {
	var result *AssignPackageResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := loadMemberForWrite(ctx, tx, in.MemberID, in.Principal)
		if err != nil {
			return err
		}

		pkg, err := tx.Reads().PackageByID(ctx, in.PackageID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPackageNotFound
			}
			return err
		}
		if pkg.CompanyID() != m.CompanyID() {
			return ErrAssignmentOutOfScope
		}

		co, err := tx.Reads().CompanyByID(ctx, m.CompanyID())
		if err != nil {
			return err
		}

		placeID, err := uc.resolvePlace(ctx, tx.Reads(), co.ID(), in.PlaceID, in.LocationID)
		if err != nil {
			return err
		}

		now := uc.calendar.Now()
		a, err := member.NewAssignment(member.AssignmentParams{
			Company:    co,
			PlaceID:    placeID,
			LocationID: in.LocationID,
			Package:    pkg,
			Start:      in.Start,
			End:        in.End,
			Status:     member.InitialStatus(in.Start, in.End, now),
			AssignedAt: now,
		})
		if err != nil {
			return errs.Mark(err, ErrInvalidAssignmentSpec)
		}

		if err := tx.Assignments().Create(ctx, tx.DB(), m.ID(), a); err != nil {
			return err
		}
		result = &AssignPackageResult{AssignmentID: a.ID(), Status: a.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("package assigned",
		"member_id", in.MemberID,
		"assignment_id", result.AssignmentID,
		"status", result.Status)
	return result, nil
}

// resolvePlace checks the place and location chain against companyID. A location
// without a place implies the location's place.
func (uc *assignmentCommandsImpl) resolvePlace(ctx context.Context, reads shared.CommandReads, companyID uuid.UUID, placeID, locationID *uuid.UUID) (*uuid.UUID, error) {
	if locationID != nil {
		locPlace, err := reads.LocationPlace(ctx, *locationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrLocationNotFound
			}
			return nil, err
		}
		if placeID != nil && *placeID != locPlace {
			return nil, ErrAssignmentOutOfScope
		}
		placeID = &locPlace
	}
	if placeID == nil {
		return nil, nil
	}

	placeCompany, err := reads.PlaceCompany(ctx, *placeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	if placeCompany != companyID {
		return nil, ErrAssignmentOutOfScope
	}
	return placeID, nil
}

func (uc *assignmentCommandsImpl) RemoveAssignment(ctx context.Context, memberID, assignmentID uuid.UUID, hard bool, principal admin.Principal) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadMemberForWrite(ctx, tx, memberID, principal); err != nil {
			return err
		}

		var (
			found bool
			err   error
		)
		if hard {
			found, err = tx.Assignments().Delete(ctx, tx.DB(), memberID, assignmentID)
		} else {
			found, err = tx.Assignments().Cancel(ctx, tx.DB(), memberID, assignmentID)
		}
		if err != nil {
			return err
		}
		if !found {
			return ErrAssignmentNotFound
		}
		return nil
	})
}

func loadMemberForWrite(ctx context.Context, tx shared.Tx, memberID uuid.UUID, principal admin.Principal) (*member.Member, error) {
	m, err := tx.Reads().MemberByID(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFoundWrite
		}
		return nil, err
	}
	if !principal.CanAccessCompany(m.CompanyID()) {
		return nil, ErrAssignmentForbidden
	}
	return m, nil
}
