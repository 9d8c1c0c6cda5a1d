package commands

//go:generate mockgen -source=meal.go -destination=../../../tests/mock/commands/meal.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/cardcode"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// ErrRecordTimeout means the outcome is unknown; the ledger is the source of truth.
	ErrRecordTimeout = errs.New("meal recording timed out")
	ErrRecordFailed  = errs.New("meal recording failed")
)

// Steps reached by RecordMeal, reported in logs when storage fails.
const (
	stepValidate         = "validate"
	stepLoadMember       = "load_member"
	stepSelectAssignment = "select_assignment"
	stepCheckPolicy      = "check_policy"
	stepCheckFees        = "check_fees"
	stepResolveMeal      = "resolve_meal"
	stepCheckDaily       = "check_daily"
	stepInsert           = "insert"
)

type RecordMealInput struct {
	UserID   uuid.UUID
	CardCode string
	Method   string
	// Principal is nil for trusted internal callers.
	Principal *admin.Principal
}

type RecordMealResult struct {
	MealID     uuid.UUID
	MealType   meal.MealType
	Method     meal.Method
	Timestamp  time.Time
	MemberID   uuid.UUID
	MemberName string
}

type MealCommands interface {
	RecordMeal(ctx context.Context, in RecordMealInput) (*RecordMealResult, error)
}

type mealCommandsImpl struct {
	uow      shared.UnitOfWork
	calendar *civil.Calendar
	codec    *cardcode.Codec
	timeout  time.Duration
}

func NewMealCommands(uow shared.UnitOfWork, calendar *civil.Calendar, codec *cardcode.Codec, timeout time.Duration) MealCommands {
	return &mealCommandsImpl{
		uow:      uow,
		calendar: calendar,
		codec:    codec,
		timeout:  timeout,
	}
}

func (uc *mealCommandsImpl) RecordMeal(ctx context.Context, in RecordMealInput) (*RecordMealResult, error) {
	memberID, method, err := uc.parseInput(in)
	if err != nil {
		return nil, err
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	now := uc.calendar.Now()
	step := stepValidate
	var result *RecordMealResult

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		step = stepLoadMember
		m, err := tx.Reads().MemberByID(ctx, memberID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return meal.ErrMemberNotFound
			}
			return err
		}
		if in.Principal != nil && !in.Principal.CanAccessCompany(m.CompanyID()) {
			return meal.ErrMemberNotFound
		}

		step = stepSelectAssignment
		assignment, err := m.ActiveAssignment(now)
		if err != nil {
			return err
		}

		step = stepCheckPolicy
		co := assignment.Company()
		if co == nil {
			return meal.ErrCompanyNotLinked
		}
		if err := co.CheckMethod(method); err != nil {
			return err
		}

		step = stepCheckFees
		if !m.IsFeePaid() {
			return meal.ErrFeesUnpaid
		}
		pending, err := tx.Reads().HasPendingFee(ctx, m.ID())
		if err != nil {
			return err
		}
		if pending {
			return meal.ErrFeesPending
		}

		step = stepResolveMeal
		pkg := assignment.Package()
		if pkg == nil {
			return meal.ErrNoMealsConfigured
		}
		mealType, err := pkg.ResolveMealType(uc.calendar.Weekday(now), uc.calendar.MinuteOfDay(now))
		if err != nil {
			return err
		}

		step = stepCheckDaily
		dayStart, dayEnd := uc.calendar.DayBounds(now)
		collected, err := tx.Reads().MealCollectedBetween(ctx, m.ID(), mealType, dayStart, dayEnd)
		if err != nil {
			return err
		}
		if collected {
			return &meal.AlreadyCollectedError{MealType: mealType}
		}

		step = stepInsert
		entry, err := meal.NewSuccessEntry(meal.EntryRefs{
			MemberID:   m.ID(),
			CompanyID:  co.ID(),
			PlaceID:    assignment.PlaceID(),
			LocationID: assignment.LocationID(),
			PackageID:  pkg.ID(),
		}, mealType, method, now, uc.calendar.DayKey(now))
		if err != nil {
			return err
		}
		if err := tx.Meals().Record(ctx, tx.DB(), entry); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return &meal.AlreadyCollectedError{MealType: mealType}
			}
			return err
		}

		result = &RecordMealResult{
			MealID:     entry.ID(),
			MealType:   mealType,
			Method:     method,
			Timestamp:  entry.RecordedAt(),
			MemberID:   m.ID(),
			MemberName: m.Name(),
		}
		return nil
	})
	if err != nil {
		return nil, uc.classify(ctx, err, memberID, step)
	}

	slog.Info("meal recorded",
		"user_id", memberID,
		"meal_id", result.MealID,
		"meal_type", result.MealType,
		"method", result.Method)
	return result, nil
}

func (uc *mealCommandsImpl) parseInput(in RecordMealInput) (uuid.UUID, meal.Method, error) {
	method, err := meal.NewMethod(in.Method)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, meal.ErrInvalidArgument)
	}

	memberID := in.UserID
	if in.CardCode != "" {
		decoded, err := uc.codec.Decode(in.CardCode)
		if err != nil {
			return uuid.Nil, "", errs.Mark(err, meal.ErrInvalidArgument)
		}
		if memberID != uuid.Nil && memberID != decoded {
			return uuid.Nil, "", errs.Wrap(meal.ErrInvalidArgument, "card code does not match user id")
		}
		memberID = decoded
	}
	if memberID == uuid.Nil {
		return uuid.Nil, "", errs.Wrap(meal.ErrInvalidArgument, "user id is required")
	}
	return memberID, method, nil
}

// classify keeps business outcomes as they are and folds everything else into
// ErrRecordTimeout or ErrRecordFailed.
func (uc *mealCommandsImpl) classify(ctx context.Context, err error, memberID uuid.UUID, step string) error {
	if isRecordOutcome(err) {
		return err
	}
	if ctx.Err() != nil || errs.Is(err, context.DeadlineExceeded) || errs.Is(err, context.Canceled) {
		slog.Warn("meal recording timed out", "user_id", memberID, "step", step)
		return errs.Mark(err, ErrRecordTimeout)
	}
	slog.Error("meal recording failed",
		"user_id", memberID,
		"step", step,
		"error", err.Error())
	return errs.Mark(err, ErrRecordFailed)
}

var recordOutcomes = []error{
	meal.ErrMemberNotFound,
	meal.ErrInvalidArgument,
	meal.ErrNoActivePackage,
	meal.ErrCompanyNotLinked,
	meal.ErrMethodNotAllowed,
	meal.ErrFeesUnpaid,
	meal.ErrFeesPending,
	meal.ErrNoMealsConfigured,
	meal.ErrNoMealScheduledToday,
	meal.ErrNoMealAtThisTime,
	meal.ErrAlreadyCollectedToday,
}

func isRecordOutcome(err error) bool {
	for _, target := range recordOutcomes {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
