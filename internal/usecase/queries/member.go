package queries

//go:generate mockgen -source=member.go -destination=../../../tests/mock/queries/member.go -package=queriesmock

import (
	"context"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/infra"
	"canteen-backoffice/internal/pkg/cardcode"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound  = errs.New("member lookup failed: not found")
	ErrMemberForbidden = errs.New("member outside caller's company")
)

type MemberReadStore interface {
	FindSummary(ctx context.Context, id uuid.UUID) (*MemberSummary, error)
}

type MealEntryReadStore interface {
	ListByMember(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]MealEntryView, error)
}

// MealEntryFilter defaults to the current civil day and every meal type.
type MealEntryFilter struct {
	From     *time.Time
	To       *time.Time
	MealType string
}

// MemberCard is what a printed member card carries.
type MemberCard struct {
	MemberID uuid.UUID
	Name     string
	Code     string
}

type MemberQueries interface {
	// MealEntries lists ledger rows for one member. It is how callers settle a timed-out
	// recording.
	MealEntries(ctx context.Context, principal admin.Principal, memberID uuid.UUID, f MealEntryFilter) ([]MealEntryView, error)
	Card(ctx context.Context, principal admin.Principal, memberID uuid.UUID) (*MemberCard, error)
}

type memberQueriesImpl struct {
	members  MemberReadStore
	entries  MealEntryReadStore
	calendar *civil.Calendar
	codec    *cardcode.Codec
	maxDays  int
}

func NewMemberQueries(members MemberReadStore, entries MealEntryReadStore, calendar *civil.Calendar, codec *cardcode.Codec, maxDays int) MemberQueries {
	return &memberQueriesImpl{
		members:  members,
		entries:  entries,
		calendar: calendar,
		codec:    codec,
		maxDays:  maxDays,
	}
}

func (q *memberQueriesImpl) MealEntries(ctx context.Context, principal admin.Principal, memberID uuid.UUID, f MealEntryFilter) ([]MealEntryView, error) {
	if _, err := q.authorize(ctx, principal, memberID); err != nil {
		return nil, err
	}

	tr := TimeRange{}
	tr.From, tr.To = q.calendar.DayBounds(q.calendar.Now())
	if f.From != nil {
		tr.From = *f.From
	}
	if f.To != nil {
		tr.To = *f.To
	}
	if err := tr.Validate(q.maxDays); err != nil {
		return nil, err
	}

	entries, err := q.entries.ListByMember(ctx, memberID, tr.From, tr.To)
	if err != nil {
		return nil, err
	}
	if f.MealType == "" {
		return entries, nil
	}
	mealType, err := meal.NewMealType(f.MealType)
	if err != nil {
		return nil, err
	}
	filtered := entries[:0]
	for _, e := range entries {
		if e.MealType == mealType.String() {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (q *memberQueriesImpl) Card(ctx context.Context, principal admin.Principal, memberID uuid.UUID) (*MemberCard, error) {
	m, err := q.authorize(ctx, principal, memberID)
	if err != nil {
		return nil, err
	}
	return &MemberCard{
		MemberID: m.ID,
		Name:     m.Name,
		Code:     q.codec.Encode(m.ID),
	}, nil
}

func (q *memberQueriesImpl) authorize(ctx context.Context, principal admin.Principal, memberID uuid.UUID) (*MemberSummary, error) {
	m, err := q.members.FindSummary(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if !principal.CanAccessCompany(m.CompanyID) {
		return nil, ErrMemberForbidden
	}
	return m, nil
}
