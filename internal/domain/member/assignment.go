package member

import (
	"time"

	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/mealpackage"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAssignmentStatus = errs.New("invalid assignment status")
	ErrInvalidAssignmentRange  = errs.New("assignment start must not be after end")
	ErrAssignmentNotFound      = errs.New("assignment not found")
)

type AssignmentStatus string

const (
	AssignmentScheduled AssignmentStatus = "scheduled"
	AssignmentActive    AssignmentStatus = "active"
	AssignmentExpired   AssignmentStatus = "expired"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

func NewAssignmentStatus(s string) (AssignmentStatus, error) {
	status := AssignmentStatus(s)
	switch status {
	case AssignmentScheduled, AssignmentActive, AssignmentExpired, AssignmentCancelled:
		return status, nil
	default:
		return "", ErrInvalidAssignmentStatus
	}
}

// InitialStatus is the lifecycle status a freshly granted assignment gets at now.
func InitialStatus(start, end, now time.Time) AssignmentStatus {
	switch {
	case now.Before(start):
		return AssignmentScheduled
	case now.After(end):
		return AssignmentExpired
	default:
		return AssignmentActive
	}
}

// Assignment grants a package to a member for [start, end]. company and pkg are nil
// when the reference could not be resolved.
type Assignment struct {
	id         uuid.UUID
	company    *company.Company
	placeID    *uuid.UUID
	locationID *uuid.UUID
	pkg        *mealpackage.Package
	start      time.Time
	end        time.Time
	status     AssignmentStatus
	assignedAt time.Time
}

type AssignmentParams struct {
	ID         uuid.UUID
	Company    *company.Company
	PlaceID    *uuid.UUID
	LocationID *uuid.UUID
	Package    *mealpackage.Package
	Start      time.Time
	End        time.Time
	Status     AssignmentStatus
	AssignedAt time.Time
}

func NewAssignment(p AssignmentParams) (*Assignment, error) {
	if p.End.Before(p.Start) {
		return nil, ErrInvalidAssignmentRange
	}
	if _, err := NewAssignmentStatus(string(p.Status)); err != nil {
		return nil, err
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Assignment{
		id:         id,
		company:    p.Company,
		placeID:    p.PlaceID,
		locationID: p.LocationID,
		pkg:        p.Package,
		start:      p.Start,
		end:        p.End,
		status:     p.Status,
		assignedAt: p.AssignedAt,
	}, nil
}

func (a *Assignment) ID() uuid.UUID                 { return a.id }
func (a *Assignment) Company() *company.Company     { return a.company }
func (a *Assignment) PlaceID() *uuid.UUID           { return a.placeID }
func (a *Assignment) LocationID() *uuid.UUID        { return a.locationID }
func (a *Assignment) Package() *mealpackage.Package { return a.pkg }
func (a *Assignment) Start() time.Time              { return a.start }
func (a *Assignment) End() time.Time                { return a.end }
func (a *Assignment) Status() AssignmentStatus      { return a.status }
func (a *Assignment) AssignedAt() time.Time         { return a.assignedAt }

func (a *Assignment) Cancel() {
	a.status = AssignmentCancelled
}

// IsActiveAt holds when the assignment is inside its own window, or when its package
// has fixed validity that has not lapsed yet. The second rule ignores the assignment's
// own end date.
func (a *Assignment) IsActiveAt(now time.Time) bool {
	if a.status == AssignmentCancelled {
		return false
	}
	if !now.Before(a.start) && !now.After(a.end) {
		return true
	}
	if a.pkg == nil {
		return false
	}
	validUntil, ok := a.pkg.FixedValidUntil(a.start)
	return ok && !now.After(validUntil)
}
