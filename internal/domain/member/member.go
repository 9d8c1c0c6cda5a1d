package member

import (
	"bytes"
	"strings"
	"time"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyName = errs.New("member name cannot be empty")

// Member is a person eligible to collect meals. It owns its assignments.
type Member struct {
	id          uuid.UUID
	companyID   uuid.UUID
	name        string
	isFeePaid   bool
	isActive    bool
	assignments []*Assignment
}

func NewMember(id, companyID uuid.UUID, name string, isFeePaid, isActive bool, assignments []*Assignment) (*Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Member{
		id:          id,
		companyID:   companyID,
		name:        name,
		isFeePaid:   isFeePaid,
		isActive:    isActive,
		assignments: assignments,
	}, nil
}

func (m *Member) ID() uuid.UUID              { return m.id }
func (m *Member) CompanyID() uuid.UUID       { return m.companyID }
func (m *Member) Name() string               { return m.name }
func (m *Member) IsFeePaid() bool            { return m.isFeePaid }
func (m *Member) IsActive() bool             { return m.isActive }
func (m *Member) Assignments() []*Assignment { return m.assignments }

// ActiveAssignment picks the authoritative assignment at now: the active one with the
// latest start, ties broken by ascending id bytes.
func (m *Member) ActiveAssignment(now time.Time) (*Assignment, error) {
	var best *Assignment
	for _, a := range m.assignments {
		if a == nil || !a.IsActiveAt(now) {
			continue
		}
		if best == nil || preferred(a, best) {
			best = a
		}
	}
	if best == nil {
		return nil, meal.ErrNoActivePackage
	}
	return best, nil
}

func preferred(candidate, current *Assignment) bool {
	if !candidate.start.Equal(current.start) {
		return candidate.start.After(current.start)
	}
	return bytes.Compare(candidate.id[:], current.id[:]) < 0
}

func (m *Member) FindAssignment(id uuid.UUID) (*Assignment, error) {
	for _, a := range m.assignments {
		if a.id == id {
			return a, nil
		}
	}
	return nil, ErrAssignmentNotFound
}
