//go:build unit || e2e

package builder

import (
	"time"

	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/mealpackage"
	"canteen-backoffice/internal/domain/member"

	"github.com/google/uuid"
)

type AssignmentSpec struct {
	ID         uuid.UUID
	Company    *company.Company
	PlaceID    *uuid.UUID
	LocationID *uuid.UUID
	Package    *mealpackage.Package
	Start      time.Time
	End        time.Time
	Status     member.AssignmentStatus
}

type MemberBuilder struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Name        string
	IsFeePaid   bool
	IsActive    bool
	Assignments []AssignmentSpec
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Name:      "Test Member",
		IsFeePaid: true,
		IsActive:  true,
	}
}

func (m *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(m)
	return m
}

func (m *MemberBuilder) BuildDomain() (*member.Member, error) {
	assignments := make([]*member.Assignment, 0, len(m.Assignments))
	for _, as := range m.Assignments {
		status := as.Status
		if status == "" {
			status = member.AssignmentActive
		}
		a, err := member.NewAssignment(member.AssignmentParams{
			ID:         as.ID,
			Company:    as.Company,
			PlaceID:    as.PlaceID,
			LocationID: as.LocationID,
			Package:    as.Package,
			Start:      as.Start,
			End:        as.End,
			Status:     status,
			AssignedAt: as.Start,
		})
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return member.NewMember(m.ID, m.CompanyID, m.Name, m.IsFeePaid, m.IsActive, assignments)
}

func (m *MemberBuilder) MustBuild() *member.Member {
	mem, err := m.BuildDomain()
	if err != nil {
		panic(err)
	}
	return mem
}

// Company returns a company sharing the member's id with the given policy.
func (m *MemberBuilder) Company(policy company.Policy) *company.Company {
	c, err := company.NewCompany(m.CompanyID, "Test Company", policy)
	if err != nil {
		panic(err)
	}
	return c
}

func (m *MemberBuilder) WithAssignment(as AssignmentSpec) *MemberBuilder {
	m.Assignments = append(m.Assignments, as)
	return m
}

func (m *MemberBuilder) WithFeeUnpaid() *MemberBuilder {
	m.IsFeePaid = false
	return m
}

func (m *MemberBuilder) WithName(name string) *MemberBuilder {
	m.Name = name
	return m
}
