package mealpackage

import (
	"time"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidValidity = errs.New("package validity must be either days (fixed) or a date")
	ErrEmptyName       = errs.New("package name cannot be empty")
)

// Package is a reusable bundle of meal windows. Exactly one of validityDays and
// validityDate is set, selected by fixedValidity.
type Package struct {
	id            uuid.UUID
	companyID     uuid.UUID
	name          string
	fixedValidity bool
	validityDays  *int
	validityDate  *time.Time
	windows       []Window
}

func NewFixedPackage(id, companyID uuid.UUID, name string, validityDays int, windows []Window) (*Package, error) {
	if validityDays <= 0 {
		return nil, ErrInvalidValidity
	}
	return newPackage(id, companyID, name, true, &validityDays, nil, windows)
}

func NewDatedPackage(id, companyID uuid.UUID, name string, validityDate time.Time, windows []Window) (*Package, error) {
	if validityDate.IsZero() {
		return nil, ErrInvalidValidity
	}
	return newPackage(id, companyID, name, false, nil, &validityDate, windows)
}

// Rehydrate rebuilds a package from storage and re-checks the validity invariant.
func Rehydrate(id, companyID uuid.UUID, name string, fixedValidity bool, validityDays *int, validityDate *time.Time, windows []Window) (*Package, error) {
	if fixedValidity {
		if validityDays == nil || validityDate != nil {
			return nil, ErrInvalidValidity
		}
	} else if validityDate == nil || validityDays != nil {
		return nil, ErrInvalidValidity
	}
	return newPackage(id, companyID, name, fixedValidity, validityDays, validityDate, windows)
}

func newPackage(id, companyID uuid.UUID, name string, fixed bool, days *int, date *time.Time, windows []Window) (*Package, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Package{
		id:            id,
		companyID:     companyID,
		name:          name,
		fixedValidity: fixed,
		validityDays:  days,
		validityDate:  date,
		windows:       append([]Window(nil), windows...),
	}, nil
}

func (p *Package) ID() uuid.UUID            { return p.id }
func (p *Package) CompanyID() uuid.UUID     { return p.companyID }
func (p *Package) Name() string             { return p.name }
func (p *Package) FixedValidity() bool      { return p.fixedValidity }
func (p *Package) ValidityDays() *int       { return p.validityDays }
func (p *Package) ValidityDate() *time.Time { return p.validityDate }
func (p *Package) Windows() []Window        { return p.windows }

// FixedValidUntil is the validity date of a fixed package granted at assignmentStart,
// counted in whole days. The second value is false for dated packages.
func (p *Package) FixedValidUntil(assignmentStart time.Time) (time.Time, bool) {
	if !p.fixedValidity || p.validityDays == nil {
		return time.Time{}, false
	}
	return assignmentStart.AddDate(0, 0, *p.validityDays), true
}

// ResolveMealType walks the windows in stored order and returns the first enabled
// window scheduled on day whose range contains minuteOfDay.
func (p *Package) ResolveMealType(day time.Weekday, minuteOfDay int) (meal.MealType, error) {
	if len(p.windows) == 0 {
		return "", meal.ErrNoMealsConfigured
	}

	scheduledToday := false
	for _, w := range p.windows {
		if !w.ScheduledOn(day) {
			continue
		}
		scheduledToday = true
		if w.Contains(minuteOfDay) {
			return w.MealType(), nil
		}
	}

	if scheduledToday {
		return "", meal.ErrNoMealAtThisTime
	}
	return "", meal.ErrNoMealScheduledToday
}
