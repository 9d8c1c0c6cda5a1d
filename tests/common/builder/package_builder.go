//go:build unit || e2e

package builder

import (
	"time"

	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/domain/mealpackage"

	"github.com/google/uuid"
)

type WindowSpec struct {
	MealType meal.MealType
	Enabled  bool
	Start    string
	End      string
	Days     []string
}

var everyDay = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

type PackageBuilder struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Name         string
	Fixed        bool
	ValidityDays int
	ValidityDate time.Time
	Windows      []WindowSpec
}

// NewPackageBuilder defaults to a dated package with breakfast 7:00-9:00 and lunch
// 12:00-14:00 every day.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		ID:           uuid.New(),
		CompanyID:    uuid.New(),
		Name:         "Standard",
		ValidityDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Windows: []WindowSpec{
			{MealType: meal.MealTypeBreakfast, Enabled: true, Start: "7:00 AM", End: "9:00 AM", Days: everyDay},
			{MealType: meal.MealTypeLunch, Enabled: true, Start: "12:00", End: "14:00", Days: everyDay},
		},
	}
}

func (p *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(p)
	return p
}

func (p *PackageBuilder) BuildDomain() (*mealpackage.Package, error) {
	windows := make([]mealpackage.Window, 0, len(p.Windows))
	for _, ws := range p.Windows {
		w, err := mealpackage.NewWindow(ws.MealType, ws.Enabled, ws.Start, ws.End, ws.Days)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	if p.Fixed {
		return mealpackage.NewFixedPackage(p.ID, p.CompanyID, p.Name, p.ValidityDays, windows)
	}
	return mealpackage.NewDatedPackage(p.ID, p.CompanyID, p.Name, p.ValidityDate, windows)
}

// MustBuild is for fixtures whose construction is not under test.
func (p *PackageBuilder) MustBuild() *mealpackage.Package {
	pkg, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return pkg
}

func (p *PackageBuilder) WithCompanyID(id uuid.UUID) *PackageBuilder {
	p.CompanyID = id
	return p
}

func (p *PackageBuilder) WithFixedValidity(days int) *PackageBuilder {
	p.Fixed = true
	p.ValidityDays = days
	return p
}

func (p *PackageBuilder) WithWindows(windows ...WindowSpec) *PackageBuilder {
	p.Windows = windows
	return p
}

func (p *PackageBuilder) WithoutWindows() *PackageBuilder {
	p.Windows = nil
	return p
}

func EveryDay() []string {
	return append([]string(nil), everyDay...)
}
