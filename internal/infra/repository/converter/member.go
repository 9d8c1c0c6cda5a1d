package converter

import (
	"canteen-backoffice/internal/domain/company"
	"canteen-backoffice/internal/domain/meal"
	"canteen-backoffice/internal/domain/mealpackage"
	"canteen-backoffice/internal/domain/member"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// PackageIDs lists the distinct packages referenced by the assignment rows.
func PackageIDs(rows []sqlc.ListMemberAssignmentsRow) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if !row.PackageID.Valid || !row.PackageName.Valid {
			continue
		}
		id := uuid.UUID(row.PackageID.Bytes)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// ToMember rehydrates a member aggregate. windows must be ordered by package and position.
func ToMember(row sqlc.Members, assignmentRows []sqlc.ListMemberAssignmentsRow, windows []sqlc.MealWindows) (*member.Member, error) {
	windowsByPackage := make(map[uuid.UUID][]mealpackage.Window)
	for _, w := range windows {
		window, err := ToWindow(w)
		if err != nil {
			return nil, errs.Wrapf(err, "meal window %s", w.ID)
		}
		windowsByPackage[w.PackageID] = append(windowsByPackage[w.PackageID], window)
	}

	assignments := make([]*member.Assignment, 0, len(assignmentRows))
	for _, ar := range assignmentRows {
		a, err := toAssignment(ar, windowsByPackage)
		if err != nil {
			return nil, errs.Wrapf(err, "assignment %s", ar.ID)
		}
		assignments = append(assignments, a)
	}

	return member.NewMember(row.ID, row.CompanyID, row.Name, row.IsFeePaid, row.IsActive, assignments)
}

func ToWindow(w sqlc.MealWindows) (mealpackage.Window, error) {
	mealType, err := meal.NewMealType(w.MealType)
	if err != nil {
		return mealpackage.Window{}, err
	}
	days, err := mealpackage.NewWeekdaySet(w.Weekdays)
	if err != nil {
		return mealpackage.Window{}, err
	}
	return mealpackage.NewWindowMinutes(mealType, w.Enabled, int(w.StartMinute), int(w.EndMinute), days)
}

func toAssignment(row sqlc.ListMemberAssignmentsRow, windowsByPackage map[uuid.UUID][]mealpackage.Window) (*member.Assignment, error) {
	status, err := member.NewAssignmentStatus(row.Status)
	if err != nil {
		return nil, err
	}

	var comp *company.Company
	if row.CompanyID.Valid && row.CompanyName.Valid {
		policy, err := company.NewPolicy(pgconv.TextOrEmpty(row.CollectionPolicy))
		if err != nil {
			return nil, err
		}
		comp, err = company.NewCompany(uuid.UUID(row.CompanyID.Bytes), row.CompanyName.String, policy)
		if err != nil {
			return nil, err
		}
	}

	var pkg *mealpackage.Package
	if row.PackageID.Valid && row.PackageName.Valid {
		packageID := uuid.UUID(row.PackageID.Bytes)
		pkg, err = mealpackage.Rehydrate(
			packageID,
			uuid.UUID(row.PackageCompanyID.Bytes),
			row.PackageName.String,
			row.FixedValidity.Bool,
			pgconv.IntPtrFromPgtype(row.ValidityDays),
			pgconv.TimePtrFromPgtype(row.ValidityDate),
			windowsByPackage[packageID],
		)
		if err != nil {
			return nil, err
		}
	}

	return member.NewAssignment(member.AssignmentParams{
		ID:         row.ID,
		Company:    comp,
		PlaceID:    pgconv.UUIDPtrFromPgtype(row.PlaceID),
		LocationID: pgconv.UUIDPtrFromPgtype(row.LocationID),
		Package:    pkg,
		Start:      pgconv.TimeFromPgtype(row.StartAt),
		End:        pgconv.TimeFromPgtype(row.EndAt),
		Status:     status,
		AssignedAt: pgconv.TimeFromPgtype(row.AssignedAt),
	})
}

func AssignmentToCreateParams(memberID uuid.UUID, a *member.Assignment) sqlc.CreateAssignmentParams {
	params := sqlc.CreateAssignmentParams{
		ID:         a.ID(),
		MemberID:   memberID,
		PlaceID:    pgconv.UUIDPtrToPgtype(a.PlaceID()),
		LocationID: pgconv.UUIDPtrToPgtype(a.LocationID()),
		StartAt:    pgconv.TimeToPgtype(a.Start()),
		EndAt:      pgconv.TimeToPgtype(a.End()),
		Status:     a.Status().String(),
		AssignedAt: pgconv.TimeToPgtype(a.AssignedAt()),
	}
	if c := a.Company(); c != nil {
		params.CompanyID = pgconv.UUIDToPgtype(c.ID())
	}
	if p := a.Package(); p != nil {
		params.PackageID = pgconv.UUIDToPgtype(p.ID())
	}
	return params
}

func ToCompany(row sqlc.Companies) (*company.Company, error) {
	policy, err := company.NewPolicy(row.CollectionPolicy)
	if err != nil {
		return nil, err
	}
	return company.NewCompany(row.ID, row.Name, policy)
}

// ToPackage rehydrates a package with its windows in stored order.
func ToPackage(row sqlc.MealPackages, windows []sqlc.MealWindows) (*mealpackage.Package, error) {
	ws := make([]mealpackage.Window, 0, len(windows))
	for _, w := range windows {
		if w.PackageID != row.ID {
			continue
		}
		window, err := ToWindow(w)
		if err != nil {
			return nil, errs.Wrapf(err, "meal window %s", w.ID)
		}
		ws = append(ws, window)
	}
	return mealpackage.Rehydrate(
		row.ID,
		row.CompanyID,
		row.Name,
		row.FixedValidity,
		pgconv.IntPtrFromPgtype(row.ValidityDays),
		pgconv.TimePtrFromPgtype(row.ValidityDate),
		ws,
	)
}
