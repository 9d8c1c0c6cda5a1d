package request

import (
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
)

type AssignPackageRequest struct {
	PackageID  uuid.UUID  `json:"package_id" binding:"required"`
	PlaceID    *uuid.UUID `json:"place_id,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	Start      time.Time  `json:"start" binding:"required"`
	End        time.Time  `json:"end" binding:"required,gtefield=Start"`
}

func (r AssignPackageRequest) ToInput(memberID uuid.UUID, principal admin.Principal) commands.AssignPackageInput {
	return commands.AssignPackageInput{
		MemberID:   memberID,
		PackageID:  r.PackageID,
		PlaceID:    r.PlaceID,
		LocationID: r.LocationID,
		Start:      r.Start,
		End:        r.End,
		Principal:  principal,
	}
}

type RemoveAssignmentQuery struct {
	Hard bool `form:"hard"`
}

// MealEntriesQuery accepts civil dates (YYYY-MM-DD) or RFC 3339 instants.
type MealEntriesQuery struct {
	From     string `form:"from" binding:"omitempty,civil_time"`
	To       string `form:"to" binding:"omitempty,civil_time"`
	MealType string `form:"meal_type" binding:"omitempty,meal_type"`
}
