package response

import (
	"time"

	"canteen-backoffice/internal/usecase/commands"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RecordMealResponse struct {
	Success    bool      `json:"success"`
	MealID     string    `json:"mealId"`
	MealType   string    `json:"mealType"`
	MealLabel  string    `json:"mealLabel"`
	Method     string    `json:"method"`
	Timestamp  time.Time `json:"timestamp"`
	MemberID   string    `json:"memberId"`
	MemberName string    `json:"memberName"`
}

func FromRecordMealResult(r *commands.RecordMealResult) *RecordMealResponse {
	return &RecordMealResponse{
		Success:    true,
		MealID:     r.MealID.String(),
		MealType:   r.MealType.String(),
		MealLabel:  r.MealType.Label(),
		Method:     r.Method.String(),
		Timestamp:  r.Timestamp,
		MemberID:   r.MemberID.String(),
		MemberName: r.MemberName,
	}
}

type MealEntryResponse struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	CompanyID  string    `json:"company_id"`
	PlaceID    *string   `json:"place_id,omitempty"`
	LocationID *string   `json:"location_id,omitempty"`
	PackageID  *string   `json:"package_id,omitempty"`
	MealType   string    `json:"meal_type"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
	CivilDay   string    `json:"civil_day"`
}

func FromMealEntries(views []queries.MealEntryView) ([]MealEntryResponse, error) {
	res := make([]MealEntryResponse, 0, len(views))
	if err := copier.CopyWithOption(&res, &views, copyOptions); err != nil {
		return nil, err
	}
	return res, nil
}
