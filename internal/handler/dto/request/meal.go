package request

import (
	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
)

// RecordMealRequest identifies the member by id or by the code printed on the card.
type RecordMealRequest struct {
	UserID   string `json:"user_id" binding:"required_without=CardCode,omitempty,uuid"`
	CardCode string `json:"card_code" binding:"required_without=UserID,omitempty,max=64"`
	Method   string `json:"method" binding:"required,meal_method"`
}

func (r RecordMealRequest) ToInput(principal admin.Principal) commands.RecordMealInput {
	in := commands.RecordMealInput{
		CardCode:  r.CardCode,
		Method:    r.Method,
		Principal: &principal,
	}
	if r.UserID != "" {
		// format already checked by the uuid binding tag
		in.UserID, _ = uuid.Parse(r.UserID)
	}
	return in
}
