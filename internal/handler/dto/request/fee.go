package request

import (
	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateFeeRequest struct {
	MemberID    uuid.UUID `json:"member_id" binding:"required"`
	AmountMinor int64     `json:"amount_minor" binding:"required,gt=0"`
	Note        string    `json:"note" binding:"max=500"`
}

func (r CreateFeeRequest) ToInput(principal admin.Principal) commands.CreateFeeInput {
	return commands.CreateFeeInput{
		MemberID:    r.MemberID,
		AmountMinor: r.AmountMinor,
		Note:        r.Note,
		Principal:   principal,
	}
}
