package response

import (
	"canteen-backoffice/internal/usecase/commands"
)

type AssignmentResponse struct {
	AssignmentID string `json:"assignment_id"`
	Status       string `json:"status"`
}

func FromAssignPackageResult(r *commands.AssignPackageResult) *AssignmentResponse {
	return &AssignmentResponse{
		AssignmentID: r.AssignmentID.String(),
		Status:       r.Status.String(),
	}
}

type FeeResponse struct {
	FeeID     string `json:"fee_id"`
	MemberID  string `json:"member_id"`
	Status    string `json:"status"`
	IsFeePaid bool   `json:"is_fee_paid"`
}

func FromFeeResult(r *commands.FeeResult) *FeeResponse {
	return &FeeResponse{
		FeeID:     r.FeeID.String(),
		MemberID:  r.MemberID.String(),
		Status:    r.Status.String(),
		IsFeePaid: r.IsFeePaid,
	}
}
