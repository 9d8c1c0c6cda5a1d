package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type FeeSnapshot struct {
	ID          uuid.UUID
	MemberID    uuid.UUID
	AmountMinor int64
	Status      string
	PaidAt      *time.Time
}
