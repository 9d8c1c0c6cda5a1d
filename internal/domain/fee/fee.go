package fee

import (
	"time"

	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errs.New("fee amount must be positive")
	ErrInvalidStatus = errs.New("invalid fee status")
	ErrAlreadyPaid   = errs.New("fee record already paid")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if status != StatusPending && status != StatusPaid {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Record is a payment obligation of a member. Amount is in minor currency units.
type Record struct {
	id          uuid.UUID
	memberID    uuid.UUID
	amountMinor int64
	status      Status
	note        string
	createdAt   time.Time
	paidAt      *time.Time
}

func NewPendingRecord(memberID uuid.UUID, amountMinor int64, note string, now time.Time) (*Record, error) {
	if amountMinor <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Record{
		id:          uuid.New(),
		memberID:    memberID,
		amountMinor: amountMinor,
		status:      StatusPending,
		note:        note,
		createdAt:   now,
	}, nil
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) MemberID() uuid.UUID  { return r.memberID }
func (r *Record) AmountMinor() int64   { return r.amountMinor }
func (r *Record) Status() Status       { return r.status }
func (r *Record) Note() string         { return r.note }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) PaidAt() *time.Time   { return r.paidAt }

// FeePaidFlag is the value the member's convenience flag should carry given how many
// pending records remain.
func FeePaidFlag(pendingCount int64) bool {
	return pendingCount == 0
}
