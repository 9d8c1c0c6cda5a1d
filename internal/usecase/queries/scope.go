package queries

import (
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrScopeForbidden  = errs.New("scope outside caller's company")
	ErrInvalidRange    = errs.New("invalid report range")
	ErrInvalidGrouping = errs.New("invalid report grouping")
	ErrInvalidBucket   = errs.New("invalid report bucket size")
)

// Scope filters reports. Only the narrowest of the three ids is applied.
type Scope struct {
	CompanyID  *uuid.UUID `json:"company_id,omitempty"`
	PlaceID    *uuid.UUID `json:"place_id,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
}

// Narrow keeps the location over the place over the company.
func (s Scope) Narrow() Scope {
	switch {
	case s.LocationID != nil:
		return Scope{LocationID: s.LocationID}
	case s.PlaceID != nil:
		return Scope{PlaceID: s.PlaceID}
	default:
		return Scope{CompanyID: s.CompanyID}
	}
}

// TimeRange is inclusive on both ends.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) Validate(maxDays int) error {
	if r.To.Before(r.From) {
		return errs.Wrap(ErrInvalidRange, "to before from")
	}
	if maxDays > 0 && r.To.Sub(r.From) > time.Duration(maxDays)*24*time.Hour {
		return errs.Wrapf(ErrInvalidRange, "range longer than %d days", maxDays)
	}
	return nil
}

// ReportFilter is the caller-supplied part of every report.
// Zero From/To mean the current civil day.
type ReportFilter struct {
	Principal admin.Principal
	Scope     Scope
	From      *time.Time
	To        *time.Time
	GroupBy   string
	Bucket    time.Duration
}
