package request

import (
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScopeQuery struct {
	CompanyID  string `form:"company_id" binding:"omitempty,uuid"`
	PlaceID    string `form:"place_id" binding:"omitempty,uuid"`
	LocationID string `form:"location_id" binding:"omitempty,uuid"`
}

func (q ScopeQuery) ToScope() queries.Scope {
	return queries.Scope{
		CompanyID:  parseOptionalUUID(q.CompanyID),
		PlaceID:    parseOptionalUUID(q.PlaceID),
		LocationID: parseOptionalUUID(q.LocationID),
	}
}

type ReportQuery struct {
	ScopeQuery
	From          string `form:"from" binding:"omitempty,civil_time"`
	To            string `form:"to" binding:"omitempty,civil_time"`
	GroupBy       string `form:"group_by" binding:"omitempty,oneof=day meal_type bucket status"`
	BucketMinutes int    `form:"bucket_minutes" binding:"omitempty,min=1,max=1440"`
}

func (q ReportQuery) ToFilter(cal *civil.Calendar, principal admin.Principal) (queries.ReportFilter, error) {
	from, to, err := ParseRange(cal, q.From, q.To)
	if err != nil {
		return queries.ReportFilter{}, err
	}
	return queries.ReportFilter{
		Principal: principal,
		Scope:     q.ToScope(),
		From:      from,
		To:        to,
		GroupBy:   q.GroupBy,
		Bucket:    time.Duration(q.BucketMinutes) * time.Minute,
	}, nil
}

// ParseRange reads from and to. A civil date as the end means the whole day.
func ParseRange(cal *civil.Calendar, fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		t, _, err := ParseCivilTime(cal, fromStr)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if toStr != "" {
		t, isDate, err := ParseCivilTime(cal, toStr)
		if err != nil {
			return nil, nil, err
		}
		if isDate {
			_, t = cal.DayBounds(t)
		}
		to = &t
	}
	return from, to, nil
}

// ParseCivilTime accepts YYYY-MM-DD in the civil zone or an RFC 3339 instant.
func ParseCivilTime(cal *civil.Calendar, s string) (time.Time, bool, error) {
	if len(s) == len(civil.DateLayout) {
		t, err := cal.ParseDate(s)
		return t, true, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, errs.Mark(errs.Wrapf(err, "parse %q", s), civil.ErrInvalidDate)
	}
	return t, false, nil
}

func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
