package queries

import (
	"time"

	"github.com/google/uuid"
)

// AdminView represents read-optimized admin data with authorization info
type AdminView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// MealEntryView is one meal ledger row
type MealEntryView struct {
	ID         uuid.UUID  `json:"id"`
	MemberID   uuid.UUID  `json:"member_id"`
	CompanyID  uuid.UUID  `json:"company_id"`
	PlaceID    *uuid.UUID `json:"place_id,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	PackageID  *uuid.UUID `json:"package_id,omitempty"`
	MealType   string     `json:"meal_type"`
	Method     string     `json:"method"`
	Status     string     `json:"status"`
	RecordedAt time.Time  `json:"recorded_at"`
	CivilDay   string     `json:"civil_day"`
}

// MemberSummary is the minimum needed to authorize access to a member
type MemberSummary struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	IsFeePaid bool      `json:"is_fee_paid"`
	IsActive  bool      `json:"is_active"`
}

// MealCounts splits a count by collection method
type MealCounts struct {
	Face  int64 `json:"face"`
	Card  int64 `json:"card"`
	Total int64 `json:"total"`
}

// MealReportRow is one group of a meal report. Start is set for day and bucket groupings.
type MealReportRow struct {
	Key   string     `json:"key"`
	Start *time.Time `json:"start,omitempty"`
	MealCounts
}

type MealReport struct {
	GroupBy string          `json:"group_by"`
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Scope   Scope           `json:"scope"`
	Rows    []MealReportRow `json:"rows"`
	Totals  MealCounts      `json:"totals"`
}

type FeeReportRow struct {
	Key                string `json:"key"`
	RecordCount        int64  `json:"record_count"`
	AmountMinor        int64  `json:"amount_minor"`
	PendingCount       int64  `json:"pending_count"`
	PendingAmountMinor int64  `json:"pending_amount_minor"`
}

type FeeReport struct {
	GroupBy string         `json:"group_by"`
	From    time.Time      `json:"from"`
	To      time.Time      `json:"to"`
	Scope   Scope          `json:"scope"`
	Rows    []FeeReportRow `json:"rows"`
	Totals  FeeReportRow   `json:"totals"`
}

type PendingFees struct {
	Count       int64 `json:"count"`
	AmountMinor int64 `json:"amount_minor"`
}

type DashboardSummary struct {
	Day                string           `json:"day"`
	MealsByType        map[string]int64 `json:"meals_by_type"`
	TotalMeals         int64            `json:"total_meals"`
	DistinctCollectors int64            `json:"distinct_collectors"`
	PendingFees        PendingFees      `json:"pending_fees"`
}
