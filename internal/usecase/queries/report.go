package queries

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/report.go -package=queriesmock

import (
	"context"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	GroupByDay      = "day"
	GroupByMealType = "meal_type"
	GroupByBucket   = "bucket"
	GroupByStatus   = "status"
)

// ReportReadStore aggregates the ledgers. Scopes passed in are already narrowed.
type ReportReadStore interface {
	MealsByDay(ctx context.Context, scope Scope, tr TimeRange) ([]MealReportRow, error)
	MealsByMealType(ctx context.Context, scope Scope, tr TimeRange) ([]MealReportRow, error)
	MealsByBucket(ctx context.Context, scope Scope, tr TimeRange, bucket time.Duration, offsetSeconds int) ([]MealReportRow, error)
	FeesByDay(ctx context.Context, scope Scope, tr TimeRange, offsetSeconds int) ([]FeeReportRow, error)
	FeesByStatus(ctx context.Context, scope Scope, tr TimeRange) ([]FeeReportRow, error)
	PendingFees(ctx context.Context, scope Scope) (PendingFees, error)
	DistinctCollectors(ctx context.Context, scope Scope, tr TimeRange) (int64, error)
}

type ReportQueries interface {
	MealReport(ctx context.Context, f ReportFilter) (*MealReport, error)
	FeeReport(ctx context.Context, f ReportFilter) (*FeeReport, error)
	DashboardSummary(ctx context.Context, principal admin.Principal, scope Scope) (*DashboardSummary, error)
}

type ReportSettings struct {
	DefaultBucket time.Duration
	MaxRangeDays  int
}

type reportQueriesImpl struct {
	readStore ReportReadStore
	calendar  *civil.Calendar
	settings  ReportSettings
}

func NewReportQueries(readStore ReportReadStore, calendar *civil.Calendar, settings ReportSettings) ReportQueries {
	return &reportQueriesImpl{
		readStore: readStore,
		calendar:  calendar,
		settings:  settings,
	}
}

func (q *reportQueriesImpl) MealReport(ctx context.Context, f ReportFilter) (*MealReport, error) {
	groupBy := f.GroupBy
	if groupBy == "" {
		groupBy = GroupByDay
	}

	scope, err := EffectiveScope(f.Principal, f.Scope)
	if err != nil {
		return nil, err
	}
	tr, err := q.timeRange(f.From, f.To)
	if err != nil {
		return nil, err
	}

	var rows []MealReportRow
	switch groupBy {
	case GroupByDay:
		rows, err = q.readStore.MealsByDay(ctx, scope, tr)
		if err == nil {
			q.attachDayStarts(rows)
		}
	case GroupByMealType:
		rows, err = q.readStore.MealsByMealType(ctx, scope, tr)
	case GroupByBucket:
		bucket := f.Bucket
		if bucket == 0 {
			bucket = q.settings.DefaultBucket
		}
		if err := validateBucket(bucket); err != nil {
			return nil, err
		}
		rows, err = q.readStore.MealsByBucket(ctx, scope, tr, bucket, q.calendar.OffsetSeconds())
		if err == nil {
			for i := range rows {
				if rows[i].Start != nil {
					local := q.calendar.In(*rows[i].Start)
					rows[i].Start = &local
					rows[i].Key = local.Format(time.RFC3339)
				}
			}
		}
	default:
		return nil, errs.Wrapf(ErrInvalidGrouping, "meal report cannot group by %q", groupBy)
	}
	if err != nil {
		return nil, err
	}

	report := &MealReport{
		GroupBy: groupBy,
		From:    tr.From,
		To:      tr.To,
		Scope:   scope,
		Rows:    rows,
	}
	for _, r := range rows {
		report.Totals.Face += r.Face
		report.Totals.Card += r.Card
		report.Totals.Total += r.Total
	}
	return report, nil
}

func (q *reportQueriesImpl) FeeReport(ctx context.Context, f ReportFilter) (*FeeReport, error) {
	groupBy := f.GroupBy
	if groupBy == "" {
		groupBy = GroupByDay
	}

	scope, err := EffectiveScope(f.Principal, f.Scope)
	if err != nil {
		return nil, err
	}
	tr, err := q.timeRange(f.From, f.To)
	if err != nil {
		return nil, err
	}

	var rows []FeeReportRow
	switch groupBy {
	case GroupByDay:
		rows, err = q.readStore.FeesByDay(ctx, scope, tr, q.calendar.OffsetSeconds())
	case GroupByStatus:
		rows, err = q.readStore.FeesByStatus(ctx, scope, tr)
	default:
		return nil, errs.Wrapf(ErrInvalidGrouping, "fee report cannot group by %q", groupBy)
	}
	if err != nil {
		return nil, err
	}

	report := &FeeReport{
		GroupBy: groupBy,
		From:    tr.From,
		To:      tr.To,
		Scope:   scope,
		Rows:    rows,
		Totals:  FeeReportRow{Key: "total"},
	}
	for _, r := range rows {
		report.Totals.RecordCount += r.RecordCount
		report.Totals.AmountMinor += r.AmountMinor
		report.Totals.PendingCount += r.PendingCount
		report.Totals.PendingAmountMinor += r.PendingAmountMinor
	}
	return report, nil
}

// DashboardSummary covers the current civil day. The aggregates run concurrently.
func (q *reportQueriesImpl) DashboardSummary(ctx context.Context, principal admin.Principal, scope Scope) (*DashboardSummary, error) {
	scope, err := EffectiveScope(principal, scope)
	if err != nil {
		return nil, err
	}
	now := q.calendar.Now()
	from, to := q.calendar.DayBounds(now)
	tr := TimeRange{From: from, To: to}

	var (
		byType     []MealReportRow
		collectors int64
		pending    PendingFees
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byType, err = q.readStore.MealsByMealType(gctx, scope, tr)
		return err
	})
	g.Go(func() error {
		var err error
		collectors, err = q.readStore.DistinctCollectors(gctx, scope, tr)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = q.readStore.PendingFees(gctx, scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Day:                from.Format(civil.DateLayout),
		MealsByType:        make(map[string]int64, len(byType)),
		DistinctCollectors: collectors,
		PendingFees:        pending,
	}
	for _, r := range byType {
		summary.MealsByType[r.Key] = r.Total
		summary.TotalMeals += r.Total
	}
	return summary, nil
}

// timeRange defaults to the current civil day. A missing end closes the civil day
// that contains the start.
func (q *reportQueriesImpl) timeRange(from, to *time.Time) (TimeRange, error) {
	var tr TimeRange
	switch {
	case from == nil && to == nil:
		tr.From, tr.To = q.calendar.DayBounds(q.calendar.Now())
	case from == nil:
		tr.From = q.calendar.StartOfDay(*to)
		tr.To = *to
	case to == nil:
		tr.From = *from
		_, tr.To = q.calendar.DayBounds(*from)
	default:
		tr.From, tr.To = *from, *to
	}
	if err := tr.Validate(q.settings.MaxRangeDays); err != nil {
		return TimeRange{}, err
	}
	return tr, nil
}

func (q *reportQueriesImpl) attachDayStarts(rows []MealReportRow) {
	for i := range rows {
		day, err := q.calendar.ParseDate(rows[i].Key)
		if err != nil {
			continue
		}
		rows[i].Start = &day
	}
}

func validateBucket(bucket time.Duration) error {
	if bucket < time.Minute || bucket > 24*time.Hour || bucket%time.Minute != 0 {
		return errs.Wrapf(ErrInvalidBucket, "bucket %s must be whole minutes up to 24h", bucket)
	}
	return nil
}

// EffectiveScope narrows s and confines non-superadmins to their own company.
// Conditions are ANDed in storage, so a place or location of another company
// yields an empty report rather than leaking rows.
func EffectiveScope(p admin.Principal, s Scope) (Scope, error) {
	narrowed := s.Narrow()
	if p.Kind == admin.KindSuperadmin {
		return narrowed, nil
	}
	if p.CompanyID == nil {
		return Scope{}, ErrScopeForbidden
	}
	if s.CompanyID != nil && *s.CompanyID != *p.CompanyID {
		return Scope{}, ErrScopeForbidden
	}
	companyID := *p.CompanyID
	narrowed.CompanyID = &companyID
	return narrowed, nil
}
