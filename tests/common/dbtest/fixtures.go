//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Executor is what fixtures need from a pool or a transaction.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPasswordHash is bcrypt("password123").
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestAdmin(t *testing.T, db Executor, email, kind string, companyID *uuid.UUID) uuid.UUID {
	t.Helper()

	adminID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO admins (id, email, name, password_hash, kind, company_id, is_active) VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		adminID, email, "Test Admin", TestPasswordHash, kind, companyID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admins WHERE email = $1 AND is_active = true", email).Scan(&adminID)
	}

	return adminID
}

func CreateTestCompany(t *testing.T, db Executor, name, policy string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO companies (id, name, collection_policy) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING", companyID, name, policy)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&companyID)
	}

	return companyID
}

func DefaultCompanyID(t *testing.T, db Executor) uuid.UUID {
	t.Helper()

	var companyID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM companies WHERE name = 'Default Company' LIMIT 1").Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func CreateTestPlace(t *testing.T, db Executor, companyID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	placeID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO places (id, company_id, name) VALUES ($1, $2, $3)", placeID, companyID, name)
	require.NoError(t, err)
	return placeID
}

func CreateTestLocation(t *testing.T, db Executor, placeID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO locations (id, place_id, name) VALUES ($1, $2, $3)", locationID, placeID, name)
	require.NoError(t, err)
	return locationID
}

type WindowFixture struct {
	MealType    string
	Disabled    bool
	StartMinute int
	EndMinute   int
	Weekdays    []string
}

type PackageFixture struct {
	CompanyID     uuid.UUID
	Name          string
	FixedValidity bool
	ValidityDays  *int32
	ValidityDate  *time.Time
	Windows       []WindowFixture
}

var AllWeekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// CreateTestPackage inserts a package and its windows in the given order.
// A package with neither validity set gets a validity date far in the future.
func CreateTestPackage(t *testing.T, db Executor, f PackageFixture) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	packageID := uuid.New()
	if f.Name == "" {
		f.Name = "Package " + packageID.String()[:8]
	}
	if !f.FixedValidity && f.ValidityDate == nil {
		far := time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)
		f.ValidityDate = &far
	}

	_, err := db.Exec(ctx, "INSERT INTO meal_packages (id, company_id, name, fixed_validity, validity_days, validity_date) VALUES ($1, $2, $3, $4, $5, $6)",
		packageID, f.CompanyID, f.Name, f.FixedValidity, f.ValidityDays, f.ValidityDate)
	require.NoError(t, err)

	for i, w := range f.Windows {
		days := w.Weekdays
		if days == nil {
			days = AllWeekdays
		}
		_, err := db.Exec(ctx, "INSERT INTO meal_windows (package_id, position, meal_type, enabled, start_minute, end_minute, weekdays) VALUES ($1, $2, $3, $4, $5, $6, $7)",
			packageID, i, w.MealType, !w.Disabled, w.StartMinute, w.EndMinute, days)
		require.NoError(t, err)
	}

	return packageID
}

func CreateTestMember(t *testing.T, db Executor, companyID uuid.UUID, name string, feePaid bool) uuid.UUID {
	t.Helper()

	memberID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO members (id, company_id, name, is_fee_paid) VALUES ($1, $2, $3, $4)",
		memberID, companyID, name, feePaid)
	require.NoError(t, err)
	return memberID
}

type AssignmentFixture struct {
	MemberID   uuid.UUID
	CompanyID  *uuid.UUID
	PlaceID    *uuid.UUID
	LocationID *uuid.UUID
	PackageID  *uuid.UUID
	Start      time.Time
	End        time.Time
	Status     string
}

func CreateTestAssignment(t *testing.T, db Executor, f AssignmentFixture) uuid.UUID {
	t.Helper()

	if f.Status == "" {
		f.Status = "active"
	}
	assignmentID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO package_assignments (id, member_id, company_id, place_id, location_id, package_id, start_at, end_at, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		assignmentID, f.MemberID, f.CompanyID, f.PlaceID, f.LocationID, f.PackageID, f.Start, f.End, f.Status)
	require.NoError(t, err)
	return assignmentID
}

func CreateTestFee(t *testing.T, db Executor, memberID uuid.UUID, amountMinor int64, status string) uuid.UUID {
	t.Helper()

	feeID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO fee_records (id, member_id, amount_minor, status) VALUES ($1, $2, $3, $4)",
		feeID, memberID, amountMinor, status)
	require.NoError(t, err)
	return feeID
}

func CountMealEntries(t *testing.T, db Executor, memberID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM meal_entries WHERE member_id = $1", memberID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Insert companies
	_, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name) VALUES 
		    (gen_random_uuid(), 'Default Company'),
		    (gen_random_uuid(), 'Test Company')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
