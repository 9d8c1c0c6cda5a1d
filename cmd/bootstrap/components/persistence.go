package components

import (
	"canteen-backoffice/internal/infra/readstore"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/infra/uow"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Admin
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AdminReadQueries)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
		// Member
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MemberReadQueries)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		// Meal ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MealEntryReadQueries)),
		),
		fx.Annotate(
			readstore.NewMealEntryReadStore,
			fx.As(new(queries.MealEntryReadStore)),
		),
		// Reports
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReportQueries)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
