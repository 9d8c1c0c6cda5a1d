package components

import (
	"canteen-backoffice/internal/pkg/cardcode"
	"canteen-backoffice/internal/pkg/civil"
	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/usecase"
	"canteen-backoffice/internal/usecase/commands"
	"canteen-backoffice/internal/usecase/queries"
	"canteen-backoffice/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	civil.NewRealClock,
	func(clock civil.Clock, cfg config.Config) *civil.Calendar {
		return civil.NewCalendar(clock, cfg.Civil.TimeZone, cfg.Civil.OffsetSeconds)
	},
	func(cfg config.Config) *cardcode.Codec {
		return cardcode.NewCodec(cfg.Card.CodePrefix)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAssignmentCommands,
		commands.NewFeeCommands,
		func(uow shared.UnitOfWork, calendar *civil.Calendar, codec *cardcode.Codec, cfg config.Config) commands.MealCommands {
			return commands.NewMealCommands(uow, calendar, codec, cfg.Meal.RecordTimeout)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAdminQueries,
		func(members queries.MemberReadStore, entries queries.MealEntryReadStore, calendar *civil.Calendar, codec *cardcode.Codec, cfg config.Config) queries.MemberQueries {
			return queries.NewMemberQueries(members, entries, calendar, codec, cfg.Report.MaxRangeDays)
		},
		func(readStore queries.ReportReadStore, calendar *civil.Calendar, cfg config.Config) queries.ReportQueries {
			return queries.NewReportQueries(readStore, calendar, queries.ReportSettings{
				DefaultBucket: cfg.Report.DefaultBucket,
				MaxRangeDays:  cfg.Report.MaxRangeDays,
			})
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
