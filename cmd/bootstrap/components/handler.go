package components

import (
	"canteen-backoffice/internal/handler"
	"canteen-backoffice/internal/handler/api"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMealHandler,
		api.NewMemberHandler,
		api.NewFeeHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)
