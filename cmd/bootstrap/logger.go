package bootstrap

import (
	"log/slog"

	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
	// usecases log through the default logger
	fx.Invoke(slog.SetDefault),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).Slog()
}
