package bootstrap

import (
	"context"
	"log/slog"

	"canteen-backoffice/internal/infra/db"
	"canteen-backoffice/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects eagerly so a bad DSN fails startup, and closes the pool after the
// HTTP server has drained.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("データベースに接続しました", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func(context.Context) {
		stat := pool.Stat()
		logger.Info("データベース接続を閉じます",
			"acquired", stat.AcquiredConns(),
			"total", stat.TotalConns())
		closePool()
	}))
	return pool, nil
}
