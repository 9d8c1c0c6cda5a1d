package main

import (
	"flag"
	"log/slog"
	"os"

	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/infra/db"
	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	direction := flag.String("direction", "up", "up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply; 0 means all")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).Slog()

	m, err := db.NewMigrator(cfg.DB)
	if err != nil {
		logger.Error("マイグレーションの準備に失敗しました", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	switch {
	case *steps != 0 && *direction == "down":
		err = m.Steps(-*steps)
	case *steps != 0:
		err = m.Steps(*steps)
	case *direction == "down":
		err = m.Down()
	case *direction == "up":
		err = m.Up()
	default:
		logger.Error("unknown direction", "direction", *direction)
		os.Exit(2)
	}
	if err != nil && !errs.Is(err, migrate.ErrNoChange) {
		logger.Error("マイグレーションに失敗しました", "direction", *direction, "error", err)
		os.Exit(1)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errs.Is(verr, migrate.ErrNilVersion) {
		logger.Warn("failed to read schema version", "error", verr)
	}
	logger.Info("マイグレーションが完了しました", "direction", *direction, "version", version, "dirty", dirty)
}
