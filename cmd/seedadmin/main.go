package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/infra/db"
	"canteen-backoffice/internal/infra/repository"
	sqlc "canteen-backoffice/internal/infra/sqlc/generated"
	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/pkg/password"
	"canteen-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

func main() {
	email := flag.String("email", "", "admin email")
	name := flag.String("name", "Administrator", "display name")
	kindFlag := flag.String("kind", string(admin.KindSuperadmin), "superadmin, admin, manager or meal_collector")
	company := flag.String("company", "", "company id; required for every kind but superadmin")
	cost := flag.Int("cost", password.Cost, "bcrypt cost")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).Slog()

	pw := os.Getenv("SEED_ADMIN_PASSWORD")
	creds, err := admin.NewCredentials(*email, pw)
	if err != nil {
		logger.Error("invalid credentials; set -email and SEED_ADMIN_PASSWORD", "error", err)
		os.Exit(2)
	}
	kind, err := admin.NewKind(*kindFlag)
	if err != nil {
		logger.Error("invalid kind", "kind", *kindFlag, "error", err)
		os.Exit(2)
	}
	var companyID *uuid.UUID
	if *company != "" {
		id, err := uuid.Parse(*company)
		if err != nil {
			logger.Error("invalid company id", "company", *company, "error", err)
			os.Exit(2)
		}
		companyID = &id
	}
	if kind != admin.KindSuperadmin && companyID == nil {
		logger.Error("company is required", "kind", kind)
		os.Exit(2)
	}

	hash, err := password.HashWithCost(creds.Password().Value(), *cost)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		os.Exit(1)
	}
	a, err := admin.NewAdmin(creds.Email(), *name, hash, kind, companyID)
	if err != nil {
		logger.Error("failed to build admin", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Error("データベースへの接続に失敗しました", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	repo := repository.NewAdminRepository(sqlc.New())
	id, err := shared.RunInTx(context.Background(), pool, shared.DefaultRetryPolicy, func(tx sqlc.DBTX) (uuid.UUID, error) {
		return repo.Create(context.Background(), tx, a)
	})
	if err != nil {
		logger.Error("管理者の作成に失敗しました", "email", creds.Email().Value(), "error", err)
		os.Exit(1)
	}
	logger.Info("管理者を作成しました", "admin_id", id, "email", creds.Email().Value(), "kind", kind)
}
