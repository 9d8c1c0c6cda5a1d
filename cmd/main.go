package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"canteen-backoffice/cmd/bootstrap"
	"canteen-backoffice/internal/infra/db"
	"canteen-backoffice/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           canteen-backoffice
// @version         1.0
// @description     Meal eligibility recording and reporting for canteen back offices

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func newServer(engine *gin.Engine, cfg config.Config) *http.Server {
	gin.EnableJsonDecoderDisallowUnknownFields()
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}
}

func migrateOnStart(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	if !cfg.Server.MigrateOnStart {
		return
	}
	lc.Append(fx.StartHook(func() error {
		logger.Info("マイグレーションを適用します", "database", cfg.DB.DBName)
		return db.MigrateUp(cfg.DB)
	}))
}

func serve(lc fx.Lifecycle, srv *http.Server, cfg config.Config, logger *slog.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("🚀 サーバーを起動します", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("サーバーが異常終了しました", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		bootstrap.LoggerModule,
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			newServer,
		),
		fx.Invoke(
			migrateOnStart,
			serve,
		),
	)
	app.Run()
}
