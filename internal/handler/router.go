package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/handler/api"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth           *api.AuthHandler
	Meal           *api.MealHandler
	Member         *api.MemberHandler
	Fee            *api.FeeHandler
	Report         *api.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := h.AuthMiddleware
	managers := authMw.RequireKindAtLeast(admin.KindManager)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		meals := apiGroup.Group("/meals")
		meals.Use(middleware.KindResponses(), authMw.RequireAuth())
		{
			addRoutes(meals, []route{
				{Method: http.MethodPost, Path: "/record", Handler: h.Meal.Record, Mw: []gin.HandlerFunc{authMw.RequireKindAtLeast(admin.KindMealCollector)}},
			})
		}

		members := apiGroup.Group("/members")
		members.Use(authMw.RequireAuth())
		{
			addRoutes(members, []route{
				{Method: http.MethodGet, Path: "/:id/meals", Handler: h.Member.MealEntries, Mw: []gin.HandlerFunc{managers}},
				{Method: http.MethodGet, Path: "/:id/card.png", Handler: h.Member.CardPNG, Mw: []gin.HandlerFunc{managers}},
				{Method: http.MethodPost, Path: "/:id/assignments", Handler: h.Member.AssignPackage, Mw: []gin.HandlerFunc{managers}},
				{Method: http.MethodDelete, Path: "/:id/assignments/:assignmentId", Handler: h.Member.RemoveAssignment, Mw: []gin.HandlerFunc{managers}},
			})
		}

		fees := apiGroup.Group("/fees")
		fees.Use(authMw.RequireAuth(), managers)
		{
			addRoutes(fees, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Fee.Create},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: h.Fee.Pay},
			})
		}

		reports := apiGroup.Group("")
		reports.Use(authMw.RequireAuth(), managers)
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/reports/meals", Handler: h.Report.Meals},
				{Method: http.MethodGet, Path: "/reports/fees", Handler: h.Report.Fees},
				{Method: http.MethodGet, Path: "/dashboard/summary", Handler: h.Report.Dashboard},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
