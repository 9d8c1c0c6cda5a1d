package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"canteen-backoffice/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	HeaderTerminalID = "X-Terminal-ID"
	HeaderRequestID  = "X-Request-ID"
	HeaderCardCode   = "X-Card-Code"
)

// Collection terminals identify themselves and the console reads the card code and
// request id back, whatever the deployment overrides.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", HeaderTerminalID, HeaderRequestID}
	requiredExposeHeaders = []string{HeaderRequestID, HeaderCardCode}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withCanonical(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withCanonical(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(corsCfg.AllowMethods) == 0 {
		corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withCanonical(configured, required []string) []string {
	out := make([]string, 0, len(configured)+len(required))
	for _, h := range append(slices.Clone(configured), required...) {
		h = http.CanonicalHeaderKey(h)
		if h != "" && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
