package middleware

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"time"

	"canteen-backoffice/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// Terminals may forward their own id so a scan can be traced end to end.
var clientRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

type Logger struct {
	logger *slog.Logger
	zone   *time.Location
}

// NewLogger prints timestamps in the canteen's zone. Release mode logs JSON.
func NewLogger(cfg config.LogConfig) *Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if t, ok := a.Value.Any().(time.Time); ok && a.Key == slog.TimeKey {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	return &Logger{logger: slog.New(h), zone: zone}
}

func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// RequestLogger writes one line when a request arrives and one when it completes.
// The completion line carries the authenticated admin, if any.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		requestID := resolveRequestID(c)
		c.Set(requestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		base := requestAttrs(c, requestID)
		logger.LogAttrs(context.Background(), slog.LevelDebug, "request started", base...)

		c.Next()

		status := c.Writer.Status()
		attrs := append(base, completionAttrs(c, status, time.Since(started))...)
		logger.LogAttrs(context.Background(), levelFor(status), "request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func resolveRequestID(c *gin.Context) string {
	if id := c.GetHeader(HeaderRequestID); clientRequestID.MatchString(id) {
		return id
	}
	return uuid.NewString()
}

func requestAttrs(c *gin.Context, requestID string) []slog.Attr {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	attrs := []slog.Attr{
		slog.String("request_id", requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", path),
		slog.String("client_ip", c.ClientIP()),
	}
	if terminal := c.GetHeader(HeaderTerminalID); terminal != "" {
		attrs = append(attrs, slog.String("terminal_id", terminal))
	}
	return attrs
}

func completionAttrs(c *gin.Context, status int, elapsed time.Duration) []slog.Attr {
	attrs := make([]slog.Attr, 0, 6)
	if p, ok := GetPrincipal(c); ok {
		attrs = append(attrs,
			slog.String("admin_id", p.ID.String()),
			slog.String("admin_kind", p.Kind.String()))
	}
	attrs = append(attrs,
		slog.Int("status_code", status),
		slog.Duration("duration", elapsed))
	if size := c.Writer.Size(); size > 0 {
		attrs = append(attrs, slog.Int("response_size", size))
	}
	if len(c.Errors) > 0 {
		attrs = append(attrs, slog.String("errors", c.Errors.String()))
	}
	return attrs
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
