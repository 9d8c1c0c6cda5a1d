//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen-backoffice/internal/domain/admin"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	adminID := uuid.New()
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.POST("/api/meals/record", func(c *gin.Context) {
		c.Set(ctxPrincipalKey, admin.Principal{ID: adminID, Kind: admin.KindMealCollector})
		c.Status(http.StatusConflict)
	})

	t.Run("端末の要求IDを引き継ぐ", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/api/meals/record", nil)
		req.Header.Set(HeaderRequestID, "gate-3-000123")
		req.Header.Set(HeaderTerminalID, "gate-3")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "gate-3-000123", w.Header().Get(HeaderRequestID))
		entry := lastLine(t, buf)
		assert.Equal(t, "request completed", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "gate-3", entry["terminal_id"])
		assert.Equal(t, adminID.String(), entry["admin_id"])
		assert.Equal(t, "meal_collector", entry["admin_kind"])
		assert.EqualValues(t, http.StatusConflict, entry["status_code"])
	})

	t.Run("不正な要求IDは採番し直す", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/api/meals/record", nil)
		req.Header.Set(HeaderRequestID, "bad id\n")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
		assert.NoError(t, err)
	})

	t.Run("未定義ルートは実パスを記録する", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		entry := lastLine(t, buf)
		assert.Equal(t, "/nope", entry["path"])
		assert.Nil(t, entry["admin_id"])
	})
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, levelFor(http.StatusPaymentRequired))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusGatewayTimeout))
}
