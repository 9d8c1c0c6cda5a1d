//go:build unit

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen-backoffice/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CustomRecovery(), ErrorHandler())

	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/silent", func(*gin.Context) {})
	r.GET("/recorded", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "already paid"
		_ = c.Error(gin.Error{Err: errors.New("paid"), Type: gin.ErrorTypePublic, Meta: resp})
	})

	meals := r.Group("/meals", KindResponses())
	meals.POST("/record", func(*gin.Context) { panic("boom") })
	meals.POST("/silent", func(*gin.Context) {})
	return r
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()

	t.Run("通常ルートはerror形式", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/panic")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	})

	t.Run("食事記録ルートはerrorKind形式", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/meals/record")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var res httperr.KindResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, httperr.InternalKind, res.ErrorKind)
	})
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("記録済みの公開エラーを返す", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/recorded")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"already paid"}}`, w.Body.String())
	})

	t.Run("何も返さないハンドラーは500", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/silent")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("食事記録ルートの無応答はInternal", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/meals/silent")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"errorKind":"Internal"`)
	})
}
