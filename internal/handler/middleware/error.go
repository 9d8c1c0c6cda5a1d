package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"canteen-backoffice/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// KindResponses marks a route group whose clients parse {success, errorKind}.
func KindResponses() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.MarkKindRoute(c)
		c.Next()
	}
}

// ErrorHandler writes the latest public error when a handler recorded one without
// answering, and a 500 when nothing answered at all.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, status, ok := lastPublicError(c); ok {
			c.JSON(status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal(c))
	}
}

func lastPublicError(c *gin.Context) (any, int, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		switch resp := e.Meta.(type) {
		case httperr.Response:
			return resp, resp.Status, true
		case httperr.KindResponse:
			return resp, resp.Status, true
		}
	}
	return nil, 0, false
}

// CustomRecovery logs the panic with its stack and answers 500 without leaking it.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("recovered from panic",
				"error", fmt.Sprint(rec),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", string(debug.Stack()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal(c))
		}()
		c.Next()
	}
}
