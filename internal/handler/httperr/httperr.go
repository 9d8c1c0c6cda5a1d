package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// KindResponse is the body of a refused meal recording. ErrorKind is stable across
// releases; Message is for humans.
type KindResponse struct {
	Status    int    `json:"-"`
	Success   bool   `json:"success"`
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
	Detail    any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortWithKind(c *gin.Context, status int, err error, kind, msg string, detail any) {
	if err == nil {
		panic("AbortWithKind: err cannot be nil")
	}

	resp := KindResponse{
		Status:    status,
		Success:   false,
		ErrorKind: kind,
		Message:   msg,
		Detail:    detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// InternalKind is the errorKind of an unexpected failure on kind-answering routes.
const InternalKind = "Internal"

const kindRouteKey = "httperr.kind_route"

// MarkKindRoute makes later generic failures on this request answer as KindResponse.
func MarkKindRoute(c *gin.Context) {
	c.Set(kindRouteKey, true)
}

func IsKindRoute(c *gin.Context) bool {
	return c.GetBool(kindRouteKey)
}

// Internal builds the body for a failure nobody mapped, in the shape the route's
// clients parse.
func Internal(c *gin.Context) any {
	const msg = "Internal server error"
	if IsKindRoute(c) {
		return KindResponse{Status: http.StatusInternalServerError, ErrorKind: InternalKind, Message: msg}
	}
	resp := Response{Status: http.StatusInternalServerError}
	resp.Error.Message = msg
	return resp
}
