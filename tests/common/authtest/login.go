//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"canteen-backoffice/internal/handler/dto/request"
	"canteen-backoffice/tests/common/dbtest"
	"canteen-backoffice/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginAdmin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.Executor, router *gin.Engine, email, kind string, companyID *uuid.UUID) string {
	t.Helper()
	dbtest.CreateTestAdmin(t, db, email, kind, companyID)
	return LoginAdmin(t, router, email, "password123")
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, "", httptest.WithCookies(cookies...))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
