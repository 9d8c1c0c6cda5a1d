package api

import (
	"log/slog"
	"net/http"
	"time"

	reqdto "canteen-backoffice/internal/handler/dto/request"
	resdto "canteen-backoffice/internal/handler/dto/response"
	"canteen-backoffice/internal/handler/httperr"
	"canteen-backoffice/internal/handler/middleware"
	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/pkg/cookie"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/pkg/jwt"
	"canteen-backoffice/internal/usecase/commands"
	"canteen-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingPrincipal = errs.New("principal missing from context")

type AuthHandler struct {
	commands   commands.AuthCommands
	queries    queries.AdminQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(commands commands.AuthCommands, queries queries.AdminQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands:   commands,
		queries:    queries,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Admin login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAdminNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrAdminInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		case errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.queries.GetCurrentAdmin(c.Request.Context(), result.AdminID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	adminRes, err := resdto.FromAdminView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.accessTTL(), h.refreshTTL())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		Admin:        adminRes,
	})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh cookie or body token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Refresh token required", nil)
		return
	}

	pair, err := h.commands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		slog.Warn("token refresh failed", "error", err.Error())
		cookie.ClearTokenCookies(c, h.cfg.Cookie)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken, h.accessTTL(), h.refreshTTL())
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary Admin logout
// @Description Clears the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; clearing cookies is all the server can do
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
		return
	}

	view, err := h.queries.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrAdminNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Admin not found", nil)
		case errs.Is(err, queries.ErrAdminInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	res, err := resdto.FromAdminView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) accessTTL() time.Duration {
	if h.jwtService == nil {
		return 0
	}
	return h.jwtService.AccessTokenDuration()
}

func (h *AuthHandler) refreshTTL() time.Duration {
	if h.jwtService == nil {
		return 0
	}
	return h.jwtService.RefreshTokenDuration()
}
