// Package cookie carries admin session tokens for the back office console.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"canteen-backoffice/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	defaultRefreshPath = "/api/auth"
)

// SetTokenCookies writes both session cookies. The refresh cookie is only sent back
// to the auth routes.
func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	w := newWriter(c, cfg)
	w.write(AccessTokenCookieName, accessToken, "/", accessExpiry)
	w.write(RefreshTokenCookieName, refreshToken, refreshPath(cfg), refreshExpiry)
}

// ClearTokenCookies expires both cookies on the same paths they were issued on.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	w := newWriter(c, cfg)
	w.expire(AccessTokenCookieName, "/")
	w.expire(RefreshTokenCookieName, refreshPath(cfg))
}

func GetAccessToken(c *gin.Context) string {
	return read(c, AccessTokenCookieName)
}

func GetRefreshToken(c *gin.Context) string {
	return read(c, RefreshTokenCookieName)
}

func read(c *gin.Context, name string) string {
	value, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return value
}

type writer struct {
	c   *gin.Context
	cfg config.CookieConfig
}

func newWriter(c *gin.Context, cfg config.CookieConfig) writer {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	return writer{c: c, cfg: cfg}
}

func (w writer) write(name, value, path string, ttl time.Duration) {
	w.c.SetCookie(name, value, int(ttl.Seconds()), path, w.cfg.Domain, w.cfg.Secure, true)
}

func (w writer) expire(name, path string) {
	w.c.SetCookie(name, "", -1, path, w.cfg.Domain, w.cfg.Secure, true)
}

func refreshPath(cfg config.CookieConfig) string {
	if cfg.RefreshPath == "" {
		return defaultRefreshPath
	}
	return cfg.RefreshPath
}

var sameSiteModes = map[string]http.SameSite{
	"strict": http.SameSiteStrictMode,
	"lax":    http.SameSiteLaxMode,
	"none":   http.SameSiteNoneMode,
}

func parseSameSite(v string) http.SameSite {
	if mode, ok := sameSiteModes[strings.ToLower(v)]; ok {
		return mode
	}
	return http.SameSiteLaxMode
}
