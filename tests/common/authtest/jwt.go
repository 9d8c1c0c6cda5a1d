//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the same secret the app under test validates with.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, p admin.Principal) string {
	t.Helper()
	return h.sign(t, p, h.cfg.AccessTokenDuration)
}

// CreateExpiredToken returns an access token that has already lapsed.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, p admin.Principal) string {
	t.Helper()
	token := h.sign(t, p, time.Millisecond)
	time.Sleep(1100 * time.Millisecond)
	return token
}

// RefreshToken returns a refresh token, useful to show it is refused as a bearer.
func (h *JWTHelper) RefreshToken(t *testing.T, p admin.Principal) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration, h.cfg.RefreshTokenDuration).GenerateRefreshToken(p)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) sign(t *testing.T, p admin.Principal, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, ttl, h.cfg.RefreshTokenDuration).GenerateAccessToken(p)
	require.NoError(t, err)
	return token
}
