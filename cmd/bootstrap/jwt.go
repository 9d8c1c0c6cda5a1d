package bootstrap

import (
	"fmt"

	"canteen-backoffice/internal/pkg/config"
	"canteen-backoffice/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService refuses to start with a refresh lifetime that does not outlive the access token.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	c := cfg.JWT
	if c.AccessTokenDuration <= 0 || c.RefreshTokenDuration <= c.AccessTokenDuration {
		return nil, fmt.Errorf("invalid JWT lifetimes: access=%s refresh=%s", c.AccessTokenDuration, c.RefreshTokenDuration)
	}
	return jwt.NewService(c.Secret, c.AccessTokenDuration, c.RefreshTokenDuration), nil
}
