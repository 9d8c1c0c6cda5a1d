//go:build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "canteen")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "canteen")
	t.Setenv("JWT_SECRET", "jwt-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 19800, cfg.Civil.OffsetSeconds)
	assert.Equal(t, 25*time.Second, cfg.Meal.RecordTimeout)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenDuration)
	assert.Equal(t, "/api/auth", cfg.Cookie.RefreshPath)
	assert.Contains(t, cfg.CORS.ExposeHeaders, "X-Card-Code")
	assert.NoError(t, Validate(cfg))
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("DB_USER", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"テスト設定は妥当", func(*Config) {}, ""},
		{"オフセット範囲外", func(c *Config) { c.Civil.OffsetSeconds = 90000 }, "CIVIL_UTC_OFFSET_SECONDS"},
		{"書き込みタイムアウトが記録タイムアウト以下", func(c *Config) { c.Server.WriteTimeout = 20 * time.Second }, "SERVER_WRITE_TIMEOUT"},
		{"バケットが分単位でない", func(c *Config) { c.Report.DefaultBucket = 90 * time.Second }, "REPORT_DEFAULT_BUCKET"},
		{"QRが小さすぎる", func(c *Config) { c.Card.QRSize = 10 }, "CARD_QR_SIZE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
