//go:build unit

package jwt

import (
	"testing"
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/errs"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	companyID := uuid.New()
	p := admin.Principal{ID: uuid.New(), Kind: admin.KindManager, CompanyID: &companyID}
	svc := NewService("secret", 15*time.Minute, time.Hour)

	access, err := svc.GenerateAccessToken(p)
	require.NoError(t, err)

	claims, err := svc.Validate(access, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, Issuer, claims.Issuer)

	got, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_Validate(t *testing.T) {
	p := admin.Principal{ID: uuid.New(), Kind: admin.KindSuperadmin}
	svc := NewService("secret", 15*time.Minute, time.Hour)
	refresh, err := svc.GenerateRefreshToken(p)
	require.NoError(t, err)

	t.Run("種別違い", func(t *testing.T) {
		_, err := svc.Validate(refresh, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("別の秘密鍵", func(t *testing.T) {
		_, err := NewService("other", time.Minute, time.Hour).Validate(refresh, TokenTypeRefresh)
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})

	t.Run("期限切れ", func(t *testing.T) {
		past := NewService("secret", time.Minute, time.Hour)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, err := past.GenerateRefreshToken(p)
		require.NoError(t, err)

		_, err = svc.Validate(old, TokenTypeRefresh)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("発行者違い", func(t *testing.T) {
		claims := Claims{
			Kind:      "superadmin",
			TokenType: TokenTypeAccess,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				Subject:   p.ID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.Validate(raw, TokenTypeAccess)
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})

	t.Run("HS256以外は拒否", func(t *testing.T) {
		raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, Claims{
			TokenType: TokenTypeAccess,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    Issuer,
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.Validate(raw, TokenTypeAccess)
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})
}

func TestClaims_Principal_UnknownKind(t *testing.T) {
	c := &Claims{Kind: "janitor", RegisteredClaims: gojwt.RegisteredClaims{Subject: uuid.NewString()}}

	_, err := c.Principal()
	assert.True(t, errs.Is(err, ErrInvalidToken))
}
