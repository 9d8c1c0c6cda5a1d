package jwt

import (
	"time"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errs.New("invalid token")
	ErrExpiredToken   = errs.New("token expired")
	ErrWrongTokenType = errs.New("unexpected token type")
)

// Issuer is stamped on every token and required on validation.
const Issuer = "canteen-backoffice"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carry the principal so the auth middleware never touches the database.
type Claims struct {
	Kind      string     `json:"kind"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	TokenType TokenType  `json:"token_type"`
	jwt.RegisteredClaims
}

// Principal rebuilds the admin identity from the subject and kind claims.
func (c *Claims) Principal() (admin.Principal, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return admin.Principal{}, errs.Mark(err, ErrInvalidToken)
	}
	kind, err := admin.NewKind(c.Kind)
	if err != nil {
		return admin.Principal{}, errs.Mark(err, ErrInvalidToken)
	}
	return admin.Principal{ID: id, Kind: kind, CompanyID: c.CompanyID}, nil
}

type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewService(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *Service) AccessTokenDuration() time.Duration  { return s.accessTTL }
func (s *Service) RefreshTokenDuration() time.Duration { return s.refreshTTL }

func (s *Service) GenerateAccessToken(p admin.Principal) (string, error) {
	return s.sign(p, TokenTypeAccess, s.accessTTL)
}

func (s *Service) GenerateRefreshToken(p admin.Principal) (string, error) {
	return s.sign(p, TokenTypeRefresh, s.refreshTTL)
}

func (s *Service) sign(p admin.Principal, typ TokenType, ttl time.Duration) (string, error) {
	issuedAt := s.now()
	claims := Claims{
		Kind:      p.Kind.String(),
		CompanyID: p.CompanyID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   p.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

// Validate parses an HS256 token from this issuer and checks it is of the wanted type.
func (s *Service) Validate(raw string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errs.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, errs.Mark(err, ErrInvalidToken)
	case claims.TokenType != want:
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
