package usecase

import (
	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the principal use cases work with.
type TokenValidator interface {
	ValidateToken(tokenString string) (admin.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// ValidateToken rejects refresh tokens presented as bearer credentials.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (admin.Principal, error) {
	claims, err := t.jwtService.Validate(tokenString, jwt.TokenTypeAccess)
	if err != nil {
		return admin.Principal{}, err
	}
	return claims.Principal()
}
