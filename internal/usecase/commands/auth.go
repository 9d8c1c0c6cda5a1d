package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"canteen-backoffice/internal/domain/admin"
	"canteen-backoffice/internal/pkg/errs"
	"canteen-backoffice/internal/pkg/jwt"
	"canteen-backoffice/internal/pkg/password"
	"canteen-backoffice/internal/usecase/queries"
	"canteen-backoffice/internal/usecase/shared"
)

var (
	ErrAdminNotFound        = errs.New("admin account not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAdminInactive        = errs.New("admin account inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	AdminID   uuid.UUID
	Kind      admin.Kind
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.AdminReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.AdminReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := admin.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateAdmin(ctx, credentials)
	if err != nil {
		return nil, err
	}

	kind, err := admin.NewKind(view.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issue(admin.Principal{ID: view.ID, Kind: kind, CompanyID: view.CompanyID})
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Admins().UpdateLastLogin(ctx, tx.DB(), view.ID); updateErr != nil {
			slog.Warn("failed to update last login", "admin_id", view.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("transaction failed during login", "admin_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		AdminID:   view.ID,
		Kind:      kind,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.Validate(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	subject, err := claims.Principal()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Kind is reloaded so demotions take effect on refresh.
	view, err := a.readStore.FindByID(ctx, subject.ID)
	if err != nil || view == nil {
		return nil, ErrAdminNotFound
	}
	if !view.IsActive {
		return nil, ErrAdminInactive
	}

	kind, err := admin.NewKind(view.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issue(admin.Principal{ID: view.ID, Kind: kind, CompanyID: view.CompanyID})
}

func (a *authCommandsImpl) issue(p admin.Principal) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(p)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(p)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateAdmin(ctx context.Context, credentials admin.Credentials) (*queries.AdminView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same answer as a wrong password, to avoid account enumeration
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrAdminNotFound
	}

	if !view.IsActive {
		return nil, ErrAdminInactive
	}

	if err := password.Verify(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if password.NeedsRehash(hashedPassword) {
		slog.Warn("admin password hash below current cost", "admin_id", view.ID)
	}

	return view, nil
}
