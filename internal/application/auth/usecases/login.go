// Package usecases implements staff authentication.
package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// PasswordVerifier abstracts the hash comparison so tests can avoid
// bcrypt's cost.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

type LoginCommand struct {
	// Identifier is an email address or a username; "@" decides which.
	Identifier string
	Password   string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
}

type LoginUseCase struct {
	userRepo   user.UserRepository
	verifier   PasswordVerifier
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	verifier PasswordVerifier,
	jwtService *auth.JWTService,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		verifier:   verifier,
		jwtService: jwtService,
		logger:     log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	identifier := strings.TrimSpace(cmd.Identifier)
	if identifier == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("identifier and password are required")
	}

	var (
		u   *user.User
		err error
	)
	if strings.Contains(identifier, "@") {
		u, err = uc.userRepo.FindByEmail(ctx, strings.ToLower(identifier))
	} else {
		u, err = uc.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}

	if err := uc.verifier.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", u.Username())
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if !u.IsActive() {
		return nil, apperrors.NewForbiddenError("account is disabled")
	}

	pair, err := uc.jwtService.Generate(u.ID(), u.Name(), u.Username(), u.IsStaff())
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "error", err)
		return nil, apperrors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())

	return &LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
