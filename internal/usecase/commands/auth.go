package commands

import (
	"context"
	"crypto/subtle"

	"restaurant-crm/internal/domain/auth"
	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/pkg/errs"
	"restaurant-crm/internal/pkg/jwt"
	"restaurant-crm/internal/pkg/password"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const TokenTypeBearer = "bearer"

type LoginResult struct {
	AccessToken string
	TokenType   string
	Subject     auth.Subject
}

type AuthCommands interface {
	Login(ctx context.Context, username, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	username     string
	passwordHash string
	restaurantID int64
	jwtService   *jwt.Service
}

// NewAuthCommands hashes the configured admin password once so logins compare against bcrypt.
func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) (AuthCommands, error) {
	hash, err := password.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash admin password")
	}
	return &authCommandsImpl{
		username:     cfg.Admin.Username,
		passwordHash: hash,
		restaurantID: cfg.Admin.RestaurantID,
		jwtService:   jwtService,
	}, nil
}

func (a *authCommandsImpl) Login(_ context.Context, username, pass string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(username, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	userOK := subtle.ConstantTimeCompare([]byte(credentials.Username()), []byte(a.username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passErr := password.ComparePassword(a.passwordHash, credentials.Password())
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	subject := auth.Subject{Username: credentials.Username(), RestaurantID: a.restaurantID}
	token, err := a.jwtService.GenerateToken(subject.Username, subject.RestaurantID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		Subject:     subject,
	}, nil
}
