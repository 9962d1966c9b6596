package bootstrap

import (
	"fmt"
	"time"

	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}

	svc, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Algorithm, accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ALGORITHM %q: %w", cfg.JWT.Algorithm, err)
	}
	return svc, nil
}
