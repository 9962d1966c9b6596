package bootstrap

import (
	"log/slog"

	"restaurant-crm/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env when present; real environment variables take precedence.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info(".env を読み込みました")
	}
	return config.LoadConfig()
}
