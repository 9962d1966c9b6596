package components

import (
	"restaurant-crm/internal/handler"
	"restaurant-crm/internal/handler/api"
	"restaurant-crm/internal/handler/middleware"
	"restaurant-crm/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewSettingsHandler,
		api.NewAssistantHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
