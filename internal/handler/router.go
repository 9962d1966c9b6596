package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-crm/internal/handler/api"
	"restaurant-crm/internal/handler/middleware"
	"restaurant-crm/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Settings  *api.SettingsHandler
	Assistant *api.AssistantHandler
}

func NewHandlers(
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	settingsHandler *api.SettingsHandler,
	assistantHandler *api.AssistantHandler,
) Handlers {
	return Handlers{
		Auth:      authHandler,
		Booking:   bookingHandler,
		Settings:  settingsHandler,
		Assistant: assistantHandler,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, loginLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	addRoutes(auth, []route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimiter.Middleware()}},
	})

	bookings := engine.Group("/bookings")
	bookings.Use(authMiddleware.RequireAuth())
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
		{Method: http.MethodGet, Path: "/:restaurant_id/:date", Handler: h.Booking.GetSlots},
	})

	restaurants := engine.Group("/restaurants")
	restaurants.Use(authMiddleware.RequireAuth())
	addRoutes(restaurants, []route{
		{Method: http.MethodGet, Path: "/:restaurant_id/settings", Handler: h.Settings.Get},
		{Method: http.MethodPut, Path: "/:restaurant_id/settings", Handler: h.Settings.Put},
	})

	assistants := engine.Group("/assistants")
	assistants.Use(authMiddleware.RequireAuth())
	addRoutes(assistants, []route{
		{Method: http.MethodPost, Path: "/chat", Handler: h.Assistant.Chat},
		{Method: http.MethodPost, Path: "/chat_stream", Handler: h.Assistant.ChatStream},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
