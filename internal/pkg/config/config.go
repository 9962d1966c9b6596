package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (secrets, admin credentials), security settings
// - default: Values common across all environments (timezone, timeout, slot catalog, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Cache     CacheConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Booking   BookingConfig
	Assistant AssistantConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type DBConfig struct {
	URL      string `envconfig:"DB_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"restaurant_crm"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CacheConfig struct {
	Backend string        `envconfig:"CACHE_BACKEND" default:"redis"` // redis | memory
	URL     string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	SlotTTL time.Duration `envconfig:"SLOT_CACHE_TTL" default:"1h"`
}

type CORSConfig struct {
	FrontendOrigin   string        `envconfig:"FRONTEND_ORIGIN" default:"http://localhost:5173"`
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	Algorithm           string `envconfig:"JWT_ALGORITHM" default:"HS256"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"8h"`
}

type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	Password     string `envconfig:"ADMIN_PASSWORD" required:"true"`
	RestaurantID int64  `envconfig:"DEFAULT_RESTAURANT_ID" default:"1"`
}

type BookingConfig struct {
	TimeSlots         []string `envconfig:"TIME_SLOTS" default:"12:00,13:00,14:00,15:00,16:00,17:00,18:00,19:00,20:00,21:00,22:00"`
	DefaultTableCount int32    `envconfig:"DEFAULT_TABLE_COUNT" default:"5"`
	RestaurantName    string   `envconfig:"DEFAULT_RESTAURANT_NAME" default:"Default Restaurant"`
}

type AssistantConfig struct {
	APIKey       string        `envconfig:"OPENAI_API_KEY"`
	BaseURL      string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	RunTimeout   time.Duration `envconfig:"ASSISTANT_RUN_TIMEOUT" default:"30s"`
	PollInterval time.Duration `envconfig:"ASSISTANT_POLL_INTERVAL" default:"500ms"`
	HTTPTimeout  time.Duration `envconfig:"ASSISTANT_HTTP_TIMEOUT" default:"60s"`
}

type RateLimitConfig struct {
	LoginRPS   float64 `envconfig:"LOGIN_RATE_LIMIT_RPS" default:"1"`
	LoginBurst int     `envconfig:"LOGIN_RATE_LIMIT_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// AllowedOrigins merges FRONTEND_ORIGIN into the configured list without duplicates.
func (c *CORSConfig) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.AllowOrigins)+1)
	seen := make(map[string]struct{}, len(c.AllowOrigins)+1)
	for _, o := range append([]string{c.FrontendOrigin}, c.AllowOrigins...) {
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		origins = append(origins, o)
	}
	return origins
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if len(cfg.Booking.TimeSlots) == 0 {
		return Config{}, fmt.Errorf("TIME_SLOTS must not be empty")
	}
	if cfg.Cache.SlotTTL <= 0 {
		return Config{}, fmt.Errorf("SLOT_CACHE_TTL must be positive, got %s", cfg.Cache.SlotTTL)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
			MinConns: 1,
		},
		Cache: CacheConfig{
			Backend: "memory",
			SlotTTL: time.Hour,
		},
		CORS: CORSConfig{
			FrontendOrigin: "http://localhost:5173",
			AllowMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-signing-tokens",
			Algorithm:           "HS256",
			AccessTokenDuration: "8h",
		},
		Admin: AdminConfig{
			Username:     "admin",
			Password:     "admin-password",
			RestaurantID: 1,
		},
		Booking: BookingConfig{
			TimeSlots:         []string{"12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00"},
			DefaultTableCount: 5,
			RestaurantName:    "Default Restaurant",
		},
		Assistant: AssistantConfig{
			BaseURL:      "http://localhost:0",
			RunTimeout:   2 * time.Second,
			PollInterval: 10 * time.Millisecond,
			HTTPTimeout:  5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			LoginRPS:   100,
			LoginBurst: 100,
		},
	}
}
