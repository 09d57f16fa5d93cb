package config

import (
	"errors"
	"io/fs"
	"time"

	"hotel-reservation/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and security settings (session secret)
// - default: Values common across all environments (inventory, pricing, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Hotel   HotelConfig
	Pricing PricingConfig
	Session SessionConfig
	Cookie  CookieConfig
	CORS    CORSConfig
	Log     LogConfig
	Notify  NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type HotelConfig struct {
	Name     string    `envconfig:"HOTEL_NAME" default:"Grand Plaza"`
	Currency string    `envconfig:"HOTEL_CURRENCY" default:"RM"`
	Rooms    RoomSeeds `envconfig:"HOTEL_ROOMS" default:"101:Single:100,102:Double:150,103:Suite:250"`
}

type PricingConfig struct {
	DiscountMinNights int `envconfig:"PRICING_DISCOUNT_MIN_NIGHTS" default:"5"`
	DiscountPercent   int `envconfig:"PRICING_DISCOUNT_PERCENT" default:"5"`
	TaxPercent        int `envconfig:"PRICING_TAX_PERCENT" default:"10"`
}

type SessionConfig struct {
	Secret   string `envconfig:"SESSION_SECRET" required:"true"`
	Duration string `envconfig:"SESSION_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kuala_Lumpur"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

// NotifyConfig controls the reservation event publisher.
// An empty AMQPURL disables publishing.
type NotifyConfig struct {
	AMQPURL            string        `envconfig:"NOTIFY_AMQP_URL" default:""`
	Queue              string        `envconfig:"NOTIFY_QUEUE" default:"hotel.reservations"`
	PublishTimeout     time.Duration `envconfig:"NOTIFY_PUBLISH_TIMEOUT" default:"5s"`
	BreakerMaxFailures uint32        `envconfig:"NOTIFY_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenTimeout time.Duration `envconfig:"NOTIFY_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

func (c NotifyConfig) Enabled() bool {
	return c.AMQPURL != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errs.Wrap(err, "failed to load .env file")
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Hotel: HotelConfig{
			Name:     "Grand Plaza",
			Currency: "RM",
			Rooms: RoomSeeds{
				{ID: "101", Type: "Single", PricePerNightCents: 10000},
				{ID: "102", Type: "Double", PricePerNightCents: 15000},
				{ID: "103", Type: "Suite", PricePerNightCents: 25000},
			},
		},
		Pricing: PricingConfig{
			DiscountMinNights: 5,
			DiscountPercent:   5,
			TaxPercent:        10,
		},
		Session: SessionConfig{
			Secret:   "test-session-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kuala_Lumpur",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		Notify: NotifyConfig{
			Queue:              "hotel.reservations",
			PublishTimeout:     time.Second,
			BreakerMaxFailures: 3,
			BreakerOpenTimeout: time.Second,
		},
	}
}
