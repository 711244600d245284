package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverBadger   = "badger"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Events EventsConfig
	Trace  TraceConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"car_service"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// StoreConfig selects the reservation store backend.
// Badger is meant for single-node deployments and local development.
type StoreConfig struct {
	Driver         string `envconfig:"STORE_DRIVER" default:"postgres"`
	BadgerDir      string `envconfig:"BADGER_DIR" default:"./data/badger"`
	BadgerInMemory bool   `envconfig:"BADGER_IN_MEMORY" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// EventsConfig enables publishing reservation events to NATS; empty URL disables it.
type EventsConfig struct {
	NATSURL string `envconfig:"NATS_URL"`
	Subject string `envconfig:"NATS_SUBJECT" default:"fleet.reservations.confirmed"`
}

type TraceConfig struct {
	Enabled     bool   `envconfig:"TRACE_ENABLED" default:"false"`
	ServiceName string `envconfig:"TRACE_SERVICE_NAME" default:"fleet-booking"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.Password == "" {
			return fmt.Errorf("DB_USER and DB_PASSWORD are required for the %s store", StoreDriverPostgres)
		}
	case StoreDriverBadger:
		if !c.Store.BadgerInMemory && c.Store.BadgerDir == "" {
			return fmt.Errorf("BADGER_DIR is required for the %s store", StoreDriverBadger)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
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
		},
		Store: StoreConfig{
			Driver:         StoreDriverBadger,
			BadgerInMemory: true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Events: EventsConfig{
			Subject: "fleet.reservations.confirmed",
		},
		Trace: TraceConfig{
			ServiceName: "fleet-booking-test",
		},
	}
}
