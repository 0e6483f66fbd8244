package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection,
//   secrets)
// - default: values common across all environments (timezone, grain, policy)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	AMQP    AMQPConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	MaxConns               int32 `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns               int32 `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetimeMinutes int   `envconfig:"DB_MAX_CONN_LIFETIME_MINUTES" default:"30"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// BookingConfig fixes the two policies the shop can choose between: whether a
// new booking needs manual confirmation, and how close to the start time a
// cancellation is still accepted.
type BookingConfig struct {
	InitialStatus string        `envconfig:"BOOKING_INITIAL_STATUS" default:"confirmed"`
	CancelMinLead time.Duration `envconfig:"BOOKING_CANCEL_MIN_LEAD" default:"2h"`
	SlotGrain     time.Duration `envconfig:"BOOKING_SLOT_GRAIN" default:"15m"`
	TimeZone      string        `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
}

type AMQPConfig struct {
	// Empty URL disables the notifier.
	URL   string `envconfig:"AMQP_URL" default:""`
	Queue string `envconfig:"AMQP_QUEUE" default:"booking.events"`
}

type RedisConfig struct {
	// Empty Addr disables the slot cache.
	Addr    string        `envconfig:"REDIS_ADDR" default:""`
	SlotTTL time.Duration `envconfig:"REDIS_SLOT_TTL" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *BookingConfig) Validate() error {
	switch c.InitialStatus {
	case "pending", "confirmed":
	default:
		return fmt.Errorf("BOOKING_INITIAL_STATUS must be pending or confirmed, got %q", c.InitialStatus)
	}
	if c.CancelMinLead < 0 {
		return fmt.Errorf("BOOKING_CANCEL_MIN_LEAD must not be negative")
	}
	if c.SlotGrain < 5*time.Minute || time.Hour%c.SlotGrain != 0 {
		return fmt.Errorf("BOOKING_SLOT_GRAIN must be at least 5m and divide one hour, got %s", c.SlotGrain)
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("BOOKING_TIMEZONE is not a valid location: %w", err)
	}
	return nil
}

func (c *BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
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

			MaxConns:               5,
			MinConns:               1,
			MaxConnLifetimeMinutes: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			InitialStatus: "confirmed",
			CancelMinLead: 2 * time.Hour,
			SlotGrain:     15 * time.Minute,
			TimeZone:      "UTC",
		},
	}
}
