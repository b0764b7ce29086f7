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

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Attribution AttributionConfig
	Stats       StatsConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Outbox      OutboxConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig holds the shared secret of the identity provider. Tokens are
// issued elsewhere; this service only validates them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type AttributionConfig struct {
	Window         time.Duration `envconfig:"ATTRIBUTION_WINDOW" default:"168h"`
	TokenSecret    string        `envconfig:"ATTRIBUTION_TOKEN_SECRET" required:"true"`
	CookieName     string        `envconfig:"ATTRIBUTION_COOKIE_NAME" default:"ref_attr"`
	CookieDomain   string        `envconfig:"ATTRIBUTION_COOKIE_DOMAIN" default:""`
	CookieSecure   bool          `envconfig:"ATTRIBUTION_COOKIE_SECURE" default:"true"`
	CookieSameSite string        `envconfig:"ATTRIBUTION_COOKIE_SAMESITE" default:"Lax"`
}

type StatsConfig struct {
	// BusinessTimeZone decides where a calendar month starts for monthly rollups.
	BusinessTimeZone string `envconfig:"STATS_BUSINESS_TIMEZONE" default:"UTC"`
}

// RedisConfig is optional. An empty URL disables the counter cache.
type RedisConfig struct {
	URL      string        `envconfig:"REDIS_URL" default:""`
	KeyTTL   time.Duration `envconfig:"REDIS_COUNTER_TTL" default:"24h"`
	Timeout  time.Duration `envconfig:"REDIS_TIMEOUT" default:"200ms"`
	KeySpace string        `envconfig:"REDIS_KEY_PREFIX" default:"referral"`
}

// KafkaConfig is optional. Without brokers, outbox events are written to the log.
type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS" default:""`
	TopicPrefix string   `envconfig:"KAFKA_TOPIC_PREFIX" default:"referral"`
}

type OutboxConfig struct {
	Interval    time.Duration `envconfig:"OUTBOX_INTERVAL" default:"30s"`
	BatchSize   int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *StatsConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.BusinessTimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load business time zone %q: %w", c.BusinessTimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-identity-secret",
		},
		Attribution: AttributionConfig{
			Window:         7 * 24 * time.Hour,
			TokenSecret:    "test-attribution-secret",
			CookieName:     "ref_attr",
			CookieSecure:   false,
			CookieSameSite: "Lax",
		},
		Stats: StatsConfig{
			BusinessTimeZone: "UTC",
		},
		Outbox: OutboxConfig{
			Interval:    time.Second,
			BatchSize:   10,
			MaxAttempts: 3,
		},
	}
}
