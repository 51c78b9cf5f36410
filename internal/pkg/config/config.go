package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	CORS     CORSConfig
	Cookie   CookieConfig
	Log      LogConfig
	JWT      JWTConfig
	Checkout CheckoutConfig
	Loyalty  LoyaltyConfig
	Payment  PaymentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CartTTL  time.Duration `envconfig:"LOCAL_CART_TTL" default:"720h"`
}

type KafkaConfig struct {
	// Empty disables the outbox publisher.
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:""`
	Topic        string        `envconfig:"KAFKA_ORDER_TOPIC" default:"storefront.orders"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Device-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Device-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	// lifetime of the anonymous device session cookie
	DeviceMaxAge time.Duration `envconfig:"DEVICE_COOKIE_MAX_AGE" default:"8760h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// Optional rotating file sink in addition to stdout.
	FilePath   string `envconfig:"LOG_FILE_PATH" default:""`
	MaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"50"`
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"3"`
	MaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"7"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration string        `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type CheckoutConfig struct {
	RequireAuth bool `envconfig:"CHECKOUT_REQUIRE_AUTH" default:"false"`
	// upper bound of concurrent inventory lookups per validation
	StockConcurrency int `envconfig:"STOCK_CHECK_CONCURRENCY" default:"8"`
	// how many times placement re-validates stock when the cart moves underneath it
	MaxRevalidations int           `envconfig:"CHECKOUT_MAX_REVALIDATIONS" default:"3"`
	RetryMax         uint64        `envconfig:"READ_RETRY_MAX" default:"3"`
	RetryInitial     time.Duration `envconfig:"READ_RETRY_INITIAL" default:"100ms"`
	MergeTimeout     time.Duration `envconfig:"CART_MERGE_TIMEOUT" default:"30s"`
	// in-memory device sessions idle longer than this are evicted
	SessionIdleTTL time.Duration `envconfig:"CART_SESSION_IDLE_TTL" default:"30m"`
}

type LoyaltyConfig struct {
	// currency value of a single point
	PointValue    decimal.Decimal `envconfig:"LOYALTY_POINT_VALUE" default:"0.01"`
	PointsPerUnit int64           `envconfig:"LOYALTY_POINTS_PER_UNIT" default:"1"`
}

type PaymentConfig struct {
	RedirectBaseURL string `envconfig:"PAYMENT_REDIRECT_BASE_URL" default:"https://pay.example.com/checkout"`
	ReturnURL       string `envconfig:"PAYMENT_RETURN_URL" default:"http://localhost:3000/checkout/return"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) BuildMigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every setting that would make checkout misbehave at runtime.
func (c Config) Validate() error {
	var problems []error
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		problems = append(problems, fmt.Errorf("JWT_DURATION: %w", err))
	}
	if c.JWT.Leeway < 0 {
		problems = append(problems, errors.New("JWT_LEEWAY must not be negative"))
	}
	if !c.Loyalty.PointValue.IsPositive() {
		problems = append(problems, errors.New("LOYALTY_POINT_VALUE must be positive"))
	}
	if c.Loyalty.PointsPerUnit < 0 {
		problems = append(problems, errors.New("LOYALTY_POINTS_PER_UNIT must not be negative"))
	}
	if c.Checkout.StockConcurrency < 1 {
		problems = append(problems, errors.New("STOCK_CHECK_CONCURRENCY must be at least 1"))
	}
	if c.Checkout.MaxRevalidations < 1 {
		problems = append(problems, errors.New("CHECKOUT_MAX_REVALIDATIONS must be at least 1"))
	}
	if u, err := url.Parse(c.Payment.RedirectBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, errors.New("PAYMENT_REDIRECT_BASE_URL must be an absolute URL"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.BatchSize < 1 {
		problems = append(problems, errors.New("OUTBOX_BATCH_SIZE must be at least 1"))
	}
	return errors.Join(problems...)
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
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			CartTTL: time.Hour,
		},
		Kafka: KafkaConfig{
			Topic:        "storefront.orders.test",
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
		},
		Cookie: CookieConfig{
			SameSite:     "Lax",
			DeviceMaxAge: time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Checkout: CheckoutConfig{
			StockConcurrency: 4,
			MaxRevalidations: 3,
			RetryMax:         2,
			RetryInitial:     time.Millisecond,
			MergeTimeout:     5 * time.Second,
			SessionIdleTTL:   time.Minute,
		},
		Loyalty: LoyaltyConfig{
			PointValue:    decimal.RequireFromString("0.01"),
			PointsPerUnit: 1,
		},
		Payment: PaymentConfig{
			RedirectBaseURL: "https://pay.test/checkout",
			ReturnURL:       "http://localhost:3000/checkout/return",
		},
	}
}
