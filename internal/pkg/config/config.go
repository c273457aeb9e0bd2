package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   provider credentials, platform admin identity) and security settings.
//   Their absence fails startup instead of silently degrading checks.
// - default: Values common across environments (timeouts, tolerances).
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	CRM      CRMConfig
	Payments PaymentsConfig
	Push     PushConfig
	Email    EmailConfig
	SMS      SMSConfig
	Platform PlatformConfig
	Worker   WorkerConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Signature"`
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
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// CRMConfig points at the external relationship-management API.
type CRMConfig struct {
	BaseURL       string        `envconfig:"CRM_BASE_URL" required:"true"`
	APIToken      string        `envconfig:"CRM_API_TOKEN" required:"true"`
	Timeout       time.Duration `envconfig:"CRM_TIMEOUT" default:"10s"`
	QueuePath     string        `envconfig:"CRM_QUEUE_PATH" default:"data/crm-queue.json"`
	FlushInterval time.Duration `envconfig:"CRM_FLUSH_INTERVAL" default:"30s"`
}

// PaymentsConfig holds the shared webhook secret and the clock tolerance
// applied during signature verification.
type PaymentsConfig struct {
	WebhookSecret      string        `envconfig:"PAYMENTS_WEBHOOK_SECRET" required:"true"`
	SignatureTolerance time.Duration `envconfig:"PAYMENTS_SIGNATURE_TOLERANCE" default:"5m"`
}

type PushConfig struct {
	Endpoint  string        `envconfig:"PUSH_ENDPOINT" required:"true"`
	ServerKey string        `envconfig:"PUSH_SERVER_KEY" required:"true"`
	Timeout   time.Duration `envconfig:"PUSH_TIMEOUT" default:"10s"`
}

type EmailConfig struct {
	SMTPHost  string `envconfig:"SMTP_HOST" required:"true"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
	Username  string `envconfig:"SMTP_USERNAME" required:"true"`
	Password  string `envconfig:"SMTP_PASSWORD" required:"true"`
	FromName  string `envconfig:"EMAIL_FROM_NAME" default:"Charter Flights"`
	FromAddr  string `envconfig:"EMAIL_FROM_ADDR" required:"true"`
}

type SMSConfig struct {
	Endpoint   string        `envconfig:"SMS_ENDPOINT" required:"true"`
	AccountSID string        `envconfig:"SMS_ACCOUNT_SID" required:"true"`
	AuthToken  string        `envconfig:"SMS_AUTH_TOKEN" required:"true"`
	FromNumber string        `envconfig:"SMS_FROM_NUMBER" required:"true"`
	Timeout    time.Duration `envconfig:"SMS_TIMEOUT" default:"10s"`
}

// PlatformConfig identifies the single fixed platform admin recipient.
type PlatformConfig struct {
	AdminUserID string `envconfig:"PLATFORM_ADMIN_USER_ID" required:"true"`
}

type WorkerConfig struct {
	QuoteExpiryInterval    time.Duration `envconfig:"WORKER_QUOTE_EXPIRY_INTERVAL" default:"5m"`
	OverdueInvoiceInterval time.Duration `envconfig:"WORKER_OVERDUE_INVOICE_INTERVAL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
		Payments: PaymentsConfig{
			WebhookSecret:      "whsec_test",
			SignatureTolerance: 5 * time.Minute,
		},
		Platform: PlatformConfig{
			AdminUserID: "00000000-0000-0000-0000-000000000001",
		},
	}
}
