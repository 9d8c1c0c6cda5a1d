package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Civil  CivilConfig
	Meal   MealConfig
	Report ReportConfig
	Card   CardConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	// WriteTimeout must outlast MEAL_RECORD_TIMEOUT so a timed-out record still answers.
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart bool `envconfig:"SERVER_MIGRATE_ON_START" default:"false"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Terminal-ID,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID,X-Card-Code"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	// RefreshPath scopes the refresh cookie to the auth routes.
	RefreshPath string `envconfig:"COOKIE_REFRESH_PATH" default:"/api/auth"`
}

// CivilConfig fixes the one time zone used for meal windows, day bounds and report buckets.
type CivilConfig struct {
	TimeZone      string `envconfig:"CIVIL_TIMEZONE" default:"Asia/Kolkata"`
	OffsetSeconds int    `envconfig:"CIVIL_UTC_OFFSET_SECONDS" default:"19800"`
}

type MealConfig struct {
	RecordTimeout time.Duration `envconfig:"MEAL_RECORD_TIMEOUT" default:"25s"`
}

type ReportConfig struct {
	DefaultBucket time.Duration `envconfig:"REPORT_DEFAULT_BUCKET" default:"30m"`
	MaxRangeDays  int           `envconfig:"REPORT_MAX_RANGE_DAYS" default:"366"`
}

type CardConfig struct {
	CodePrefix string `envconfig:"CARD_CODE_PREFIX" default:"MC-"`
	QRSize     int    `envconfig:"CARD_QR_SIZE" default:"256"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

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
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   5 * time.Second,
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
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e-only",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite:    "Lax",
			RefreshPath: "/api/auth",
		},
		Civil: CivilConfig{
			TimeZone:      "Asia/Kolkata",
			OffsetSeconds: 19800,
		},
		Meal: MealConfig{
			RecordTimeout: 25 * time.Second,
		},
		Report: ReportConfig{
			DefaultBucket: 30 * time.Minute,
			MaxRangeDays:  366,
		},
		Card: CardConfig{
			CodePrefix: "MC-",
			QRSize:     256,
		},
	}
}

// Validate rejects combinations envconfig cannot express on single fields.
func Validate(cfg Config) error {
	var problems []error
	if off := cfg.Civil.OffsetSeconds; off <= -24*3600 || off >= 24*3600 {
		problems = append(problems, fmt.Errorf("CIVIL_UTC_OFFSET_SECONDS out of range: %d", off))
	}
	if cfg.Meal.RecordTimeout <= 0 {
		problems = append(problems, errors.New("MEAL_RECORD_TIMEOUT must be positive"))
	}
	if cfg.Server.WriteTimeout > 0 && cfg.Server.WriteTimeout <= cfg.Meal.RecordTimeout {
		problems = append(problems, fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) must exceed MEAL_RECORD_TIMEOUT (%s)",
			cfg.Server.WriteTimeout, cfg.Meal.RecordTimeout))
	}
	if b := cfg.Report.DefaultBucket; b < time.Minute || b > 24*time.Hour || b%time.Minute != 0 {
		problems = append(problems, fmt.Errorf("REPORT_DEFAULT_BUCKET must be whole minutes between 1m and 24h: %s", b))
	}
	if cfg.Report.MaxRangeDays < 1 {
		problems = append(problems, errors.New("REPORT_MAX_RANGE_DAYS must be at least 1"))
	}
	if cfg.Card.QRSize < 64 {
		problems = append(problems, fmt.Errorf("CARD_QR_SIZE too small: %d", cfg.Card.QRSize))
	}
	return errors.Join(problems...)
}
