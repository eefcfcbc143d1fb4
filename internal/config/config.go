package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	School    SchoolConfig    `mapstructure:"school"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Pathways  PathwaysConfig  `mapstructure:"pathways"`
	Mail      MailConfig      `mapstructure:"mail"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SchoolConfig struct {
	Name     string `mapstructure:"name"`
	District string `mapstructure:"district"`
}

// CalendarConfig drives date-to-period resolution. PeriodStarts are MM-DD
// day-of-year boundaries for each trimester, in order; the school year is
// assumed to roll over between trimester 1 and the preceding summer.
type CalendarConfig struct {
	PeriodStarts []string `mapstructure:"period_starts"`
}

// PathwaysConfig holds the dual-credit attainment thresholds for the CTE
// pathway report.
type PathwaysConfig struct {
	AssociateCredits float64 `mapstructure:"associate_credits"`
	TransferCredits  float64 `mapstructure:"transfer_credits"`
}

type MailConfig struct {
	Provider  string `mapstructure:"provider"` // sendgrid | console
	APIKey    string `mapstructure:"api_key"`
	FromName  string `mapstructure:"from_name"`
	FromEmail string `mapstructure:"from_email"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"` // local | minio
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("GRADTRAK")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Mail
	viper.BindEnv("mail.provider", "MAIL_PROVIDER")
	viper.BindEnv("mail.api_key", "SENDGRID_API_KEY")
	viper.BindEnv("mail.from_email", "MAIL_FROM_EMAIL")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Mode == "release" && cfg.Mail.Provider == "sendgrid" && cfg.Mail.APIKey == "" {
		return nil, fmt.Errorf("mail provider is sendgrid but no API key is configured")
	}

	// Sensible trimester defaults when the calendar section is omitted.
	if len(cfg.Calendar.PeriodStarts) == 0 {
		cfg.Calendar.PeriodStarts = []string{"08-20", "11-20", "03-01"}
	}
	if cfg.Pathways.AssociateCredits == 0 {
		cfg.Pathways.AssociateCredits = 15
	}
	if cfg.Pathways.TransferCredits == 0 {
		cfg.Pathways.TransferCredits = 15
	}

	return &cfg, nil
}
