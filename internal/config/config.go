package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
	SQLGen SQLGenConfig
	Ingest IngestConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SQLGenProviderConfig holds settings for a single SQL generation provider.
type SQLGenProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	Endpoint     string `mapstructure:"endpoint"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// SQLGenConfig holds natural-language-to-SQL settings with a primary
// provider and an optional secondary fallback.
type SQLGenConfig struct {
	Primary   SQLGenProviderConfig `mapstructure:"primary"`
	Secondary SQLGenProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (s *SQLGenConfig) SecondaryConfig() *SQLGenProviderConfig {
	if s.Secondary.Provider != "" {
		return &s.Secondary
	}
	return nil
}

// IngestConfig holds document ingestion settings.
type IngestConfig struct {
	InputPath  string `mapstructure:"input_path"`
	S3Region   string `mapstructure:"s3_region"`
	S3Bucket   string `mapstructure:"s3_bucket"`
	S3Key      string `mapstructure:"s3_key"`
	S3Endpoint string `mapstructure:"s3_endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
}

// Load reads configuration from environment variables with the SPENDLENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SPENDLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "spendlens")
	v.SetDefault("db.password", "spendlens_secret")
	v.SetDefault("db.name", "spendlens_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults
	v.SetDefault("cors.allowed_origins", "http://localhost:3000")

	// SQL generation defaults: a local Vanna-style service.
	v.SetDefault("sqlgen.primary.provider", "vanna")
	v.SetDefault("sqlgen.primary.endpoint", "http://localhost:8000")
	v.SetDefault("sqlgen.primary.timeout_secs", 60)

	// Ingest defaults
	v.SetDefault("ingest.input_path", "data/Analytics_Test_Data.json")
	v.SetDefault("ingest.s3_region", "us-east-1")

	// Explicit env bindings so AutomaticEnv works for nested keys.
	envBindings := map[string]string{
		"server.port":                    "SPENDLENS_SERVER_PORT",
		"server.read_timeout":            "SPENDLENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "SPENDLENS_SERVER_WRITE_TIMEOUT",
		"server.environment":             "SPENDLENS_SERVER_ENVIRONMENT",
		"db.host":                        "SPENDLENS_DB_HOST",
		"db.port":                        "SPENDLENS_DB_PORT",
		"db.user":                        "SPENDLENS_DB_USER",
		"db.password":                    "SPENDLENS_DB_PASSWORD",
		"db.name":                        "SPENDLENS_DB_NAME",
		"db.sslmode":                     "SPENDLENS_DB_SSLMODE",
		"db.max_open":                    "SPENDLENS_DB_MAX_OPEN",
		"db.max_idle":                    "SPENDLENS_DB_MAX_IDLE",
		"log.level":                      "SPENDLENS_LOG_LEVEL",
		"log.format":                     "SPENDLENS_LOG_FORMAT",
		"cors.allowed_origins":           "SPENDLENS_CORS_ALLOWED_ORIGINS",
		"sqlgen.primary.provider":        "SPENDLENS_SQLGEN_PRIMARY_PROVIDER",
		"sqlgen.primary.endpoint":        "SPENDLENS_SQLGEN_PRIMARY_ENDPOINT",
		"sqlgen.primary.api_key":         "SPENDLENS_SQLGEN_PRIMARY_API_KEY",
		"sqlgen.primary.default_model":   "SPENDLENS_SQLGEN_PRIMARY_DEFAULT_MODEL",
		"sqlgen.primary.timeout_secs":    "SPENDLENS_SQLGEN_PRIMARY_TIMEOUT_SECS",
		"sqlgen.secondary.provider":      "SPENDLENS_SQLGEN_SECONDARY_PROVIDER",
		"sqlgen.secondary.endpoint":      "SPENDLENS_SQLGEN_SECONDARY_ENDPOINT",
		"sqlgen.secondary.api_key":       "SPENDLENS_SQLGEN_SECONDARY_API_KEY",
		"sqlgen.secondary.default_model": "SPENDLENS_SQLGEN_SECONDARY_DEFAULT_MODEL",
		"sqlgen.secondary.timeout_secs":  "SPENDLENS_SQLGEN_SECONDARY_TIMEOUT_SECS",
		"ingest.input_path":              "SPENDLENS_INGEST_INPUT_PATH",
		"ingest.s3_region":               "SPENDLENS_INGEST_S3_REGION",
		"ingest.s3_bucket":               "SPENDLENS_INGEST_S3_BUCKET",
		"ingest.s3_key":                  "SPENDLENS_INGEST_S3_KEY",
		"ingest.s3_endpoint":             "SPENDLENS_INGEST_S3_ENDPOINT",
		"ingest.access_key":              "SPENDLENS_INGEST_ACCESS_KEY",
		"ingest.secret_key":              "SPENDLENS_INGEST_SECRET_KEY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SPENDLENS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SPENDLENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.SQLGen = SQLGenConfig{
		Primary: SQLGenProviderConfig{
			Provider:     v.GetString("sqlgen.primary.provider"),
			Endpoint:     v.GetString("sqlgen.primary.endpoint"),
			APIKey:       v.GetString("sqlgen.primary.api_key"),
			DefaultModel: v.GetString("sqlgen.primary.default_model"),
			TimeoutSecs:  v.GetInt("sqlgen.primary.timeout_secs"),
		},
		Secondary: SQLGenProviderConfig{
			Provider:     v.GetString("sqlgen.secondary.provider"),
			Endpoint:     v.GetString("sqlgen.secondary.endpoint"),
			APIKey:       v.GetString("sqlgen.secondary.api_key"),
			DefaultModel: v.GetString("sqlgen.secondary.default_model"),
			TimeoutSecs:  v.GetInt("sqlgen.secondary.timeout_secs"),
		},
	}

	cfg.Ingest = IngestConfig{
		InputPath:  v.GetString("ingest.input_path"),
		S3Region:   v.GetString("ingest.s3_region"),
		S3Bucket:   v.GetString("ingest.s3_bucket"),
		S3Key:      v.GetString("ingest.s3_key"),
		S3Endpoint: v.GetString("ingest.s3_endpoint"),
		AccessKey:  v.GetString("ingest.access_key"),
		SecretKey:  v.GetString("ingest.secret_key"),
	}

	return cfg, nil
}
