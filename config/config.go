package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Source kinds.
const (
	SourceHTTP     = "http"
	SourceMinIO    = "minio"
	SourcePostgres = "postgres"
)

// DefaultSourceURL is the members.json the admin table was built against.
const DefaultSourceURL = "https://geektrust.s3-ap-southeast-1.amazonaws.com/adminui-problem/members.json"

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Data Source Configuration
	Source   SourceConfig
	MinIO    MinIOConfig
	Postgres PostgresConfig

	// Admin Table Configuration
	View ViewConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
	Color  bool
}

// SourceConfig selects where the member list is fetched from on mount.
type SourceConfig struct {
	Type    string
	URL     string
	Timeout time.Duration
}

// MinIOConfig is the configuration for the MinIO/S3 member source.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
	Object    string
}

// PostgresConfig is the configuration for the PostgreSQL member source.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Table    string
}

// ViewConfig tunes the admin table views.
type ViewConfig struct {
	PageSize      int
	TTL           time.Duration
	MaxViews      int
	ValidateEdits bool
}

// DiscordConfig is the configuration for Discord webhook diagnostics.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("member-admin-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/member-admin/")

	// Environment variables override file values: server.port -> SERVER_PORT.
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// The file is optional; defaults and environment are enough to run.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment
	cfg.Environment.Name = v.GetString("environment.name")

	// HTTP server
	cfg.HTTPServer.Host = v.GetString("server.host")
	cfg.HTTPServer.Port = v.GetInt("server.port")
	cfg.HTTPServer.Mode = v.GetString("server.mode")

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Format = strings.ToLower(v.GetString("logger.format"))
	cfg.Logger.Color = v.GetBool("logger.color")

	// Source
	cfg.Source.Type = strings.ToLower(v.GetString("source.type"))
	cfg.Source.URL = v.GetString("source.url")
	cfg.Source.Timeout = v.GetDuration("source.timeout")

	// MinIO
	cfg.MinIO.Endpoint = v.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = v.GetString("minio.access_key")
	cfg.MinIO.SecretKey = v.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = v.GetBool("minio.use_ssl")
	cfg.MinIO.Region = v.GetString("minio.region")
	cfg.MinIO.Bucket = v.GetString("minio.bucket")
	cfg.MinIO.Object = v.GetString("minio.object")

	// Postgres
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.DBName = v.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.Table = v.GetString("postgres.table")

	// View
	cfg.View.PageSize = v.GetInt("view.page_size")
	cfg.View.TTL = v.GetDuration("view.ttl")
	cfg.View.MaxViews = v.GetInt("view.max_views")
	cfg.View.ValidateEdits = v.GetBool("view.validate_edits")

	// Discord
	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.color", false)

	// Source
	v.SetDefault("source.type", SourceHTTP)
	v.SetDefault("source.url", DefaultSourceURL)
	v.SetDefault("source.timeout", 10*time.Second)

	// MinIO
	v.SetDefault("minio.use_ssl", true)
	v.SetDefault("minio.region", "us-east-1")
	v.SetDefault("minio.object", "members.json")

	// Postgres
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.table", "members")

	// View
	v.SetDefault("view.page_size", 10)
	v.SetDefault("view.ttl", 30*time.Minute)
	v.SetDefault("view.max_views", 1000)
	v.SetDefault("view.validate_edits", false)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if cfg.Logger.Format != "json" && cfg.Logger.Format != "console" {
		return fmt.Errorf("logger.format must be json or console")
	}

	switch cfg.Source.Type {
	case SourceHTTP:
		if cfg.Source.URL == "" {
			return fmt.Errorf("source.url is required for source.type=%s", SourceHTTP)
		}
	case SourceMinIO:
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required for source.type=%s", SourceMinIO)
		}
		if cfg.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required for source.type=%s", SourceMinIO)
		}
	case SourcePostgres:
		if cfg.Postgres.Host == "" {
			return fmt.Errorf("postgres.host is required for source.type=%s", SourcePostgres)
		}
		if cfg.Postgres.DBName == "" {
			return fmt.Errorf("postgres.dbname is required for source.type=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("source.type must be one of %s, %s, %s", SourceHTTP, SourceMinIO, SourcePostgres)
	}

	if cfg.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be positive")
	}

	if cfg.View.PageSize < 1 || cfg.View.PageSize > 100 {
		return fmt.Errorf("view.page_size must be between 1 and 100")
	}
	if cfg.View.MaxViews < 1 {
		return fmt.Errorf("view.max_views must be at least 1")
	}

	return nil
}
