package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hairizuan-noorazman/showcase/database"
	"github.com/hairizuan-noorazman/showcase/storage"
	"github.com/hairizuan-noorazman/showcase/upload"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Seed     SeedConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Driver         string // "mysql", "postgres" or "sqlite"
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	Path           string // sqlite file
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	AutoMigrate    bool
	MigrationsPath string // empty uses the embedded migrations
	LogSQL         bool
}

// StorageConfig holds image storage configuration.
type StorageConfig struct {
	Type            string // "local" or "s3"
	BaseDir         string // local: "./data"
	PublicBaseURL   string // local only
	MaxUploadSize   int64
	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PathStyle     bool
	S3EnsureBucket  bool
	S3PublicBaseURL string // empty serves objects from <endpoint>/<bucket>
}

// SeedConfig controls first-run demonstration data.
type SeedConfig struct {
	Enabled bool
	File    string // empty uses the embedded seed data
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// DatabaseSettings converts the configuration for database.Connect.
func (c DatabaseConfig) DatabaseSettings() database.Config {
	return database.Config{
		Driver:       c.Driver,
		Host:         c.Host,
		Port:         c.Port,
		User:         c.User,
		Password:     c.Password,
		Database:     c.Database,
		Path:         c.Path,
		SSLMode:      c.SSLMode,
		MaxOpenConns: c.MaxOpenConns,
		MaxIdleConns: c.MaxIdleConns,
		LogSQL:       c.LogSQL,
	}
}

// StorageSettings converts the configuration for storage.NewBlobStorage.
func (c StorageConfig) StorageSettings() storage.Config {
	return storage.Config{
		Type:          c.Type,
		BaseDir:       c.BaseDir,
		PublicBaseURL: c.PublicBaseURL,
		S3: storage.S3Config{
			Endpoint:        c.S3Endpoint,
			Region:          c.S3Region,
			Bucket:          c.S3Bucket,
			AccessKeyID:     c.S3AccessKey,
			SecretAccessKey: c.S3SecretKey,
			UsePathStyle:    c.S3PathStyle,
			PublicBaseURL:   c.S3PublicBaseURL,
		},
	}
}

// LoadConfig loads configuration from a .env file, the config file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("database.driver", database.DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.database", "showcase")
	v.SetDefault("database.path", "./showcase.db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.migrations_path", "")
	v.SetDefault("database.log_sql", false)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.base_dir", "./data")
	v.SetDefault("storage.public_base_url", "http://localhost:5000")
	v.SetDefault("storage.max_upload_size", upload.DefaultMaxSize)
	v.SetDefault("storage.s3_endpoint", "")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.s3_bucket", "images")
	v.SetDefault("storage.s3_access_key", "")
	v.SetDefault("storage.s3_secret_key", "")
	v.SetDefault("storage.s3_path_style", true)
	v.SetDefault("storage.s3_ensure_bucket", true)
	v.SetDefault("storage.s3_public_base_url", "")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.file", "")

	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config

	config.Server.Host = v.GetString("server.host")
	config.Server.Port = v.GetInt("server.port")
	config.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	config.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	config.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")

	config.Database.Driver = strings.ToLower(v.GetString("database.driver"))
	config.Database.Host = v.GetString("database.host")
	config.Database.Port = v.GetInt("database.port")
	config.Database.User = v.GetString("database.user")
	config.Database.Password = v.GetString("database.password")
	config.Database.Database = v.GetString("database.database")
	config.Database.Path = v.GetString("database.path")
	config.Database.SSLMode = v.GetString("database.sslmode")
	config.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	config.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	config.Database.AutoMigrate = v.GetBool("database.auto_migrate")
	config.Database.MigrationsPath = v.GetString("database.migrations_path")
	config.Database.LogSQL = v.GetBool("database.log_sql")

	config.Storage.Type = v.GetString("storage.type")
	config.Storage.BaseDir = v.GetString("storage.base_dir")
	config.Storage.PublicBaseURL = v.GetString("storage.public_base_url")
	config.Storage.MaxUploadSize = v.GetInt64("storage.max_upload_size")
	config.Storage.S3Endpoint = v.GetString("storage.s3_endpoint")
	config.Storage.S3Region = v.GetString("storage.s3_region")
	config.Storage.S3Bucket = v.GetString("storage.s3_bucket")
	config.Storage.S3AccessKey = v.GetString("storage.s3_access_key")
	config.Storage.S3SecretKey = v.GetString("storage.s3_secret_key")
	config.Storage.S3PathStyle = v.GetBool("storage.s3_path_style")
	config.Storage.S3EnsureBucket = v.GetBool("storage.s3_ensure_bucket")
	config.Storage.S3PublicBaseURL = v.GetString("storage.s3_public_base_url")

	config.Seed.Enabled = v.GetBool("seed.enabled")
	config.Seed.File = v.GetString("seed.file")

	config.Log.Level = v.GetString("log.level")

	return &config, nil
}
