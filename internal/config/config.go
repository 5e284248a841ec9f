package config

import (
	"log"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string `env:"PORT" env-default:"5000"`
	StaticDir string `env:"STATIC_DIR" env-default:"dist"`
	Timezone  string `env:"TIMEZONE" env-default:"Asia/Dhaka"`
	Mongo     MongoConfig
	Auth      AuthConfig
	Logger    LoggerConfig
	Metrics   MetricsConfig
	NATS      NATSConfig
	MinIO     MinIOConfig
}

type MongoConfig struct {
	URI      string        `env:"DB_URI" env-default:"mongodb://localhost:27017"`
	Database string        `env:"DB_NAME" env-default:"shikderDB"`
	Timeout  time.Duration `env:"DB_TIMEOUT" env-default:"10s"`
}

type AuthConfig struct {
	Secret   string        `env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	TokenTTL time.Duration `env:"TOKEN_TTL" env-default:"168h"`
}

type LoggerConfig struct {
	Level    string `env:"LOG_LEVEL" env-default:"info"`
	Encoding string `env:"LOG_ENCODING" env-default:"json"`
}

type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" env-default:"true"`
}

// NATSConfig leaves URL empty to disable event publishing.
type NATSConfig struct {
	URL string `env:"NATS_URL"`
}

type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey string `env:"MINIO_SECRET_KEY" env-default:"minioadmin"`
	UseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`
	Region    string `env:"MINIO_REGION" env-default:"us-east-1"`
	Bucket    string `env:"MINIO_BUCKET" env-default:"product-images"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
