package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// VerifyPasswords switches the credential check from the demo no-op to
	// bcrypt comparison against the directory's stored hashes.
	VerifyPasswords bool `env:"VERIFY_PASSWORDS, default=false"`

	// DirectoryBackend selects the known-users directory: "static" or "mongo".
	DirectoryBackend string `env:"DIRECTORY_BACKEND, default=static"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Catalog CatalogConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CatalogConfig struct {
	BaseURL string        `env:"CATALOG_BASE_URL, default=https://fakestoreapi.com"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT,  default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
