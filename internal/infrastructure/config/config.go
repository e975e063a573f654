package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AdminConfig struct {
	// ValidateURL is the admin API endpoint used to confirm an admin bearer
	// token is still valid. Any 2xx response counts as valid.
	ValidateURL string `env:"ADMIN_VALIDATE_URL, default=http://localhost:9090/api/admin/validate"`
	// ValidateTimeoutSeconds bounds the validation round trip; a timeout is
	// treated as an invalid session.
	ValidateTimeoutSeconds int `env:"ADMIN_VALIDATE_TIMEOUT, default=5"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=marketplace"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the gateway runs in a production build, which
// switches session cookies to Secure and logging to pure JSON.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
