package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Upload  UploadConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=realty"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	// Secret signs session tokens. Required outside local development.
	Secret     string        `env:"SESSION_SECRET"`
	CookieName string        `env:"SESSION_COOKIE, default=tv_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=24h"`
}

type UploadConfig struct {
	// Ceilings are distinct per asset kind: 10 MiB images, 200 MiB videos.
	MaxImageBytes int64 `env:"MAX_IMAGE_BYTES, default=10485760"`
	MaxVideoBytes int64 `env:"MAX_VIDEO_BYTES, default=209715200"`
}

// IsDevelopment reports whether the service runs in local development, which
// relaxes the Secure flag on the session cookie.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
