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
	TokenTTL  string `env:"TOKEN_TTL, default=24h"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Avatar AvatarConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=memo_board"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AvatarConfig struct {
	Endpoint      string `env:"AVATAR_S3_ENDPOINT"`
	Region        string `env:"AVATAR_S3_REGION,    default=us-east-1"`
	Bucket        string `env:"AVATAR_S3_BUCKET,    default=memo-board-avatars"`
	AccessKey     string `env:"AVATAR_S3_ACCESS_KEY"`
	SecretKey     string `env:"AVATAR_S3_SECRET_KEY"`
	PublicBaseURL string `env:"AVATAR_PUBLIC_BASE_URL"`
	DefaultKey    string `env:"AVATAR_DEFAULT_KEY, default=assets/default-avatar.jpg"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
