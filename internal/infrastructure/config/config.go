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

	// SecretKey signs tokens and doubles as the admin registration key.
	// Required: the service must not come up with a forgeable default.
	SecretKey      string        `env:"SECRET_KEY, required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL,        default=30m"`
	FeedbackWindow time.Duration `env:"FEEDBACK_WINDOW,  default=1h"`

	Mongo MongoConfig
	Redis RedisConfig
	Groq  GroqConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, required"`
	Database string `env:"MONGO_DB,    default=feedback_analytics"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type GroqConfig struct {
	APIKey  string        `env:"GROQ_API_KEY, required"`
	BaseURL string        `env:"GROQ_BASE_URL, default=https://api.groq.com/openai/v1"`
	Model   string        `env:"GROQ_MODEL,    default=gemma-7b-it"`
	Timeout time.Duration `env:"GROQ_TIMEOUT,  default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values abort startup.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
