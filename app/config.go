package app

import (
	"github.com/joefazee/iwager/app/casts"
	"github.com/joefazee/iwager/app/database"
	"github.com/joefazee/iwager/app/frames"
	"github.com/joefazee/iwager/app/markets"
	"github.com/joefazee/iwager/internal/llm"
	"github.com/joefazee/iwager/internal/neynar"
	"github.com/joefazee/iwager/internal/nexus"
)

type Config struct {
	DB      database.Config
	Markets markets.Config
	Casts   casts.Config
	Frames  frames.Config
	Neynar  neynar.Config
	LLM     llm.Config

	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	CacheBackend  string `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
