package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string        `env:"APP_ENV" env-default:"dev"`
	HTTPPort   string        `env:"HTTP_PORT" env-default:"8080"`
	JWTSecret  string        `env:"JWT_SECRET" env-default:"changeme-secret"`
	JWTIssuer  string        `env:"JWT_ISSUER" env-default:"eagleeyes-storefront"`
	SessionTTL time.Duration `env:"SESSION_TTL" env-default:"24h"`
	RateRPS    int           `env:"RATE_RPS" env-default:"100"`

	// simulated latency of the async operations
	AuthLatency    time.Duration `env:"AUTH_LATENCY" env-default:"500ms"`
	PaymentLatency time.Duration `env:"PAYMENT_LATENCY" env-default:"2s"`
	AsyncTimeout   time.Duration `env:"ASYNC_TIMEOUT" env-default:"10s"`

	WorkerCount  int  `env:"WORKER_COUNT" env-default:"4"`
	BcryptCost   int  `env:"BCRYPT_COST" env-default:"10"`
	EnforceStock bool `env:"ENFORCE_STOCK" env-default:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}
	return cfg, nil
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c Config) IsProd() bool { return c.Env == "prod" }
