package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	APIKey       string        `env:"API_KEY" envDefault:"demo-api-key"`
	CORSOrigin   string        `env:"CORS_ORIGIN" envDefault:"*"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	KafkaBrokers string        `env:"KAFKA_BROKERS"`
	KafkaTopic   string        `env:"KAFKA_TOPIC" envDefault:"trades"`
}

func Load() (Config, error) {
	var cfg Config
	return cfg, env.Parse(&cfg)
}

// Brokers splits the comma-separated broker list; empty means the trade
// event publisher is disabled.
func (c Config) Brokers() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
