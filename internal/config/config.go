// Package config loads service settings from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port      string `env:"PORT" env-default:"8080"`
	DBPath    string `env:"DB_PATH" env-default:"data/grana.db"`
	SecretKey string `env:"SECRET_KEY" env-default:"change_me_in_production"`
	Timezone  string `env:"TZ" env-default:"UTC"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`

	// MasterUsername/MasterPassword seed the first master account at startup.
	// Both empty means no bootstrap.
	MasterUsername string `env:"MASTER_USERNAME"`
	MasterPassword string `env:"MASTER_PASSWORD"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment config: %w", err)
	}
	return &cfg, nil
}
