// Package config reads tool settings from the environment.
package config

import "github.com/ilyakaznacheev/cleanenv"

// Config holds the environment-driven defaults. Flags override these.
type Config struct {
	DBPath string `env:"STUDY_TRACKER_DB"`
	Format string `env:"STUDY_TRACKER_FORMAT" env-default:"json"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
