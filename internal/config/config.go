package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Seed        int64
	MaxSections int
}

// Load reads configuration from the environment, preloading a .env file when
// one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env file")
	}

	cfg := &Config{
		Environment: os.Getenv("ENV"),
		Seed:        1,
		MaxSections: 0, // scheduler default applies
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if raw := os.Getenv("SCHEDULER_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SCHEDULER_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
	}

	if raw := os.Getenv("SCHEDULER_MAX_SECTIONS"); raw != "" {
		maxSections, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("SCHEDULER_MAX_SECTIONS must be an integer: %w", err)
		}
		if maxSections <= 0 {
			return nil, fmt.Errorf("SCHEDULER_MAX_SECTIONS must be positive: %v", maxSections)
		}
		cfg.MaxSections = maxSections
	}

	return cfg, nil
}
