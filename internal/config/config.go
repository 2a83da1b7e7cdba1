// Package config reads runtime settings from the environment. Call
// godotenv.Load before Load so a local .env file is honored; command-line
// flags override whatever Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/cateringcalc/internal/logger"
)

// Env var names.
const (
	EnvProportionsFile = "CATERING_PROPORTIONS_FILE"
	EnvRecipesFile     = "CATERING_RECIPES_FILE"
	EnvOrdersFile      = "CATERING_ORDERS_FILE"
	EnvStrictDishTypes = "CATERING_STRICT_DISH_TYPES"
	EnvLogLevel        = "CATERING_LOG_LEVEL"
	EnvLogFile         = "CATERING_LOG_FILE"
)

// DefaultLogFile keeps logs out of the rendered sheets.
const DefaultLogFile = ".catering-logs/catering.log"

// Config holds every setting the binary needs.
type Config struct {
	ProportionsFile string
	RecipesFile     string
	OrdersFile      string
	StrictDishTypes bool
	LogLevel        logger.Level
	LogFile         string
}

// LoadDotenv reads .env files into the environment. Missing files are not
// an error.
func LoadDotenv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, so tests can supply
// their own environment.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := Config{
		ProportionsFile: get(EnvProportionsFile),
		RecipesFile:     get(EnvRecipesFile),
		OrdersFile:      get(EnvOrdersFile),
		LogFile:         DefaultLogFile,
	}
	if v := get(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	if v := get(EnvStrictDishTypes); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvStrictDishTypes, err)
		}
		cfg.StrictDishTypes = strict
	}

	level, err := logger.ParseLevel(get(EnvLogLevel))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	cfg.LogLevel = level
	return cfg, nil
}
