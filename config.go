package kindalloc

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config controls heap construction. Fields map to KINDALLOC_* environment
// variables via ConfigFromEnv.
type Config struct {
	// ThreadSafe selects the mutex-guarded engine. The choice is fixed for
	// the lifetime of the heap.
	ThreadSafe bool `envconfig:"THREAD_SAFE" default:"false"`
	// LogLevel sets the zerolog level: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// DefaultConfig returns the configuration used when nothing is overridden:
// a non-thread-safe heap logging at info.
func DefaultConfig() Config {
	return Config{LogLevel: "info"}
}

// ConfigFromEnv builds a Config from KINDALLOC_* environment variables,
// loading a .env file first when one is present.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("KINDALLOC", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
