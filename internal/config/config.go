package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings of the library command.
type Config struct {
	Backend  string
	SeedFile string
	LogLevel string
	Env      string
}

// Load reads .env files and the process environment.
func Load() Config {
	loadEnvFiles()
	return Config{
		Backend:  getEnv("LIBRARY_BACKEND", "list"),
		SeedFile: os.Getenv("LIBRARY_SEED_FILE"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Env:      getEnv("APP_ENV", "production"),
	}
}

func (c Config) Validate() error {
	switch c.Backend {
	case "list", "set":
		return nil
	default:
		return fmt.Errorf("LIBRARY_BACKEND must be list or set, got %q", c.Backend)
	}
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
