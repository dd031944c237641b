package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	Log     LogConfig
}

type StorageConfig struct {
	Dir                 string
	SeedDefaultProducts bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Storage: StorageConfig{
			Dir:                 getEnv("DATA_DIR", "data"),
			SeedDefaultProducts: getEnvBool("SEED_DEFAULT_PRODUCTS", true),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
