package util

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/videobrief/backend/pkg/logger"
)

// LoadEnv loads a .env file into the process environment if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// GetEnv returns the value of an environment variable, or "" when unset.
func GetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return ""
	}
	return value
}

// GetEnvString returns the value of an environment variable, or defaultValue
// when unset.
func GetEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable parsed as an int,
// or defaultValue when unset or unparseable.
func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetEnvBool returns the value of an environment variable parsed as a bool.
// Only the literals "true" and "false" are accepted; anything else yields
// defaultValue.
func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return defaultValue
}
