package config

import "os"

// GetEnv reads a variable from the environment; godotenv has already folded
// .env into it by the time anything calls this.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault falls back to def when the variable is unset or empty.
func GetEnvOrDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
