package testutils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

// LoadEnv loads the .env file from the project root directory if one
// exists, so integration tests can pick up local service credentials.
func LoadEnv() error {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	projectRoot := filepath.Join(dir, "..", "..")
	envPath := filepath.Join(projectRoot, ".env")

	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(envPath)
}

// LoadEnvOrPanic loads the .env file and panics if there's an error
func LoadEnvOrPanic() {
	if err := LoadEnv(); err != nil {
		panic("Failed to load .env file: " + err.Error())
	}
}

// GetEnvOrDefault gets an environment variable with a default value
func GetEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
