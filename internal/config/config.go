package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	ServerPort  string
	Environment string

	// Persistence backend: "file", "redis" or "postgres"
	StorageBackend string
	DataDir        string

	// Redis configuration (redis backend only)
	RedisAddress string

	// Database configuration (postgres backend only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Remote blob store configuration. An empty token activates the
	// ephemeral local fallback.
	BlobToken    string
	BlobStoreURL string

	// Log file path; empty disables file logging
	LogFile string

	FrontendAddress string
}

// Global application configuration
var AppConfig Config

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	// Find .env file
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Try to find .env in parent directories
		envPath = filepath.Join("..", ".env")
		if _, err := os.Stat(envPath); os.IsNotExist(err) {
			envPath = filepath.Join("..", "..", ".env")
		}
	}

	// Load .env file if it exists
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	AppConfig = Config{
		ServerPort:      getEnv("PORT", "8080"),
		Environment:     getEnv("ENV", "development"),
		StorageBackend:  getEnv("STORAGE_BACKEND", "file"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		RedisAddress:    getEnv("REDIS_ADDRESS", "localhost:6379"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "photopro"),
		BlobToken:       getEnv("BLOB_READ_WRITE_TOKEN", ""),
		BlobStoreURL:    getEnv("BLOB_STORE_URL", "https://blob.vercel-storage.com"),
		LogFile:         getEnv("LOG_FILE", ""),
		FrontendAddress: getEnv("FRONTEND_ADDRESS", "https://photopro.example.com"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
