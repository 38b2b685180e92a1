package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	ServerPort  string
	Environment string

	// Origins allowed to call the API (the front-end hosts)
	FrontendOrigins []string

	// Rate limiting
	RateLimitMaxRequests int
	RateLimitWindow      time.Duration

	// Storage
	DBMaxOpenConns   int
	GlobalMessageCap int
}

func Load() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	// (containers use environment variables directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = ":3001"
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		ServerPort:  serverPort,
		Environment: os.Getenv("ENVIRONMENT"),

		FrontendOrigins: getEnvAsStrings("FRONTEND_ORIGINS",
			"http://localhost:3000,http://localhost:5173"),

		RateLimitMaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindow:      getEnvAsDuration("RATE_LIMIT_WINDOW", "15m"),

		DBMaxOpenConns:   getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		GlobalMessageCap: getEnvAsInt("GLOBAL_MESSAGE_CAP", 10000),
	}

	return cfg
}

// getEnvAsInt retrieves environment variable as int with default value
func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %d", key, defaultVal)
		return defaultVal
	}
	return val
}

// getEnvAsDuration retrieves environment variable as duration with default value
func getEnvAsDuration(key string, defaultVal string) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		valStr = defaultVal
	}
	duration, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %s", key, defaultVal)
		duration, _ = time.ParseDuration(defaultVal)
	}
	return duration
}

// getEnvAsStrings retrieves environment variable as a comma-separated list
func getEnvAsStrings(key string, defaultVal string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		valStr = defaultVal
	}
	parts := strings.Split(valStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
