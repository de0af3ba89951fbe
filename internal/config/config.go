package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Device tokens. An empty secret leaves the API open (single-device mode).
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Display of record ages older than thirty days
	DateLayout string
	DisplayTZ  *time.Location
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		DateLayout: getEnv("DATE_LAYOUT", "1/2/2006"),
		DisplayTZ:  time.Local,
	}

	expStr := getEnv("JWT_EXPIRES_IN", "720h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 720h\n", expStr)
		expDur = 720 * time.Hour
	}
	config.JWTExpirationDur = expDur

	if tz := os.Getenv("DISPLAY_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("Warning: unknown DISPLAY_TZ '%s', using local time\n", tz)
		} else {
			config.DisplayTZ = loc
		}
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
