package config

import (
	"os"
	"strings"
)

// Config holds all configuration for the service
type Config struct {
	Port          string
	GinMode       string
	RedisURL      string
	MongoURI      string
	MongoDatabase string
	TMDBAPIKeys   []string // multiple keys are rotated round-robin
	TMDBBaseURL   string
	TMDBImageBase string
	WatchRegion   string
	JWTSecret     string
	UploadDir     string
	UploadBaseURL string
}

// Load reads configuration from environment variables
func Load() *Config {
	// Multiple TMDB API keys, comma separated
	tmdbKeys := []string{}
	if keyEnv := os.Getenv("TMDB_API_KEY"); keyEnv != "" {
		for _, k := range strings.Split(keyEnv, ",") {
			if trimmed := strings.TrimSpace(k); trimmed != "" {
				tmdbKeys = append(tmdbKeys, trimmed)
			}
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "cinescope"),
		TMDBAPIKeys:   tmdbKeys,
		TMDBBaseURL:   getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBImageBase: getEnv("TMDB_IMAGE_BASE", "https://image.tmdb.org/t/p"),
		WatchRegion:   getEnv("WATCH_REGION", "US"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "data/uploads"),
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
