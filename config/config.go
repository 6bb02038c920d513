package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. Business code receives it
// explicitly instead of reading environment variables on its own.
type Config struct {
	Port         string
	AllowOrigins string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	LogLevel  string
	LogFormat string

	JWTSecret string
	SiteURL   string

	AdminEmail    string
	AdminPassword string
	TotalMovies   int
	TotalCinema   int

	TMDBAPIKey           string
	TMDBTrendingMovieURL string
	TMDBMovieDetailURL   string
	TMDBImgURL           string
	TMDBImgThumbSize     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheEnabled      bool
	CacheTTL          time.Duration
	CachePrefix       string
	CacheMaxBodyBytes int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file is loaded if present but is not required.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8002"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "movie_catalog"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "pretty"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		SiteURL:   getEnv("SITE_URL", "http://localhost:3000"),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		TotalMovies:   getEnvInt("TOTAL_MOVIES", 200),
		TotalCinema:   getEnvInt("TOTAL_CINEMA", 30),

		TMDBAPIKey:           getEnv("TMDB_API_KEY", ""),
		TMDBTrendingMovieURL: getEnv("TMDB_TRENDING_MOVIE_URL", "https://api.themoviedb.org/3/trending/all/week"),
		TMDBMovieDetailURL:   getEnv("TMDB_MOVIE_DETAIL_URL", "https://api.themoviedb.org/3/movie"),
		TMDBImgURL:           getEnv("TMDB_IMG_URL", "https://image.tmdb.org/t/p"),
		TMDBImgThumbSize:     getEnv("TMDB_IMG_THUMB_SIZE", "w500"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		CacheEnabled:      getEnv("CACHE_ENABLED", "true") == "true",
		CacheTTL:          getEnvDuration("CACHE_TTL", 30*time.Second),
		CachePrefix:       getEnv("CACHE_PREFIX", "catalog"),
		CacheMaxBodyBytes: getEnvInt("CACHE_MAX_BODY_BYTES", 1<<20),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
