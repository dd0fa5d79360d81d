package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Bunny       BunnyConfig
	Vision      VisionConfig
	Search      SearchConfig
	GoogleDrive GoogleDriveConfig
	RateLimit   RateLimitConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type BunnyConfig struct {
	StorageZone string
	AccessKey   string
	BaseURL     string
	CDNUrl      string
}

type VisionConfig struct {
	BaseURL string // OpenAI-compatible chat completions gateway
	APIKey  string
	Model   string
}

type SearchConfig struct {
	BatchSize   int // Photos per model request
	Concurrency int // Concurrent batch requests per search
	CacheTTLSec int // Redis result cache TTL, 0 disables caching
}

type GoogleDriveConfig struct {
	APIKey          string // API key for public file metadata lookups
	CredentialsFile string // Service account JSON (takes precedence over APIKey)
}

type RateLimitConfig struct {
	Enabled       bool
	MaxRequests   int
	WindowSeconds int

	// Stricter window for auth attempts
	AuthMaxRequests   int
	AuthWindowSeconds int

	// Every search fans out into vision model calls, so it gets its own cap
	SearchMaxRequests   int
	SearchWindowSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists (optional for production)
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	batchSize, _ := strconv.Atoi(getEnv("SEARCH_BATCH_SIZE", "15"))
	concurrency, _ := strconv.Atoi(getEnv("SEARCH_CONCURRENCY", "4"))
	cacheTTL, _ := strconv.Atoi(getEnv("SEARCH_CACHE_TTL_SECONDS", "600"))
	rateMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "120"))
	rateWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))
	authRateMax, _ := strconv.Atoi(getEnv("AUTH_RATE_LIMIT_MAX", "10"))
	authRateWindow, _ := strconv.Atoi(getEnv("AUTH_RATE_LIMIT_WINDOW_SECONDS", "60"))
	searchRateMax, _ := strconv.Atoi(getEnv("SEARCH_RATE_LIMIT_MAX", "5"))
	searchRateWindow, _ := strconv.Atoi(getEnv("SEARCH_RATE_LIMIT_WINDOW_SECONDS", "60"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Event Gallery"),
			Port: getEnv("APP_PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "event_gallery"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Bunny: BunnyConfig{
			StorageZone: getEnv("BUNNY_STORAGE_ZONE", ""),
			AccessKey:   getEnv("BUNNY_ACCESS_KEY", ""),
			BaseURL:     getEnv("BUNNY_BASE_URL", "https://storage.bunnycdn.com"),
			CDNUrl:      getEnv("BUNNY_CDN_URL", ""),
		},
		Vision: VisionConfig{
			BaseURL: getEnv("VISION_API_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
			APIKey:  getEnv("VISION_API_KEY", ""),
			Model:   getEnv("VISION_MODEL", "google/gemini-2.5-flash"),
		},
		Search: SearchConfig{
			BatchSize:   batchSize,
			Concurrency: concurrency,
			CacheTTLSec: cacheTTL,
		},
		GoogleDrive: GoogleDriveConfig{
			APIKey:          getEnv("GOOGLE_DRIVE_API_KEY", ""),
			CredentialsFile: getEnv("GOOGLE_DRIVE_CREDENTIALS_FILE", ""),
		},
		RateLimit: RateLimitConfig{
			Enabled:             getEnv("RATE_LIMIT_ENABLED", "true") == "true",
			MaxRequests:         rateMax,
			WindowSeconds:       rateWindow,
			AuthMaxRequests:     authRateMax,
			AuthWindowSeconds:   authRateWindow,
			SearchMaxRequests:   searchRateMax,
			SearchWindowSeconds: searchRateWindow,
		},
	}

	if config.Search.BatchSize <= 0 {
		config.Search.BatchSize = 15
	}
	if config.Search.Concurrency <= 0 {
		config.Search.Concurrency = 1
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
