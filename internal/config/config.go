package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	DBName   string

	GeminiAPIKey string
	GeminiModel  string
	// Per-call deadline for the outbound model request, in seconds.
	AITimeout int

	Port        string
	GinMode     string
	CORSOrigins []string

	// Redis Configuration (topics cache, rate limiting, task queue)
	RedisURL      string
	RedisPassword string
	RedisDB       int

	RateLimitReqs   int
	RateLimitWindow int

	// Popular-topics snapshot cache, in seconds. 0 disables caching and the
	// snapshot is recomputed on every request.
	TopicsCacheTTL int

	// Job-board scraping
	ScrapeSources  []string
	ScrapeQuery    string
	ScrapeLocation string
	ScrapeLimit    int
	// Minutes between scheduled scrapes. 0 disables the schedule.
	ScrapeInterval int

	// Telemetry
	OTLPEndpoint     string
	TraceSampleRatio float64
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017/nextstep_careers"),
		DBName:   getEnv("DB_NAME", "nextstep_careers"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AITimeout:    getEnvInt("AI_TIMEOUT", 60),

		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RateLimitReqs:   getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 60),

		TopicsCacheTTL: getEnvInt("TOPICS_CACHE_TTL", 0),

		ScrapeSources:  splitNonEmpty(getEnv("SCRAPE_SOURCES", "brightermonday")),
		ScrapeQuery:    getEnv("SCRAPE_QUERY", "software"),
		ScrapeLocation: getEnv("SCRAPE_LOCATION", "Nairobi"),
		ScrapeLimit:    getEnvInt("SCRAPE_LIMIT", 50),
		ScrapeInterval: getEnvInt("SCRAPE_INTERVAL", 0),

		OTLPEndpoint:     getEnv("OTLP_ENDPOINT", ""),
		TraceSampleRatio: getEnvFloat64("TRACE_SAMPLE_RATIO", 0.1),
	}

	// Validate required fields
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required - set it in .env file")
	}

	return cfg, nil
}

func splitNonEmpty(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
