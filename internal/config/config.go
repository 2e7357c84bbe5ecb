package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Record store (backend proxy in front of the remote record base)
	RecordStoreBaseURL string
	RecordStoreAPIKey  string
	RecordStoreTimeout time.Duration
	PatientsTable      string

	// Redis read-through cache for patient records
	RedisAddr       string
	RedisPassword   string
	RedisTLS        bool
	PatientCacheTTL time.Duration
	PatientCacheOff bool

	// Per-IP rate limit on /api routes. Zero disables limiting.
	RateLimit float64
	RateBurst int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		RecordStoreBaseURL: getEnv("RECORD_STORE_BASE_URL", ""),
		RecordStoreAPIKey:  getEnv("RECORD_STORE_API_KEY", ""),
		RecordStoreTimeout: getEnvAsDuration("RECORD_STORE_TIMEOUT", 20*time.Second),
		PatientsTable:      getEnv("PATIENTS_TABLE", "Clients"),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisTLS:        getEnvAsBool("REDIS_TLS", false),
		PatientCacheTTL: getEnvAsDuration("PATIENT_CACHE_TTL", 5*time.Minute),
		PatientCacheOff: getEnvAsBool("PATIENT_CACHE_DISABLED", false),

		RateLimit: getEnvAsFloat("RATE_LIMIT", 0),
		RateBurst: getEnvAsInt("RATE_BURST", 20),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
