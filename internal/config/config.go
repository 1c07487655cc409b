package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	StoreBackend string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	SuggestURL   string
	SuggestModel string
	SuggestKey   string
	SwaggerHost  string
}

// Load builds Config from environment with sensible defaults.
// STORE_BACKEND=memory keeps all records in process memory, which loses
// them on restart but needs no Redis.
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", "redis"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		SuggestURL:   getEnv("SUGGEST_API_URL", "https://generativelanguage.googleapis.com"),
		SuggestModel: getEnv("SUGGEST_MODEL", "gemini-3-flash-preview"),
		SuggestKey:   os.Getenv("SUGGEST_API_KEY"),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
