package config

import (
	"os"
	"strconv"
	"time"
)

// Service constants with env var override support.
var (
	HTTPAddr             = stringEnv("HTTP_ADDR", ":4000")
	MongoTimeout         = durationEnv("MONGO_TIMEOUT", 10*time.Second)
	ElasticsearchTimeout = durationEnv("ELASTICSEARCH_TIMEOUT", 15*time.Second)
	SuggestionSize       = intEnv("SUGGESTION_SIZE", 5)
)

func stringEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func durationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
