package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Mongo         MongoConfig
	Elasticsearch ElasticsearchConfig
	HTTP          HTTPConfig
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	Timeout   time.Duration
}

type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

func Load() (*Config, error) {
	mongoURI := getEnvRequired("MONGO_URI")
	esHost := getEnvRequired("ELASTICSEARCH_HOST")

	cfg := &Config{
		Mongo: MongoConfig{
			URI:        mongoURI,
			Database:   getEnvOrDefault("MONGO_DB", "bookcatalog"),
			Collection: getEnvOrDefault("MONGO_COLLECTION", "books"),
			Timeout:    MongoTimeout,
		},
		Elasticsearch: ElasticsearchConfig{
			Addresses: splitHosts(esHost),
			Username:  getEnvOrDefault("ELASTICSEARCH_USER", ""),
			Password:  getEnvOrDefault("ELASTICSEARCH_PASSWORD", ""),
			Index:     getEnvOrDefault("ELASTICSEARCH_INDEX", "books"),
			Timeout:   ElasticsearchTimeout,
		},
		HTTP: HTTPConfig{
			Addr:              HTTPAddr,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	slog.Info("Configuration loaded",
		"mongo_db", cfg.Mongo.Database,
		"mongo_collection", cfg.Mongo.Collection,
		"elasticsearch_hosts", cfg.Elasticsearch.Addresses,
		"elasticsearch_index", cfg.Elasticsearch.Index,
	)

	return cfg, nil
}

func splitHosts(hosts string) []string {
	parts := strings.Split(hosts, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvRequired(key string) string {
	// Check for _FILE suffix (Docker Secrets support)
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
