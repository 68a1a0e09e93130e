package bootstrap

import (
	"context"
	"fmt"
	"time"

	"book-catalog/config"
	"book-catalog/driver"
	"book-catalog/logger"

	"github.com/cenkalti/backoff/v5"
	"github.com/elastic/go-elasticsearch/v8"
)

const connectMaxRetries = 5

// newConnectBackoff creates the exponential backoff policy used while
// waiting for the store and the engine to come up.
func newConnectBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 30 * time.Second
	bo.Multiplier = 2
	return bo
}

// initMongoDriver connects to the record store, retrying with backoff until
// it is reachable.
func initMongoDriver(ctx context.Context, cfg config.MongoConfig) (*driver.MongoDriver, error) {
	bo := newConnectBackoff()

	for attempt := 1; ; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		mongoDriver, err := driver.NewMongoDriver(connectCtx, cfg)
		cancel()
		if err == nil {
			return mongoDriver, nil
		}

		if attempt >= connectMaxRetries {
			return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", connectMaxRetries, err)
		}

		delay := bo.NextBackOff()
		logger.Logger.Warn("MongoDB not ready, retrying",
			"attempt", attempt, "max", connectMaxRetries, "retry_in", delay, "err", err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// initElasticsearchClient connects to the search engine, retrying with
// backoff until it reports healthy.
func initElasticsearchClient(ctx context.Context, cfg config.ElasticsearchConfig) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create Elasticsearch client: %w", err)
	}

	logger.Logger.Info("Connecting to Elasticsearch", "hosts", cfg.Addresses)

	bo := newConnectBackoff()

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		res, healthErr := client.Info(client.Info.WithContext(pingCtx))
		cancel()
		if healthErr == nil && !res.IsError() {
			res.Body.Close()
			logger.Logger.Info("Connected to Elasticsearch successfully")
			return client, nil
		}
		if healthErr == nil {
			healthErr = fmt.Errorf("elasticsearch info: %s", res.Status())
			res.Body.Close()
		}

		if attempt >= connectMaxRetries {
			return nil, fmt.Errorf("failed to connect to Elasticsearch after %d attempts: %w", connectMaxRetries, healthErr)
		}

		delay := bo.NextBackOff()
		logger.Logger.Warn("Elasticsearch not ready, retrying",
			"attempt", attempt, "max", connectMaxRetries, "retry_in", delay, "err", healthErr)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
