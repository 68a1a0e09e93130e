package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"book-catalog/config"
	"book-catalog/driver"
	"book-catalog/gateway"
	"book-catalog/logger"
	"book-catalog/rest"
	"book-catalog/usecase"
	appOtel "book-catalog/utils/otel"

	"github.com/labstack/echo/v4"
)

// App holds all components of the book-catalog service.
type App struct {
	echo         *echo.Echo
	mongoDriver  *driver.MongoDriver
	otelShutdown appOtel.ShutdownFunc
}

// Run initializes all components and starts the service.
// It blocks until ctx is cancelled, then performs graceful shutdown.
func Run(ctx context.Context) error {
	// ── OpenTelemetry ──
	otelCfg := appOtel.ConfigFromEnv()
	otelShutdown, err := appOtel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// ── Logger ──
	logger.InitWithOTel(otelCfg.Enabled)
	logger.Logger.Info("Starting book-catalog",
		"service", otelCfg.ServiceName,
		"otel_enabled", otelCfg.Enabled,
	)

	// ── Load config ──
	appCfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return err
	}

	// ── Drivers (infrastructure layer) ──
	mongoDriver, err := initMongoDriver(ctx, appCfg.Mongo)
	if err != nil {
		logger.Logger.Error("Failed to initialize MongoDB driver", "err", err)
		return err
	}

	esClient, err := initElasticsearchClient(ctx, appCfg.Elasticsearch)
	if err != nil {
		logger.Logger.Error("Failed to initialize Elasticsearch", "err", err)
		closeMongo(mongoDriver)
		return err
	}
	searchDriver := driver.NewElasticsearchDriver(esClient, appCfg.Elasticsearch.Index)

	// ── Gateways (anti-corruption layer) ──
	bookRepo := gateway.NewBookRepositoryGateway(mongoDriver)
	searchEngine := gateway.NewSearchEngineGateway(searchDriver)

	if err := searchEngine.EnsureIndex(ctx); err != nil {
		logger.Logger.Error("Failed to ensure search index", "err", err)
		closeMongo(mongoDriver)
		return err
	}

	// ── Use cases (application layer) ──
	searchUsecase := usecase.NewSearchBooksUsecase(searchEngine)
	suggestUsecase := usecase.NewSuggestTitlesUsecase(searchEngine, config.SuggestionSize)
	addUsecase := usecase.NewAddBookUsecase(bookRepo, searchEngine)
	deleteUsecase := usecase.NewDeleteBookUsecase(bookRepo, searchEngine)

	// ── HTTP server ──
	restHandler := rest.NewHandler(searchUsecase, suggestUsecase, addUsecase, deleteUsecase)

	app := &App{
		echo:         newHTTPServer(restHandler, otelCfg),
		mongoDriver:  mongoDriver,
		otelShutdown: otelShutdown,
	}

	go func() {
		logger.Logger.Info("http listen", "addr", appCfg.HTTP.Addr)
		if err := app.echo.Start(appCfg.HTTP.Addr); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("http", "err", err)
		}
	}()

	// ── Wait for shutdown signal ──
	<-ctx.Done()
	app.shutdown()
	return nil
}

// shutdown performs graceful shutdown of all components.
func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("http shutdown error", "err", err)
	}
	closeMongo(a.mongoDriver)

	otelCtx, otelCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer otelCancel()
	if err := a.otelShutdown(otelCtx); err != nil {
		fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
	}
}

func closeMongo(mongoDriver *driver.MongoDriver) {
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoDriver.Close(closeCtx); err != nil {
		logger.Logger.Error("mongodb close error", "err", err)
	}
}
