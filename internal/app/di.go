// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gocloud.dev/blob"

	authHTTP "github.com/allisson/caseflow/internal/auth/http"
	authService "github.com/allisson/caseflow/internal/auth/service"
	authUseCase "github.com/allisson/caseflow/internal/auth/usecase"
	callbackHTTP "github.com/allisson/caseflow/internal/callback/http"
	callbackUseCase "github.com/allisson/caseflow/internal/callback/usecase"
	caserecordClient "github.com/allisson/caseflow/internal/caserecord/client"
	"github.com/allisson/caseflow/internal/config"
	"github.com/allisson/caseflow/internal/database"
	auditHTTP "github.com/allisson/caseflow/internal/deliveryaudit/http"
	auditService "github.com/allisson/caseflow/internal/deliveryaudit/service"
	auditUseCase "github.com/allisson/caseflow/internal/deliveryaudit/usecase"
	distribution "github.com/allisson/caseflow/internal/distribution/usecase"
	"github.com/allisson/caseflow/internal/docstore"
	apphttp "github.com/allisson/caseflow/internal/http"
	letterService "github.com/allisson/caseflow/internal/letter/service"
	"github.com/allisson/caseflow/internal/metrics"
	"github.com/allisson/caseflow/internal/notify"
	"github.com/allisson/caseflow/internal/print"
	"github.com/allisson/caseflow/internal/queue"
	"github.com/allisson/caseflow/internal/render"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Authentication
	secretService    authService.SecretService
	tokenService     authService.TokenService
	clientRepository authUseCase.ClientRepository
	tokenRepository  authUseCase.TokenRepository
	clientUseCase    authUseCase.ClientUseCase
	tokenUseCase     authUseCase.TokenUseCase
	tokenHandler     *authHTTP.TokenHandler

	// Case record store
	idamTokens  caserecordClient.TokenProvider
	caseUpdater caserecordClient.CaseUpdater

	// Delivery audit
	deliveryRepository   auditUseCase.DeliveryRepository
	correspondenceCipher auditService.CorrespondenceCipher
	deliveryAuditUseCase auditUseCase.UseCase
	deliveryHandler      *auditHTTP.DeliveryHandler

	// Distribution
	evidenceBucket      *blob.Bucket
	evidenceStore       docstore.EvidenceStore
	renderer            render.Renderer
	printClient         print.PrintClient
	printGateway        print.Gateway
	recipientResolver   letterService.RecipientResolver
	distributionUseCase distribution.UseCase

	// Notifications and dispatch
	notifySender    notify.Sender
	dispatcher      *callbackUseCase.CallbackDispatcher
	callbackHandler *callbackHTTP.CallbackHandler

	// Servers and workers
	httpServer    *apphttp.Server
	metricsServer *apphttp.MetricsServer
	worker        *queue.Worker

	// Initialization flags and mutex for thread-safety
	mu                       sync.Mutex
	loggerInit               sync.Once
	dbInit                   sync.Once
	txManagerInit            sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	secretServiceInit        sync.Once
	tokenServiceInit         sync.Once
	clientRepositoryInit     sync.Once
	tokenRepositoryInit      sync.Once
	clientUseCaseInit        sync.Once
	tokenUseCaseInit         sync.Once
	tokenHandlerInit         sync.Once
	idamTokensInit           sync.Once
	caseUpdaterInit          sync.Once
	deliveryRepositoryInit   sync.Once
	correspondenceCipherInit sync.Once
	deliveryAuditUseCaseInit sync.Once
	deliveryHandlerInit      sync.Once
	evidenceStoreInit        sync.Once
	rendererInit             sync.Once
	printClientInit          sync.Once
	printGatewayInit         sync.Once
	recipientResolverInit    sync.Once
	distributionUseCaseInit  sync.Once
	notifySenderInit         sync.Once
	dispatcherInit           sync.Once
	callbackHandlerInit      sync.Once
	httpServerInit           sync.Once
	metricsServerInit        sync.Once
	workerInit               sync.Once
	initErrors               map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Falls back to a no-op recorder when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer() (*apphttp.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance.
// Returns nil when metrics are disabled.
func (c *Container) MetricsServer() (*apphttp.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.worker != nil {
		if err := c.worker.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("worker close: %w", err))
		}
	}

	if c.evidenceBucket != nil {
		if err := c.evidenceBucket.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("evidence bucket close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	return businessMetrics, nil
}

// initHTTPServer creates the API HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*apphttp.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenHandler, err := c.TokenHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get token handler for http server: %w", err)
	}

	callbackHandler, err := c.CallbackHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get callback handler for http server: %w", err)
	}

	deliveryHandler, err := c.DeliveryHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery handler for http server: %w", err)
	}

	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for http server: %w", err)
	}

	routerConfig := apphttp.RouterConfig{
		TokenHandler:     tokenHandler,
		CallbackHandler:  callbackHandler,
		DeliveryHandler:  deliveryHandler,
		AuthMiddleware:   authHTTP.AuthenticationMiddleware(tokenUseCase, c.TokenService(), logger),
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
	}

	if c.config.RateLimitEnabled {
		routerConfig.RateLimitMiddleware = authHTTP.RateLimitMiddleware(
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			logger,
		)
	}

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		routerConfig.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	server := apphttp.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(routerConfig)

	return server, nil
}

// initMetricsServer creates the metrics HTTP server.
func (c *Container) initMetricsServer() (*apphttp.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return apphttp.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
	), nil
}
