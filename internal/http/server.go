// Package http provides the API server, router assembly and shared
// middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/caseflow/internal/auth/http"
	callbackHTTP "github.com/allisson/caseflow/internal/callback/http"
	deliveryHTTP "github.com/allisson/caseflow/internal/deliveryaudit/http"
)

// Server is the API HTTP server.
type Server struct {
	db     *sql.DB
	host   string
	port   int
	logger *slog.Logger
	router *gin.Engine
	server *http.Server
}

// NewServer creates a new API server. The router is assembled separately with
// SetupRouter; the database handle is only used by the readiness endpoint.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		host:   host,
		port:   port,
		logger: logger,
	}
}

// RouterConfig carries the handlers and per-route middleware the router is
// assembled from.
type RouterConfig struct {
	TokenHandler    *authHTTP.TokenHandler
	CallbackHandler *callbackHTTP.CallbackHandler
	DeliveryHandler *deliveryHTTP.DeliveryHandler

	// AuthMiddleware protects every /v1 route except token issuance.
	AuthMiddleware gin.HandlerFunc

	// RateLimitMiddleware throttles authenticated clients. Nil disables it.
	RateLimitMiddleware gin.HandlerFunc

	// MetricsMiddleware records request metrics. Nil disables it.
	MetricsMiddleware gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string
}

// SetupRouter builds the Gin router with all middleware and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Health and readiness endpoints, unauthenticated
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Token issuance authenticates by client credentials, not bearer token
	router.POST("/v1/token", cfg.TokenHandler.IssueTokenHandler)

	v1 := router.Group("/v1")
	v1.Use(cfg.AuthMiddleware)
	if cfg.RateLimitMiddleware != nil {
		v1.Use(cfg.RateLimitMiddleware)
	}

	v1.POST("/callback", cfg.CallbackHandler.ProcessCallbackHandler)
	v1.GET("/cases/:case_id/deliveries", cfg.DeliveryHandler.ListDeliveriesHandler)
	v1.GET("/cases/:case_id/correspondence", cfg.DeliveryHandler.ListCorrespondenceHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must have been called first.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		components["database"] = "error"
		ready = false
	} else {
		components["database"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
