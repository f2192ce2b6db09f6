package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/aescanero/rapidtriage/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the static file server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	rootDir string
	logger  *zap.Logger

	mu       sync.Mutex
	listener net.Listener
}

// Config holds static server configuration
type Config struct {
	Port    int
	RootDir string
	Metrics *prometheus.Collector
	Logger  *zap.Logger
}

// BindError is returned when the listening socket cannot be opened
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// NewServer creates a new static file server
func NewServer(cfg *Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(recoveryLogger(logger)))
	router.Use(requestLogger(logger, cfg.Metrics))
	router.Use(corsMiddleware())

	s := &Server{
		router:  router,
		rootDir: root,
		logger:  logger,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s, nil
}

// setupRoutes configures the static handler.
// There are no explicit routes, so every path falls through to NoRoute.
func (s *Server) setupRoutes() {
	s.router.NoRoute(s.handleStatic(http.FileServer(http.Dir(s.rootDir))))
}

// handleStatic delegates to the stdlib file server
func (s *Server) handleStatic(files http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		// NoRoute handlers start out at 404 and directory listings never set a status
		c.Status(http.StatusOK)
		files.ServeHTTP(c.Writer, c.Request)
	}
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// RootDir returns the absolute directory files are served from
func (s *Server) RootDir() string {
	return s.rootDir
}

// Addr returns the bound address, or the configured one before Listen
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Listen binds the listening socket on all interfaces
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return &BindError{Addr: s.server.Addr, Err: err}
	}
	s.listener = ln

	return nil
}

// Start binds the socket if needed and serves until Shutdown
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	s.logger.Info("starting static server",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", s.rootDir))

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server and releases the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down static server")

	err := s.server.Shutdown(ctx)

	// Serve closes the listener itself; this covers Listen without Start
	s.mu.Lock()
	if s.listener != nil {
		if cerr := s.listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			s.logger.Warn("failed to close listener", zap.Error(cerr))
		}
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to shutdown static server: %w", err)
	}

	s.logger.Info("static server shut down complete")
	return nil
}
