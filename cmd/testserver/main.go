package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aescanero/rapidtriage/internal/config"
	"github.com/aescanero/rapidtriage/internal/logging"
	"github.com/aescanero/rapidtriage/pkg/adapters/metrics/prometheus"
	apihttp "github.com/aescanero/rapidtriage/pkg/api/http"

	"go.uber.org/zap"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

const testPage = "test-rapidtriage-enhanced.html"

func main() {
	// Load configuration
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting RapidTriageME test server",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	rootDir, err := cfg.GetRootDir()
	if err != nil {
		logger.Fatal("failed to resolve root directory", zap.Error(err))
	}

	metricsCollector := prometheus.NewCollector()

	server, err := apihttp.NewServer(&apihttp.Config{
		Port:    cfg.Port,
		RootDir: rootDir,
		Metrics: metricsCollector,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("failed to create static server", zap.Error(err))
	}

	if err := server.Listen(); err != nil {
		var bindErr *apihttp.BindError
		if errors.As(err, &bindErr) {
			fmt.Fprintf(os.Stderr, "Cannot listen on %s: %v\n", bindErr.Addr, bindErr.Err)
		}
		logger.Fatal("failed to bind static server", zap.Error(err))
	}
	logger.Info("static server bound",
		zap.String("addr", cfg.GetHTTPAddr()),
		zap.String("root", server.RootDir()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Start()
	}()

	var metricsServer *http.Server
	if addr := cfg.GetMetricsAddr(); addr != "" {
		metricsServer = &http.Server{Addr: addr, Handler: metricsCollector.Handler()}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		logger.Info("metrics server started", zap.String("addr", addr))
	}

	printBanner(os.Stdout, cfg.Port)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case err := <-serveErr:
		if err != nil {
			logger.Fatal("static server failed", zap.Error(err))
		}
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("static server shutdown error", zap.Error(err))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", zap.Error(err))
		}
	}

	fmt.Fprintln(os.Stdout, "\n✅ Server stopped")
}

// printBanner writes the startup notice shown to the operator
func printBanner(w io.Writer, port int) {
	fmt.Fprintln(w, "🚀 RapidTriageME Test Server")
	fmt.Fprintf(w, "📍 Serving at: http://localhost:%d\n", port)
	fmt.Fprintf(w, "📄 Test page: http://localhost:%d/%s\n", port, testPage)
	fmt.Fprintln(w, "🛑 Press Ctrl+C to stop")
	fmt.Fprintln(w, strings.Repeat("-", 50))
}
