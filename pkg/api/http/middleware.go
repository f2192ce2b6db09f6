package http

import (
	"net/http"
	"time"

	"github.com/aescanero/rapidtriage/pkg/adapters/metrics/prometheus"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// corsHeaders are attached to every response
var corsHeaders = [][2]string{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, POST, OPTIONS"},
	{"Access-Control-Allow-Headers", "Content-Type, Authorization"},
	{"Cache-Control", "no-store, no-cache, must-revalidate"},
}

func setCORSHeaders(h http.Header) {
	for _, kv := range corsHeaders {
		h.Set(kv[0], kv[1])
	}
}

// corsWriter sets the CORS headers right before the status line goes out.
// http.FileServer drops Cache-Control on its error path, so setting them once up
// front is not enough.
type corsWriter struct {
	gin.ResponseWriter
}

func (w *corsWriter) WriteHeader(code int) {
	setCORSHeaders(w.ResponseWriter.Header())
	w.ResponseWriter.WriteHeader(code)
}

func (w *corsWriter) WriteHeaderNow() {
	setCORSHeaders(w.ResponseWriter.Header())
	w.ResponseWriter.WriteHeaderNow()
}

func (w *corsWriter) Write(data []byte) (int, error) {
	if !w.Written() {
		setCORSHeaders(w.ResponseWriter.Header())
	}
	return w.ResponseWriter.Write(data)
}

func (w *corsWriter) WriteString(s string) (int, error) {
	if !w.Written() {
		setCORSHeaders(w.ResponseWriter.Header())
	}
	return w.ResponseWriter.WriteString(s)
}

// corsMiddleware decorates responses and answers preflight requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		setCORSHeaders(c.Writer.Header())
		c.Writer = &corsWriter{ResponseWriter: c.Writer}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// requestLogger is a middleware for request logging and metrics
func requestLogger(logger *zap.Logger, metrics *prometheus.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		requestID := uuid.NewString()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		if metrics != nil {
			metrics.RecordRequest(c.Request.Method, status, duration, c.Writer.Size())
		}

		logger.Info("HTTP request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()))
	}
}

// recoveryLogger keeps a failing request from taking the server down
func recoveryLogger(logger *zap.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, err any) {
		logger.Error("request panicked",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("error", err))
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
