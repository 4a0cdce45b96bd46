package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikey/scamshield/internal/config"
	"github.com/mikey/scamshield/internal/core"
	"github.com/mikey/scamshield/internal/ports"
	"go.uber.org/zap"
)

// uploadField is the multipart form field carrying the recording
const uploadField = "file"

// HTTPServer exposes the analysis pipeline over HTTP
type HTTPServer struct {
	analyzer ports.Analyzer
	cfg      config.ServerConfig
	logger   *zap.Logger
	engine   *gin.Engine
	srv      *http.Server
}

// NewHTTPServer creates a new HTTP frontend
func NewHTTPServer(analyzer ports.Analyzer, cfg config.ServerConfig, logger *zap.Logger) *HTTPServer {
	switch cfg.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger), corsMiddleware(cfg.AllowedOrigins))

	s := &HTTPServer{
		analyzer: analyzer,
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
	}
	s.RegisterRoutes(engine)
	return s
}

// RegisterRoutes registers all API routes
func (s *HTTPServer) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/analyze", s.Analyze)
		api.GET("/health", s.HealthCheck)
	}
}

// Handler returns the HTTP handler serving the API
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Start binds the listen address and serves in the background
func (s *HTTPServer) Start() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddress, err)
	}

	s.srv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()

	s.logger.Info("HTTP frontend listening", zap.String("address", ln.Addr().String()))
	return nil
}

// Stop gracefully shuts the server down
func (s *HTTPServer) Stop() error {
	if s.srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	s.logger.Info("HTTP frontend stopped")
	return nil
}

// Analyze handles an uploaded recording
func (s *HTTPServer) Analyze(c *gin.Context) {
	maxBytes := s.cfg.MaxUploadBytes
	if maxBytes > 0 {
		if c.Request.ContentLength > maxBytes {
			s.tooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.tooLarge(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No audio file uploaded in field \"" + uploadField + "\""})
		return
	}

	f, err := header.Open()
	if err != nil {
		s.internalError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.internalError(c, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	result, err := s.analyzer.Analyze(c.Request.Context(), &core.AudioBlob{
		FileName: header.Filename,
		Data:     data,
	})
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HealthCheck reports liveness
func (s *HTTPServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *HTTPServer) tooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{
		"detail": fmt.Sprintf("Upload exceeds the %d byte limit", s.cfg.MaxUploadBytes),
	})
}

func (s *HTTPServer) internalError(c *gin.Context, err error) {
	s.logger.Error("Failed to analyze recording", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

// requestLogger logs every request once it completes
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// corsMiddleware allows the configured browser origins. "*" allows any.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
