package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"social-network-service/internal/adapter/gin/middleware"
	ginrouter "social-network-service/internal/adapter/gin/router"
	"social-network-service/internal/config"
	redisclient "social-network-service/pkg/redis"
)

// Server holds the HTTP server and its dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance
func New(
	cfg *config.Config,
	l *zap.Logger,
	handlers ginrouter.Handlers,
	tokens middleware.TokenVerifier,
	redisClient *redisclient.Client,
) *Server {
	rateLimit := middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstCapacity:     cfg.RateLimit.BurstCapacity,
		Enabled:           cfg.RateLimit.Enabled,
	}

	var rdb *redis.Client
	if redisClient != nil {
		rdb = redisClient.Client
	}

	router := ginrouter.SetupRouter(handlers, tokens, rateLimit, rdb, cfg.Storage.UploadDir, l)

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start runs the HTTP server until the context is canceled, then shuts it
// down gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		timeout := time.Duration(s.Config.App.ShutdownTimeoutSeconds) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.Logger.Info("shutting down HTTP server",
			zap.Int("timeout_seconds", s.Config.App.ShutdownTimeoutSeconds),
		)
		return s.HTTP.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
