package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/craveboard/backend/config"
	"github.com/craveboard/backend/internal/api"
	"github.com/craveboard/backend/internal/middleware"
	"github.com/craveboard/backend/internal/router"
	"github.com/craveboard/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a server instance with all routes and middleware wired.
// Rate limiting is enabled only when Redis is configured; the service is
// fully functional without it.
func New(cfg *config.Config) *Server {
	llmService := service.NewLLMService(cfg)

	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		limiter = middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimitPerMinute)
		log.Info().Str("addr", cfg.RedisAddr).Msg("rate limiting enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, rate limiting disabled")
	}

	recipeHandler := api.NewRecipeHandler(llmService, limiter)
	r := router.SetupRouter(recipeHandler)

	return &Server{
		router: r,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: r,
		},
	}
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	log.Info().Str("addr", s.http.Addr).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
