package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vortexia/barbershop-manager/internal/config"
	"github.com/vortexia/barbershop-manager/internal/logger"
	"github.com/vortexia/barbershop-manager/internal/middleware"
	"github.com/vortexia/barbershop-manager/internal/routes"
	"github.com/vortexia/barbershop-manager/internal/storage"
)

func main() {

	cfg := config.Load()

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogJSON {
		logger.SetJSON()
	}

	store := newStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, cfg)

	logger.Log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newStore(cfg *config.Config) storage.Store {
	switch cfg.StoreDriver {
	case "redis":
		store, err := storage.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to connect redis")
		}
		return store

	case "postgres":
		store, err := storage.NewPostgresStore(cfg.DBUrl)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to connect database")
		}
		return store

	default:
		logger.Log.Warn().Msg("using in-memory store, data will not survive restarts")
		return storage.NewMemoryStore()
	}
}
