package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VivientaServicios01/visitas-scheduler/internal/cache"
	"github.com/VivientaServicios01/visitas-scheduler/internal/config"
	dbpkg "github.com/VivientaServicios01/visitas-scheduler/internal/db"
	"github.com/VivientaServicios01/visitas-scheduler/internal/middleware"
	"github.com/VivientaServicios01/visitas-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	var appCache cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rc.Ping(context.Background()); err != nil {
			logger.Warn("redis unreachable, running without cache", zap.Error(err))
		} else {
			appCache = rc
		}
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, appCache, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
