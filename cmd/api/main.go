package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/medagenda/scheduler-api/internal/config"
	dbpkg "github.com/medagenda/scheduler-api/internal/db"
	"github.com/medagenda/scheduler-api/internal/middleware"
	"github.com/medagenda/scheduler-api/internal/routes"
	"github.com/medagenda/scheduler-api/internal/worker"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, rule cache disabled: %v", err)
			rdb = nil
		}
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	services := routes.RegisterRoutes(r, db, rdb, cfg)

	maintenance := worker.NewMaintenanceWorker(
		services.Appointments,
		services.CompleteUC,
		services.AutoCancelUC,
		cfg.MaintenanceInterval,
	)
	go maintenance.Start(context.Background())

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
