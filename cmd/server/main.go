package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"invoicing-dashboard-backend/internal/config"
	"invoicing-dashboard-backend/internal/logger"
	"invoicing-dashboard-backend/internal/routes"
	"invoicing-dashboard-backend/internal/store"
	"invoicing-dashboard-backend/internal/transport"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLog, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatal(err)
	}
	defer appLog.Sync()

	stores, err := buildStores(cfg)
	if err != nil {
		appLog.Fatal("backend init failed", "backend", cfg.Backend, "error", err)
	}
	appLog.Info("backend ready", "backend", cfg.Backend)

	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, stores, appLog)

	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}

// buildStores selects the configured backend: seeded in-memory data, a
// gorm database, or the three mock-API partitions.
func buildStores(cfg *config.Config) (*store.Stores, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		mem := store.NewMemoryStores()
		mem.SeedPlaceholderData()
		return mem.Stores(), nil
	case config.BackendDB:
		db, err := config.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := store.AutoMigrate(db); err != nil {
			return nil, err
		}
		return store.NewGormStores(db), nil
	default: // config.BackendREST, validated by Load
		v1 := transport.NewClient(cfg.MockAPIV1)
		v2 := transport.NewClient(cfg.MockAPIV2)
		v3 := transport.NewClient(cfg.MockAPIV3)
		return store.NewRESTStores(v1, v2, v3), nil
	}
}
