package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/rastreadormanager/rastreador-api/internal/config"
	dbpkg "github.com/rastreadormanager/rastreador-api/internal/db"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/routes"
	"github.com/rastreadormanager/rastreador-api/internal/storage"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	// Postgres é opcional: serve de backend de snapshot (quando não
	// há Redis) e guarda a trilha de auditoria.
	var db *gorm.DB
	if cfg.DBUrl != "" {
		db = dbpkg.NewDB(cfg)
	}

	st, err := newStorage(cfg, db)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newStorage escolhe o backend do snapshot: Redis, depois Postgres,
// depois arquivo local.
func newStorage(cfg *config.Config, db *gorm.DB) (storage.Store, error) {
	if cfg.RedisURL != "" {
		return storage.NewRedisStore(cfg.RedisURL)
	}

	if db != nil {
		return storage.NewGormStore(db)
	}

	return storage.NewFileStore(cfg.DataDir)
}
