package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rastreadormanager/rastreador-api/internal/audit"
	"github.com/rastreadormanager/rastreador-api/internal/backup"
	"github.com/rastreadormanager/rastreador-api/internal/config"
	"github.com/rastreadormanager/rastreador-api/internal/extract"
	"github.com/rastreadormanager/rastreador-api/internal/handlers"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/storage"
	"github.com/rastreadormanager/rastreador-api/internal/store"
)

// RegisterRoutes monta toda a API. O db é opcional (auditoria);
// quando nil, a trilha de auditoria fica desligada.
func RegisterRoutes(r *gin.Engine, st storage.Store, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================

	clientStore := store.NewClientStore(st)
	templateStore := store.NewTemplateStore(st)

	var auditDispatcher *audit.Dispatcher
	if db != nil {
		auditDispatcher = audit.NewDispatcher(audit.New(db))
	}

	var extractor extract.Extractor
	if cfg.GeminiAPIKey != "" {
		gem, err := extract.NewGeminiExtractor(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("gemini extractor disabled: %v", err)
		} else {
			extractor = gem
		}
	}

	uploader := backup.NewUploader(cfg)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(cfg)
	clientHandler := handlers.NewClientHandler(clientStore, auditDispatcher)
	templateHandler := handlers.NewTemplateHandler(templateStore, auditDispatcher)
	whatsAppHandler := handlers.NewWhatsAppHandler(clientStore, templateStore, cfg, auditDispatcher)
	extractHandler := handlers.NewExtractHandler(extractor)
	exportHandler := handlers.NewExportHandler(clientStore, cfg, auditDispatcher)
	backupHandler := handlers.NewBackupHandler(uploader, clientStore, templateStore, cfg, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.PATCH("/clients/:id/retrieved", clientHandler.MarkRetrieved)

			secured.GET("/clients/:id/whatsapp", whatsAppHandler.Preview)
			secured.POST("/clients/:id/whatsapp", whatsAppHandler.Send)

			secured.GET("/clients/export", exportHandler.Download)
			secured.GET("/stats", clientHandler.Stats)

			secured.GET("/templates", templateHandler.List)
			secured.PUT("/templates/:id", templateHandler.Update)

			secured.POST("/extract", extractHandler.Process)
			secured.POST("/backup", backupHandler.Create)

			if db != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(db)
				secured.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
