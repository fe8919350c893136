package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rastreadormanager/rastreador-api/internal/audit"
	"github.com/rastreadormanager/rastreador-api/internal/backup"
	"github.com/rastreadormanager/rastreador-api/internal/config"
	"github.com/rastreadormanager/rastreador-api/internal/httperr"
	"github.com/rastreadormanager/rastreador-api/internal/httpresp"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/store"
	"github.com/rastreadormanager/rastreador-api/internal/timezone"
)

type BackupHandler struct {
	uploader  *backup.Uploader
	clients   *store.ClientStore
	templates *store.TemplateStore
	config    *config.Config
	audit     *audit.Dispatcher
}

func NewBackupHandler(
	uploader *backup.Uploader,
	clients *store.ClientStore,
	templates *store.TemplateStore,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
) *BackupHandler {
	return &BackupHandler{
		uploader:  uploader,
		clients:   clients,
		templates: templates,
		config:    cfg,
		audit:     dispatcher,
	}
}

// Create sobe uma cópia datada do snapshot completo para o S3.
func (h *BackupHandler) Create(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)

	if h.uploader == nil {
		httperr.Unavailable(c, "backup_not_configured", "Backup S3 não configurado no servidor.")
		return
	}

	now := timezone.NowIn(h.config.Timezone)
	key, err := h.uploader.Upload(
		c.Request.Context(),
		h.clients.All(),
		h.templates.All(),
		now,
	)
	if err != nil {
		httperr.Internal(c, "backup_failed", "Erro ao enviar backup.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "backup_created",
		Entity:   "snapshot",
		Metadata: map[string]any{"key": key},
	})

	httpresp.OK(c, gin.H{"key": key})
}
