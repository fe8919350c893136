package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rastreadormanager/rastreador-api/internal/audit"
	"github.com/rastreadormanager/rastreador-api/internal/config"
	domain "github.com/rastreadormanager/rastreador-api/internal/domain/client"
	"github.com/rastreadormanager/rastreador-api/internal/export"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/store"
	"github.com/rastreadormanager/rastreador-api/internal/timezone"
)

type ExportHandler struct {
	clients *store.ClientStore
	config  *config.Config
	audit   *audit.Dispatcher
}

func NewExportHandler(clients *store.ClientStore, cfg *config.Config, dispatcher *audit.Dispatcher) *ExportHandler {
	return &ExportHandler{clients: clients, config: cfg, audit: dispatcher}
}

// Download devolve o CSV da listagem filtrada (ou completa, sem
// filtros) como anexo.
func (h *ExportHandler) Download(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)

	status := c.DefaultQuery("status", domain.FilterAll)
	query := c.Query("query")

	filtered := h.clients.Filter(status, query)
	csv := export.CSV(filtered)

	now := timezone.NowIn(h.config.Timezone)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, export.Filename(now)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "clients_exported",
		Entity:   "client",
		Metadata: map[string]any{
			"status": status,
			"query":  query,
			"count":  len(filtered),
		},
	})
}
