package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rastreadormanager/rastreador-api/internal/audit"
	domain "github.com/rastreadormanager/rastreador-api/internal/domain/client"
	"github.com/rastreadormanager/rastreador-api/internal/httperr"
	"github.com/rastreadormanager/rastreador-api/internal/httpresp"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/models"
	"github.com/rastreadormanager/rastreador-api/internal/store"
)

type ClientHandler struct {
	clients *store.ClientStore
	audit   *audit.Dispatcher
}

func NewClientHandler(clients *store.ClientStore, dispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{clients: clients, audit: dispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", domain.FilterAll)
	query := c.Query("query")

	httpresp.List(c, h.clients.Filter(status, query))
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)

	var data models.ClientData
	if err := c.ShouldBindJSON(&data); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if strings.TrimSpace(data.Name) == "" {
		httperr.BadRequest(c, "missing_name", "Nome é obrigatório.")
		return
	}

	created, err := h.clients.Add(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao salvar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "client_created",
		Entity:   "client",
		EntityID: created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)
	id := c.Param("id")

	var data models.ClientData
	if err := c.ShouldBindJSON(&data); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.clients.Update(c.Request.Context(), id, data)
	if err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}
	if updated == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)
	id := c.Param("id")

	removed, err := h.clients.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}
	if !removed {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// MARK RETRIEVED
// ======================================================

func (h *ClientHandler) MarkRetrieved(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)
	id := c.Param("id")

	updated, err := h.clients.MarkDone(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}
	if updated == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "client_retrieved",
		Entity:   "client",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

// ======================================================
// STATS
// ======================================================

func (h *ClientHandler) Stats(c *gin.Context) {
	httpresp.OK(c, h.clients.Stats())
}
