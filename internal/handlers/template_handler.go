package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rastreadormanager/rastreador-api/internal/audit"
	"github.com/rastreadormanager/rastreador-api/internal/httperr"
	"github.com/rastreadormanager/rastreador-api/internal/httpresp"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/store"
)

type TemplateHandler struct {
	templates *store.TemplateStore
	audit     *audit.Dispatcher
}

func NewTemplateHandler(templates *store.TemplateStore, dispatcher *audit.Dispatcher) *TemplateHandler {
	return &TemplateHandler{templates: templates, audit: dispatcher}
}

func (h *TemplateHandler) List(c *gin.Context) {
	httpresp.List(c, h.templates.All())
}

type UpdateTemplateRequest struct {
	Content string `json:"content" binding:"required"`
}

// Update troca o conteúdo de um modelo existente. O texto chega como
// o operador deixou — se ele salvar uma mensagem já compilada, os
// placeholders são perdidos.
func (h *TemplateHandler) Update(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)
	id := c.Param("id")

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Conteúdo é obrigatório.")
		return
	}

	updated, err := h.templates.UpdateContent(c.Request.Context(), id, req.Content)
	if err != nil {
		httperr.Internal(c, "failed_to_update_template", "Erro ao salvar modelo.")
		return
	}
	if updated == nil {
		httperr.NotFound(c, "template_not_found", "Modelo não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "template_updated",
		Entity:   "template",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}
