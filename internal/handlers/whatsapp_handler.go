package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rastreadormanager/rastreador-api/internal/audit"
	"github.com/rastreadormanager/rastreador-api/internal/config"
	"github.com/rastreadormanager/rastreador-api/internal/httperr"
	"github.com/rastreadormanager/rastreador-api/internal/httpresp"
	"github.com/rastreadormanager/rastreador-api/internal/message"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/store"
	"github.com/rastreadormanager/rastreador-api/internal/timezone"
	"github.com/rastreadormanager/rastreador-api/internal/whatsapp"
)

type WhatsAppHandler struct {
	clients   *store.ClientStore
	templates *store.TemplateStore
	config    *config.Config
	audit     *audit.Dispatcher
}

func NewWhatsAppHandler(
	clients *store.ClientStore,
	templates *store.TemplateStore,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
) *WhatsAppHandler {
	return &WhatsAppHandler{
		clients:   clients,
		templates: templates,
		config:    cfg,
		audit:     dispatcher,
	}
}

// ======================================================
// PREVIEW (template compilado + deep link)
// ======================================================

// Preview compila o template escolhido (ou o sugerido pelo estado do
// cliente) e devolve a mensagem pronta junto com o link wa.me. O
// operador pode editar o texto antes de disparar.
func (h *WhatsAppHandler) Preview(c *gin.Context) {
	client, ok := h.clients.Get(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	templateID := c.Query("template")
	if templateID == "" {
		templateID = message.DefaultTemplateID(*client)
	}

	tmpl, ok := h.templates.Get(templateID)
	if !ok {
		httperr.NotFound(c, "template_not_found", "Modelo não encontrado.")
		return
	}

	now := timezone.NowIn(h.config.Timezone)
	compiled := message.Compile(tmpl.Content, *client, now)

	httpresp.OK(c, gin.H{
		"template_id": tmpl.ID,
		"message":     compiled,
		"link":        whatsapp.Link(client.Phone, compiled, h.config.CountryCode),
	})
}

// ======================================================
// SEND (marca enviado e devolve o link)
// ======================================================

type SendRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send recebe a mensagem final (possivelmente editada), devolve o
// deep link e registra sent_whatsapp no cliente. O envio em si
// acontece no app de mensagens do operador.
func (h *WhatsAppHandler) Send(c *gin.Context) {
	operator := c.MustGet(middleware.ContextOperator).(string)
	id := c.Param("id")

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Mensagem é obrigatória.")
		return
	}

	client, ok := h.clients.Get(id)
	if !ok {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	link := whatsapp.Link(client.Phone, req.Message, h.config.CountryCode)

	updated, err := h.clients.MarkWhatsappSent(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Operator: operator,
		Action:   "whatsapp_sent",
		Entity:   "client",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{
		"link":   link,
		"client": updated,
	})
}
