package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rastreadormanager/rastreador-api/internal/extract"
	"github.com/rastreadormanager/rastreador-api/internal/httperr"
	"github.com/rastreadormanager/rastreador-api/internal/httpresp"
)

type ExtractHandler struct {
	extractor extract.Extractor
}

func NewExtractHandler(extractor extract.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}

// Process manda o texto colado para a IA e devolve os campos
// extraídos como rascunho de cadastro. Falha vira um único erro
// retentável; nada é criado ou alterado aqui.
func (h *ExtractHandler) Process(c *gin.Context) {
	if h.extractor == nil {
		httperr.Unavailable(c, "ai_not_configured", "Extração por IA não configurada no servidor.")
		return
	}

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		httperr.BadRequest(c, "missing_text", "Texto é obrigatório.")
		return
	}

	data, err := h.extractor.Extract(c.Request.Context(), req.Text)
	if err != nil {
		httperr.BadGateway(c, "ai_extraction_failed",
			"Falha ao processar texto com IA. Verifique sua chave de API ou tente novamente.")
		return
	}

	httpresp.OK(c, data)
}
