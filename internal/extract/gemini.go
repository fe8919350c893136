package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	domain "github.com/rastreadormanager/rastreador-api/internal/domain/client"
	"github.com/rastreadormanager/rastreador-api/internal/models"
)

// ======================================================
// EXTRAÇÃO VIA GEMINI
// ======================================================

type GeminiExtractor struct {
	client *genai.Client
	model  string
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiExtractor{client: client, model: model}, nil
}

// Extract manda o texto para o modelo com um schema de resposta que
// espelha os campos do cliente. Falha vira um único erro para o
// operador tentar de novo — nada é aplicado parcialmente.
func (e *GeminiExtractor) Extract(ctx context.Context, text string) (models.ClientData, error) {
	prompt := fmt.Sprintf(`Extraia as informações do cliente do seguinte texto e formate como JSON.
Se algum campo não for encontrado, retorne uma string vazia "".

Texto para analisar:
%q

Regras para Status:
- Se mencionar "já foi", "retirado", "ok": status = "Retirado"
- Se tiver data/hora futura ou "agendado": status = "Agendado"
- Caso contrário: status = "Fazer"`, text)

	result, err := e.client.Models.GenerateContent(ctx,
		e.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   clientSchema(),
		},
	)
	if err != nil {
		return models.ClientData{}, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return models.ClientData{}, fmt.Errorf("gemini returned empty response")
	}

	var data models.ClientData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.ClientData{}, fmt.Errorf("decode gemini response: %w", err)
	}

	if !domain.IsValid(domain.Status(data.Status)) {
		data.Status = string(domain.InitialStatus())
	}

	return data, nil
}

func clientSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":           {Type: genai.TypeString},
			"phone":          {Type: genai.TypeString},
			"address":        {Type: genai.TypeString},
			"vehicle":        {Type: genai.TypeString},
			"plate":          {Type: genai.TypeString},
			"tracker_number": {Type: genai.TypeString},
			"observations":   {Type: genai.TypeString},
			"scheduled_date": {Type: genai.TypeString, Description: "Formato YYYY-MM-DD se encontrado"},
			"scheduled_time": {Type: genai.TypeString, Description: "Formato HH:mm se encontrado"},
			"status": {
				Type: genai.TypeString,
				Enum: domain.Labels(),
			},
		},
		Required: []string{"name", "status"},
	}
}

var _ Extractor = (*GeminiExtractor)(nil)
