package message

import (
	"strings"
	"time"

	domain "github.com/rastreadormanager/rastreador-api/internal/domain/client"
	"github.com/rastreadormanager/rastreador-api/internal/models"
)

// ===============================
// Compilador de templates
// ===============================

// Ids estáveis dos modelos padrão, usados pela seleção automática.
const (
	TemplateInvite       = "agendamento"
	TemplateConfirmation = "confirmacao"
	TemplateFollowUp     = "cobranca"
	TemplateNoShow       = "ausente"
	TemplateThankYou     = "agradecimento"
)

// Compile substitui os seis tokens do template pelos dados do
// cliente. Tokens desconhecidos ficam como estão; nem o template nem
// o cliente são modificados.
func Compile(template string, c models.Client, now time.Time) string {
	r := strings.NewReplacer(
		"{NOME}", orElse(c.Name, "Cliente"),
		"{PLACA}", c.Plate,
		"{VEICULO}", orElse(c.Vehicle, "veículo"),
		"{SAUDACAO}", Greeting(now),
		"{DATA}", formatDate(c.ScheduledDate),
		"{HORA}", orElse(c.ScheduledTime, "..."),
	)
	return r.Replace(template)
}

// Greeting devolve a saudação conforme a hora local:
// manhã até 11h59, tarde até 17h59, noite depois disso.
func Greeting(now time.Time) string {
	hour := now.Hour()
	if hour < 12 {
		return "Bom dia"
	}
	if hour < 18 {
		return "Boa tarde"
	}
	return "Boa noite"
}

// DefaultTemplateID escolhe o modelo sugerido ao abrir o fluxo de
// envio. É só um padrão de apresentação — o operador pode trocar.
func DefaultTemplateID(c models.Client) string {
	switch {
	case c.Status == string(domain.StatusDone):
		return TemplateThankYou
	case c.ScheduledDate != "":
		return TemplateConfirmation
	default:
		return TemplateInvite
	}
}

// formatDate vira YYYY-MM-DD em DD/MM/YYYY; sem data vira reticências.
func formatDate(scheduledDate string) string {
	if scheduledDate == "" {
		return "..."
	}

	parts := strings.Split(scheduledDate, "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

func orElse(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
