package store

import (
	"github.com/rastreadormanager/rastreador-api/internal/message"
	"github.com/rastreadormanager/rastreador-api/internal/models"
)

// DefaultTemplates devolve o conjunto semeado na primeira execução.
// Os ids vêm do pacote message, que é quem decide o modelo sugerido
// para cada momento do fluxo.
func DefaultTemplates() []models.Template {
	return []models.Template{
		{
			ID:      message.TemplateInvite,
			Name:    "Convite Agendamento",
			Content: "{SAUDACAO} {NOME}, aqui é da empresa de rastreamento. Precisamos agendar a retirada do equipamento do veículo {VEICULO} ({PLACA}). Qual o melhor horário para você?",
		},
		{
			ID:      message.TemplateConfirmation,
			Name:    "Confirmação",
			Content: "{SAUDACAO} {NOME}, confirmando a retirada do rastreador no veículo {VEICULO} para o dia {DATA} às {HORA}. O técnico estará a caminho.",
		},
		{
			ID:      message.TemplateFollowUp,
			Name:    "Cobrança (Follow-up)",
			Content: "{SAUDACAO} {NOME}, ainda não conseguimos agendar a retirada do rastreador do {VEICULO}. Por favor, nos retorne para evitarmos cobranças adicionais.",
		},
		{
			ID:      message.TemplateNoShow,
			Name:    "Técnico no Local (Ausente)",
			Content: "{SAUDACAO} {NOME}, nosso técnico está no local combinado para a retirada, mas não encontrou ninguém. Aguardamos retorno urgente.",
		},
		{
			ID:      message.TemplateThankYou,
			Name:    "Agradecimento",
			Content: "Obrigado {NOME}! O equipamento foi retirado com sucesso. Agradecemos a parceria.",
		},
	}
}
