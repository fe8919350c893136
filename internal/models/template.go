package models

// Template de mensagem WhatsApp. O id é a chave estável usada pela
// seleção automática (agendamento, confirmacao, cobranca, ausente,
// agradecimento); o conteúdo pode ser editado, o conjunto não cresce.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}
