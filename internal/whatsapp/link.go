package whatsapp

import (
	"net/url"
	"strings"
)

// ===============================
// Deep link wa.me
// ===============================

// DigitsOnly remove tudo que não é dígito do telefone.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link monta a URL que abre o WhatsApp com a mensagem preenchida.
// O número recebe o código do país na frente (55 por padrão) e a
// mensagem vai URL-encoded no parâmetro text.
func Link(phone, text, countryCode string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + countryCode + DigitsOnly(phone) + "?text=" + encoded
}
