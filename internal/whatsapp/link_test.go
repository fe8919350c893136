package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11987654321", DigitsOnly("(11) 98765-4321"))
	assert.Equal(t, "11987654321", DigitsOnly("+55 11 98765 4321")[2:])
	assert.Equal(t, "", DigitsOnly("sem numero"))
}

func TestLink(t *testing.T) {
	got := Link("(11) 98765-4321", "Bom dia Ana", "55")
	assert.Equal(t, "https://wa.me/5511987654321?text=Bom%20dia%20Ana", got)
}

func TestLinkEncoding(t *testing.T) {
	got := Link("11987654321", "Olá? & até às 14:00", "55")
	assert.Contains(t, got, "https://wa.me/5511987654321?text=")
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "&")
	assert.NotContains(t, got, "+")
}
