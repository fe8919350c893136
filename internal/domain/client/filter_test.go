package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rastreadormanager/rastreador-api/internal/models"
)

func TestMatches(t *testing.T) {
	c := &models.Client{
		Name:    "Ana Souza",
		Plate:   "XYZ9A12",
		Vehicle: "Fiat Uno",
		Status:  "Agendado",
	}

	t.Run("todos sem busca passa sempre", func(t *testing.T) {
		assert.True(t, Matches(c, FilterAll, ""))
		assert.True(t, Matches(c, "", ""))
	})

	t.Run("status precisa bater", func(t *testing.T) {
		assert.True(t, Matches(c, "Agendado", ""))
		assert.False(t, Matches(c, "Fazer", ""))
		assert.False(t, Matches(c, "Retirado", ""))
	})

	t.Run("busca case-insensitive em nome placa e veiculo", func(t *testing.T) {
		assert.True(t, Matches(c, FilterAll, "ana"))
		assert.True(t, Matches(c, FilterAll, "xyz9"))
		assert.True(t, Matches(c, FilterAll, "UNO"))
		assert.False(t, Matches(c, FilterAll, "corsa"))
	})

	t.Run("status e busca combinados", func(t *testing.T) {
		assert.True(t, Matches(c, "Agendado", "souza"))
		assert.False(t, Matches(c, "Fazer", "souza"))
	})
}
