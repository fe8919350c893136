package client

import (
	"strings"

	"github.com/rastreadormanager/rastreador-api/internal/models"
)

// ===============================
// Filtro de listagem
// ===============================

// Matches decide se um cliente passa no filtro da listagem:
// status "Todos" (ou vazio) não restringe; a busca é substring
// case-insensitive sobre nome, placa e veículo.
func Matches(c *models.Client, statusFilter, query string) bool {
	if statusFilter != "" && statusFilter != FilterAll && c.Status != statusFilter {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Plate), q) ||
		strings.Contains(strings.ToLower(c.Vehicle), q)
}
