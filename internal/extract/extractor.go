package extract

import (
	"context"

	"github.com/rastreadormanager/rastreador-api/internal/models"
)

// Extractor transforma texto livre colado pelo operador em campos
// de cliente. A implementação é um colaborador externo: aqui só
// interessa o contrato "texto entra, campos parciais ou erro saem".
type Extractor interface {
	Extract(ctx context.Context, text string) (models.ClientData, error)
}
