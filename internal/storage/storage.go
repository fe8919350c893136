package storage

import (
	"context"
	"errors"
)

// Nomes das coleções persistidas. O sufixo de versão permite migrar
// o formato sem sobrescrever dumps antigos.
const (
	CollectionClients   = "rastreador_clients_v1"
	CollectionTemplates = "rastreador_templates_v1"
)

// ErrNotFound indica que a coleção nunca foi gravada.
var ErrNotFound = errors.New("collection not found")

// Store persiste coleções inteiras como snapshots JSON nomeados.
// A unidade de escrita é sempre a coleção completa; não há updates
// parciais nem transações entre coleções.
type Store interface {
	Read(ctx context.Context, collection string, out any) error
	Write(ctx context.Context, collection string, value any) error
}
