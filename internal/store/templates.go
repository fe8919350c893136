package store

import (
	"context"
	"log"
	"sync"

	"github.com/rastreadormanager/rastreador-api/internal/models"
	"github.com/rastreadormanager/rastreador-api/internal/storage"
)

// ======================================================
// TEMPLATE STORE
// ======================================================

// TemplateStore guarda os modelos de mensagem. A coleção nasce com
// os cinco padrões e só muda por edição in-place: mesmo id, conteúdo
// substituído. Nunca ganha nem perde entradas em fluxo normal.
type TemplateStore struct {
	mu        sync.Mutex
	templates []models.Template
	storage   storage.Store
}

func NewTemplateStore(st storage.Store) *TemplateStore {
	s := &TemplateStore{storage: st}

	var loaded []models.Template
	err := st.Read(context.Background(), storage.CollectionTemplates, &loaded)
	switch {
	case err == nil && len(loaded) > 0:
		s.templates = loaded
	case err == nil || err == storage.ErrNotFound:
		s.templates = DefaultTemplates()
	default:
		log.Printf("templates snapshot unreadable, using defaults: %v", err)
		s.templates = DefaultTemplates()
	}

	return s
}

func (s *TemplateStore) All() []models.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

func (s *TemplateStore) Get(id string) (*models.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == id {
			t := s.templates[i]
			return &t, true
		}
	}
	return nil, false
}

// UpdateContent troca o conteúdo do modelo mantendo id e nome, e
// persiste a coleção inteira. Id desconhecido é no-op (nil, nil).
//
// O texto salvo é exatamente o que o operador mandou: se vier uma
// mensagem já compilada, os placeholders foram embora.
func (s *TemplateStore) UpdateContent(ctx context.Context, id, content string) (*models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID != id {
			continue
		}

		s.templates[i].Content = content

		if err := s.storage.Write(ctx, storage.CollectionTemplates, s.templates); err != nil {
			return nil, err
		}
		updated := s.templates[i]
		return &updated, nil
	}

	return nil, nil
}
