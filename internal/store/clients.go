package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/rastreadormanager/rastreador-api/internal/domain/client"
	"github.com/rastreadormanager/rastreador-api/internal/models"
	"github.com/rastreadormanager/rastreador-api/internal/storage"
)

// ======================================================
// CLIENT STORE
// ======================================================

// ClientStore é a coleção autoritativa de clientes em memória.
// Toda mutação reserializa a coleção inteira para o storage antes
// de retornar — inclusive quando a coleção fica vazia.
type ClientStore struct {
	mu      sync.Mutex
	clients []models.Client
	storage storage.Store
}

func NewClientStore(st storage.Store) *ClientStore {
	s := &ClientStore{storage: st}

	var loaded []models.Client
	err := st.Read(context.Background(), storage.CollectionClients, &loaded)
	switch {
	case err == nil:
		s.clients = loaded
	case err == storage.ErrNotFound:
		// primeira execução
	default:
		// snapshot ilegível nunca derruba o startup
		log.Printf("clients snapshot unreadable, starting empty: %v", err)
	}

	return s
}

// ------------------------------
// Leitura
// ------------------------------

func (s *ClientStore) All() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *ClientStore) Get(id string) (*models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			c := s.clients[i]
			return &c, true
		}
	}
	return nil, false
}

// Filter devolve o subconjunto que casa com o filtro de status e a
// busca textual, na ordem atual da coleção. Função pura da coleção.
func (s *ClientStore) Filter(statusFilter, query string) []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Client, 0, len(s.clients))
	for i := range s.clients {
		if domain.Matches(&s.clients[i], statusFilter, query) {
			out = append(out, s.clients[i])
		}
	}
	return out
}

func (s *ClientStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// ------------------------------
// Mutações
// ------------------------------

// Add cria o cliente com id novo, updated_at agora e sent_whatsapp
// false, e o insere no início da coleção (mais novo primeiro).
func (s *ClientStore) Add(ctx context.Context, data models.ClientData) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := data.Status
	if !domain.IsValid(domain.Status(status)) {
		status = string(domain.InitialStatus())
	}

	c := models.Client{
		ID:            uuid.NewString(),
		Name:          data.Name,
		Phone:         data.Phone,
		Address:       data.Address,
		Vehicle:       data.Vehicle,
		Plate:         data.Plate,
		TrackerNumber: data.TrackerNumber,
		Observations:  data.Observations,
		ScheduledDate: data.ScheduledDate,
		ScheduledTime: data.ScheduledTime,
		Status:        status,
		UpdatedAt:     time.Now(),
		SentWhatsapp:  false,
	}

	s.clients = append([]models.Client{c}, s.clients...)

	if err := s.persistLocked(ctx); err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// Update substitui todos os campos editáveis do cliente e renova
// updated_at. Id desconhecido é no-op: retorna nil sem erro.
func (s *ClientStore) Update(ctx context.Context, id string, data models.ClientData) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}

		c := &s.clients[i]
		c.Name = data.Name
		c.Phone = data.Phone
		c.Address = data.Address
		c.Vehicle = data.Vehicle
		c.Plate = data.Plate
		c.TrackerNumber = data.TrackerNumber
		c.Observations = data.Observations
		c.ScheduledDate = data.ScheduledDate
		c.ScheduledTime = data.ScheduledTime
		if domain.IsValid(domain.Status(data.Status)) {
			c.Status = data.Status
		}
		c.UpdatedAt = time.Now()

		if err := s.persistLocked(ctx); err != nil {
			return nil, err
		}
		updated := *c
		return &updated, nil
	}

	return nil, nil
}

// Delete remove o cliente. A coleção é persistida mesmo quando o
// removido era o último registro — um snapshot vazio é um estado
// válido, não um "nada a gravar".
func (s *ClientStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}

		s.clients = append(s.clients[:i], s.clients[i+1:]...)
		if err := s.persistLocked(ctx); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// MarkDone marca o cliente como Retirado. Idempotente.
func (s *ClientStore) MarkDone(ctx context.Context, id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}

		c := &s.clients[i]
		c.Status = string(domain.StatusDone)
		c.UpdatedAt = time.Now()

		if err := s.persistLocked(ctx); err != nil {
			return nil, err
		}
		updated := *c
		return &updated, nil
	}

	return nil, nil
}

// MarkWhatsappSent registra que uma mensagem já foi disparada para
// o cliente. Nunca volta a false automaticamente. Idempotente.
func (s *ClientStore) MarkWhatsappSent(ctx context.Context, id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}

		c := &s.clients[i]
		c.SentWhatsapp = true

		if err := s.persistLocked(ctx); err != nil {
			return nil, err
		}
		updated := *c
		return &updated, nil
	}

	return nil, nil
}

// ------------------------------
// Stats
// ------------------------------

type Stats struct {
	Total     int `json:"total"`
	ToDo      int `json:"fazer"`
	Scheduled int `json:"agendado"`
	Done      int `json:"retirado"`
	Sent      int `json:"whatsapp_enviado"`
}

func (s *ClientStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Total: len(s.clients)}
	for i := range s.clients {
		switch domain.Status(s.clients[i].Status) {
		case domain.StatusToDo:
			st.ToDo++
		case domain.StatusScheduled:
			st.Scheduled++
		case domain.StatusDone:
			st.Done++
		}
		if s.clients[i].SentWhatsapp {
			st.Sent++
		}
	}
	return st
}

// ------------------------------
// Persistência
// ------------------------------

func (s *ClientStore) persistLocked(ctx context.Context) error {
	return s.storage.Write(ctx, storage.CollectionClients, s.clients)
}
