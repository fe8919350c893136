package client

// ===============================
// Client Status
// ===============================

type Status string

const (
	StatusToDo      Status = "Fazer"
	StatusScheduled Status = "Agendado"
	StatusDone      Status = "Retirado"
)

// FilterAll é o valor de filtro que não restringe por status.
const FilterAll = "Todos"

func IsValid(s Status) bool {
	switch s {
	case StatusToDo, StatusScheduled, StatusDone:
		return true
	}
	return false
}

// InitialStatus é o status de todo cliente recém-criado.
func InitialStatus() Status {
	return StatusToDo
}

// Labels lista os três status na ordem do fluxo de trabalho.
func Labels() []string {
	return []string{
		string(StatusToDo),
		string(StatusScheduled),
		string(StatusDone),
	}
}
