package models

import "time"

// Cliente da retirada de rastreador. O ID é um UUID gerado na criação
// e nunca muda; o restante dos campos é texto livre.
type Client struct {
	ID string `json:"id"`

	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Vehicle       string `json:"vehicle"`
	Plate         string `json:"plate"`
	TrackerNumber string `json:"tracker_number"`
	Observations  string `json:"observations"`

	// YYYY-MM-DD e HH:mm; vazios enquanto não agendado.
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`

	Status string `json:"status"`

	UpdatedAt    time.Time `json:"updated_at"`
	SentWhatsapp bool      `json:"sent_whatsapp"`
}

// ClientData são os campos editáveis de um cliente — tudo menos
// id, updated_at e sent_whatsapp, que o store controla.
type ClientData struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Vehicle       string `json:"vehicle"`
	Plate         string `json:"plate"`
	TrackerNumber string `json:"tracker_number"`
	Observations  string `json:"observations"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Status        string `json:"status"`
}
