package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location resolve o fuso configurado, caindo no padrão quando o
// nome é vazio ou inválido.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// sem tzdata no sistema, melhor hora local que panic
		return time.Local
	}
	return loc
}

// NowIn é o relógio do negócio: a saudação das mensagens e os
// carimbos de export usam esta hora, não a do servidor.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
