package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rastreadormanager/rastreador-api/internal/models"
)

func at(hour int) time.Time {
	return time.Date(2024, 3, 5, hour, 30, 0, 0, time.UTC)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Bom dia", Greeting(at(0)))
	assert.Equal(t, "Bom dia", Greeting(at(9)))
	assert.Equal(t, "Bom dia", Greeting(at(11)))
	assert.Equal(t, "Boa tarde", Greeting(at(12)))
	assert.Equal(t, "Boa tarde", Greeting(at(17)))
	assert.Equal(t, "Boa noite", Greeting(at(18)))
	assert.Equal(t, "Boa noite", Greeting(at(23)))
}

func TestCompile(t *testing.T) {
	t.Run("substitui todos os tokens", func(t *testing.T) {
		c := models.Client{
			Name:          "Ana",
			Plate:         "XYZ9A12",
			Vehicle:       "Gol",
			ScheduledDate: "2024-03-05",
			ScheduledTime: "14:00",
		}

		got := Compile("{SAUDACAO} {NOME}, placa {PLACA}", c, at(9))
		assert.Equal(t, "Bom dia Ana, placa XYZ9A12", got)

		got = Compile("Retirada do {VEICULO} dia {DATA} às {HORA}", c, at(9))
		assert.Equal(t, "Retirada do Gol dia 05/03/2024 às 14:00", got)
	})

	t.Run("fallbacks para campos vazios", func(t *testing.T) {
		c := models.Client{}

		got := Compile("{NOME} | {PLACA} | {VEICULO} | {DATA} | {HORA}", c, at(9))
		assert.Equal(t, "Cliente |  | veículo | ... | ...", got)
	})

	t.Run("ocorrencias repetidas", func(t *testing.T) {
		c := models.Client{Name: "Ana"}

		got := Compile("{NOME} {NOME}", c, at(9))
		assert.Equal(t, "Ana Ana", got)
	})

	t.Run("token desconhecido fica intacto", func(t *testing.T) {
		c := models.Client{Name: "Ana"}

		got := Compile("{NOME} {FOO} {nome}", c, at(9))
		assert.Equal(t, "Ana {FOO} {nome}", got)
	})

	t.Run("deterministico para entradas fixas", func(t *testing.T) {
		c := models.Client{Name: "Ana", Plate: "ABC1234"}
		tmpl := "{SAUDACAO} {NOME}, placa {PLACA}"

		first := Compile(tmpl, c, at(15))
		second := Compile(tmpl, c, at(15))
		assert.Equal(t, first, second)
		assert.Equal(t, "Boa tarde Ana, placa ABC1234", first)
	})
}

func TestDefaultTemplateID(t *testing.T) {
	t.Run("retirado ganha agradecimento", func(t *testing.T) {
		c := models.Client{Status: "Retirado", ScheduledDate: "2024-03-05"}
		assert.Equal(t, TemplateThankYou, DefaultTemplateID(c))
	})

	t.Run("com data agendada ganha confirmacao", func(t *testing.T) {
		c := models.Client{Status: "Agendado", ScheduledDate: "2024-03-05"}
		assert.Equal(t, TemplateConfirmation, DefaultTemplateID(c))
	})

	t.Run("sem data ganha convite", func(t *testing.T) {
		c := models.Client{Status: "Fazer"}
		assert.Equal(t, TemplateInvite, DefaultTemplateID(c))
	})
}
