package export

import (
	"strings"
	"time"

	"github.com/rastreadormanager/rastreador-api/internal/models"
)

// ===============================
// Export CSV
// ===============================

var headers = []string{
	"Nome", "Telefone", "Placa", "Veiculo", "Endereco",
	"Status", "Data Agendada", "Hora Agendada", "Obs",
}

// CSV serializa os clientes no formato da planilha: cabeçalho fixo,
// uma linha por cliente, todo campo entre aspas. Aspas dentro do
// campo não são escapadas. Limitação conhecida: basta para os dados
// que o operador digita hoje.
func CSV(clients []models.Client) string {
	var b strings.Builder

	b.WriteString(strings.Join(headers, ","))
	for i := range clients {
		c := &clients[i]
		b.WriteByte('\n')
		b.WriteString(joinQuoted([]string{
			c.Name, c.Phone, c.Plate, c.Vehicle, c.Address,
			c.Status, c.ScheduledDate, c.ScheduledTime, c.Observations,
		}))
	}

	return b.String()
}

// Filename é o nome sugerido do download, datado.
func Filename(now time.Time) string {
	return "clientes_rastreador_" + now.Format("2006-01-02") + ".csv"
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + f + `"`
	}
	return strings.Join(quoted, ",")
}
