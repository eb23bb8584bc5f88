package alert

import (
	"fmt"
	"strings"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// Message aviso en texto plano.
type Message struct {
	Subject string
	Body    string
}

// NewMessage construye el aviso de vencimiento de un registro.
func NewMessage(r *entity.CreditRecord, daysBefore int) Message {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "Servidor"
	}
	deadline := "-"
	if r.Deadline != nil {
		deadline = r.Deadline.Format("02/01/2006")
	}
	return Message{
		Subject: fmt.Sprintf("[Banco de Horas] Alerta de prazo - %s", name),
		Body: fmt.Sprintf("Olá,\n\n"+
			"O servidor %s (NF %s) atingiu o marco de %d dias para o prazo máximo "+
			"de uso do banco de horas (prazo máx.: %s).\n\n"+
			"Atenção: acesse o sistema de Banco de Horas para verificar os detalhes e providências.\n\n"+
			"Mensagem automática do sistema.", name, r.EmployeeNF, daysBefore, deadline),
	}
}
