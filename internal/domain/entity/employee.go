package entity

import "time"

// Employee representa un servidor del órgano. NF es el identificador estable
// asignado por la organización; sus registros de horas dependen de él.
type Employee struct {
	NF         string
	Name       string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
