package dto

import "time"

// CreateEmployeeRequest entrada para registrar un servidor.
type CreateEmployeeRequest struct {
	NF         string `json:"nf"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// UpdateEmployeeRequest entrada para actualizar nombre y setor.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
}

// EmployeeResponse salida de un servidor.
type EmployeeResponse struct {
	NF         string    `json:"nf"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
