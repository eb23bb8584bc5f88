package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrEmployeeNotFound    = errors.New("servidor no encontrado")
	ErrRecordNotFound      = errors.New("registro no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidDate         = errors.New("fecha inválida, formato esperado AAAA-MM-DD")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrEmployeeExists      = errors.New("el NF ya está registrado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrInvalidResetToken   = errors.New("token inválido o expirado")
)
