package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmployeeIDExists   = errors.New("el employee_id ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)
