package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidAmount      = errors.New("monto inválido: debe ser un número mayor o igual a cero")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrHasDependents      = errors.New("el recurso tiene registros dependientes")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
)
